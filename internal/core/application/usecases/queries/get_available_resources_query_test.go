package queries_test

import (
	"testing"

	"ordering/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAvailableResourcesQuery_Valid(t *testing.T) {
	query := queries.NewGetAvailableResourcesQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetAvailableResourcesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAvailableResourcesQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAvailableResourcesQueryIsNotConstructed)
}
