package queries_test

import (
	"testing"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderAuditLogQuery_Valid(t *testing.T) {
	orderID := kernel.NewUUID()

	query, err := queries.NewGetOrderAuditLogQuery(orderID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.OrderID().IsEqual(orderID))
}

func TestNewGetOrderAuditLogQuery_InvalidUUID(t *testing.T) {
	var invalidID kernel.UUID

	_, err := queries.NewGetOrderAuditLogQuery(invalidID)

	require.Error(t, err)
}

func TestGetOrderAuditLogQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderAuditLogQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderAuditLogQueryIsNotConstructed)
}
