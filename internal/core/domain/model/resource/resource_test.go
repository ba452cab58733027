package resource_test

import (
	"testing"

	"ordering/internal/core/domain/model/resource"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResource(t *testing.T) {
	t.Run("should create available resource", func(t *testing.T) {
		r, err := resource.NewResource("01001234567", 50000, 1000)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, "01001234567", r.Number())
		assert.Equal(t, resource.Available, r.State())
		assert.Equal(t, int64(50000), r.Price())
		assert.Equal(t, int64(1000), r.SetupFee())
		assert.True(t, r.IsAvailable())
	})

	t.Run("should fail with empty number", func(t *testing.T) {
		r, err := resource.NewResource("   ", 50000, 1000)

		require.Error(t, err)
		assert.Nil(t, r)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestResource_Reserve(t *testing.T) {
	t.Run("should move available resource to sold", func(t *testing.T) {
		r, _ := resource.NewResource("01001234567", 50000, 1000)

		err := r.Reserve()

		require.NoError(t, err)
		assert.Equal(t, resource.Sold, r.State())
		assert.False(t, r.IsAvailable())
	})

	t.Run("should reject reserving a sold resource", func(t *testing.T) {
		r, _ := resource.NewResource("01001234567", 50000, 1000)
		require.NoError(t, r.Reserve())

		err := r.Reserve()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	})

	t.Run("should reject reserving a deleted resource", func(t *testing.T) {
		r, err := resource.RestoreResource(7, "01001234567", resource.Available, 50000, 1000, true)
		require.NoError(t, err)

		err = r.Reserve()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	})
}

func TestResource_Release(t *testing.T) {
	r, _ := resource.NewResource("01001234567", 50000, 1000)
	require.NoError(t, r.Reserve())

	r.Release()

	assert.Equal(t, resource.Available, r.State())
	assert.True(t, r.IsAvailable())
}

func TestParseAllocationState(t *testing.T) {
	state, err := resource.ParseAllocationState("available")
	require.NoError(t, err)
	assert.Equal(t, resource.Available, state)

	state, err = resource.ParseAllocationState("sold")
	require.NoError(t, err)
	assert.Equal(t, resource.Sold, state)

	_, err = resource.ParseAllocationState("reserved")
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
