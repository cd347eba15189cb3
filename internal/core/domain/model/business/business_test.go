package business_test

import (
	"testing"

	"pos/internal/core/domain/model/business"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	id, err := business.NewID("  trattoria ")
	require.NoError(t, err)
	assert.Equal(t, business.ID("trattoria"), id)
	require.NoError(t, id.Validate())

	_, err = business.NewID("   ")
	require.ErrorIs(t, err, business.ErrNoActiveBusiness)
}

func TestID_Validate(t *testing.T) {
	var id business.ID

	assert.True(t, id.IsZero())
	assert.ErrorIs(t, id.Validate(), business.ErrNoActiveBusiness)
}

func TestOrdersKey(t *testing.T) {
	assert.Equal(t, "orders:trattoria", business.OrdersKey("trattoria"))
	assert.NotEqual(t, business.LegacyOrdersKey, business.OrdersKey("default"))
}
