package commands_test

import (
	"testing"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/model/business"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	lines := []commands.OrderLine{{MenuItemID: "pizza", Quantity: 2}}
	cmd, err := commands.NewCreateOrderCommand(mainBusiness, "  Ana ", order.Takeaway, 3, lines)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, mainBusiness, cmd.BusinessID())
	assert.Equal(t, "Ana", cmd.CustomerName())
	assert.Equal(t, order.Takeaway, cmd.ServiceType())
	assert.Equal(t, 3, cmd.Diners())
	assert.Equal(t, lines, cmd.Lines())
}

func TestNewCreateOrderCommand_DefaultsToOnSite(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(mainBusiness, "Ana", "", 0,
		[]commands.OrderLine{{MenuItemID: "pizza", Quantity: 1}})
	require.NoError(t, err)
	assert.Equal(t, order.OnSite, cmd.ServiceType())
}

func TestNewCreateOrderCommand_NoBusinessIsReportedFirst(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(business.ID(""), "", "", -1, nil)
	require.ErrorIs(t, err, commands.ErrNoActiveBusiness)
	assert.NotErrorIs(t, err, order.ErrCustomerNameRequired)
}

func TestNewCreateOrderCommand_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		customer string
		diners   int
		lines    []commands.OrderLine
		wantErr  error
	}{
		{"blank customer", "   ", 0, []commands.OrderLine{{MenuItemID: "pizza", Quantity: 1}}, order.ErrCustomerNameRequired},
		{"no lines", "Ana", 0, nil, order.ErrNoItemsSelected},
		{"negative diners", "Ana", -1, []commands.OrderLine{{MenuItemID: "pizza", Quantity: 1}}, errs.ErrValueIsInvalid},
		{"zero quantity", "Ana", 0, []commands.OrderLine{{MenuItemID: "pizza", Quantity: 0}}, errs.ErrValueIsInvalid},
		{"blank menu item", "Ana", 0, []commands.OrderLine{{MenuItemID: " ", Quantity: 1}}, errs.ErrValueIsRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewCreateOrderCommand(mainBusiness, tt.customer, order.OnSite, tt.diners, tt.lines)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewCreateOrderCommand_JoinsErrors(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(mainBusiness, "", order.OnSite, 0, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrCustomerNameRequired)
	assert.ErrorIs(t, err, order.ErrNoItemsSelected)
}

func TestCreateOrderCommand_NotConstructedViaConstructor(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
