package services

import (
	"strings"
	"testing"

	"role-explorer/pkg/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderFromBuiltinRole(t *testing.T) {
	catalog := permissions.Default()
	base, ok := catalog.Role(permissions.RoleRefundAnalyst)
	require.True(t, ok)

	b := NewBuilder(catalog).FromRole(base)
	assert.Len(t, b.access, 6)

	role, err := b.Named("Refund desk").Build()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(role.ID, IDPrefix))
	assert.Equal(t, permissions.RoleRefundAnalyst, role.BaseRoleID)
	assert.Equal(t, permissions.AccessRead, role.PermissionAccess["payment_intent_operations"])
	assert.Equal(t, permissions.AccessReadWrite, role.PermissionAccess["refund_operations"])
	assert.True(t, role.IsCustom())
}

func TestBuilderGrantValidation(t *testing.T) {
	b := NewBuilder(permissions.Default())

	require.NoError(t, b.Grant("refund_operations", permissions.AccessRead))
	require.NoError(t, b.Grant("balance_transfer_operations", permissions.AccessWrite))

	err := b.Grant("balance_operations", permissions.AccessWrite)
	assert.True(t, permissions.IsInvalidArgument(err))

	err = b.Grant("refund_operations", "")
	assert.True(t, permissions.IsInvalidArgument(err))

	// unknown names are bad input, not a missing role
	err = b.Grant("no_such_permission", permissions.AccessRead)
	assert.True(t, permissions.IsInvalidArgument(err))
	assert.False(t, permissions.IsNotFound(err))

	assert.Len(t, b.access, 2)
}

func TestBuilderToggle(t *testing.T) {
	b := NewBuilder(permissions.Default())

	require.NoError(t, b.Toggle("usage_record_operations"))
	role, err := b.Named("Metering").Build()
	require.NoError(t, err)
	assert.Equal(t, permissions.AccessWrite, role.PermissionAccess["usage_record_operations"])

	require.NoError(t, b.Toggle("usage_record_operations"))
	assert.Empty(t, b.access)

	assert.True(t, permissions.IsInvalidArgument(b.Toggle("no_such_permission")))
}

func TestBuilderRequiresName(t *testing.T) {
	_, err := NewBuilder(permissions.Default()).Named("   ").Build()
	require.Error(t, err)
	assert.True(t, permissions.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "name is required")

	_, err = NewBuilder(permissions.Default()).
		Named("ok").
		Described(strings.Repeat("x", 501)).
		Build()
	assert.True(t, permissions.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "description must be at most 500 characters long")
}

func TestBuilderEditsCustomRoleInPlace(t *testing.T) {
	catalog := permissions.Default()
	existing := sampleRole("custom_a")
	existing.CustomDescription = "Handles refunds"
	existing.BaseRoleID = permissions.RoleRefundAnalyst

	b := NewBuilder(catalog).FromRole(existing)
	b.Revoke("dashboard_baseline")
	role, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, "custom_a", role.ID)
	assert.Equal(t, "Refund desk", role.Name)
	assert.Equal(t, "Handles refunds", role.CustomDescription)
	assert.Equal(t, permissions.RoleRefundAnalyst, role.BaseRoleID)
	assert.Equal(t, map[permissions.APIName]permissions.AccessLevel{
		"refund_operations": permissions.AccessReadWrite,
	}, role.PermissionAccess)
}
