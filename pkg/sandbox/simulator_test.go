package sandbox

import (
	"testing"

	"role-explorer/pkg/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimulator(t *testing.T) *Simulator {
	t.Helper()
	s, err := New(permissions.Default())
	require.NoError(t, err)
	return s
}

func TestCheckBuiltinRoles(t *testing.T) {
	s := newSimulator(t)

	tests := []struct {
		name    string
		role    string
		api     permissions.APIName
		action  string
		allowed bool
		reason  string
	}{
		{"admin writes payouts", permissions.RoleAdministrator, "payout_operations", ActionWrite, true, "administrator grants write on payout_operations"},
		{"analyst reads payouts", permissions.RoleAnalyst, "payout_operations", ActionRead, true, ""},
		{"analyst cannot write payouts", permissions.RoleAnalyst, "payout_operations", ActionWrite, false, "analyst holds read on payout_operations without write"},
		{"view only has no transfers", permissions.RoleViewOnly, "balance_transfer_operations", ActionWrite, false, "view_only has no access to balance_transfer_operations"},
		{"read-only permission", permissions.RoleAdministrator, "balance_operations", ActionWrite, false, "balance_operations does not support write"},
		{"empty role", permissions.RoleTaxAnalyst, "tax_report_operations", ActionRead, false, ""},
		{"unknown role", "nobody", "dashboard_baseline", ActionRead, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := s.Check(tt.role, tt.api, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.allowed, d.Allowed)
			if tt.reason != "" {
				assert.Equal(t, tt.reason, d.Reason)
			}
		})
	}
}

func TestCheckMatchesResolver(t *testing.T) {
	s := newSimulator(t)
	c := permissions.Default()

	for _, r := range c.Roles() {
		for _, rp := range c.ResolveForRole(r.ID) {
			for _, verb := range []string{ActionRead, ActionWrite} {
				d, err := s.Check(r.ID, rp.Permission.APIName, verb)
				require.NoError(t, err)
				want := permissions.AccessLevel(verb) == rp.Access || rp.Access == permissions.AccessReadWrite
				assert.Equal(t, want, d.Allowed, "%s %s %s", r.ID, verb, rp.Permission.APIName)
			}
		}
	}
}

func TestCheckInvalidInput(t *testing.T) {
	s := newSimulator(t)

	_, err := s.Check(permissions.RoleAdministrator, "payout_operations", "delete")
	require.Error(t, err)
	assert.True(t, permissions.IsInvalidArgument(err))

	_, err = s.Check(permissions.RoleAdministrator, "customer_pii_operations", ActionRead)
	require.Error(t, err)
	assert.True(t, permissions.IsNotFound(err))
}

func TestLoadAndRemoveCustomRole(t *testing.T) {
	s := newSimulator(t)
	role := permissions.Role{
		ID:   "custom_refunds",
		Name: "Refunds",
		PermissionAccess: map[permissions.APIName]permissions.AccessLevel{
			"refund_operations": permissions.AccessReadWrite,
		},
	}

	require.NoError(t, s.LoadRole(role))
	d, err := s.Check(role.ID, "refund_operations", ActionWrite)
	require.NoError(t, err)
	assert.True(t, d.Allowed)

	// Reloading narrows the grant
	role.PermissionAccess["refund_operations"] = permissions.AccessRead
	require.NoError(t, s.LoadRole(role))
	d, err = s.Check(role.ID, "refund_operations", ActionWrite)
	require.NoError(t, err)
	assert.False(t, d.Allowed)

	require.NoError(t, s.RemoveRole(role.ID))
	d, err = s.Check(role.ID, "refund_operations", ActionRead)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
}

func TestCheckMember(t *testing.T) {
	s := newSimulator(t)
	held := []string{permissions.RoleRefundAnalyst, permissions.RoleDisputeAnalyst}

	d, err := s.CheckMember("alice", held, "refund_operations", ActionWrite)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, "alice", d.Subject)
	assert.ElementsMatch(t, held, d.Roles)
	assert.Contains(t, d.Reason, "alice grants write")

	d, err = s.CheckMember("alice", held, "dispute_operations", ActionWrite)
	require.NoError(t, err)
	assert.True(t, d.Allowed)

	d, err = s.CheckMember("alice", held, "payout_operations", ActionRead)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, "alice has no access to payout_operations", d.Reason)

	d, err = s.CheckMember("bob", nil, "refund_operations", ActionRead)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Empty(t, d.Roles)

	_, err = s.CheckMember("alice", held, "refund_operations", "delete")
	assert.True(t, permissions.IsInvalidArgument(err))
}

func TestCheckMemberLeavesNoAssignment(t *testing.T) {
	s := newSimulator(t)

	_, err := s.CheckMember("alice", []string{permissions.RoleRefundAnalyst}, "refund_operations", ActionRead)
	require.NoError(t, err)

	users, err := s.enforcer.GetUsersForRole(permissions.RoleRefundAnalyst)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestAssignMember(t *testing.T) {
	s := newSimulator(t)

	require.NoError(t, s.Assign("alice", permissions.RoleRefundAnalyst))

	roles, err := s.RolesFor("alice")
	require.NoError(t, err)
	assert.Equal(t, []string{permissions.RoleRefundAnalyst}, roles)

	d, err := s.decide("alice", "alice", "refund_operations", ActionWrite)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}
