package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"role-explorer/internal/customroles/models"
	"role-explorer/pkg/metrics"
	"role-explorer/pkg/permissions"
	"role-explorer/pkg/sandbox"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store     *MemoryStore
	service   *Service
	simulator *sandbox.Simulator
	metrics   *metrics.Metrics
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	catalog := permissions.Default()
	simulator, err := sandbox.New(catalog)
	require.NoError(t, err)

	store := NewMemoryStore()
	m := metrics.New(metrics.NewRegistry())
	service := NewService(catalog, NewKVRepository(store), simulator, m)
	service.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	require.NoError(t, service.Initialize(context.Background()))

	return fixture{store: store, service: service, simulator: simulator, metrics: m}
}

func TestServiceCreateFromBase(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	role, err := f.service.Create(ctx, CreateRequest{
		Name:       "Refund desk",
		BaseRoleID: permissions.RoleRefundAnalyst,
		Grants:     map[permissions.APIName]permissions.AccessLevel{"dispute_operations": permissions.AccessRead},
		Revoke:     []permissions.APIName{"credit_note_operations"},
	})
	require.NoError(t, err)

	assert.Len(t, role.PermissionAccess, 6)
	assert.NotContains(t, role.PermissionAccess, permissions.APIName("credit_note_operations"))
	assert.Equal(t, permissions.AccessRead, role.PermissionAccess["dispute_operations"])
	require.NotNil(t, role.CreatedAt)
	assert.Equal(t, 2026, role.CreatedAt.Year())
	assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.CustomRoles))

	decision, err := f.simulator.Check(role.ID, "refund_operations", sandbox.ActionWrite)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
}

func TestServiceCreateRejectsBadInput(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.Create(ctx, CreateRequest{Name: "x", BaseRoleID: "no_such_role"})
	assert.True(t, permissions.IsNotFound(err))

	_, err = f.service.Create(ctx, CreateRequest{
		Name:   "x",
		Grants: map[permissions.APIName]permissions.AccessLevel{"audit_log_operations": permissions.AccessWrite},
	})
	assert.True(t, permissions.IsInvalidArgument(err))

	_, err = f.service.Create(ctx, CreateRequest{})
	assert.True(t, permissions.IsInvalidArgument(err))

	_, err = f.service.Create(ctx, CreateRequest{
		Name:   "x",
		Grants: map[permissions.APIName]permissions.AccessLevel{"no_such_permission": permissions.AccessRead},
	})
	assert.True(t, permissions.IsInvalidArgument(err))
	assert.False(t, permissions.IsNotFound(err))

	_, err = f.service.Create(ctx, CreateRequest{Name: "x", Toggle: []permissions.APIName{"no_such_permission"}})
	assert.True(t, permissions.IsInvalidArgument(err))

	roles, _ := f.service.List(ctx)
	assert.Empty(t, roles)
}

func TestServiceToggle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	role, err := f.service.Create(ctx, CreateRequest{
		Name:       "Metered refunds",
		BaseRoleID: permissions.RoleRefundAnalyst,
		Toggle:     []permissions.APIName{"dashboard_baseline", "usage_record_operations"},
	})
	require.NoError(t, err)
	assert.Len(t, role.PermissionAccess, 6)
	assert.NotContains(t, role.PermissionAccess, permissions.APIName("dashboard_baseline"))
	assert.Equal(t, permissions.AccessWrite, role.PermissionAccess["usage_record_operations"])

	updated, err := f.service.Update(ctx, role.ID, UpdateRequest{
		Toggle: []permissions.APIName{"usage_record_operations"},
	})
	require.NoError(t, err)
	assert.Len(t, updated.PermissionAccess, 5)
	assert.NotContains(t, updated.PermissionAccess, permissions.APIName("usage_record_operations"))

	decision, err := f.simulator.Check(role.ID, "usage_record_operations", sandbox.ActionWrite)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
}

type listFailingRepository struct {
	*KVRepository
}

func (r listFailingRepository) List(context.Context) ([]permissions.Role, error) {
	return nil, errors.New("list unavailable")
}

func TestServiceInitializePropagatesListError(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := listFailingRepository{NewKVRepository(store)}
	service := NewService(permissions.Default(), repo, nil, nil)

	err := service.Initialize(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list unavailable")

	require.NoError(t, store.Put(ctx, models.BackupKey, []byte("[]")))
	restored, err := service.Restore(ctx, NewSnapshotter(store))
	require.Error(t, err)
	assert.False(t, restored)
}

func TestServiceCopyCustomRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	original, err := f.service.Create(ctx, CreateRequest{Name: "Original", BaseRoleID: permissions.RoleDisputeAnalyst})
	require.NoError(t, err)

	copied, err := f.service.Create(ctx, CreateRequest{Name: "Copy", BaseRoleID: original.ID})
	require.NoError(t, err)
	assert.NotEqual(t, original.ID, copied.ID)
	assert.Equal(t, permissions.RoleDisputeAnalyst, copied.BaseRoleID)
	assert.Equal(t, original.PermissionAccess, copied.PermissionAccess)
}

func TestServiceResolve(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	role, err := f.service.Create(ctx, CreateRequest{
		Name: "Mixed",
		Grants: map[permissions.APIName]permissions.AccessLevel{
			"refund_operations": permissions.AccessReadWrite,
			"team_management":   permissions.AccessRead,
		},
	})
	require.NoError(t, err)

	resolved, err := f.service.Resolve(ctx, role.ID)
	require.NoError(t, err)
	require.Len(t, resolved, 2)
	assert.Equal(t, permissions.APIName("refund_operations"), resolved[0].Permission.APIName)
	assert.Equal(t, permissions.OperationReadOnly, resolved[1].Permission.OperationType)

	builtin, err := f.service.Resolve(ctx, permissions.RoleViewOnly)
	require.NoError(t, err)
	assert.Len(t, builtin, 18)

	unknown, err := f.service.Resolve(ctx, "custom_unknown")
	require.NoError(t, err)
	assert.Empty(t, unknown)
	assert.NotNil(t, unknown)
}

func TestServiceDetails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, details, err := f.service.Details(ctx, permissions.RoleRefundAnalyst)
	require.NoError(t, err)
	assert.Equal(t, "Issues refunds and credit notes.", details.Description)

	role, err := f.service.Create(ctx, CreateRequest{Name: "Generated", BaseRoleID: permissions.RoleRefundAnalyst})
	require.NoError(t, err)
	_, generated, err := f.service.Details(ctx, role.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "Issues refunds and credit notes.", generated.Description)
	assert.NotEmpty(t, generated.CanDo)
	assert.NotEmpty(t, generated.BestFor)

	described, err := f.service.Create(ctx, CreateRequest{Name: "Described", Description: "Front line refunds", BaseRoleID: permissions.RoleRefundAnalyst})
	require.NoError(t, err)
	assert.Equal(t, "Front line refunds", f.service.DetailsFor(described).Description)

	_, _, err = f.service.Details(ctx, "custom_unknown")
	assert.True(t, permissions.IsNotFound(err))
}

func TestServiceUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	role, err := f.service.Create(ctx, CreateRequest{Name: "Before", BaseRoleID: permissions.RoleRefundAnalyst})
	require.NoError(t, err)

	name := "After"
	renamed, err := f.service.Update(ctx, role.ID, UpdateRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "After", renamed.Name)
	assert.Equal(t, role.PermissionAccess, renamed.PermissionAccess)
	assert.Equal(t, role.CreatedAt, renamed.CreatedAt)

	replaced, err := f.service.Update(ctx, role.ID, UpdateRequest{
		Grants: map[permissions.APIName]permissions.AccessLevel{"dashboard_baseline": permissions.AccessRead},
	})
	require.NoError(t, err)
	assert.Equal(t, "After", replaced.Name)
	assert.Len(t, replaced.PermissionAccess, 1)
	assert.Equal(t, permissions.RoleRefundAnalyst, replaced.BaseRoleID)

	decision, err := f.simulator.Check(role.ID, "refund_operations", sandbox.ActionRead)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)

	_, err = f.service.Update(ctx, "custom_unknown", UpdateRequest{Name: &name})
	assert.True(t, permissions.IsNotFound(err))
}

func TestServiceDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	role, err := f.service.Create(ctx, CreateRequest{Name: "Temp", BaseRoleID: permissions.RoleRefundAnalyst})
	require.NoError(t, err)
	require.NoError(t, f.service.Delete(ctx, role.ID))

	_, err = f.service.Get(ctx, role.ID)
	assert.True(t, permissions.IsNotFound(err))
	assert.True(t, permissions.IsNotFound(f.service.Delete(ctx, role.ID)))
	assert.Equal(t, float64(0), testutil.ToFloat64(f.metrics.CustomRoles))

	decision, err := f.simulator.Check(role.ID, "refund_operations", sandbox.ActionRead)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
}

func TestServiceSnapshotRestore(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	snapshots := NewSnapshotter(f.store)

	restored, err := f.service.Restore(ctx, snapshots)
	require.NoError(t, err)
	assert.False(t, restored)

	kept, err := f.service.Create(ctx, CreateRequest{Name: "Kept", BaseRoleID: permissions.RoleRefundAnalyst})
	require.NoError(t, err)
	require.NoError(t, snapshots.Snapshot(ctx))

	lost, err := f.service.Create(ctx, CreateRequest{Name: "Lost", BaseRoleID: permissions.RoleRefundAnalyst})
	require.NoError(t, err)

	restored, err = f.service.Restore(ctx, snapshots)
	require.NoError(t, err)
	assert.True(t, restored)

	roles, _ := f.service.List(ctx)
	require.Len(t, roles, 1)
	assert.Equal(t, kept.ID, roles[0].ID)

	decision, err := f.simulator.Check(lost.ID, "refund_operations", sandbox.ActionRead)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)

	backup, ok, err := f.store.Get(ctx, models.BackupKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, string(backup), kept.ID)
}

func TestSnapshotterSchedule(t *testing.T) {
	snapshots := NewSnapshotter(NewMemoryStore())
	ctx := context.Background()

	assert.Error(t, snapshots.Start(ctx, "not a schedule"))

	require.NoError(t, snapshots.Start(ctx, "@every 1h"))
	assert.Error(t, snapshots.Start(ctx, "@every 1h"))
	snapshots.Stop()
	snapshots.Stop()
}
