package migrations

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registered(versions ...string) []RegisteredMigration {
	out := make([]RegisteredMigration, 0, len(versions))
	for _, v := range versions {
		out = append(out, RegisteredMigration{Version: v, Description: "migration " + v})
	}
	return out
}

func TestRunner_RegisterKeepsVersionOrder(t *testing.T) {
	r := &Runner{}
	for _, m := range registered("003_c", "001_a", "002_b") {
		r.Register(m)
	}

	var versions []string
	for _, m := range r.Migrations() {
		versions = append(versions, m.Version)
	}
	assert.Equal(t, []string{"001_a", "002_b", "003_c"}, versions)
}

func TestPending(t *testing.T) {
	all := registered("001_a", "002_b", "003_c")
	applied := []Migration{{Version: "001_a"}, {Version: "003_c"}}

	out := pending(all, applied)
	require.Len(t, out, 1)
	assert.Equal(t, "002_b", out[0].Version)

	assert.Len(t, pending(all, nil), 3)
	assert.Empty(t, pending(all, []Migration{{Version: "001_a"}, {Version: "002_b"}, {Version: "003_c"}}))
}

func TestStatusOf(t *testing.T) {
	all := registered("001_a", "002_b")
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("applied and pending", func(t *testing.T) {
		statuses := statusOf(all, []Migration{{Version: "001_a", AppliedAt: at, Checksum: checksum(all[0])}})
		require.Len(t, statuses, 2)

		assert.True(t, statuses[0].Applied)
		assert.Equal(t, at, statuses[0].AppliedAt)
		assert.False(t, statuses[0].Drifted)

		assert.False(t, statuses[1].Applied)
		assert.True(t, statuses[1].AppliedAt.IsZero())
	})

	t.Run("changed description is reported", func(t *testing.T) {
		statuses := statusOf(all, []Migration{{Version: "001_a", Checksum: "stale"}})
		assert.True(t, statuses[0].Drifted)
	})
}

func TestChecksum(t *testing.T) {
	a := RegisteredMigration{Version: "001_a", Description: "one"}
	b := RegisteredMigration{Version: "001_a", Description: "two"}

	assert.Len(t, checksum(a), 64)
	assert.Equal(t, checksum(a), checksum(a))
	assert.NotEqual(t, checksum(a), checksum(b))
}
