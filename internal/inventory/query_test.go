package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() *Snapshot {
	return &Snapshot{
		BuiltAt: time.Unix(1000, 0),
		Apps: []Record{
			{Name: "Calculator", AppID: "Microsoft.Calculator", Sources: []Source{SourceStartMenu}},
			{Name: "Git", ExePath: `C:\Program Files\Git\git.exe`, Sources: []Source{SourceRegistry}},
			{Name: "Google Chrome", Sources: []Source{SourceRegistry, SourceStartMenu}},
		},
	}
}

func TestFilterSourceORSemantics(t *testing.T) {
	snap := testSnapshot()

	registryOnly := Filter(snap, Options{IncludeRegistry: true, Limit: 10})
	names := recordNames(registryOnly)
	assert.Equal(t, []string{"Git", "Google Chrome"}, names)

	startMenuOnly := Filter(snap, Options{IncludeStartMenu: true, Limit: 10})
	assert.Equal(t, []string{"Calculator", "Google Chrome"}, recordNames(startMenuOnly))

	both := Filter(snap, DefaultOptions())
	assert.Len(t, both, 3)

	neither := Filter(snap, Options{Limit: 10})
	assert.Empty(t, neither)
}

func TestFilterText(t *testing.T) {
	snap := testSnapshot()

	opts := DefaultOptions()
	opts.Text = "  CHROME "
	assert.Equal(t, []string{"Google Chrome"}, recordNames(Filter(snap, opts)))

	opts.Text = "nosuchapp"
	assert.Empty(t, Filter(snap, opts))

	opts.Text = ""
	assert.Len(t, Filter(snap, opts), 3)
}

func TestFilterLimitClamp(t *testing.T) {
	snap := testSnapshot()

	opts := DefaultOptions()
	opts.Limit = 2
	assert.Len(t, Filter(snap, opts), 2)

	// Zero and negative limits clamp to one result, never zero.
	opts.Limit = 0
	assert.Len(t, Filter(snap, opts), 1)
	opts.Limit = -5
	assert.Len(t, Filter(snap, opts), 1)
}

func TestFilterExtremeLimit(t *testing.T) {
	snap := testSnapshot()

	// Limits far beyond the snapshot size must not panic or allocate
	// proportionally; they simply pass everything through.
	opts := DefaultOptions()
	opts.Limit = 1 << 60
	assert.Len(t, Filter(snap, opts), len(snap.Apps))

	opts.Limit = int(^uint(0) >> 1)
	assert.Len(t, Filter(snap, opts), len(snap.Apps))
}

func TestFilterDoesNotMutateSnapshot(t *testing.T) {
	snap := testSnapshot()
	before := len(snap.Apps)

	out := Filter(snap, DefaultOptions())
	require.Len(t, snap.Apps, before)
	out[0].Name = "mutated"
	assert.Equal(t, "Calculator", snap.Apps[0].Name)
}

func TestSnapshotMatch(t *testing.T) {
	snap := testSnapshot()

	exact := snap.Match(" google chrome ", true)
	require.Len(t, exact, 1)
	assert.Equal(t, "Google Chrome", exact[0].Name)

	assert.Empty(t, snap.Match("chrome", true))

	substr := snap.Match("c", false)
	assert.Len(t, substr, 2) // Calculator, Google Chrome

	assert.Empty(t, snap.Match("nosuchapp", false))
}

func recordNames(records []Record) []string {
	names := make([]string, 0, len(records))
	for _, rec := range records {
		names = append(names, rec.Name)
	}
	return names
}
