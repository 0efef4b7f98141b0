package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeUniqueness(t *testing.T) {
	merged := Merge([]Record{
		{Name: "Foo", Sources: []Source{SourceStartMenu}},
		{Name: "  foo ", Sources: []Source{SourceRegistry}},
	})

	require.Len(t, merged, 1)
	assert.Equal(t, []Source{SourceRegistry, SourceStartMenu}, merged[0].Sources)
}

func TestMergeTieBreak(t *testing.T) {
	// Start-menu record processed first: its non-empty values win, the
	// registry record only fills gaps.
	merged := Merge([]Record{
		{Name: "Foo", AppID: "AppX", Sources: []Source{SourceStartMenu}},
		{Name: "Foo", ExePath: `C:\foo.exe`, Sources: []Source{SourceRegistry}},
	})

	require.Len(t, merged, 1)
	rec := merged[0]
	assert.Equal(t, "Foo", rec.Name)
	assert.Equal(t, "AppX", rec.AppID)
	assert.Equal(t, `C:\foo.exe`, rec.ExePath)
	assert.Equal(t, []Source{SourceRegistry, SourceStartMenu}, rec.Sources)
}

func TestMergeFirstSeenWinsNonEmpty(t *testing.T) {
	merged := Merge([]Record{
		{Name: "Foo", Version: "2.0", Sources: []Source{SourceStartMenu}},
		{Name: "foo", Version: "1.0", Publisher: "Acme", Sources: []Source{SourceRegistry}},
	})

	require.Len(t, merged, 1)
	assert.Equal(t, "2.0", merged[0].Version)
	assert.Equal(t, "Acme", merged[0].Publisher)
}

func TestMergeKeepsFirstSeenCasing(t *testing.T) {
	merged := Merge([]Record{
		{Name: "FireFox", Sources: []Source{SourceStartMenu}},
		{Name: "firefox", Sources: []Source{SourceRegistry}},
	})

	require.Len(t, merged, 1)
	assert.Equal(t, "FireFox", merged[0].Name)
}

func TestMergeDropsInvalidRecords(t *testing.T) {
	merged := Merge([]Record{
		{Name: "   ", Sources: []Source{SourceRegistry}},
		{Name: "Foo", Sources: []Source{SourceRegistry}},
	})

	require.Len(t, merged, 1)
	assert.Equal(t, "Foo", merged[0].Name)
}

func TestMergeDistinctKeysStaySeparate(t *testing.T) {
	merged := Merge([]Record{
		{Name: "Foo", Sources: []Source{SourceRegistry}},
		{Name: "Bar", Sources: []Source{SourceRegistry}},
	})

	assert.Len(t, merged, 2)
}

func TestMergeDeduplicatesSources(t *testing.T) {
	merged := Merge([]Record{
		{Name: "Foo", Sources: []Source{SourceRegistry, SourceRegistry}},
		{Name: "foo", Sources: []Source{SourceRegistry}},
	})

	require.Len(t, merged, 1)
	assert.Equal(t, []Source{SourceRegistry}, merged[0].Sources)
}
