package collectors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchdeck/apphub/internal/inventory"
)

func TestParseStartAppsArray(t *testing.T) {
	raw := []byte(`[
		{"Name": "Calculator", "AppID": "Microsoft.WindowsCalculator_8wekyb3d8bbwe!App"},
		{"Name": " Notepad ", "AppID": " Microsoft.WindowsNotepad!App "}
	]`)

	records, err := parseStartApps(raw)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Calculator", records[0].Name)
	assert.Equal(t, "Microsoft.WindowsCalculator_8wekyb3d8bbwe!App", records[0].AppID)
	assert.Equal(t, []inventory.Source{inventory.SourceStartMenu}, records[0].Sources)

	// Surrounding whitespace is stripped.
	assert.Equal(t, "Notepad", records[1].Name)
	assert.Equal(t, "Microsoft.WindowsNotepad!App", records[1].AppID)
}

func TestParseStartAppsSingleObject(t *testing.T) {
	// PowerShell emits a bare object when exactly one app matches.
	records, err := parseStartApps([]byte(`{"Name": "Paint", "AppID": "Microsoft.Paint!App"}`))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Paint", records[0].Name)
}

func TestParseStartAppsSkipsIncompleteEntries(t *testing.T) {
	raw := []byte(`[
		{"Name": "NoID"},
		{"AppID": "NoName!App"},
		{"Name": "  ", "AppID": "Blank!App"},
		{"Name": "Keeper", "AppID": "Keeper!App"}
	]`)

	records, err := parseStartApps(raw)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Keeper", records[0].Name)
}

func TestParseStartAppsEmptyOutput(t *testing.T) {
	records, err := parseStartApps(nil)
	require.NoError(t, err)
	assert.Empty(t, records)

	records, err = parseStartApps([]byte("   \n"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseStartAppsMalformedJSON(t *testing.T) {
	_, err := parseStartApps([]byte(`{"Name": "Broken`))
	assert.Error(t, err)
}
