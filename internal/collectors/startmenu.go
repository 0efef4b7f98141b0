package collectors

import (
	"strings"

	"github.com/bytedance/sonic"

	"github.com/launchdeck/apphub/internal/inventory"
)

// startApp mirrors one entry of `Get-StartApps | ConvertTo-Json` output.
type startApp struct {
	Name  string `json:"Name"`
	AppID string `json:"AppID"`
}

// parseStartApps decodes PowerShell Get-StartApps JSON output into partial
// records. PowerShell emits a bare object when exactly one app matches and
// an array otherwise; both shapes are accepted. Entries missing a name or
// AppID are skipped.
func parseStartApps(raw []byte) ([]inventory.Record, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return nil, nil
	}

	var apps []startApp
	if strings.HasPrefix(trimmed, "{") {
		var single startApp
		if err := sonic.UnmarshalString(trimmed, &single); err != nil {
			return nil, err
		}
		apps = []startApp{single}
	} else {
		if err := sonic.UnmarshalString(trimmed, &apps); err != nil {
			return nil, err
		}
	}

	records := make([]inventory.Record, 0, len(apps))
	for _, app := range apps {
		name := strings.TrimSpace(app.Name)
		appID := strings.TrimSpace(app.AppID)
		if name == "" || appID == "" {
			continue
		}
		records = append(records, inventory.Record{
			Name:    name,
			AppID:   appID,
			Sources: []inventory.Source{inventory.SourceStartMenu},
		})
	}
	return records, nil
}
