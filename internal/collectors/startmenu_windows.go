//go:build windows

package collectors

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/launchdeck/apphub/internal/inventory"
)

// StartMenu collects Start-Menu applications via PowerShell Get-StartApps.
type StartMenu struct{}

// NewStartMenu creates the Start-Menu collector.
func NewStartMenu() *StartMenu {
	return &StartMenu{}
}

// Name implements inventory.Collector.
func (s *StartMenu) Name() string { return "startmenu" }

// Collect implements inventory.Collector. The PowerShell invocation is
// bounded by the context deadline; expiry surfaces as an error.
func (s *StartMenu) Collect(ctx context.Context) ([]inventory.Record, error) {
	cmd := exec.CommandContext(ctx, "powershell",
		"-NoProfile",
		"-Command",
		"Get-StartApps | Select-Object Name,AppID | ConvertTo-Json -Depth 3",
	)
	out, err := cmd.Output()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("get-startapps timed out: %w", ctxErr)
		}
		return nil, fmt.Errorf("get-startapps failed: %w", err)
	}

	records, err := parseStartApps(out)
	if err != nil {
		return nil, fmt.Errorf("get-startapps output unparsable: %w", err)
	}
	return records, nil
}
