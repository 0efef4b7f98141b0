//go:build windows

package launch

import (
	"context"
	"os/exec"
)

// ShellAppIDLauncher starts Start-Menu applications through the shell's
// AppsFolder namespace.
type ShellAppIDLauncher struct{}

// NewAppIDLauncher creates the platform AppID launcher.
func NewAppIDLauncher() AppIDLauncher {
	return ShellAppIDLauncher{}
}

// Launch implements AppIDLauncher. The spawned process is released
// immediately; its exit is never observed.
func (ShellAppIDLauncher) Launch(ctx context.Context, appID string) error {
	cmd := exec.Command("explorer.exe", `shell:AppsFolder\`+appID)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

// ProcessExeLauncher starts an executable directly.
type ProcessExeLauncher struct{}

// NewExeLauncher creates the platform executable launcher.
func NewExeLauncher() ExeLauncher {
	return ProcessExeLauncher{}
}

// Launch implements ExeLauncher with the executable's parent directory as
// working directory, mirroring a shell double-click.
func (ProcessExeLauncher) Launch(ctx context.Context, path, workingDir string) error {
	cmd := exec.Command(path)
	cmd.Dir = workingDir
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
