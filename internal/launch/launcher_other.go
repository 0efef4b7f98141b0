//go:build !windows

package launch

import (
	"context"
	"errors"
)

var errUnsupported = errors.New("app launching is not supported on this platform")

type unsupportedAppIDLauncher struct{}

// NewAppIDLauncher creates the platform AppID launcher. On non-Windows
// hosts every launch fails; the provider layer rejects requests before
// reaching it.
func NewAppIDLauncher() AppIDLauncher {
	return unsupportedAppIDLauncher{}
}

func (unsupportedAppIDLauncher) Launch(ctx context.Context, appID string) error {
	return errUnsupported
}

type unsupportedExeLauncher struct{}

// NewExeLauncher creates the platform executable launcher.
func NewExeLauncher() ExeLauncher {
	return unsupportedExeLauncher{}
}

func (unsupportedExeLauncher) Launch(ctx context.Context, path, workingDir string) error {
	return errUnsupported
}
