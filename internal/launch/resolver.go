package launch

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/launchdeck/apphub/internal/inventory"
)

// Launch method tags reported to callers.
const (
	MethodAppIDDirect = "appid-direct"
	MethodAppID       = "appid"
	MethodExe         = "exe"
)

// MaxCandidates caps the summaries carried by an AmbiguousError.
const MaxCandidates = 10

// AppIDLauncher starts an application by its opaque platform handle.
type AppIDLauncher interface {
	Launch(ctx context.Context, appID string) error
}

// ExeLauncher starts an executable with the given working directory.
type ExeLauncher interface {
	Launch(ctx context.Context, path, workingDir string) error
}

// Inventory is the resolver's view of the snapshot cache.
type Inventory interface {
	Snapshot(ctx context.Context, force bool) (*inventory.Snapshot, error)
}

// Request describes one launch attempt.
type Request struct {
	Name    string `json:"name,omitempty"`
	AppID   string `json:"app_id,omitempty"`
	Exact   bool   `json:"exact,omitempty"`
	Refresh bool   `json:"refresh,omitempty"`
}

// Candidate is the reduced record shape carried by an AmbiguousError.
type Candidate struct {
	Name    string `json:"name"`
	AppID   string `json:"app_id,omitempty"`
	ExePath string `json:"exe_path,omitempty"`
}

// Launched describes a successful launch action.
type Launched struct {
	Method  string `json:"method"`
	Name    string `json:"name,omitempty"`
	AppID   string `json:"app_id,omitempty"`
	ExePath string `json:"exe_path,omitempty"`
}

// Resolver turns launch requests into launch actions.
type Resolver struct {
	inv   Inventory
	appID AppIDLauncher
	exe   ExeLauncher
	log   *zap.Logger
}

// NewResolver creates a resolver over the given inventory and launchers.
func NewResolver(inv Inventory, appID AppIDLauncher, exe ExeLauncher, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{inv: inv, appID: appID, exe: exe, log: log}
}

// Resolve runs the launch state machine. It returns a Launched description
// on success and exactly one of the package's terminal errors otherwise.
// All outcomes are synchronous; a successful return means only that
// process creation succeeded.
func (r *Resolver) Resolve(ctx context.Context, req Request) (*Launched, error) {
	appID := strings.TrimSpace(req.AppID)
	name := strings.TrimSpace(req.Name)

	if appID == "" && name == "" {
		return nil, ErrMissingTarget
	}

	// Explicit AppID bypasses the inventory entirely.
	if appID != "" {
		if err := r.appID.Launch(ctx, appID); err != nil {
			return nil, &MechanismError{Method: MethodAppIDDirect, Err: err}
		}
		r.log.Info("launched app", zap.String("method", MethodAppIDDirect), zap.String("app_id", appID))
		return &Launched{Method: MethodAppIDDirect, AppID: appID}, nil
	}

	snap, err := r.inv.Snapshot(ctx, req.Refresh)
	if err != nil {
		return nil, err
	}

	matches := snap.Match(name, req.Exact)
	switch {
	case len(matches) == 0:
		return nil, &NoMatchError{Name: name}
	case len(matches) > 1:
		return nil, &AmbiguousError{Name: name, Candidates: summarize(matches)}
	}

	return r.launchRecord(ctx, matches[0])
}

// launchRecord applies the method priority chain to a single resolved
// record: AppID handle first, existing executable path second.
func (r *Resolver) launchRecord(ctx context.Context, rec inventory.Record) (*Launched, error) {
	if rec.AppID != "" {
		if err := r.appID.Launch(ctx, rec.AppID); err != nil {
			return nil, &MechanismError{Method: MethodAppID, Err: err}
		}
		r.log.Info("launched app",
			zap.String("method", MethodAppID),
			zap.String("name", rec.Name),
			zap.String("app_id", rec.AppID))
		return &Launched{Method: MethodAppID, Name: rec.Name, AppID: rec.AppID}, nil
	}

	// The path's validity is re-checked here, at launch time; a cached
	// record is no guarantee the executable still exists.
	if rec.ExePath != "" {
		if _, err := os.Stat(rec.ExePath); err == nil {
			workingDir := filepath.Dir(rec.ExePath)
			if err := r.exe.Launch(ctx, rec.ExePath, workingDir); err != nil {
				return nil, &MechanismError{Method: MethodExe, Err: err}
			}
			r.log.Info("launched app",
				zap.String("method", MethodExe),
				zap.String("name", rec.Name),
				zap.String("exe_path", rec.ExePath))
			return &Launched{Method: MethodExe, Name: rec.Name, ExePath: rec.ExePath}, nil
		}
	}

	return nil, ErrNoLaunchMethod
}

func summarize(matches []inventory.Record) []Candidate {
	n := len(matches)
	if n > MaxCandidates {
		n = MaxCandidates
	}
	out := make([]Candidate, 0, n)
	for _, rec := range matches[:n] {
		out = append(out, Candidate{Name: rec.Name, AppID: rec.AppID, ExePath: rec.ExePath})
	}
	return out
}
