//go:build !windows

package collectors

import (
	"context"

	"github.com/launchdeck/apphub/internal/inventory"
)

// Registry is inert on platforms without a Windows registry.
type Registry struct{}

// NewRegistry creates the registry collector.
func NewRegistry() *Registry { return &Registry{} }

// Name implements inventory.Collector.
func (r *Registry) Name() string { return "registry" }

// Collect implements inventory.Collector and yields no records.
func (r *Registry) Collect(ctx context.Context) ([]inventory.Record, error) {
	return nil, nil
}

// StartMenu is inert on platforms without a Start Menu.
type StartMenu struct{}

// NewStartMenu creates the Start-Menu collector.
func NewStartMenu() *StartMenu { return &StartMenu{} }

// Name implements inventory.Collector.
func (s *StartMenu) Name() string { return "startmenu" }

// Collect implements inventory.Collector and yields no records.
func (s *StartMenu) Collect(ctx context.Context) ([]inventory.Record, error) {
	return nil, nil
}
