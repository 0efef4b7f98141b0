//go:build windows

package collectors

import (
	"context"
	"strings"

	"golang.org/x/sys/windows/registry"

	"github.com/launchdeck/apphub/internal/inventory"
)

// uninstallKey names one registry subtree holding uninstall entries.
type uninstallKey struct {
	root registry.Key
	path string
}

// uninstallKeys covers 64-bit and 32-bit machine-wide installs plus
// per-user installs.
var uninstallKeys = []uninstallKey{
	{registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`},
	{registry.LOCAL_MACHINE, `SOFTWARE\WOW6432Node\Microsoft\Windows\CurrentVersion\Uninstall`},
	{registry.CURRENT_USER, `SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`},
}

// Registry collects installed applications from the Windows uninstall keys.
type Registry struct{}

// NewRegistry creates the registry collector.
func NewRegistry() *Registry {
	return &Registry{}
}

// Name implements inventory.Collector.
func (r *Registry) Name() string { return "registry" }

// Collect implements inventory.Collector. Unreadable subtrees and entries
// are skipped rather than failing the whole enumeration; only context
// expiry aborts.
func (r *Registry) Collect(ctx context.Context) ([]inventory.Record, error) {
	var records []inventory.Record
	for _, uk := range uninstallKeys {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		records = append(records, enumerateKey(ctx, uk)...)
	}
	return records, nil
}

func enumerateKey(ctx context.Context, uk uninstallKey) []inventory.Record {
	key, err := registry.OpenKey(uk.root, uk.path, registry.READ)
	if err != nil {
		return nil
	}
	defer key.Close()

	names, err := key.ReadSubKeyNames(-1)
	if err != nil {
		return nil
	}

	var records []inventory.Record
	for _, name := range names {
		if ctx.Err() != nil {
			return records
		}
		sub, err := registry.OpenKey(key, name, registry.READ)
		if err != nil {
			continue
		}
		rec, ok := readEntry(sub)
		sub.Close()
		if ok {
			records = append(records, rec)
		}
	}
	return records
}

// readEntry turns one uninstall subkey into a partial record. Entries
// without a DisplayName are not applications (patches, bookkeeping keys)
// and are dropped.
func readEntry(key registry.Key) (inventory.Record, bool) {
	name := strings.TrimSpace(regString(key, "DisplayName"))
	if name == "" {
		return inventory.Record{}, false
	}
	return inventory.Record{
		Name:            name,
		Version:         regString(key, "DisplayVersion"),
		Publisher:       regString(key, "Publisher"),
		InstallLocation: regString(key, "InstallLocation"),
		ExePath:         parseDisplayIcon(regString(key, "DisplayIcon"), fileExists),
		Sources:         []inventory.Source{inventory.SourceRegistry},
	}, true
}

func regString(key registry.Key, name string) string {
	val, _, err := key.GetStringValue(name)
	if err != nil {
		return ""
	}
	return val
}
