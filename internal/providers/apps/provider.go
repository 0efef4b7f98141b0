package apps

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/launchdeck/apphub/internal/collectors"
	"github.com/launchdeck/apphub/internal/inventory"
	"github.com/launchdeck/apphub/internal/launch"
	"github.com/launchdeck/apphub/internal/monitoring"
	"github.com/launchdeck/apphub/internal/types"
)

// ReasonUnsupportedPlatform tags failure results for hosts without the
// required OS facilities. The condition is permanent; retrying is useless.
const ReasonUnsupportedPlatform = "unsupported_platform"

// Provider exposes the installed-app inventory and launch resolver as
// service tools.
type Provider struct {
	cache     *inventory.Cache
	resolver  *launch.Resolver
	metrics   *monitoring.Metrics
	log       *zap.Logger
	supported bool
}

// NewProvider creates the apps provider. metrics may be nil.
func NewProvider(cache *inventory.Cache, resolver *launch.Resolver, metrics *monitoring.Metrics, log *zap.Logger) *Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &Provider{
		cache:     cache,
		resolver:  resolver,
		metrics:   metrics,
		log:       log,
		supported: collectors.Supported(),
	}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "apps",
		Name:        "Installed Apps Service",
		Description: "Reconciled inventory of installed applications with launch support",
		Category:    types.CategoryApps,
		Capabilities: []string{
			"inventory",
			"search",
			"launch",
			"cache_refresh",
		},
		Tools: p.getTools(),
	}
}

func (p *Provider) getTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "apps.list",
			Name:        "List Installed Apps",
			Description: "List installed apps reconciled from the registry and Start Menu",
			Parameters: []types.Parameter{
				{Name: "query", Type: "string", Description: "Search filter (name contains)", Required: false},
				{Name: "limit", Type: "number", Description: "Max number of results (default 200)", Required: false},
				{Name: "include_registry", Type: "boolean", Description: "Include registry-installed apps (default true)", Required: false},
				{Name: "include_startmenu", Type: "boolean", Description: "Include Start Menu apps (default true)", Required: false},
				{Name: "refresh", Type: "boolean", Description: "Force refresh of the cached app list", Required: false},
			},
			Returns: "object",
		},
		{
			ID:          "apps.launch",
			Name:        "Launch App",
			Description: "Launch an installed app by name or AppID",
			Parameters: []types.Parameter{
				{Name: "name", Type: "string", Description: "App name to launch", Required: false},
				{Name: "app_id", Type: "string", Description: "Start Menu AppID (preferred when known)", Required: false},
				{Name: "exact", Type: "boolean", Description: "Only match exact name (default false)", Required: false},
				{Name: "refresh", Type: "boolean", Description: "Force refresh of the cached app list", Required: false},
			},
			Returns: "object",
		},
	}
}

// Execute runs an apps operation
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	if !p.supported {
		// The reason tag lets transports treat this permanent condition
		// differently from a transient failure.
		return failureData("installed-app tools are only supported on Windows", map[string]interface{}{
			"reason": ReasonUnsupportedPlatform,
		})
	}

	switch toolID {
	case "apps.list":
		return p.list(ctx, params)
	case "apps.launch":
		return p.launch(ctx, params)
	default:
		return failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (p *Provider) list(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	opts := inventory.DefaultOptions()
	opts.Text = stringParam(params, "query")
	if limit, ok := params["limit"].(float64); ok && limit != 0 {
		opts.Limit = int(limit)
	}
	opts.IncludeRegistry = boolParam(params, "include_registry", true)
	opts.IncludeStartMenu = boolParam(params, "include_startmenu", true)

	snap, err := p.cache.Snapshot(ctx, boolParam(params, "refresh", false))
	if err != nil {
		return failure(fmt.Sprintf("inventory unavailable: %v", err))
	}

	apps := inventory.Filter(snap, opts)
	return success(map[string]interface{}{
		"count":        len(apps),
		"generated_at": time.Now().UTC().Format(time.RFC3339),
		"apps":         apps,
	})
}

func (p *Provider) launch(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	req := launch.Request{
		Name:    stringParam(params, "name"),
		AppID:   stringParam(params, "app_id"),
		Exact:   boolParam(params, "exact", false),
		Refresh: boolParam(params, "refresh", false),
	}

	launched, err := p.resolver.Resolve(ctx, req)
	if err != nil {
		return p.launchFailure(err)
	}

	if p.metrics != nil {
		p.metrics.RecordLaunch(launched.Method)
	}
	return success(map[string]interface{}{"launched": launched})
}

// launchFailure maps the resolver's terminal errors onto structured
// results. An ambiguous match additionally carries candidate summaries.
func (p *Provider) launchFailure(err error) (*types.Result, error) {
	var (
		ambiguous *launch.AmbiguousError
		noMatch   *launch.NoMatchError
		mechanism *launch.MechanismError
		reason    string
	)

	switch {
	case errors.Is(err, launch.ErrMissingTarget):
		reason = "missing_target"
	case errors.As(err, &noMatch):
		reason = "no_match"
	case errors.As(err, &ambiguous):
		reason = "ambiguous"
	case errors.Is(err, launch.ErrNoLaunchMethod):
		reason = "no_launch_method"
	case errors.As(err, &mechanism):
		reason = "mechanism"
	default:
		reason = "internal"
	}

	if p.metrics != nil {
		p.metrics.RecordLaunchFailure(reason)
	}
	p.log.Warn("launch failed", zap.String("reason", reason), zap.Error(err))

	if ambiguous != nil {
		return failureData(err.Error(), map[string]interface{}{
			"matches": ambiguous.Candidates,
		})
	}
	return failure(err.Error())
}

func stringParam(params map[string]interface{}, name string) string {
	val, _ := params[name].(string)
	return val
}

func boolParam(params map[string]interface{}, name string, fallback bool) bool {
	val, ok := params[name].(bool)
	if !ok {
		return fallback
	}
	return val
}

func success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{
		Success: true,
		Data:    data,
	}, nil
}

func failure(message string) (*types.Result, error) {
	return failureData(message, nil)
}

func failureData(message string, data map[string]interface{}) (*types.Result, error) {
	return &types.Result{
		Success: false,
		Data:    data,
		Error:   &message,
	}, fmt.Errorf("%s", message)
}
