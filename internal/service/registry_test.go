package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchdeck/apphub/internal/types"
)

type echoProvider struct {
	id       string
	lastTool string
}

func (e *echoProvider) Definition() types.Service {
	return types.Service{
		ID:           e.id,
		Name:         "Echo Service",
		Description:  "echoes tool calls",
		Category:     types.CategorySystem,
		Capabilities: []string{"echo"},
		Tools: []types.Tool{
			{ID: e.id + ".echo", Name: "Echo", Returns: "object"},
		},
	}
}

func (e *echoProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	e.lastTool = toolID
	return &types.Result{Success: true, Data: map[string]interface{}{"tool": toolID}}, nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(&echoProvider{id: "echo"}))

	_, ok := registry.Get("echo")
	assert.True(t, ok)
	_, ok = registry.Get("missing")
	assert.False(t, ok)
}

func TestRegistryRejectsEmptyID(t *testing.T) {
	registry := NewRegistry()
	assert.Error(t, registry.Register(&echoProvider{id: ""}))
}

func TestRegistryExecuteDispatch(t *testing.T) {
	registry := NewRegistry()
	provider := &echoProvider{id: "echo"}
	require.NoError(t, registry.Register(provider))

	result, err := registry.Execute(context.Background(), "echo.echo", nil, nil)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "echo.echo", provider.lastTool)
}

func TestRegistryExecuteInvalidToolID(t *testing.T) {
	registry := NewRegistry()

	result, err := registry.Execute(context.Background(), "nodot", nil, nil)
	require.Error(t, err)
	assert.False(t, result.Success)

	result, err = registry.Execute(context.Background(), "missing.tool", nil, nil)
	require.Error(t, err)
	assert.False(t, result.Success)
}

func TestRegistryListAndStats(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(&echoProvider{id: "alpha"}))
	require.NoError(t, registry.Register(&echoProvider{id: "beta"}))

	services := registry.List(nil)
	require.Len(t, services, 2)
	assert.Equal(t, "alpha", services[0].ID)

	stats := registry.Stats()
	assert.Equal(t, 2, stats["total_services"])
	assert.Equal(t, 2, stats["total_tools"])
}

func TestRegistryDiscover(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(&echoProvider{id: "echo"}))

	found := registry.Discover("please echo this", 5)
	require.NotEmpty(t, found)
	assert.Equal(t, "echo", found[0].ID)

	assert.Empty(t, registry.Discover("unrelated intent", 5))
}
