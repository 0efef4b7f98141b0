package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/launchdeck/apphub/internal/api/middleware"
	"github.com/launchdeck/apphub/internal/collectors"
	"github.com/launchdeck/apphub/internal/inventory"
	"github.com/launchdeck/apphub/internal/monitoring"
	"github.com/launchdeck/apphub/internal/providers/apps"
	"github.com/launchdeck/apphub/internal/service"
	"github.com/launchdeck/apphub/internal/types"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *service.Registry
	cache    *inventory.Cache
	metrics  *monitoring.Metrics
	log      *zap.Logger
}

// NewHandlers creates a new handler set. metrics may be nil.
func NewHandlers(registry *service.Registry, cache *inventory.Cache, metrics *monitoring.Metrics, log *zap.Logger) *Handlers {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handlers{
		registry: registry,
		cache:    cache,
		metrics:  metrics,
		log:      log,
	}
}

// Root handles the service banner
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "apphub",
		"version": "0.1.0",
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	snapshot := gin.H{"built": false}
	if snap := h.cache.Current(); snap != nil {
		snapshot = gin.H{
			"built":    true,
			"built_at": snap.BuiltAt,
			"apps":     len(snap.Apps),
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":             "healthy",
		"platform_supported": collectors.Supported(),
		"service_registry":   h.registry.Stats(),
		"inventory":          snapshot,
	})
}

// ListServices lists all registered services
func (h *Handlers) ListServices(c *gin.Context) {
	var category *types.Category
	if categoryStr := c.Query("category"); categoryStr != "" {
		cat := types.Category(categoryStr)
		category = &cat
	}

	c.JSON(http.StatusOK, gin.H{
		"services": h.registry.List(category),
		"stats":    h.registry.Stats(),
	})
}

// DiscoverServices finds services relevant to an intent
func (h *Handlers) DiscoverServices(c *gin.Context) {
	var req DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Limit <= 0 {
		req.Limit = 5
	}

	c.JSON(http.StatusOK, gin.H{
		"query":    req.Intent,
		"services": h.registry.Discover(req.Intent, req.Limit),
	})
}

// ExecuteService runs a service tool. Tool failures are structured results,
// not transport errors: the envelope always reaches the caller with 200.
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.execute(c, req.ToolID, req.Params)
	c.JSON(http.StatusOK, result)
}

// ListApps is the REST convenience route over the apps.list tool.
func (h *Handlers) ListApps(c *gin.Context) {
	params := map[string]interface{}{}
	if query := c.Query("query"); query != "" {
		params["query"] = query
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		params["limit"] = float64(limit)
	}
	for _, flag := range []string{"include_registry", "include_startmenu", "refresh"} {
		if valStr := c.Query(flag); valStr != "" {
			val, err := strconv.ParseBool(valStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": flag + " must be a boolean"})
				return
			}
			params[flag] = val
		}
	}

	result := h.execute(c, "apps.list", params)
	if !result.Success {
		// An unsupported platform is permanent; everything else is a
		// transient inventory failure worth retrying.
		status := http.StatusServiceUnavailable
		if reason, _ := result.Data["reason"].(string); reason == apps.ReasonUnsupportedPlatform {
			status = http.StatusBadRequest
		}
		c.JSON(status, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// LaunchApp is the REST convenience route over the apps.launch tool.
func (h *Handlers) LaunchApp(c *gin.Context) {
	var req LaunchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := map[string]interface{}{
		"name":    req.Name,
		"app_id":  req.AppID,
		"exact":   req.Exact,
		"refresh": req.Refresh,
	}

	result := h.execute(c, "apps.launch", params)
	if !result.Success {
		c.JSON(http.StatusBadRequest, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handlers) execute(c *gin.Context, toolID string, params map[string]interface{}) *types.Result {
	var appCtx *types.Context
	if id := middleware.GetRequestID(c); id != "" {
		appCtx = &types.Context{RequestID: &id}
	}

	if h.metrics != nil {
		h.metrics.ServiceCalls.WithLabelValues(toolID).Inc()
	}

	result, err := h.registry.Execute(c.Request.Context(), toolID, params, appCtx)
	if err != nil {
		if h.metrics != nil {
			h.metrics.ServiceErrors.WithLabelValues(toolID).Inc()
		}
		h.log.Debug("tool returned failure",
			zap.String("tool", toolID),
			zap.Error(err))
	}
	return result
}
