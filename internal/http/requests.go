package http

// ExecuteRequest represents a service execution request
type ExecuteRequest struct {
	ToolID string                 `json:"tool_id" binding:"required"`
	Params map[string]interface{} `json:"params"`
}

// DiscoverRequest represents a service discovery request
type DiscoverRequest struct {
	Intent string `json:"intent" binding:"required"`
	Limit  int    `json:"limit"`
}

// LaunchRequest represents a REST launch request
type LaunchRequest struct {
	Name    string `json:"name"`
	AppID   string `json:"app_id"`
	Exact   bool   `json:"exact"`
	Refresh bool   `json:"refresh"`
}
