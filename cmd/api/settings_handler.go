package api

import (
	"context"
	"net/http"
	"time"

	"github.com/aladdin-code/addvocate-meeting-summeriser/pkg/ai"

	"github.com/gin-gonic/gin"
)

// SettingsHandler exposes the runtime-configurable oracle settings
type SettingsHandler struct {
	runtime  *ai.RuntimeSettings
	provider string
	client   *http.Client
}

func NewSettingsHandler(runtime *ai.RuntimeSettings, provider string) *SettingsHandler {
	return &SettingsHandler{
		runtime:  runtime,
		provider: provider,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

// UpdateAISettingsRequest represents the request body for updating oracle settings
type UpdateAISettingsRequest struct {
	Model         string `json:"model,omitempty"`
	OllamaBaseURL string `json:"ollama_base_url,omitempty" binding:"omitempty,url"`
}

// GetAISettings returns current oracle configuration
// GET /api/settings/ai
func (h *SettingsHandler) GetAISettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"provider":        h.provider,
		"model":           h.runtime.Model(),
		"ollama_base_url": h.runtime.OllamaBaseURL(),
	})
}

// UpdateAISettings updates oracle configuration at runtime
// PUT /api/settings/ai
func (h *SettingsHandler) UpdateAISettings(c *gin.Context) {
	var req UpdateAISettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Model == "" && req.OllamaBaseURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "model or ollama_base_url is required"})
		return
	}

	h.runtime.Update(req.Model, req.OllamaBaseURL)

	c.JSON(http.StatusOK, gin.H{
		"message":         "AI settings updated successfully",
		"provider":        h.provider,
		"model":           h.runtime.Model(),
		"ollama_base_url": h.runtime.OllamaBaseURL(),
	})
}

// TestOllamaConnection tests if the Ollama server is reachable
// POST /api/settings/ai/test
func (h *SettingsHandler) TestOllamaConnection(c *gin.Context) {
	var req struct {
		OllamaBaseURL string `json:"ollama_base_url"`
	}
	// An empty body tests the current setting.
	_ = c.ShouldBindJSON(&req)
	if req.OllamaBaseURL == "" {
		req.OllamaBaseURL = h.runtime.OllamaBaseURL()
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.OllamaBaseURL+"/api/tags", nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"connected": false, "error": err.Error()})
		return
	}

	resp, err := h.client.Do(httpReq)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"connected": false,
			"error":     err.Error(),
		})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"connected":   false,
			"status_code": resp.StatusCode,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"connected":       true,
		"ollama_base_url": req.OllamaBaseURL,
	})
}
