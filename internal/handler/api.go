package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/readmeforge/internal/logger"
	"github.com/readmeforge/internal/service"
)

const siteName = "README Forge"

// API bundles shared dependencies for HTTP handlers.
type API struct {
	quotes service.QuoteGenerator
	log    *logger.Logger
}

// NewAPI constructs a handler set; a nil quote generator disables quote generation.
func NewAPI(quotes service.QuoteGenerator, log *logger.Logger) *API {
	if log == nil {
		log = logger.Nop()
	}
	return &API{
		quotes: quotes,
		log:    log,
	}
}

func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}

	if _, exists := payload["site"]; !exists {
		payload["site"] = gin.H{"name": siteName}
	}

	c.HTML(status, template, payload)
}

// requestLogger 返回带有请求 ID 的日志器。
func (a *API) requestLogger(c *gin.Context) *logger.Logger {
	if id := c.GetString(RequestIDKey); id != "" {
		return a.log.WithFields(map[string]any{"request_id": id})
	}
	return a.log
}
