package router

import (
	"fmt"
	"html/template"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/readmeforge/internal/handler"
	"github.com/readmeforge/internal/logger"
	"github.com/readmeforge/internal/view"
	"github.com/readmeforge/web"
)

const (
	sessionName   = "readmeforge_session"
	sessionMaxAge = 7 * 24 * 60 * 60
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, sessionSecret string, log *logger.Logger) (*gin.Engine, error) {
	if log == nil {
		log = logger.Nop()
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestID(), requestLogger(log))

	// 配置会话中间件
	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{Path: "/", MaxAge: sessionMaxAge, HttpOnly: true})
	r.Use(sessions.Sessions(sessionName, store))

	templates, err := web.Templates(template.FuncMap{
		"socialValue": view.SocialValue,
	})
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.SetHTMLTemplate(templates)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	r.GET("/", api.ShowForm)
	r.POST("/preview", api.PreviewReadme)

	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/readme", api.GenerateReadme)
		apiGroup.GET("/readme/download", api.DownloadReadme)
		apiGroup.POST("/quote", api.GenerateQuote)
		apiGroup.POST("/techstack/toggle", api.ToggleTech)
		apiGroup.GET("/check", api.CheckField)

		apiGroup.GET("/themes", api.ListThemes)
		apiGroup.GET("/services", api.ListServices)
		apiGroup.GET("/technologies", api.ListTechnologies)
		apiGroup.GET("/icons", api.ListIcons)
	}

	return r, nil
}

// requestID 为每个请求分配 ID，已有的 X-Request-ID 会被沿用。
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(handler.RequestIDKey)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(handler.RequestIDKey, id)
		c.Header(handler.RequestIDKey, id)
		c.Next()
	}
}

func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(map[string]any{
			"request_id": c.GetString(handler.RequestIDKey),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		})
		var lastErr error
		if last := c.Errors.Last(); last != nil {
			lastErr = last
		}

		switch {
		case c.Writer.Status() >= 500:
			entry.Error(lastErr, "request failed")
		case c.Writer.Status() >= 400:
			entry.Warn("request rejected")
		default:
			entry.Info("request handled")
		}
	}
}
