package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/readmeforge/internal/icons"
	"github.com/readmeforge/internal/profile"
)

// RequestIDKey 是请求 ID 在 gin.Context 与响应头中的键。
const RequestIDKey = "X-Request-ID"

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// respondValidation 将 FieldErrors 映射为 400，其余错误视为 500。
func respondValidation(c *gin.Context, err error) {
	var fields profile.FieldErrors
	if errors.As(err, &fields) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fields})
		return
	}
	respondError(c, http.StatusInternalServerError, err.Error())
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

// serviceQuery 读取 service 查询参数，未知值回退到默认服务。
func serviceQuery(c *gin.Context) icons.Service {
	service, _ := icons.ParseService(c.Query("service"))
	return service
}
