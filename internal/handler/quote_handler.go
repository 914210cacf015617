package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/readmeforge/internal/service"
)

const quoteFailureNotice = "Could not generate a new quote. Please try again."

type quoteRequest struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Domain      string `json:"domain"`
	CompanyName string `json:"companyName"`
	CollegeName string `json:"collegeName"`
	TechStack   string `json:"techStack"`
}

// GenerateQuote 调用 AI 生成签名；任何失败都只返回提示，不影响表单其余部分。
func (a *API) GenerateQuote(c *gin.Context) {
	var req quoteRequest
	if !bindJSON(c, &req, "invalid quote payload") {
		return
	}

	quote, ok := service.SafeQuote(c.Request.Context(), a.quotes, service.QuoteInput{
		Name:        req.Name,
		Role:        req.Role,
		Domain:      req.Domain,
		CompanyName: req.CompanyName,
		CollegeName: req.CollegeName,
		TechStack:   req.TechStack,
	})
	if !ok {
		a.requestLogger(c).Warn("quote generation failed")
		c.JSON(http.StatusOK, gin.H{"quote": "", "notice": quoteFailureNotice})
		return
	}

	c.JSON(http.StatusOK, gin.H{"quote": quote})
}
