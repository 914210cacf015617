package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/readmeforge/internal/profile"
)

type toggleTechRequest struct {
	TechStack string `json:"techStack"`
	Name      string `json:"name"`
}

type fieldCheck struct {
	optional bool
	valid    func(string) bool
	message  string
}

// fieldChecks 按表单输入名索引，供失焦时的即时校验使用。
var fieldChecks = map[string]fieldCheck{
	"githubUsername": {valid: profile.IsValidGitHubUsername, message: "GitHub username can only contain letters, numbers, and hyphens"},
	"companyUrl":     {optional: true, valid: profile.IsValidURL, message: "Please enter a valid URL"},
	"website":        {optional: true, valid: profile.IsValidURL, message: "Please enter a valid URL"},
	"email":          {optional: true, valid: profile.IsValidEmail, message: "Please enter a valid email address"},
}

// ToggleTech 切换技术选择器中的一项，返回去重后的技术栈。
func (a *API) ToggleTech(c *gin.Context) {
	var req toggleTechRequest
	if !bindJSON(c, &req, "invalid toggle payload") {
		return
	}

	stack := profile.ToggleTech(req.TechStack, req.Name)
	c.JSON(http.StatusOK, gin.H{
		"techStack": stack,
		"tokens":    profile.SplitTechStack(stack),
	})
}

// CheckField validates a single form input so the page can flag it on blur.
func (a *API) CheckField(c *gin.Context) {
	field := c.Query("field")
	check, ok := fieldChecks[field]
	if !ok {
		respondError(c, http.StatusBadRequest, "unsupported field")
		return
	}

	value := strings.TrimSpace(c.Query("value"))
	message := ""
	switch {
	case value == "" && !check.optional:
		message = "This field is required"
	case value != "" && !check.valid(value):
		message = check.message
	}

	if message != "" {
		c.JSON(http.StatusOK, gin.H{"field": field, "valid": false, "message": message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"field": field, "valid": true})
}
