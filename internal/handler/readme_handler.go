package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/readmeforge/internal/catalog"
	"github.com/readmeforge/internal/icons"
	"github.com/readmeforge/internal/profile"
	"github.com/readmeforge/internal/readme"
	"github.com/readmeforge/internal/theme"
	"github.com/readmeforge/internal/view"
)

const (
	sessionProfileKey = "last_profile"
	readmeFileName    = "README.md"
)

type techCategoryView struct {
	ID           string
	Name         string
	Count        int
	Technologies []catalog.Technology
}

type readmeResponse struct {
	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
}

// ShowForm 渲染资料表单，首次打开使用示例资料。
func (a *API) ShowForm(c *gin.Context) {
	p := profile.Default()
	if saved, ok := a.loadProfile(c); ok {
		p = saved
	}
	a.renderForm(c, http.StatusOK, p, profile.FieldErrors{}, "")
}

// PreviewReadme 处理表单提交：校验通过则渲染预览并记住资料，否则回显错误。
func (a *API) PreviewReadme(c *gin.Context) {
	var p profile.Profile
	if err := c.ShouldBind(&p); err != nil {
		a.renderForm(c, http.StatusBadRequest, profile.Default(), profile.FieldErrors{"form": "Invalid form submission"}, "")
		return
	}

	if err := profile.Validate(p); err != nil {
		var fields profile.FieldErrors
		if !errors.As(err, &fields) {
			fields = profile.FieldErrors{"form": err.Error()}
		}
		a.renderForm(c, http.StatusBadRequest, p, fields, "")
		return
	}

	markdown := readme.Generate(p)
	a.saveProfile(c, p)
	a.renderForm(c, http.StatusOK, p, profile.FieldErrors{}, markdown)
}

// GenerateReadme 接收 JSON 资料，返回 markdown 与预览 HTML。
func (a *API) GenerateReadme(c *gin.Context) {
	var p profile.Profile
	if !bindJSON(c, &p, "invalid profile payload") {
		return
	}

	if err := profile.Validate(p); err != nil {
		respondValidation(c, err)
		return
	}

	markdown := readme.Generate(p)
	rendered, err := renderPreview(markdown)
	if err != nil {
		a.requestLogger(c).Error(err, "render preview failed")
		respondError(c, http.StatusInternalServerError, "failed to render preview")
		return
	}

	a.saveProfile(c, p)
	c.JSON(http.StatusOK, readmeResponse{Markdown: markdown, HTML: string(rendered)})
}

// DownloadReadme 以附件形式返回会话中最近一次生成的 README。
func (a *API) DownloadReadme(c *gin.Context) {
	p, ok := a.loadProfile(c)
	if !ok {
		respondError(c, http.StatusNotFound, "no README has been generated yet")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+readmeFileName+`"`)
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(readme.Generate(p)))
}

func (a *API) renderForm(c *gin.Context, status int, p profile.Profile, fields profile.FieldErrors, markdown string) {
	data := gin.H{
		"profile":    p,
		"errors":     fields,
		"roles":      []profile.Role{profile.RoleStudent, profile.RoleProfessional, profile.RoleFreelancer},
		"socials":    view.SocialFields(),
		"themes":     theme.Options(),
		"services":   icons.Services(),
		"categories": techCategories(p.IconService),
		"techCount":  catalog.Count(p.IconService),
		"markdown":   markdown,
	}

	if markdown != "" {
		rendered, err := renderPreview(markdown)
		if err != nil {
			a.requestLogger(c).Error(err, "render preview failed")
		}
		data["html"] = rendered
	}

	a.renderHTML(c, status, "index.html", data)
}

func techCategories(service icons.Service) []techCategoryView {
	grouped := catalog.ByCategory(service)
	counts := catalog.CategoryCounts(service)
	views := make([]techCategoryView, 0, len(grouped))
	for _, category := range catalog.Categories() {
		if counts[category.ID] == 0 {
			continue
		}
		views = append(views, techCategoryView{
			ID:           category.ID,
			Name:         category.Name,
			Count:        counts[category.ID],
			Technologies: grouped[category.ID],
		})
	}
	return views
}

// saveProfile 把资料序列化进 cookie 会话，失败只记录日志。
func (a *API) saveProfile(c *gin.Context, p profile.Profile) {
	encoded, err := json.Marshal(p)
	if err != nil {
		a.requestLogger(c).Error(err, "encode profile for session failed")
		return
	}

	session := sessions.Default(c)
	session.Set(sessionProfileKey, string(encoded))
	if err := session.Save(); err != nil {
		a.requestLogger(c).Error(err, "save session failed")
	}
}

func (a *API) loadProfile(c *gin.Context) (profile.Profile, bool) {
	raw, ok := sessions.Default(c).Get(sessionProfileKey).(string)
	if !ok || raw == "" {
		return profile.Profile{}, false
	}

	var p profile.Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		a.requestLogger(c).Warn("discarding unreadable session profile")
		return profile.Profile{}, false
	}
	return p, true
}
