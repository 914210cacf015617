package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/readmeforge/internal/catalog"
	"github.com/readmeforge/internal/icons"
	"github.com/readmeforge/internal/profile"
	"github.com/readmeforge/internal/theme"
)

type themeItem struct {
	Value        string `json:"value"`
	Label        string `json:"label"`
	Contribution string `json:"contribution"`
}

type techCategoryItem struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Count        int                  `json:"count"`
	Technologies []catalog.Technology `json:"technologies"`
}

// ListThemes 返回统计卡片主题及其贡献图映射。
func (a *API) ListThemes(c *gin.Context) {
	options := theme.Options()
	items := make([]themeItem, 0, len(options))
	for _, option := range options {
		items = append(items, themeItem{
			Value:        option.Value,
			Label:        option.Label,
			Contribution: theme.ContributionTheme(option.Value),
		})
	}
	c.JSON(http.StatusOK, gin.H{"themes": items, "default": theme.DefaultStatsTheme})
}

// ListServices returns every icon service with its supported styles.
func (a *API) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": icons.Services(), "default": icons.DefaultService})
}

// ListTechnologies 返回指定图标服务可渲染的技术，按分类分组。
func (a *API) ListTechnologies(c *gin.Context) {
	service := serviceQuery(c)

	views := techCategories(service)
	items := make([]techCategoryItem, 0, len(views))
	for _, v := range views {
		items = append(items, techCategoryItem{
			ID:           v.ID,
			Name:         v.Name,
			Count:        v.Count,
			Technologies: v.Technologies,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"service":    service,
		"count":      catalog.Count(service),
		"categories": items,
	})
}

// ListIcons 为 names 中的技术生成图标地址。
func (a *API) ListIcons(c *gin.Context) {
	service := serviceQuery(c)
	style := c.Query("style")
	if style != "" && !icons.SupportsStyle(service, style) {
		respondError(c, http.StatusBadRequest, "style is not supported by "+icons.Config(service).Name)
		return
	}

	names := profile.SplitTechStack(c.Query("names"))
	if len(names) == 0 {
		respondError(c, http.StatusBadRequest, "names is required")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"service":    service,
		"urls":       icons.MultipleURLs(service, names, style),
		"single":     icons.SingleURL(service, names, style),
		"dimensions": icons.BadgeDimensions(service, style),
	})
}
