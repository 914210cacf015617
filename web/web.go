package web

import (
	"embed"
	"html/template"
)

//go:embed template/*.html
var templateFS embed.FS

// Templates 解析内嵌的页面模板，模板名为文件名（如 index.html）。
func Templates(funcs template.FuncMap) (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templateFS, "template/*.html")
}
