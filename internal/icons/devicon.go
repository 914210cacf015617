package icons

import (
	"net/url"
	"strings"
)

// Variant selects the artwork flavour of a devicon asset.
type Variant string

const (
	VariantOriginal Variant = "original"
	VariantPlain    Variant = "plain"
)

// DeviconAsset 表示内部技术名在 Devicon 中对应的 slug 与图形变体。
type DeviconAsset struct {
	Slug    string
	Variant Variant
}

// deviconOverrides 只收录与内部名称不一致或需要 plain 变体的技术，其余按名称直接猜测。
var deviconOverrides = map[string]DeviconAsset{
	// Languages
	"cs":     {Slug: "csharp", Variant: VariantOriginal},
	"cpp":    {Slug: "cplusplus", Variant: VariantOriginal},
	"golang": {Slug: "go", Variant: VariantOriginal},
	"bash":   {Slug: "bash", Variant: VariantOriginal},
	"r":      {Slug: "r", Variant: VariantOriginal},
	// Frontend
	"tailwindcss": {Slug: "tailwindcss", Variant: VariantPlain},
	"mui":         {Slug: "materialui", Variant: VariantOriginal},
	"nextjs":      {Slug: "nextjs", Variant: VariantOriginal},
	"nuxtjs":      {Slug: "nuxtjs", Variant: VariantOriginal},
	"threejs":     {Slug: "threejs", Variant: VariantOriginal},
	"jquery":      {Slug: "jquery", Variant: VariantOriginal},
	"alpinejs":    {Slug: "alpinejs", Variant: VariantOriginal},
	"blazor":      {Slug: "blazor", Variant: VariantOriginal},
	"bulma":       {Slug: "bulma", Variant: VariantPlain},
	"chakraui":    {Slug: "chakraui", Variant: VariantOriginal},
	"materialize": {Slug: "materialize", Variant: VariantPlain},
	"quasar":      {Slug: "quasar", Variant: VariantOriginal},
	"svelte":      {Slug: "svelte", Variant: VariantOriginal},
	// Backend / Others
	"nginx":        {Slug: "nginx", Variant: VariantOriginal},
	"apache":       {Slug: "apache", Variant: VariantOriginal},
	"kafka":        {Slug: "apachekafka", Variant: VariantOriginal},
	"graphql":      {Slug: "graphql", Variant: VariantPlain},
	"elastic":      {Slug: "elasticsearch", Variant: VariantOriginal},
	"d3":           {Slug: "d3js", Variant: VariantPlain},
	"postgresql":   {Slug: "postgresql", Variant: VariantOriginal},
	"mysql":        {Slug: "mysql", Variant: VariantOriginal},
	"mongodb":      {Slug: "mongodb", Variant: VariantOriginal},
	"redis":        {Slug: "redis", Variant: VariantOriginal},
	"sqlite":       {Slug: "sqlite", Variant: VariantOriginal},
	"docker":       {Slug: "docker", Variant: VariantOriginal},
	"kubernetes":   {Slug: "kubernetes", Variant: VariantOriginal},
	"aws":          {Slug: "amazonwebservices", Variant: VariantOriginal},
	"azure":        {Slug: "azure", Variant: VariantOriginal},
	"gcp":          {Slug: "googlecloud", Variant: VariantOriginal},
	"heroku":       {Slug: "heroku", Variant: VariantOriginal},
	"vercel":       {Slug: "vercel", Variant: VariantOriginal},
	"netlify":      {Slug: "netlify", Variant: VariantOriginal},
	"digitalocean": {Slug: "digitalocean", Variant: VariantOriginal},
	"terraform":    {Slug: "terraform", Variant: VariantOriginal},
	"ansible":      {Slug: "ansible", Variant: VariantOriginal},
	"github":       {Slug: "github", Variant: VariantOriginal},
	"git":          {Slug: "git", Variant: VariantOriginal},
	"vscode":       {Slug: "vscode", Variant: VariantOriginal},
	"idea":         {Slug: "intellij", Variant: VariantOriginal},
	"ps":           {Slug: "photoshop", Variant: VariantOriginal},
	"ai":           {Slug: "illustrator", Variant: VariantOriginal},
	"maven":        {Slug: "apachemaven", Variant: VariantOriginal},
	"arch":         {Slug: "archlinux", Variant: VariantOriginal},
	"jest":         {Slug: "jest", Variant: VariantPlain},
	"cypress":      {Slug: "cypressio", Variant: VariantPlain},
	"selenium":     {Slug: "selenium", Variant: VariantOriginal},
	"storybook":    {Slug: "storybook", Variant: VariantOriginal},
}

// DeviconSlug 将技术名映射为 Devicon slug；未收录的名称直接使用小写名称与 original 变体，
// 生成的地址可能不存在。
func DeviconSlug(name string) DeviconAsset {
	lower := strings.ToLower(name)
	if asset, ok := deviconOverrides[lower]; ok {
		return asset
	}
	return DeviconAsset{Slug: lower, Variant: VariantOriginal}
}

func deviconURL(name string) string {
	asset := DeviconSlug(name)
	slug := url.PathEscape(asset.Slug)
	return deviconBaseURL + "/" + slug + "/" + slug + "-" + string(asset.Variant) + ".svg"
}
