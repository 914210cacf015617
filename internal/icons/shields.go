package icons

import (
	"net/url"
	"strings"
)

const (
	defaultBadgeStyle = "flat"
	defaultBadgeColor = "blue"
)

// ShieldsBadge 描述某项技术在 Shields.io 上的徽章参数。
type ShieldsBadge struct {
	Label     string
	Logo      string
	Color     string
	LogoColor string
}

var shieldsBadges = map[string]ShieldsBadge{
	// Languages
	"javascript": {Label: "JavaScript", Logo: "javascript", Color: "F7DF1E", LogoColor: "black"},
	"typescript": {Label: "TypeScript", Logo: "typescript", Color: "3178C6"},
	"python":     {Label: "Python", Logo: "python", Color: "3776AB"},
	"java":       {Label: "Java", Logo: "openjdk", Color: "ED8B00"},
	"cs":         {Label: "C#", Logo: "csharp", Color: "239120"},
	"golang":     {Label: "Go", Logo: "go", Color: "00ADD8"},
	"rust":       {Label: "Rust", Logo: "rust", Color: "000000"},
	"ruby":       {Label: "Ruby", Logo: "ruby", Color: "CC342D"},
	"php":        {Label: "PHP", Logo: "php", Color: "777BB4"},
	"c":          {Label: "C", Logo: "c", Color: "A8B9CC"},
	"cpp":        {Label: "C++", Logo: "cplusplus", Color: "00599C"},
	"swift":      {Label: "Swift", Logo: "swift", Color: "FA7343"},
	"kotlin":     {Label: "Kotlin", Logo: "kotlin", Color: "7F52FF"},
	"dart":       {Label: "Dart", Logo: "dart", Color: "0175C2"},

	// Frontend
	"react":       {Label: "React", Logo: "react", Color: "61DAFB", LogoColor: "black"},
	"angular":     {Label: "Angular", Logo: "angular", Color: "DD0031"},
	"vue":         {Label: "Vue.js", Logo: "vuedotjs", Color: "4FC08D"},
	"svelte":      {Label: "Svelte", Logo: "svelte", Color: "FF3E00"},
	"nextjs":      {Label: "Next.js", Logo: "nextdotjs", Color: "000000"},
	"nuxtjs":      {Label: "Nuxt.js", Logo: "nuxtdotjs", Color: "00DC82"},
	"gatsby":      {Label: "Gatsby", Logo: "gatsby", Color: "663399"},
	"tailwindcss": {Label: "Tailwind CSS", Logo: "tailwindcss", Color: "06B6D4"},
	"bootstrap":   {Label: "Bootstrap", Logo: "bootstrap", Color: "7952B3"},
	"sass":        {Label: "Sass", Logo: "sass", Color: "CC6699"},

	// Backend
	"nodejs":  {Label: "Node.js", Logo: "nodedotjs", Color: "339933"},
	"express": {Label: "Express.js", Logo: "express", Color: "000000"},
	"nestjs":  {Label: "NestJS", Logo: "nestjs", Color: "E0234E"},
	"django":  {Label: "Django", Logo: "django", Color: "092E20"},
	"flask":   {Label: "Flask", Logo: "flask", Color: "000000"},
	"fastapi": {Label: "FastAPI", Logo: "fastapi", Color: "009688"},
	"rails":   {Label: "Ruby on Rails", Logo: "rubyonrails", Color: "CC0000"},
	"spring":  {Label: "Spring", Logo: "spring", Color: "6DB33F"},
	"laravel": {Label: "Laravel", Logo: "laravel", Color: "FF2D20"},

	// Databases
	"mongodb":    {Label: "MongoDB", Logo: "mongodb", Color: "47A248"},
	"mysql":      {Label: "MySQL", Logo: "mysql", Color: "4479A1"},
	"postgresql": {Label: "PostgreSQL", Logo: "postgresql", Color: "4169E1"},
	"redis":      {Label: "Redis", Logo: "redis", Color: "DC382D"},
	"sqlite":     {Label: "SQLite", Logo: "sqlite", Color: "003B57"},
	"firebase":   {Label: "Firebase", Logo: "firebase", Color: "FFCA28", LogoColor: "black"},
	"supabase":   {Label: "Supabase", Logo: "supabase", Color: "3ECF8E"},

	// DevOps & Cloud
	"docker":     {Label: "Docker", Logo: "docker", Color: "2496ED"},
	"kubernetes": {Label: "Kubernetes", Logo: "kubernetes", Color: "326CE5"},
	"aws":        {Label: "AWS", Logo: "amazonwebservices", Color: "232F3E"},
	"azure":      {Label: "Azure", Logo: "microsoftazure", Color: "0078D4"},
	"gcp":        {Label: "Google Cloud", Logo: "googlecloud", Color: "4285F4"},
	"heroku":     {Label: "Heroku", Logo: "heroku", Color: "430098"},
	"vercel":     {Label: "Vercel", Logo: "vercel", Color: "000000"},
	"netlify":    {Label: "Netlify", Logo: "netlify", Color: "00C7B7"},

	// Tools
	"git":    {Label: "Git", Logo: "git", Color: "F05032"},
	"github": {Label: "GitHub", Logo: "github", Color: "181717"},
	"vscode": {Label: "VS Code", Logo: "visualstudiocode", Color: "007ACC"},
	"figma":  {Label: "Figma", Logo: "figma", Color: "F24E1E"},

	// Testing
	"jest":     {Label: "Jest", Logo: "jest", Color: "C21325"},
	"cypress":  {Label: "Cypress", Logo: "cypress", Color: "17202C"},
	"selenium": {Label: "Selenium", Logo: "selenium", Color: "43B02A"},

	// Additional
	"bash":          {Label: "Bash", Logo: "gnubash", Color: "4EAA25"},
	"r":             {Label: "R", Logo: "r", Color: "276DC3"},
	"perl":          {Label: "Perl", Logo: "perl", Color: "39457E"},
	"android":       {Label: "Android", Logo: "android", Color: "3DDC84"},
	"flutter":       {Label: "Flutter", Logo: "flutter", Color: "02569B"},
	"ionic":         {Label: "Ionic", Logo: "ionic", Color: "3880FF"},
	"xamarin":       {Label: "Xamarin", Logo: "xamarin", Color: "3498DB"},
	"cassandra":     {Label: "Cassandra", Logo: "apachecassandra", Color: "1287B1"},
	"couchdb":       {Label: "CouchDB", Logo: "couchdb", Color: "E42528"},
	"dynamodb":      {Label: "DynamoDB", Logo: "amazondynamodb", Color: "4053D6"},
	"mariadb":       {Label: "MariaDB", Logo: "mariadb", Color: "003545"},
	"neo4j":         {Label: "Neo4j", Logo: "neo4j", Color: "008CC1"},
	"influxdb":      {Label: "InfluxDB", Logo: "influxdb", Color: "22ADF6"},
	"rabbitmq":      {Label: "RabbitMQ", Logo: "rabbitmq", Color: "FF6600"},
	"apache":        {Label: "Apache", Logo: "apache", Color: "D22128"},
	"nginx":         {Label: "Nginx", Logo: "nginx", Color: "009639"},
	"jenkins":       {Label: "Jenkins", Logo: "jenkins", Color: "D24939"},
	"githubactions": {Label: "GitHub Actions", Logo: "githubactions", Color: "2088FF"},
	"gitlab":        {Label: "GitLab", Logo: "gitlab", Color: "FC6D26"},
	"circleci":      {Label: "CircleCI", Logo: "circleci", Color: "343434"},
	"travisci":      {Label: "Travis CI", Logo: "travisci", Color: "3EAAAF"},
	"prometheus":    {Label: "Prometheus", Logo: "prometheus", Color: "E6522C"},
	"grafana":       {Label: "Grafana", Logo: "grafana", Color: "F46800"},
	"elastic":       {Label: "Elasticsearch", Logo: "elasticsearch", Color: "005571"},
	"kibana":        {Label: "Kibana", Logo: "kibana", Color: "005571"},
	"logstash":      {Label: "Logstash", Logo: "logstash", Color: "005571"},
	"d3":            {Label: "D3.js", Logo: "d3dotjs", Color: "F9A03C"},
	"threejs":       {Label: "Three.js", Logo: "threedotjs", Color: "000000"},
	"jquery":        {Label: "jQuery", Logo: "jquery", Color: "0769AD"},
	"webpack":       {Label: "Webpack", Logo: "webpack", Color: "8DD6F9"},
	"vite":          {Label: "Vite", Logo: "vite", Color: "646CFF"},
	"rollup":        {Label: "Rollup", Logo: "rollupdotjs", Color: "EC4A3F"},
	"parcel":        {Label: "Parcel", Logo: "parcel", Color: "E7A93F"},
	"storybook":     {Label: "Storybook", Logo: "storybook", Color: "FF4785"},
	"prisma":        {Label: "Prisma", Logo: "prisma", Color: "2D3748"},
	"graphql":       {Label: "GraphQL", Logo: "graphql", Color: "E10098"},
	"apollo":        {Label: "Apollo GraphQL", Logo: "apollographql", Color: "311C87"},
	"postman":       {Label: "Postman", Logo: "postman", Color: "FF6C37"},
	"insomnia":      {Label: "Insomnia", Logo: "insomnia", Color: "4000BF"},
}

func lookupShieldsBadge(name string) (ShieldsBadge, bool) {
	badge, ok := shieldsBadges[strings.ToLower(name)]
	return badge, ok
}

func shieldsURL(name, style string) string {
	if style == "" {
		style = defaultBadgeStyle
	}

	badge, ok := lookupShieldsBadge(name)
	if !ok {
		// 未收录的技术直接用原始名称猜测 logo，徽章可能没有图标。
		return shieldsBaseURL + "/" + escapeBadgeText(name) + "-" + defaultBadgeColor +
			"?style=" + escapeComponent(style) + "&logo=" + escapeComponent(strings.ToLower(name))
	}

	var builder strings.Builder
	builder.WriteString(shieldsBaseURL)
	builder.WriteString("/")
	builder.WriteString(escapeBadgeText(badge.Label))
	builder.WriteString("-")
	builder.WriteString(badge.Color)
	builder.WriteString("?style=")
	builder.WriteString(escapeComponent(style))
	builder.WriteString("&logo=")
	builder.WriteString(badge.Logo)
	if badge.LogoColor != "" {
		builder.WriteString("&logoColor=")
		builder.WriteString(badge.LogoColor)
	}
	return builder.String()
}

// escapeBadgeText 对徽章路径中的文本转义；Shields.io 用 "-" 分隔字段，文本内的 "-" 与 "_" 需要成对书写。
func escapeBadgeText(text string) string {
	text = strings.ReplaceAll(text, "-", "--")
	text = strings.ReplaceAll(text, "_", "__")
	return escapeComponent(text)
}

// componentUnescaper 还原 QueryEscape 多转义而 encodeURIComponent 保留的字符。
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// escapeComponent mirrors encodeURIComponent: spaces become %20 and !'()* stay literal.
func escapeComponent(text string) string {
	return componentUnescaper.Replace(url.QueryEscape(text))
}
