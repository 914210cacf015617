package catalog

// Category groups technologies in the picker.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Technology 是目录中的一项技术，Name 为小写标识。
type Technology struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

var categories = []Category{
	{ID: "languages", Name: "Languages"},
	{ID: "frontend", Name: "Frontend"},
	{ID: "backend", Name: "Backend"},
	{ID: "databases", Name: "Databases"},
	{ID: "cloud", Name: "Cloud & Hosting"},
	{ID: "devops", Name: "DevOps"},
	{ID: "tools", Name: "Tools"},
	{ID: "testing", Name: "Testing"},
	{ID: "mobile", Name: "Mobile"},
	{ID: "ai", Name: "AI & Data"},
	{ID: "design", Name: "Design"},
}

// baseTechnologies 都能被 Skill Icons 渲染。
var baseTechnologies = []Technology{
	{Name: "javascript", Category: "languages"},
	{Name: "typescript", Category: "languages"},
	{Name: "python", Category: "languages"},
	{Name: "java", Category: "languages"},
	{Name: "cs", Category: "languages"},
	{Name: "cpp", Category: "languages"},
	{Name: "c", Category: "languages"},
	{Name: "golang", Category: "languages"},
	{Name: "rust", Category: "languages"},
	{Name: "ruby", Category: "languages"},
	{Name: "php", Category: "languages"},
	{Name: "swift", Category: "languages"},
	{Name: "kotlin", Category: "languages"},
	{Name: "dart", Category: "languages"},
	{Name: "scala", Category: "languages"},
	{Name: "haskell", Category: "languages"},
	{Name: "elixir", Category: "languages"},
	{Name: "lua", Category: "languages"},
	{Name: "perl", Category: "languages"},
	{Name: "r", Category: "languages"},
	{Name: "bash", Category: "languages"},
	{Name: "html", Category: "languages"},
	{Name: "css", Category: "languages"},

	{Name: "react", Category: "frontend"},
	{Name: "angular", Category: "frontend"},
	{Name: "vue", Category: "frontend"},
	{Name: "svelte", Category: "frontend"},
	{Name: "nextjs", Category: "frontend"},
	{Name: "nuxtjs", Category: "frontend"},
	{Name: "gatsby", Category: "frontend"},
	{Name: "tailwindcss", Category: "frontend"},
	{Name: "bootstrap", Category: "frontend"},
	{Name: "sass", Category: "frontend"},
	{Name: "mui", Category: "frontend"},
	{Name: "jquery", Category: "frontend"},
	{Name: "threejs", Category: "frontend"},
	{Name: "redux", Category: "frontend"},
	{Name: "alpinejs", Category: "frontend"},
	{Name: "vite", Category: "frontend"},
	{Name: "webpack", Category: "frontend"},

	{Name: "nodejs", Category: "backend"},
	{Name: "express", Category: "backend"},
	{Name: "nestjs", Category: "backend"},
	{Name: "django", Category: "backend"},
	{Name: "flask", Category: "backend"},
	{Name: "fastapi", Category: "backend"},
	{Name: "rails", Category: "backend"},
	{Name: "spring", Category: "backend"},
	{Name: "laravel", Category: "backend"},
	{Name: "graphql", Category: "backend"},
	{Name: "deno", Category: "backend"},
	{Name: "bun", Category: "backend"},
	{Name: "dotnet", Category: "backend"},

	{Name: "mongodb", Category: "databases"},
	{Name: "mysql", Category: "databases"},
	{Name: "postgresql", Category: "databases"},
	{Name: "redis", Category: "databases"},
	{Name: "sqlite", Category: "databases"},
	{Name: "firebase", Category: "databases"},
	{Name: "supabase", Category: "databases"},
	{Name: "dynamodb", Category: "databases"},
	{Name: "cassandra", Category: "databases"},

	{Name: "aws", Category: "cloud"},
	{Name: "azure", Category: "cloud"},
	{Name: "gcp", Category: "cloud"},
	{Name: "heroku", Category: "cloud"},
	{Name: "vercel", Category: "cloud"},
	{Name: "netlify", Category: "cloud"},
	{Name: "cloudflare", Category: "cloud"},

	{Name: "docker", Category: "devops"},
	{Name: "kubernetes", Category: "devops"},
	{Name: "terraform", Category: "devops"},
	{Name: "ansible", Category: "devops"},
	{Name: "jenkins", Category: "devops"},
	{Name: "githubactions", Category: "devops"},
	{Name: "nginx", Category: "devops"},
	{Name: "kafka", Category: "devops"},
	{Name: "rabbitmq", Category: "devops"},
	{Name: "prometheus", Category: "devops"},
	{Name: "grafana", Category: "devops"},
	{Name: "linux", Category: "devops"},
	{Name: "openshift", Category: "devops"},

	{Name: "git", Category: "tools"},
	{Name: "github", Category: "tools"},
	{Name: "gitlab", Category: "tools"},
	{Name: "vscode", Category: "tools"},
	{Name: "idea", Category: "tools"},
	{Name: "vim", Category: "tools"},
	{Name: "postman", Category: "tools"},
	{Name: "npm", Category: "tools"},
	{Name: "maven", Category: "tools"},

	{Name: "jest", Category: "testing"},
	{Name: "cypress", Category: "testing"},
	{Name: "selenium", Category: "testing"},
	{Name: "vitest", Category: "testing"},

	{Name: "flutter", Category: "mobile"},
	{Name: "androidstudio", Category: "mobile"},

	{Name: "tensorflow", Category: "ai"},
	{Name: "pytorch", Category: "ai"},
	{Name: "opencv", Category: "ai"},
	{Name: "sklearn", Category: "ai"},

	{Name: "figma", Category: "design"},
	{Name: "ps", Category: "design"},
	{Name: "ai", Category: "design"},
	{Name: "blender", Category: "design"},
}

// extendedTechnologies 只在按 slug 取图的服务中展示，可能与基础列表重名。
var extendedTechnologies = []Technology{
	{Name: "objectivec", Category: "languages"},
	{Name: "fsharp", Category: "languages"},
	{Name: "erlang", Category: "languages"},
	{Name: "julia", Category: "languages"},
	{Name: "groovy", Category: "languages"},
	{Name: "python", Category: "languages"},

	{Name: "chakraui", Category: "frontend"},
	{Name: "bulma", Category: "frontend"},
	{Name: "quasar", Category: "frontend"},
	{Name: "materialize", Category: "frontend"},
	{Name: "blazor", Category: "frontend"},
	{Name: "d3", Category: "frontend"},
	{Name: "rollup", Category: "frontend"},
	{Name: "storybook", Category: "frontend"},
	{Name: "react", Category: "frontend"},
	{Name: "socket.io", Category: "frontend"},

	{Name: "apache", Category: "backend"},
	{Name: "prisma", Category: "backend"},
	{Name: "apollo", Category: "backend"},
	{Name: "fastify", Category: "backend"},

	{Name: "mariadb", Category: "databases"},
	{Name: "neo4j", Category: "databases"},
	{Name: "couchdb", Category: "databases"},
	{Name: "influxdb", Category: "databases"},
	{Name: "elastic", Category: "databases"},
	{Name: "oracle", Category: "databases"},

	{Name: "digitalocean", Category: "cloud"},
	{Name: "openstack", Category: "cloud"},

	{Name: "circleci", Category: "devops"},
	{Name: "travisci", Category: "devops"},
	{Name: "argocd", Category: "devops"},
	{Name: "splunk", Category: "devops"},
	{Name: "kibana", Category: "devops"},
	{Name: "logstash", Category: "devops"},
	{Name: "docker", Category: "devops"},

	{Name: "arch", Category: "tools"},
	{Name: "ubuntu", Category: "tools"},
	{Name: "insomnia", Category: "tools"},
	{Name: "yarn", Category: "tools"},

	{Name: "mocha", Category: "testing"},
	{Name: "pytest", Category: "testing"},

	{Name: "android", Category: "mobile"},
	{Name: "ionic", Category: "mobile"},
	{Name: "xamarin", Category: "mobile"},
	{Name: "react-native", Category: "mobile"},

	{Name: "pandas", Category: "ai"},
	{Name: "numpy", Category: "ai"},
	{Name: "jupyter", Category: "ai"},
	{Name: "tableau", Category: "ai"},
	{Name: "powerbi", Category: "ai"},

	{Name: "xd", Category: "design"},
	{Name: "sketch", Category: "design"},
}

// unsupportedSlugTechnologies 在 Devicon 中没有官方图标。
var unsupportedSlugTechnologies = map[string]struct{}{
	"tableau":   {},
	"powerbi":   {},
	"splunk":    {},
	"openshift": {},
	"argocd":    {},
}
