package readme

import (
	"fmt"
	"html"
	"net/url"
	"strings"

	"github.com/readmeforge/internal/icons"
	"github.com/readmeforge/internal/profile"
	"github.com/readmeforge/internal/theme"
)

const (
	statsBaseURL        = "https://github-readme-stats.vercel.app/api"
	trophiesBaseURL     = "https://github-profile-trophy.vercel.app/"
	streakBaseURL       = "https://streak-stats.demolab.com/"
	activityGraphURL    = "https://github-readme-activity-graph.vercel.app/graph"
	passionLine         = "- 🚀 I'm passionate about building cool things with modern technologies.\n"
	connectHeader       = "## 📫 Let's Connect\n\n"
	techStackHeader     = "## 🛠️ My Tech Stack\n\n"
	statsHeader         = "## 📊 My GitHub Stats\n\n"
	contributionHeader  = "## 📈 Contribution Graph\n\n"
	nbspWidthPerEntity  = 4
	trophyColumnsPerRow = 7
)

// Generate 根据资料拼装完整的 README markdown，各段落顺序固定。
// 相同输入总是得到逐字节相同的输出。
func Generate(p profile.Profile) string {
	var b strings.Builder

	writeIntro(&b, p)
	writeAboutMe(&b, p)
	writeSocials(&b, p.Socials)
	writeTechStack(&b, p)
	writeStats(&b, p)

	if p.ShowTrophies {
		fmt.Fprintf(&b, "![GitHub Trophies](%s?username=%s&theme=%s&column=%d)\n\n",
			trophiesBaseURL, q(p.GitHubUsername), q(p.StatsTheme), trophyColumnsPerRow)
	}
	if p.ShowStreak {
		fmt.Fprintf(&b, "![GitHub Streak](%s?user=%s&theme=%s)\n\n",
			streakBaseURL, q(p.GitHubUsername), q(p.StatsTheme))
	}
	if p.ShowContribution {
		b.WriteString(contributionHeader)
		fmt.Fprintf(&b, "![Contribution Graph](%s?username=%s&theme=%s)\n\n",
			activityGraphURL, q(p.GitHubUsername), q(theme.ContributionTheme(p.StatsTheme)))
	}

	return b.String()
}

func writeIntro(b *strings.Builder, p profile.Profile) {
	fmt.Fprintf(b, "# Hi 👋, I'm %s\n\n*%s*\n\n", p.Name, p.Quote)
}

func writeAboutMe(b *strings.Builder, p profile.Profile) {
	fmt.Fprintf(b, "## 👨‍💻 About Me\n\n%s\n\n", p.Bio)
	b.WriteString(roleLine(p))
	b.WriteString(passionLine)
	b.WriteString("\n")
}

// roleLine 返回身份描述行，未知身份不输出。
func roleLine(p profile.Profile) string {
	switch p.Role {
	case profile.RoleStudent:
		return fmt.Sprintf("- 🎓 I'm a student at **%s**, studying **%s**.\n",
			orDefault(p.CollegeName, "my university"), orDefault(p.Domain, "my field"))
	case profile.RoleProfessional:
		company := "**" + orDefault(p.CompanyName, "my company") + "**"
		if p.CompanyURL != "" {
			company = "[" + company + "](" + p.CompanyURL + ")"
		}
		return fmt.Sprintf("- 💻 I'm a **%s** at %s.\n", orDefault(p.Domain, "professional"), company)
	case profile.RoleFreelancer:
		return fmt.Sprintf("- 🚀 I'm a freelancer specializing in **%s**.\n", orDefault(p.Domain, "my field"))
	default:
		return ""
	}
}

func writeSocials(b *strings.Builder, s profile.Socials) {
	badges := make([]string, 0, 4)
	if s.LinkedIn != "" {
		badges = append(badges, "[![LinkedIn](https://img.shields.io/badge/LinkedIn-0077B5?style=for-the-badge&logo=linkedin&logoColor=white)](https://www.linkedin.com/in/"+s.LinkedIn+"/)")
	}
	if s.Twitter != "" {
		badges = append(badges, "[![Twitter](https://img.shields.io/badge/Twitter-1DA1F2?style=for-the-badge&logo=twitter&logoColor=white)](https://twitter.com/"+s.Twitter+")")
	}
	if s.Website != "" {
		badges = append(badges, "[![Website](https://img.shields.io/badge/Website-_?style=for-the-badge&logo=rss&logoColor=white)]("+s.Website+")")
	}
	if s.Email != "" {
		badges = append(badges, "[![Email](https://img.shields.io/badge/Email-D14836?style=for-the-badge&logo=gmail&logoColor=white)](mailto:"+s.Email+")")
	}
	if len(badges) == 0 {
		return
	}

	b.WriteString(connectHeader)
	b.WriteString(strings.Join(badges, " "))
	b.WriteString("\n\n")
}

// writeTechStack 为每个技术输出一个 <img>，不去重。
func writeTechStack(b *strings.Builder, p profile.Profile) {
	tokens := p.Tokens()
	if len(tokens) == 0 {
		return
	}

	urls := icons.MultipleURLs(p.IconService, tokens, p.IconStyle)
	dims := icons.BadgeDimensions(p.IconService, p.IconStyle)
	separator := spacer(dims.Spacing)

	b.WriteString(techStackHeader)
	b.WriteString("<p align=\"left\">\n")
	for i, token := range tokens {
		fmt.Fprintf(b, "  <img src=\"%s\" alt=\"%s\" width=\"%d\" height=\"%d\" />",
			urls[i], html.EscapeString(token), dims.Width, dims.Height)
		if i < len(tokens)-1 {
			b.WriteString(separator)
		}
		b.WriteString("\n")
	}
	b.WriteString("</p>\n\n")
}

func writeStats(b *strings.Builder, p profile.Profile) {
	user, statsTheme := q(p.GitHubUsername), q(p.StatsTheme)
	b.WriteString(statsHeader)
	fmt.Fprintf(b, "![GitHub Stats](%s?username=%s&theme=%s&show_icons=true&count_private=true)\n",
		statsBaseURL, user, statsTheme)
	fmt.Fprintf(b, "![Top Languages](%s/top-langs/?username=%s&theme=%s&layout=compact)\n\n",
		statsBaseURL, user, statsTheme)
}

func spacer(spacing int) string {
	count := spacing / nbspWidthPerEntity
	if count < 1 {
		count = 1
	}
	return strings.Repeat("&nbsp;", count)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// q 转义查询参数值；参数顺序由调用方固定，因此不使用 url.Values。
func q(value string) string {
	return url.QueryEscape(value)
}
