package view

import (
	"html/template"

	"github.com/readmeforge/internal/profile"
)

// SocialField describes one social input rendered by the profile form.
type SocialField struct {
	Key         string        `json:"key"`
	Label       string        `json:"label"`
	Placeholder string        `json:"placeholder"`
	InputType   string        `json:"inputType"`
	Icon        template.HTML `json:"-"`
}

type socialIconAsset struct {
	Key         string
	Label       string
	Placeholder string
	InputType   string
	SVG         string
}

var (
	socialIconDefinitions = []socialIconAsset{
		{Key: "linkedin", Label: "LinkedIn", Placeholder: "linkedin-username", InputType: "text", SVG: `<svg viewBox="0 0 24 24" fill="currentColor" aria-hidden="true"><path d="M20.447 20.452h-3.554v-5.569c0-1.328-.027-3.037-1.852-3.037-1.853 0-2.136 1.445-2.136 2.939v5.667H9.351V9h3.414v1.561h.046c.477-.9 1.637-1.85 3.37-1.85 3.601 0 4.267 2.37 4.267 5.455v6.286zM5.337 7.433a2.062 2.062 0 1 1 0-4.125 2.062 2.062 0 0 1 0 4.125zM7.119 20.452H3.555V9h3.564v11.452zM22.225 0H1.771C.792 0 0 .774 0 1.729v20.542C0 23.227.792 24 1.771 24h20.451C23.2 24 24 23.227 24 22.271V1.729C24 .774 23.2 0 22.222 0h.003z"/></svg>`},
		{Key: "twitter", Label: "X / Twitter", Placeholder: "twitter-handle", InputType: "text", SVG: `<svg viewBox="0 0 24 24" fill="currentColor" aria-hidden="true"><path d="M18.901 1.153h3.68l-8.04 9.19L24 22.846h-7.406l-5.8-7.584-6.638 7.584H.474l8.6-9.83L0 1.154h7.594l5.243 6.932ZM17.61 20.644h2.039L6.486 3.24H4.298Z"/></svg>`},
		{Key: "website", Label: "Website", Placeholder: "https://your-website.com", InputType: "url", SVG: `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="1.5" stroke-linecap="round" stroke-linejoin="round"><path d="M12 21c4.193 0 7.716-2.867 8.716-6.747M12 21c-4.193 0-7.716-2.867-8.716-6.747M12 21c2.485 0 4.5-4.03 4.5-9s-2.015-9-4.5-9m0 18c-2.485 0-4.5-4.03-4.5-9s2.015-9 4.5-9m0-0c3.365 0 6.299 1.847 7.843 4.582M12 3c-3.365 0-6.299 1.847-7.843 4.582m15.686 0c.737 1.305 1.157 2.812 1.157 4.418 0 .778-.099 1.533-.284 2.253m-.873 4.836C18.133 15.685 15.162 16.5 12 16.5s-6.134-.815-8.716-2.247m0 0A8.948 8.948 0 0 1 3 12c0-1.605.42-3.112 1.157-4.417"/></svg>`},
		{Key: "email", Label: "Email", Placeholder: "you@example.com", InputType: "email", SVG: `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="1.5" stroke-linecap="round" stroke-linejoin="round"><path d="M21.75 6.75v10.5a2.25 2.25 0 0 1-2.25 2.25h-15A2.25 2.25 0 0 1 2.25 17.25V6.75M21.75 6.75A2.25 2.25 0 0 0 19.5 4.5h-15A2.25 2.25 0 0 0 2.25 6.75v.243c0 .781.405 1.506 1.071 1.916l7.5 4.615a2.25 2.25 0 0 0 2.157 0l7.5-4.615a2.25 2.25 0 0 0 1.072-1.916V6.75"/></svg>`},
	}
)

// SocialFields 按 README 中徽章的固定顺序返回社交输入项。
func SocialFields() []SocialField {
	fields := make([]SocialField, 0, len(socialIconDefinitions))
	for _, icon := range socialIconDefinitions {
		fields = append(fields, SocialField{
			Key:         icon.Key,
			Label:       icon.Label,
			Placeholder: icon.Placeholder,
			InputType:   icon.InputType,
			Icon:        template.HTML(icon.SVG),
		})
	}
	return fields
}

// SocialValue returns the profile value backing the social field key.
func SocialValue(s profile.Socials, key string) string {
	switch key {
	case "linkedin":
		return s.LinkedIn
	case "twitter":
		return s.Twitter
	case "website":
		return s.Website
	case "email":
		return s.Email
	default:
		return ""
	}
}
