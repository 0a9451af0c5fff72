package recommend

import "strings"

// roleSuggestions maps role keywords to skills typical for that role.
// Matching is a fuzzy substring test against the user's free-text role.
var roleSuggestions = []struct {
	keywords []string
	skills   []string
}{
	{
		keywords: []string{"frontend", "front-end", "front end", "ui"},
		skills:   []string{"React", "TypeScript", "Web Accessibility"},
	},
	{
		keywords: []string{"backend", "back-end", "back end", "api"},
		skills:   []string{"SQL", "Docker", "System Design"},
	},
	{
		keywords: []string{"full stack", "fullstack", "full-stack"},
		skills:   []string{"React", "Node.js", "PostgreSQL"},
	},
	{
		keywords: []string{"devops", "sre", "platform", "infrastructure"},
		skills:   []string{"Kubernetes", "Terraform", "Monitoring"},
	},
	{
		keywords: []string{"data", "analyst", "scientist"},
		skills:   []string{"Python", "SQL", "Machine Learning"},
	},
	{
		keywords: []string{"mobile", "ios", "android"},
		skills:   []string{"React Native", "Swift", "Kotlin"},
	},
	{
		keywords: []string{"security"},
		skills:   []string{"Linux", "Networking", "Penetration Testing"},
	},
}

// skillsForRole returns suggested skill names for a free-text role, or
// nil when no keyword matches.
func skillsForRole(role string) []string {
	norm := strings.ToLower(strings.TrimSpace(role))
	if norm == "" {
		return nil
	}
	for _, rs := range roleSuggestions {
		for _, kw := range rs.keywords {
			if strings.Contains(norm, kw) {
				return rs.skills
			}
		}
	}
	return nil
}
