// Package profile holds the teacher's self-reported classroom context.
package profile

import (
	"math"
	"strings"
)

// NotSet marks a field the teacher explicitly left blank.
const NotSet = "Not Set"

// UserProfile is the teacher's classroom context. Every field is optional.
type UserProfile struct {
	Name     string `json:"name"`
	Grade    string `json:"grade"`
	Subject  string `json:"subject"`
	School   string `json:"school"`
	Language string `json:"language"`
}

// Default returns the first-run profile.
func Default() UserProfile {
	return UserProfile{Language: "English"}
}

// IsComplete reports whether the profile has enough context for a
// personalized plan: a grade and a subject.
func (p UserProfile) IsComplete() bool {
	return strings.TrimSpace(p.Grade) != "" && strings.TrimSpace(p.Subject) != ""
}

// CompletionPercent is the share of filled fields, rounded to a whole percent.
func (p UserProfile) CompletionPercent() int {
	fields := p.fields()
	filled := 0
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" && f != NotSet {
			filled++
		}
	}
	return int(math.Round(float64(filled) / float64(len(fields)) * 100))
}

// DisplayName is the first word of the name, or "Teacher".
func (p UserProfile) DisplayName() string {
	if parts := strings.Fields(p.Name); len(parts) > 0 {
		return parts[0]
	}
	return "Teacher"
}

// Initial is the first letter of DisplayName, for avatars.
func (p UserProfile) Initial() string {
	for _, r := range p.DisplayName() {
		return strings.ToUpper(string(r))
	}
	return "T"
}

func (p UserProfile) fields() []string {
	return []string{p.Name, p.Grade, p.Subject, p.School, p.Language}
}

// Option lists offered by the profile editor.
var (
	Languages = []string{"English", "Hindi", "Bengali", "Tamil", "Telugu", "Marathi", "Gujarati"}
	Grades    = []string{"Grade 1", "Grade 2", "Grade 3", "Grade 4", "Grade 5"}
	Subjects  = []string{"Math", "Science", "English", "Hindi", "Social Studies"}
	Schools   = []string{
		"Govt Primary School",
		"Govt Upper Primary School",
		"Kendriya Vidyalaya",
		"Jawahar Navodaya Vidyalaya",
		"Zilla Parishad School",
		"Municipal Corporation School",
	}
)
