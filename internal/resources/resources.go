// Package resources holds the static learning catalog and its filter.
package resources

import (
	"strings"
)

// AllCategories matches every resource in Filter.
const AllCategories = "All"

// Kind is the resource media type.
type Kind string

const (
	KindVideo    Kind = "video"
	KindArticle  Kind = "article"
	KindDocument Kind = "document"
)

// Difficulty is the intended teacher experience level.
type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
)

// LearningResource is a read-only catalog entry.
type LearningResource struct {
	ID         string
	Title      string
	Kind       Kind
	Duration   string
	Category   string
	Thumbnail  string
	Difficulty Difficulty
	Link       string // optional
}

// HasLink reports whether the resource can be opened externally.
func (r LearningResource) HasLink() bool {
	return r.Link != ""
}

var catalog = []LearningResource{
	{
		ID:         "1",
		Title:      "5 Fun Classroom Management Games",
		Kind:       KindVideo,
		Duration:   "8 min",
		Category:   "Management",
		Thumbnail:  youtubeThumb("2iOLK5xOaYM"),
		Difficulty: Beginner,
		Link:       youtubeWatch("2iOLK5xOaYM"),
	},
	{
		ID:         "2",
		Title:      "Fractions for Kids (Animated)",
		Kind:       KindVideo,
		Duration:   "6 min",
		Category:   "Pedagogy",
		Thumbnail:  youtubeThumb("n0FZhQ_GkKw"),
		Difficulty: Beginner,
		Link:       youtubeWatch("n0FZhQ_GkKw"),
	},
	{
		ID:         "3",
		Title:      "10 Everyday Classroom Hacks",
		Kind:       KindVideo,
		Duration:   "10 min",
		Category:   "Strategies",
		Thumbnail:  youtubeThumb("W3fr4tm_FRo"),
		Difficulty: Intermediate,
		Link:       youtubeWatch("W3fr4tm_FRo"),
	},
	{
		ID:         "4",
		Title:      "Teaching Place Value with Bundles of Sticks",
		Kind:       KindArticle,
		Duration:   "5 min read",
		Category:   "Math",
		Difficulty: Beginner,
	},
	{
		ID:         "5",
		Title:      "Group Activities for Multi-Grade Classrooms",
		Kind:       KindDocument,
		Duration:   "4 pages",
		Category:   "Activities",
		Difficulty: Intermediate,
	},
}

// Catalog returns a copy of the static resource list.
func Catalog() []LearningResource {
	out := make([]LearningResource, len(catalog))
	copy(out, catalog)
	return out
}

// Filter returns the resources in category whose title contains search,
// ignoring case. AllCategories matches every category and an empty search
// matches every title. Order is preserved.
func Filter(rs []LearningResource, category, search string) []LearningResource {
	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]LearningResource, 0, len(rs))
	for _, r := range rs {
		if category != AllCategories && r.Category != category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(r.Title), needle) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Categories returns AllCategories followed by each distinct category in
// first-seen order.
func Categories(rs []LearningResource) []string {
	out := []string{AllCategories}
	seen := make(map[string]bool)
	for _, r := range rs {
		if r.Category == "" || seen[r.Category] {
			continue
		}
		seen[r.Category] = true
		out = append(out, r.Category)
	}
	return out
}

func youtubeThumb(id string) string {
	return "https://img.youtube.com/vi/" + id + "/mqdefault.jpg"
}

func youtubeWatch(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}
