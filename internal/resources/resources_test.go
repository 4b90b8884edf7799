package resources

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(rs []LearningResource) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.ID
	}
	return out
}

func TestFilterAllReturnsEverythingInOrder(t *testing.T) {
	rs := Catalog()
	got := Filter(rs, AllCategories, "")
	assert.Equal(t, ids(rs), ids(got))
}

func TestFilter(t *testing.T) {
	rs := []LearningResource{
		{ID: "a", Title: "Fractions with Rotis", Category: "Math"},
		{ID: "b", Title: "Quiet Corner Routine", Category: "Management"},
		{ID: "c", Title: "Counting Songs", Category: "Math"},
		{ID: "d", Title: "math games outdoors", Category: "Activities"},
	}

	tests := []struct {
		name     string
		category string
		search   string
		want     []string
	}{
		{"category exact", "Math", "", []string{"a", "c"}},
		{"category is case sensitive", "math", "", []string{}},
		{"search ignores case", AllCategories, "MATH", []string{"d"}},
		{"search within category", "Math", "count", []string{"c"}},
		{"search trims spaces", AllCategories, "  routine ", []string{"b"}},
		{"no match", "Management", "fractions", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(rs, tt.category, tt.search)))
		})
	}
}

func TestCategories(t *testing.T) {
	rs := []LearningResource{
		{Category: "Pedagogy"}, {Category: "Math"}, {Category: "Pedagogy"}, {Category: ""},
	}
	assert.Equal(t, []string{"All", "Pedagogy", "Math"}, Categories(rs))
}

func TestCatalogIsACopy(t *testing.T) {
	c := Catalog()
	c[0].Title = "changed"
	assert.Equal(t, "5 Fun Classroom Management Games", Catalog()[0].Title)
	assert.Equal(t, "https://img.youtube.com/vi/2iOLK5xOaYM/mqdefault.jpg", Catalog()[0].Thumbnail)
}

type recordingOpener struct{ urls []string }

func (r *recordingOpener) Open(_ context.Context, url string) error {
	r.urls = append(r.urls, url)
	return nil
}

func TestOpenResource(t *testing.T) {
	o := &recordingOpener{}

	require.NoError(t, OpenResource(context.Background(), o, Catalog()[1]))
	assert.Equal(t, []string{"https://www.youtube.com/watch?v=n0FZhQ_GkKw"}, o.urls)

	err := OpenResource(context.Background(), o, LearningResource{ID: "x"})
	assert.True(t, errors.Is(err, ErrNoLink))
}

func TestBrowserCommand(t *testing.T) {
	name, args := browserCommand("linux", "u")
	assert.Equal(t, "xdg-open", name)
	assert.Equal(t, []string{"u"}, args)

	name, _ = browserCommand("darwin", "u")
	assert.Equal(t, "open", name)
}
