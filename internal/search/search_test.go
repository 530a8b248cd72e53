package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/olegiv/ocms-blog/internal/model"
)

func post(id, title string, categoryID string, tags ...string) model.Post {
	return model.Post{
		ID:         id,
		Title:      title,
		Categories: []model.Category{{ID: categoryID}},
		Tags:       tags,
		Published:  true,
	}
}

func ids(posts []model.Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter_Conjunction(t *testing.T) {
	posts := []model.Post{
		post("1", "AI Tool", "c1", "ai"),
		post("2", "Design Guide", "c2", "ux"),
	}

	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{"term and category", Query{SearchTerm: "ai", CategoryID: "c1"}, []string{"1"}},
		{"category only", Query{SearchTerm: "", CategoryID: "c2"}, []string{"2"}},
		{"term excluded by category", Query{SearchTerm: "guide", CategoryID: "c1"}, []string{}},
		{"all categories", Query{CategoryID: CategoryAll}, []string{"1", "2"}},
		{"empty query", Query{}, []string{"1", "2"}},
		{"case insensitive", Query{SearchTerm: "DESIGN", CategoryID: CategoryAll}, []string{"2"}},
		{"no match", Query{SearchTerm: "kubernetes", CategoryID: CategoryAll}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(posts, tt.query)))
		})
	}
}

func TestFilter_MatchFields(t *testing.T) {
	withExcerpt := post("ex", "Nothing", "c1")
	withExcerpt.Excerpt = "A deep dive into Golang channels"

	posts := []model.Post{
		post("title", "Golang Tips", "c1"),
		withExcerpt,
		post("tag", "Other", "c1", "web development", "golang"),
		post("none", "Unrelated", "c1", "misc"),
	}

	got := Filter(posts, Query{SearchTerm: "golang", CategoryID: CategoryAll})
	assert.Equal(t, []string{"title", "ex", "tag"}, ids(got))

	got = Filter(posts, Query{SearchTerm: "develop"})
	assert.Equal(t, []string{"tag"}, ids(got), "tags match by substring")
}

func TestFilter_ContentIsNotSearched(t *testing.T) {
	p := post("1", "Title", "c1")
	p.Content = "secret word in body"

	assert.Empty(t, Filter([]model.Post{p}, Query{SearchTerm: "secret"}))
}

func TestFilter_UnpublishedExcluded(t *testing.T) {
	draft := post("draft", "AI Tool", "c1", "ai")
	draft.Published = false

	posts := []model.Post{draft, post("live", "AI Tool", "c1", "ai")}

	for _, q := range []Query{
		{},
		{CategoryID: CategoryAll},
		{SearchTerm: "ai", CategoryID: "c1"},
		{CategoryID: "c1"},
	} {
		assert.Equal(t, []string{"live"}, ids(Filter(posts, q)))
	}
}

func TestFilter_StableOrder(t *testing.T) {
	posts := []model.Post{
		post("c", "Go C", "x"),
		post("a", "Go A", "x"),
		post("b", "Go B", "x"),
	}

	assert.Equal(t, []string{"c", "a", "b"}, ids(Filter(posts, Query{SearchTerm: "go"})))
}

func TestFilter_MultipleCategories(t *testing.T) {
	p := post("1", "Both", "c1")
	p.Categories = append(p.Categories, model.Category{ID: "c2"})

	assert.Len(t, Filter([]model.Post{p}, Query{CategoryID: "c2"}), 1)
	assert.Empty(t, Filter([]model.Post{p}, Query{CategoryID: "c3"}))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	posts := []model.Post{post("1", "One", "c1"), post("2", "Two", "c1")}
	posts[1].Published = false

	_ = Filter(posts, Query{})

	assert.Len(t, posts, 2)
	assert.Equal(t, "2", posts[1].ID)
	assert.NotNil(t, Filter(nil, Query{}))
}
