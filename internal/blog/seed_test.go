package blog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/ocms-blog/internal/model"
	"github.com/olegiv/ocms-blog/internal/store"
)

func TestInitializeData_Idempotent(t *testing.T) {
	repo, clock := newTestRepo(t, nil, "")
	ctx := context.Background()

	seeded, err := repo.InitializeData(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)

	first, err := repo.Snapshot(ctx)
	require.NoError(t, err)

	clock.Advance(time.Hour)
	seeded, err = repo.InitializeData(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)

	second, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Len(t, second.Users, 2)
	assert.Len(t, second.Categories, 3)
	assert.Len(t, second.Posts, 3)
}

func TestInitializeData_SkipsWhenPostsExist(t *testing.T) {
	repo, _ := newTestRepo(t, nil, "")
	ctx := context.Background()

	_, err := repo.SavePost(ctx, samplePost("p1", "Mine", "mine"))
	require.NoError(t, err)

	seeded, err := repo.InitializeData(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users, "no seed users when posts already exist")
}

func TestInitializeData_Content(t *testing.T) {
	repo, _ := newTestRepo(t, nil, "")
	ctx := context.Background()

	_, err := repo.InitializeData(ctx)
	require.NoError(t, err)

	s, err := repo.Snapshot(ctx)
	require.NoError(t, err)

	assert.Equal(t, "John Doe", s.Users[0].Name)
	assert.Equal(t, model.RoleAdmin, s.Users[0].Role)
	assert.Equal(t, "Jane Smith", s.Users[1].Name)
	assert.Equal(t, model.RoleAuthor, s.Users[1].Role)

	var slugs []string
	for _, c := range s.Categories {
		slugs = append(slugs, c.Slug)
	}
	assert.Equal(t, []string{"technology", "startups", "design"}, slugs)

	wantPosts := []struct {
		slug     string
		age      time.Duration
		author   string
		category string
	}{
		{"future-of-web-development", 7 * day, "John Doe", "technology"},
		{"building-successful-startup", 3 * day, "Jane Smith", "startups"},
		{"design-principles-better-ux", 1 * day, "Jane Smith", "design"},
	}
	require.Len(t, s.Posts, len(wantPosts))
	for i, want := range wantPosts {
		p := s.Posts[i]
		assert.Equal(t, want.slug, p.Slug)
		assert.Equal(t, CalculateReadTime(p.Content), p.ReadTime, "post %d readTime", i)
		assert.True(t, p.Published)
		assert.True(t, p.CreatedAt.Equal(testStart.Add(-want.age)), "post %d createdAt", i)
		assert.True(t, p.UpdatedAt.Equal(p.CreatedAt))
		assert.Equal(t, want.author, p.Author.Name)
		require.Len(t, p.Categories, 1)
		assert.Equal(t, want.category, p.Categories[0].Slug)
	}

	// Post snapshots carry the same ids as the stored records.
	assert.Equal(t, s.Users[0].ID, s.Posts[0].Author.ID)
	assert.Equal(t, s.Categories[2].ID, s.Posts[2].Categories[0].ID)
}

// orderKV records the order of Set calls.
type orderKV struct {
	*store.MemoryStore
	order []string
}

func (o *orderKV) Set(ctx context.Context, key string, value []byte) error {
	o.order = append(o.order, key)
	return o.MemoryStore.Set(ctx, key, value)
}

func TestInitializeData_WritesPostsLast(t *testing.T) {
	kv := &orderKV{MemoryStore: store.NewMemoryStore()}
	repo, _ := newTestRepo(t, kv, "")

	_, err := repo.InitializeData(context.Background())
	require.NoError(t, err)

	require.Len(t, kv.order, 3)
	assert.Equal(t, KeyPosts, kv.order[2])
}

func TestReset(t *testing.T) {
	repo, _ := newTestRepo(t, nil, "")
	ctx := context.Background()

	_, err := repo.InitializeData(ctx)
	require.NoError(t, err)
	_, err = repo.SavePost(ctx, samplePost("extra", "Extra", "extra"))
	require.NoError(t, err)
	_, err = repo.SaveUser(ctx, model.User{ID: "extra", Name: "Extra"})
	require.NoError(t, err)

	require.NoError(t, repo.Reset(ctx))

	s, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, s.Users, 2)
	assert.Len(t, s.Categories, 3)
	assert.Len(t, s.Posts, 3)

	extra, err := repo.GetPostByID(ctx, "extra")
	require.NoError(t, err)
	assert.Nil(t, extra)
}

func TestRestore(t *testing.T) {
	repo, _ := newTestRepo(t, nil, "")
	ctx := context.Background()

	created := testStart.Add(-48 * time.Hour)
	p := samplePost("p1", "Old", "old")
	p.CreatedAt = created
	p.UpdatedAt = created

	require.NoError(t, repo.Restore(ctx, Snapshot{
		Users:      []model.User{{ID: "u1", Name: "Ann"}},
		Categories: []model.Category{{ID: "c1", Name: "Tech", Slug: "tech"}},
		Posts:      []model.Post{p},
	}))

	got, err := repo.GetPostByID(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.CreatedAt.Equal(created), "restore keeps timestamps")

	s, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, s.Users, 1)
	assert.Len(t, s.Categories, 1)
}
