package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/olegiv/ocms-blog/internal/blog"
	"github.com/olegiv/ocms-blog/internal/cli"
	"github.com/olegiv/ocms-blog/internal/config"
	"github.com/olegiv/ocms-blog/internal/model"
	"github.com/olegiv/ocms-blog/internal/store"
	"github.com/olegiv/ocms-blog/internal/testutil"
)

var fixtureStart = time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC)

type fixture struct {
	t     *testing.T
	deps  *cli.Deps
	repo  *blog.Repository
	clock *testutil.Clock
	in    *bytes.Buffer
	err   *bytes.Buffer
}

// newFixture returns a CLI wired to an in-memory repository. When seed is
// true the demo data is loaded first.
func newFixture(t *testing.T, seed bool) *fixture {
	t.Helper()

	clock := testutil.NewClock(fixtureStart)
	logger := testutil.TestLoggerSilent()
	repo := blog.New(store.NewMemoryStore(), blog.Options{Clock: clock.Now, Logger: logger})

	if seed {
		_, err := repo.InitializeData(context.Background())
		require.NoError(t, err)
	}

	deps := &cli.Deps{
		Repo:   repo,
		Logger: logger,
		Config: &config.Config{BackupDir: t.TempDir(), BackupSchedule: "@daily"},
	}

	return &fixture{
		t:     t,
		deps:  deps,
		repo:  repo,
		clock: clock,
		in:    &bytes.Buffer{},
		err:   &bytes.Buffer{},
	}
}

func (f *fixture) run(args ...string) (string, error) {
	f.t.Helper()

	out := &bytes.Buffer{}
	cmd := cli.NewRootCmd(f.deps)
	cmd.SetArgs(args)
	cmd.SetIn(f.in)
	cmd.SetOut(out)
	cmd.SetErr(f.err)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (f *fixture) mustRun(args ...string) string {
	f.t.Helper()

	out, err := f.run(args...)
	require.NoError(f.t, err, "blogctl %s", strings.Join(args, " "))
	return out
}

func (f *fixture) userByName(name string) model.User {
	f.t.Helper()

	users, err := f.repo.ListUsers(context.Background())
	require.NoError(f.t, err)
	for _, u := range users {
		if u.Name == name {
			return u
		}
	}
	f.t.Fatalf("user %q not found", name)
	return model.User{}
}

func (f *fixture) categoryBySlug(slug string) model.Category {
	f.t.Helper()

	c, err := f.repo.GetCategoryBySlug(context.Background(), slug)
	require.NoError(f.t, err)
	require.NotNil(f.t, c, "category %q", slug)
	return *c
}
