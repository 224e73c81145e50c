package recipe

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Registry_Plan(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		recipes   []Recipe
		target    string
		wantOrder []string
		assertion assert.ErrorAssertionFunc
	}{
		{
			name:      "no needs",
			recipes:   []Recipe{{Name: "build"}},
			target:    "build",
			wantOrder: []string{"build"},
			assertion: assert.NoError,
		},
		{
			name: "aggregate preserves declared order",
			recipes: []Recipe{
				{Name: "build"},
				{Name: "test"},
				{Name: "lint"},
				{Name: "fmt-check"},
				{Name: "all", Needs: []string{"build", "test", "lint", "fmt-check"}},
			},
			target:    "all",
			wantOrder: []string{"build", "test", "lint", "fmt-check", "all"},
			assertion: assert.NoError,
		},
		{
			name: "declared order differs from registration order",
			recipes: []Recipe{
				{Name: "a"},
				{Name: "b"},
				{Name: "c"},
				{Name: "top", Needs: []string{"c", "a", "b"}},
			},
			target:    "top",
			wantOrder: []string{"c", "a", "b", "top"},
			assertion: assert.NoError,
		},
		{
			name: "diamond runs shared need once",
			recipes: []Recipe{
				{Name: "base"},
				{Name: "left", Needs: []string{"base"}},
				{Name: "right", Needs: []string{"base"}},
				{Name: "top", Needs: []string{"left", "right"}},
			},
			target:    "top",
			wantOrder: []string{"base", "left", "right", "top"},
			assertion: assert.NoError,
		},
		{
			name: "only reachable recipes planned",
			recipes: []Recipe{
				{Name: "unrelated"},
				{Name: "base"},
				{Name: "top", Needs: []string{"base"}},
			},
			target:    "top",
			wantOrder: []string{"base", "top"},
			assertion: assert.NoError,
		},
		{
			name:    "unknown recipe",
			recipes: []Recipe{{Name: "build"}},
			target:  "nope",
			assertion: func(t assert.TestingT, err error, msgAndArgs ...any) bool {
				return assert.ErrorContains(t, err, `unknown recipe "nope"`, msgAndArgs...)
			},
		},
		{
			name:    "unknown need",
			recipes: []Recipe{{Name: "top", Needs: []string{"ghost"}}},
			target:  "top",
			assertion: func(t assert.TestingT, err error, msgAndArgs ...any) bool {
				return assert.ErrorContains(t, err, `needs unknown recipe "ghost"`, msgAndArgs...)
			},
		},
		{
			name: "cycle",
			recipes: []Recipe{
				{Name: "a", Needs: []string{"b"}},
				{Name: "b", Needs: []string{"a"}},
			},
			target: "a",
			assertion: func(t assert.TestingT, err error, msgAndArgs ...any) bool {
				return assert.ErrorContains(t, err, "dependency cycle", msgAndArgs...)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := NewRegistry()
			for _, rec := range tt.recipes {
				require.NoError(t, r.Add(rec))
			}
			plan, err := r.Plan(tt.target)
			if tt.assertion(t, err) && err == nil {
				names := make([]string, 0, len(plan))
				for _, rec := range plan {
					names = append(names, rec.Name)
				}
				assert.Equal(t, tt.wantOrder, names)
			}
		})
	}
}

func Test_Registry_Run_shortCircuits(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	var ran []string
	record := func(name string, err error) func(context.Context, []string) error {
		return func(context.Context, []string) error {
			ran = append(ran, name)
			return err
		}
	}
	boom := errors.New("boom")
	require.NoError(t, r.Add(Recipe{Name: "build", Run: record("build", nil)}))
	require.NoError(t, r.Add(Recipe{Name: "test", Run: record("test", boom)}))
	require.NoError(t, r.Add(Recipe{Name: "lint", Run: record("lint", nil)}))
	require.NoError(t, r.Add(Recipe{Name: "all", Needs: []string{"build", "test", "lint"}}))

	err := r.Run(context.Background(), "all", nil)
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "recipe test")
	assert.Equal(t, []string{"build", "test"}, ran, "lint should not run after test fails")
}

func Test_Registry_Run_argForwarding(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	got := map[string][]string{}
	record := func(name string) func(context.Context, []string) error {
		return func(_ context.Context, args []string) error {
			got[name] = args
			return nil
		}
	}
	require.NoError(t, r.Add(Recipe{Name: "dep", Run: record("dep"), DefaultArgs: []string{"x"}}))
	require.NoError(t, r.Add(Recipe{
		Name: "top", Needs: []string{"dep"}, Run: record("top"), ForwardsArgs: true,
	}))

	require.NoError(t, r.Run(context.Background(), "top", []string{"a", "b"}))
	assert.Equal(t, []string{"a", "b"}, got["top"], "target gets the caller's args")
	assert.Equal(t, []string{"x"}, got["dep"], "dependencies get their default args")

	clear(got)
	require.NoError(t, r.Run(context.Background(), "dep", nil))
	assert.Equal(t, []string{"x"}, got["dep"], "defaults apply when no args given")

	clear(got)
	require.NoError(t, r.Run(context.Background(), "dep", []string{"y"}))
	assert.Equal(t, []string{"y"}, got["dep"], "explicit args beat defaults")
}

func Test_Registry_Add(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	require.NoError(t, r.Add(Recipe{Name: "build"}))
	assert.ErrorContains(t, r.Add(Recipe{Name: "build"}), "already registered")
	assert.ErrorContains(t, r.Add(Recipe{Name: "Not Valid"}), "invalid recipe name")
	assert.ErrorContains(t, r.Add(Recipe{Name: ""}), "invalid recipe name")
	assert.ErrorContains(t, r.Add(Recipe{Name: "ok", Aliases: []string{"Not Valid"}}),
		"invalid recipe alias")

	require.NoError(t, r.Add(Recipe{Name: "fmt-check"}))
	names := make([]string, 0, 2)
	for _, rec := range r.Recipes() {
		names = append(names, rec.Name)
	}
	assert.Equal(t, []string{"build", "fmt-check"}, names, "registration order preserved")
}

func Test_ValidName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want bool
	}{
		{"build", true},
		{"fmt-check", true},
		{"a2b", true},
		{"", false},
		{"2fast", false},
		{"-lead", false},
		{"Has Space", false},
		{"UPPER", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidName(tt.in), "name %q", tt.in)
	}
}
