package router_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/trierouter/core/router"
)

// describe renders compiled segments as "kind:value" strings for comparison.
func describe(segments []router.Segment) []string {
	out := make([]string, len(segments))
	for i, s := range segments {
		out[i] = s.Kind.String() + ":" + s.String()
	}
	return out
}

func TestCompile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern  string
		expected []string
	}{
		{"/", []string{}},
		{"", []string{}},
		{"/api/users", []string{"static:api", "static:users"}},
		{"api/users/", []string{"static:api", "static:users"}},
		{"/api/users/:id", []string{"static:api", "static:users", "param::id"}},
		{"/api/users/:id{[0-9]+}", []string{"static:api", "static:users", "regexp::id{[0-9]+}"}},
		{"/api/items/:id?", []string{"static:api", "static:items", "optional::id?"}},
		{"/api/*", []string{"static:api", "wildcard:*"}},
		{"*", []string{"wildcard:*"}},
		{"/users/:user_id/posts/:post_id", []string{"static:users", "param::user_id", "static:posts", "param::post_id"}},
		{"/files/a*b", []string{"static:files", "static:a*b"}},
		{"/a//b", []string{"static:a", "static:", "static:b"}},
		{
			"/api/items/:uuid{[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}}",
			[]string{"static:api", "static:items", "regexp::uuid{[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}}"},
		},
		{"/dates/:d{\\d{4}/\\d{2}}", []string{"static:dates", "regexp::d{\\d{4}/\\d{2}}"}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			t.Parallel()
			segments, err := router.Compile(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, describe(segments))
		})
	}
}

func TestCompileParamNames(t *testing.T) {
	t.Parallel()

	segments := router.MustCompile("/users/:user_id/posts/:post_id{[0-9]+}/:tab?")
	var names []string
	for _, s := range segments {
		if s.Binds() {
			names = append(names, s.Name)
		}
	}
	assert.Equal(t, []string{"user_id", "post_id", "tab"}, names)
	assert.Equal(t, "[0-9]+", segments[3].Expr)
}

func TestCompileErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		err     error
		index   int
	}{
		{"wildcard in the middle", "/api/*/users", router.ErrInvalidWildcardPosition, 1},
		{"wildcard first", "*/users", router.ErrInvalidWildcardPosition, 0},
		{"optional in the middle", "/api/:id?/users", router.ErrInvalidOptionalPosition, 1},
		{"duplicate param", "/users/:id/posts/:id", router.ErrDuplicateParamName, 3},
		{"duplicate regexp and param", "/users/:id{[0-9]+}/:id", router.ErrDuplicateParamName, 2},
		{"duplicate optional", "/users/:id/:id?", router.ErrDuplicateParamName, 2},
		{"invalid regexp", "/users/:id{[0-9+}", router.ErrInvalidPattern, 1},
		{"empty regexp", "/users/:id{}", router.ErrInvalidPattern, 1},
		{"regexp not closing segment", "/users/:id{[0-9]+}x", router.ErrInvalidPattern, 1},
		{"missing closing brace", "/users/:id{[0-9]+", router.ErrInvalidPattern, -1},
		{"stray closing brace", "/users/id}", router.ErrInvalidPattern, -1},
		{"empty param name", "/users/:", router.ErrInvalidPattern, 1},
		{"empty optional name", "/users/:?", router.ErrInvalidPattern, 1},
		{"empty regexp param name", "/users/:{[0-9]+}", router.ErrInvalidPattern, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			segments, err := router.Compile(tt.pattern)
			require.Error(t, err)
			assert.Nil(t, segments)
			assert.ErrorIs(t, err, tt.err)

			var cerr *router.CompileError
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, tt.pattern, cerr.Pattern)
			assert.Equal(t, tt.index, cerr.Index)
			assert.Contains(t, cerr.Error(), tt.pattern)
		})
	}
}

func TestMustCompilePanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		router.MustCompile("/api/*/users")
	})
	assert.NotPanics(t, func() {
		router.MustCompile("/api/*")
	})
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "static", router.KindStatic.String())
	assert.Equal(t, "regexp", router.KindRegexp.String())
	assert.Equal(t, "param", router.KindParam.String())
	assert.Equal(t, "optional", router.KindOptional.String())
	assert.Equal(t, "wildcard", router.KindWildcard.String())
	assert.Equal(t, "kind(9)", router.Kind(9).String())
}
