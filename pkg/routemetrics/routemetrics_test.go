package routemetrics_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/trierouter/core/router"
	"github.com/dmitrymomot/trierouter/pkg/routemetrics"
)

func TestInstrumentedMatch(t *testing.T) {
	t.Parallel()

	r := router.New[string]()
	require.NoError(t, r.All("*", "all"))
	require.NoError(t, r.Get("/api/users/:id", "user"))

	reg := prometheus.NewRegistry()
	m := routemetrics.New[string](r, routemetrics.WithRegistry(reg), routemetrics.WithSubsystem("api"))

	hits := m.Match(http.MethodGet, "/api/users/1")
	assert.Equal(t, r.Match(http.MethodGet, "/api/users/1"), hits)
	m.Match(http.MethodGet, "/other")

	empty := router.New[string]()
	em := routemetrics.New[string](empty, routemetrics.WithRegistry(prometheus.NewRegistry()))
	assert.Empty(t, em.Match(http.MethodGet, "/"))

	expected := `
# HELP trierouter_api_matches_total Total number of route matches by request method and result
# TYPE trierouter_api_matches_total counter
trierouter_api_matches_total{method="GET",result="hit"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "trierouter_api_matches_total"))

	m.Match(http.MethodPost, "/nothing/here")
	n, err := testutil.GatherAndCount(reg, "trierouter_api_matches_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestInstrumentedMiss(t *testing.T) {
	t.Parallel()

	r := router.New[string]()
	require.NoError(t, r.Get("/api/users", "users"))

	reg := prometheus.NewRegistry()
	m := routemetrics.New[string](r, routemetrics.WithRegistry(reg), routemetrics.WithNamespace("test"))

	assert.Empty(t, m.Match(http.MethodGet, "/nope"))
	m.Match(http.MethodGet, "/api/users")

	expected := `
# HELP test_matches_total Total number of route matches by request method and result
# TYPE test_matches_total counter
test_matches_total{method="GET",result="hit"} 1
test_matches_total{method="GET",result="miss"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "test_matches_total"))
	n, err := testutil.GatherAndCount(reg, "test_match_hits", "test_match_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	r := router.New[string]()
	routemetrics.New[string](r, routemetrics.WithRegistry(reg))
	assert.Panics(t, func() {
		routemetrics.New[string](r, routemetrics.WithRegistry(reg), routemetrics.WithBuckets(prometheus.DefBuckets))
	})
}
