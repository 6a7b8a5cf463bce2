package router

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/trierouter/core/logger"
)

// MethodAll is the reserved method that matches every request method.
const MethodAll = "ALL"

// Route describes a registered route.
type Route struct {
	Method  string
	Pattern string
}

// Router indexes routes by method and pattern and resolves requests to
// every matching handler.
//
// Register all routes before serving: Add must not run concurrently with
// Add or Match. Match never mutates the router, so any number of
// goroutines may call it once registration is complete.
type Router[H any] struct {
	root   *node[H]
	routes []*route[H]
	log    *slog.Logger
}

// New creates an empty router.
func New[H any](opts ...Option) *Router[H] {
	cfg := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Router[H]{
		root: &node[H]{},
		log:  cfg.logger.With(logger.Component("router")),
	}
}

// Add registers handler for method and pattern. Method is case sensitive;
// MethodAll registers the handler for every method.
// A pattern that fails to compile leaves the router unchanged.
func (r *Router[H]) Add(method, pattern string, handler H) error {
	segments, err := Compile(pattern)
	if err != nil {
		r.log.Warn("route rejected",
			logger.Method(method),
			logger.Pattern(pattern),
			logger.Error(err),
		)
		return err
	}

	rt := &route[H]{
		method:   method,
		pattern:  pattern,
		segments: segments,
		handler:  handler,
		order:    len(r.routes),
		rank:     rankOf(segments),
	}
	r.root.insert(rt)
	r.routes = append(r.routes, rt)

	r.log.Debug("route registered",
		logger.Method(method),
		logger.Pattern(pattern),
		logger.Count("segments", len(segments)),
	)
	return nil
}

// MustAdd is like Add but panics if the pattern cannot be compiled.
// Useful for route tables declared at startup.
func (r *Router[H]) MustAdd(method, pattern string, handler H) {
	if err := r.Add(method, pattern, handler); err != nil {
		panic(err)
	}
}

// Get registers a handler for GET requests.
func (r *Router[H]) Get(pattern string, handler H) error {
	return r.Add(http.MethodGet, pattern, handler)
}

// Post registers a handler for POST requests.
func (r *Router[H]) Post(pattern string, handler H) error {
	return r.Add(http.MethodPost, pattern, handler)
}

// Put registers a handler for PUT requests.
func (r *Router[H]) Put(pattern string, handler H) error {
	return r.Add(http.MethodPut, pattern, handler)
}

// Patch registers a handler for PATCH requests.
func (r *Router[H]) Patch(pattern string, handler H) error {
	return r.Add(http.MethodPatch, pattern, handler)
}

// Delete registers a handler for DELETE requests.
func (r *Router[H]) Delete(pattern string, handler H) error {
	return r.Add(http.MethodDelete, pattern, handler)
}

// Head registers a handler for HEAD requests.
func (r *Router[H]) Head(pattern string, handler H) error {
	return r.Add(http.MethodHead, pattern, handler)
}

// Options registers a handler for OPTIONS requests.
func (r *Router[H]) Options(pattern string, handler H) error {
	return r.Add(http.MethodOptions, pattern, handler)
}

// All registers a handler for every method.
func (r *Router[H]) All(pattern string, handler H) error {
	return r.Add(MethodAll, pattern, handler)
}

// Routes returns the registered routes in registration order.
func (r *Router[H]) Routes() []Route {
	rts := make([]Route, len(r.routes))
	for i, rt := range r.routes {
		rts[i] = Route{Method: rt.method, Pattern: rt.pattern}
	}
	return rts
}

// Len returns the number of registered routes.
func (r *Router[H]) Len() int {
	return len(r.routes)
}
