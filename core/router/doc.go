// Package router provides a segment trie that resolves a request method and
// path to every registered route that matches it, ordered from the most to
// the least specific. Handlers are opaque values of any type; the router
// stores and returns them but never calls them.
//
// # Patterns
//
// Patterns are split on '/'. Each segment is one of:
//
//	/users              static text, exact match
//	/users/:id          param, any non-empty segment
//	/users/:id{[0-9]+}  param constrained by a regexp anchored to the segment
//	/items/:id?         optional param, last segment only
//	/api/*              wildcard, zero or more trailing segments
//
// Compile errors are reported by Add and leave the router unchanged:
//
//	r := router.New[http.Handler]()
//	if err := r.Get("/users/:id{[0-9]+}", showUser); err != nil {
//		log.Fatal(err)
//	}
//
// # Matching
//
// Match returns all hits, which gives middleware-chain semantics:
//
//	r.All("*", logRequests)
//	r.Get("/api/*", requireAuth)
//	r.Get("/api/users/:id", showUser)
//
//	for _, hit := range r.Match("GET", "/api/users/42") {
//		// showUser (id=42), requireAuth (*=users/42), logRequests (*=api/users/42)
//	}
//
// Hits are ordered by specificity, comparing segments left to right with
// static > regexp > param > optional > wildcard. At equal specificity a
// route registered for the request method precedes one registered with
// MethodAll, and remaining ties keep registration order.
//
// A wildcard binds the matched tail under WildcardKey. A wildcard matching
// zero segments and an optional param with no segment bind nothing, so
// Params.Get reports them as absent.
//
// # Concurrency
//
// Routes are meant to be registered once at startup. Match is read-only and
// safe for concurrent use after registration has finished; Add is not.
package router
