package router

import (
	"slices"
	"strings"
)

// Hit is a single match result.
type Hit[H any] struct {
	Handler H
	Params  Params
	Method  string // method the route was registered with, MethodAll included
	Pattern string // pattern the route was registered with
}

// frame is one pending step of the traversal.
type frame[H any] struct {
	n     *node[H]
	depth int // pattern segments consumed, equals the tree level of n
	pos   int // path segments consumed
	value string
	bound bool
}

// capture is the value a tree level bound on the current branch.
type capture struct {
	value string
	bound bool
}

type candidate[H any] struct {
	rt     *route[H]
	params Params
}

// Match returns every route matching method and path, most specific first.
//
// Candidates are ordered by specificity rank, then exact method before
// MethodAll, then registration order. An unmatched path yields nil.
func (r *Router[H]) Match(method, path string) []Hit[H] {
	var found []candidate[H]
	r.traverse(path, func(n *node[H], caps []capture) {
		if n.hasRoutes(method) {
			found = n.collect(found, method, caps)
		}
	})
	if len(found) == 0 {
		return nil
	}

	slices.SortStableFunc(found, func(a, b candidate[H]) int {
		if c := b.rt.rank.compare(a.rt.rank); c != 0 {
			return c
		}
		if ea, eb := a.rt.method != MethodAll, b.rt.method != MethodAll; ea != eb {
			if ea {
				return -1
			}
			return 1
		}
		return a.rt.order - b.rt.order
	})

	hits := make([]Hit[H], len(found))
	for i, c := range found {
		hits[i] = Hit[H]{
			Handler: c.rt.handler,
			Params:  c.params,
			Method:  c.rt.method,
			Pattern: c.rt.pattern,
		}
	}
	return hits
}

// Lookup returns the most specific match for method and path.
func (r *Router[H]) Lookup(method, path string) (Hit[H], bool) {
	hits := r.Match(method, path)
	if len(hits) == 0 {
		return Hit[H]{}, false
	}
	return hits[0], true
}

// Allowed returns the sorted set of methods registered explicitly for a
// route matching path. MethodAll registrations are not listed.
func (r *Router[H]) Allowed(path string) []string {
	var methods []string
	r.traverse(path, func(n *node[H], _ []capture) {
		for m, rts := range n.routes {
			if m == MethodAll || len(rts) == 0 || slices.Contains(methods, m) {
				continue
			}
			methods = append(methods, m)
		}
	})
	slices.Sort(methods)
	return methods
}

// traverse explores the tree depth first with an explicit stack and calls
// visit for every node reached with the whole path consumed. Children are
// pushed in reverse specificity order so static branches are explored first.
func (r *Router[H]) traverse(path string, visit func(n *node[H], caps []capture)) {
	segs := splitPath(path)
	stack := make([]frame[H], 1, 8)
	stack[0] = frame[H]{n: r.root}
	caps := make([]capture, 0, len(segs)+1)

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Frames below the parent level belong to already finished branches.
		if f.depth > 0 {
			caps = append(caps[:f.depth-1], capture{value: f.value, bound: f.bound})
		} else {
			caps = caps[:0]
		}

		if f.pos == len(segs) && len(f.n.routes) > 0 {
			visit(f.n, caps)
		}
		stack = f.n.expand(stack, segs, f.depth, f.pos)
	}
}

// expand pushes every child of n that accepts the path at pos.
func (n *node[H]) expand(stack []frame[H], segs []string, depth, pos int) []frame[H] {
	next := depth + 1
	rest := len(segs) - pos

	if n.wildcard != nil {
		f := frame[H]{n: n.wildcard, depth: next, pos: len(segs)}
		if rest > 0 {
			f.value, f.bound = strings.Join(segs[pos:], "/"), true
		}
		stack = append(stack, f)
	}

	if n.optional != nil {
		switch {
		case rest == 0:
			stack = append(stack, frame[H]{n: n.optional, depth: next, pos: pos})
		case rest == 1 && segs[pos] != "":
			stack = append(stack, frame[H]{n: n.optional, depth: next, pos: pos + 1, value: segs[pos], bound: true})
		}
	}

	if rest == 0 {
		return stack
	}
	seg := segs[pos]

	if n.param != nil && seg != "" {
		stack = append(stack, frame[H]{n: n.param, depth: next, pos: pos + 1, value: seg, bound: true})
	}

	if seg != "" {
		for i := len(n.regexps) - 1; i >= 0; i-- {
			c := n.regexps[i]
			if c.seg.rex.MatchString(seg) {
				stack = append(stack, frame[H]{n: c, depth: next, pos: pos + 1, value: seg, bound: true})
			}
		}
	}

	if c, ok := n.static[seg]; ok {
		stack = append(stack, frame[H]{n: c, depth: next, pos: pos + 1})
	}

	return stack
}

// collect appends the routes at n serving method, binding parameter names
// from each route's own segments.
func (n *node[H]) collect(found []candidate[H], method string, caps []capture) []candidate[H] {
	for _, rt := range n.routes[method] {
		found = append(found, candidate[H]{rt: rt, params: bindParams(rt.segments, caps)})
	}
	if method != MethodAll {
		for _, rt := range n.routes[MethodAll] {
			found = append(found, candidate[H]{rt: rt, params: bindParams(rt.segments, caps)})
		}
	}
	return found
}

func bindParams(segments []Segment, caps []capture) Params {
	var ps Params
	for i, seg := range segments {
		if !seg.Binds() || i >= len(caps) || !caps[i].bound {
			continue
		}
		if ps == nil {
			ps = make(Params, 0, len(segments)-i)
		}
		ps = append(ps, Param{Key: seg.key(), Value: caps[i].value})
	}
	return ps
}
