package router

// node is a point in the routing tree. Each tree level corresponds to one
// compiled pattern segment.
type node[H any] struct {
	// static children keyed by literal segment text
	static map[string]*node[H]

	// regexp children, one per distinct expression, in insertion order
	regexps []*node[H]

	// dynamic children, at most one of each kind
	param    *node[H]
	optional *node[H]
	wildcard *node[H]

	// routes terminating at this node, keyed by method (MethodAll included)
	routes map[string][]*route[H]

	// segment this node was created for; names are taken from routes
	seg Segment
}

// route is a registration record.
type route[H any] struct {
	method   string
	pattern  string
	segments []Segment
	handler  H
	order    int
	rank     rank
}

// insert walks segments from n, creating missing children, and attaches rt
// to the terminal node.
func (n *node[H]) insert(rt *route[H]) *node[H] {
	cur := n
	for _, seg := range rt.segments {
		cur = cur.child(seg)
	}
	if cur.routes == nil {
		cur.routes = make(map[string][]*route[H])
	}
	cur.routes[rt.method] = append(cur.routes[rt.method], rt)
	return cur
}

// child returns the child for seg, creating it if absent.
// Dynamic children of the same kind are shared regardless of param name;
// regexp children are shared only when the expression is identical.
func (n *node[H]) child(seg Segment) *node[H] {
	switch seg.Kind {
	case KindStatic:
		if c, ok := n.static[seg.Text]; ok {
			return c
		}
		if n.static == nil {
			n.static = make(map[string]*node[H])
		}
		c := &node[H]{seg: seg}
		n.static[seg.Text] = c
		return c

	case KindRegexp:
		for _, c := range n.regexps {
			if c.seg.Expr == seg.Expr {
				return c
			}
		}
		c := &node[H]{seg: seg}
		n.regexps = append(n.regexps, c)
		return c

	case KindParam:
		if n.param == nil {
			n.param = &node[H]{seg: seg}
		}
		return n.param

	case KindOptional:
		if n.optional == nil {
			n.optional = &node[H]{seg: seg}
		}
		return n.optional

	default:
		if n.wildcard == nil {
			n.wildcard = &node[H]{seg: seg}
		}
		return n.wildcard
	}
}

// hasRoutes reports whether a request with method can terminate here.
func (n *node[H]) hasRoutes(method string) bool {
	if len(n.routes) == 0 {
		return false
	}
	return len(n.routes[method]) > 0 || len(n.routes[MethodAll]) > 0
}

// walk visits n and its descendants in specificity order.
func (n *node[H]) walk(fn func(*node[H])) {
	fn(n)
	for _, c := range n.static {
		c.walk(fn)
	}
	for _, c := range n.regexps {
		c.walk(fn)
	}
	for _, c := range [...]*node[H]{n.param, n.optional, n.wildcard} {
		if c != nil {
			c.walk(fn)
		}
	}
}
