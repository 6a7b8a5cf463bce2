package router

// NodeCount returns the number of tree nodes, root included.
func NodeCount[H any](r *Router[H]) int {
	n := 0
	r.root.walk(func(*node[H]) { n++ })
	return n
}
