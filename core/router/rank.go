package router

// Segment weights used for specificity ranking. A pattern that has run out
// of segments ranks as weightEnd at every following position, which places
// it above optional and wildcard segments that consumed nothing.
const (
	weightWildcard uint8 = iota + 1
	weightOptional
	weightEnd
	weightParam
	weightRegexp
	weightStatic
)

func weightOf(k Kind) uint8 {
	switch k {
	case KindStatic:
		return weightStatic
	case KindRegexp:
		return weightRegexp
	case KindParam:
		return weightParam
	case KindOptional:
		return weightOptional
	default:
		return weightWildcard
	}
}

// rank is the per-segment weight vector of a compiled pattern.
type rank []uint8

func rankOf(segments []Segment) rank {
	r := make(rank, len(segments))
	for i, s := range segments {
		r[i] = weightOf(s.Kind)
	}
	return r
}

func (r rank) at(i int) uint8 {
	if i < len(r) {
		return r[i]
	}
	return weightEnd
}

// compare returns a positive number when r is more specific than o,
// negative when less specific and zero when both rank the same.
func (r rank) compare(o rank) int {
	n := max(len(r), len(o))
	for i := range n {
		a, b := r.at(i), o.at(i)
		if a != b {
			return int(a) - int(b)
		}
	}
	return 0
}
