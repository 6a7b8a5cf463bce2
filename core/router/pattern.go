package router

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind tags a compiled pattern segment.
// Kinds are declared from most to least specific.
type Kind uint8

const (
	KindStatic   Kind = iota // /users
	KindRegexp               // /:id{[0-9]+}
	KindParam                // /:id
	KindOptional             // /:id?
	KindWildcard             // /*
)

// WildcardKey is the parameter name a wildcard tail is bound to.
const WildcardKey = "*"

var kindNames = [...]string{
	KindStatic:   "static",
	KindRegexp:   "regexp",
	KindParam:    "param",
	KindOptional: "optional",
	KindWildcard: "wildcard",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Segment is one compiled unit of a route pattern.
type Segment struct {
	Kind Kind
	Text string // literal text, static segments only
	Name string // param name, param kinds only
	Expr string // regular expression as written, regexp segments only

	rex *regexp.Regexp
}

// Binds reports whether the segment captures a parameter value.
func (s Segment) Binds() bool {
	return s.Kind != KindStatic
}

// key returns the name a matched value is bound to.
func (s Segment) key() string {
	if s.Kind == KindWildcard {
		return WildcardKey
	}
	return s.Name
}

func (s Segment) String() string {
	switch s.Kind {
	case KindStatic:
		return s.Text
	case KindRegexp:
		return ":" + s.Name + "{" + s.Expr + "}"
	case KindParam:
		return ":" + s.Name
	case KindOptional:
		return ":" + s.Name + "?"
	default:
		return "*"
	}
}

// Compile parses a route pattern into its ordered segment list.
//
// Pattern syntax, per '/' delimited segment:
//
//	users          static text
//	:id            named param, any non-empty segment
//	:id{[0-9]+}    named param constrained by an anchored regexp
//	:id?           optional param, last segment only
//	*              wildcard tail, last segment only
//
// A leading and a trailing slash are ignored, so "/", "" and "/users/"
// compile the same way as their slash-less forms.
func Compile(pattern string) ([]Segment, error) {
	raw, err := splitPattern(pattern)
	if err != nil {
		return nil, compileErr(pattern, -1, "", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	segments := make([]Segment, 0, len(raw))
	last := len(raw) - 1
	for i, part := range raw {
		seg, err := parseSegment(part)
		if err != nil {
			return nil, compileErr(pattern, i, part, err)
		}

		switch seg.Kind {
		case KindWildcard:
			if i != last {
				return nil, compileErr(pattern, i, part, ErrInvalidWildcardPosition)
			}
		case KindOptional:
			if i != last {
				return nil, compileErr(pattern, i, part, ErrInvalidOptionalPosition)
			}
		}

		if seg.Kind != KindStatic && seg.Kind != KindWildcard {
			for _, prev := range segments {
				if prev.Binds() && prev.Name == seg.Name {
					return nil, compileErr(pattern, i, part, ErrDuplicateParamName)
				}
			}
		}

		segments = append(segments, seg)
	}

	return segments, nil
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
func MustCompile(pattern string) []Segment {
	segments, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return segments
}

func parseSegment(raw string) (Segment, error) {
	if raw == "*" {
		return Segment{Kind: KindWildcard}, nil
	}
	if raw == "" || raw[0] != ':' {
		return Segment{Kind: KindStatic, Text: raw}, nil
	}

	body := raw[1:]

	if ps := strings.IndexByte(body, '{'); ps >= 0 {
		if body[len(body)-1] != '}' {
			return Segment{}, fmt.Errorf("%w: param regexp must close the segment", ErrInvalidPattern)
		}
		name, expr := body[:ps], body[ps+1:len(body)-1]
		if !validParamName(name) {
			return Segment{}, fmt.Errorf("%w: invalid param name %q", ErrInvalidPattern, name)
		}
		if expr == "" {
			return Segment{}, fmt.Errorf("%w: empty param regexp", ErrInvalidPattern)
		}
		rex, err := regexp.Compile("^(?:" + expr + ")$")
		if err != nil {
			return Segment{}, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
		}
		return Segment{Kind: KindRegexp, Name: name, Expr: expr, rex: rex}, nil
	}

	kind := KindParam
	if strings.HasSuffix(body, "?") {
		kind = KindOptional
		body = body[:len(body)-1]
	}
	if !validParamName(body) {
		return Segment{}, fmt.Errorf("%w: invalid param name %q", ErrInvalidPattern, body)
	}
	return Segment{Kind: kind, Name: body}, nil
}

func validParamName(name string) bool {
	return name != "" && !strings.ContainsAny(name, ":?{}*")
}

// splitPattern splits a pattern on '/' outside of regexp braces.
func splitPattern(pattern string) ([]string, error) {
	pattern = trimSlashes(pattern)
	if pattern == "" {
		return nil, nil
	}

	parts := make([]string, 0, strings.Count(pattern, "/")+1)
	depth, start := 0, 0
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("%w: unbalanced '}'", ErrInvalidPattern)
			}
		case '/':
			if depth == 0 {
				parts = append(parts, pattern[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("%w: route param closing delimiter '}' is missing", ErrInvalidPattern)
	}
	return append(parts, pattern[start:]), nil
}

// splitPath splits a request path the same way patterns are split,
// without brace handling.
func splitPath(path string) []string {
	path = trimSlashes(path)
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// trimSlashes drops a single leading and a single trailing slash.
func trimSlashes(s string) string {
	if len(s) > 0 && s[0] == '/' {
		s = s[1:]
	}
	if len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}
