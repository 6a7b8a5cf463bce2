package routetable

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/trierouter/core/logger"
	"github.com/dmitrymomot/trierouter/core/router"
)

var (
	ErrDecode     = errors.New("failed to decode route table")
	ErrEmptyTable = errors.New("route table has no routes")
	ErrEntry      = errors.New("invalid route table entry")
)

// Entry is a single route declaration.
type Entry struct {
	Method  string `yaml:"method"`
	Pattern string `yaml:"pattern"`
	Name    string `yaml:"name,omitempty"`
}

// Label returns the entry name, or "METHOD pattern" when it has none.
func (e Entry) Label() string {
	if e.Name != "" {
		return e.Name
	}
	return e.Method + " " + e.Pattern
}

// Table is a declarative list of routes.
//
//	routes:
//	  - method: GET
//	    pattern: /api/users/:id{[0-9]+}
//	    name: show-user
//	  - method: ALL
//	    pattern: "*"
type Table struct {
	Routes []Entry `yaml:"routes"`
}

// Load decodes a YAML route table.
func Load(r io.Reader) (*Table, error) {
	var t Table
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyTable
		}
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if len(t.Routes) == 0 {
		return nil, ErrEmptyTable
	}
	return &t, nil
}

// LoadFile decodes the YAML route table stored at path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Build registers every entry on a new router, using each entry's label as
// its handler. Method names are upper-cased. The first invalid entry aborts
// the build.
func (t *Table) Build(log *slog.Logger, opts ...router.Option) (*router.Router[string], error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	r := router.New[string](append([]router.Option{router.WithLogger(log)}, opts...)...)
	for i, e := range t.Routes {
		method := strings.ToUpper(strings.TrimSpace(e.Method))
		if method == "" {
			return nil, fmt.Errorf("%w: route %d: method is required", ErrEntry, i)
		}
		if err := r.Add(method, e.Pattern, e.Label()); err != nil {
			return nil, fmt.Errorf("%w: route %d: %w", ErrEntry, i, err)
		}
	}

	log.Info("route table built",
		logger.Component("routetable"),
		logger.Count("routes", r.Len()),
	)
	return r, nil
}

// NormalizePath returns path in Unicode normalization form C, so visually
// identical composed and decomposed spellings resolve to the same route.
func NormalizePath(path string) string {
	return norm.NFC.String(path)
}
