package bench

import (
	"errors"
	"fmt"

	iradix "github.com/hashicorp/go-immutable-radix"

	"strcmpbench/errutil"
)

var (
	ErrDuplicateCase = errors.New("bench: duplicate case")
	ErrInvalidCase   = errors.New("bench: invalid case")
)

// Registry holds cases keyed by name. Lookups see a consistent snapshot;
// Register replaces the tree, so it is not safe for concurrent writers.
type Registry struct {
	tree *iradix.Tree
}

func NewRegistry() *Registry {
	return &Registry{tree: iradix.New()}
}

// DefaultRegistry returns a registry holding Cases().
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, c := range Cases() {
		errutil.FatalIf(r.Register(c))
	}
	return r
}

func (r *Registry) Register(c Case) error {
	if c.Name == "" || c.Compare == nil {
		return fmt.Errorf("%w: %q", ErrInvalidCase, c.Name)
	}
	tree, _, updated := r.tree.Insert([]byte(c.Name), c)
	if updated {
		return fmt.Errorf("%w: %q", ErrDuplicateCase, c.Name)
	}
	r.tree = tree
	return nil
}

func (r *Registry) Get(name string) (Case, bool) {
	v, ok := r.tree.Get([]byte(name))
	if !ok {
		return Case{}, false
	}
	return v.(Case), true
}

func (r *Registry) Len() int {
	return r.tree.Len()
}

// All returns every case ordered by name.
func (r *Registry) All() []Case {
	return r.WithPrefix("")
}

// WithPrefix returns the cases whose name starts with prefix, ordered by name.
func (r *Registry) WithPrefix(prefix string) []Case {
	var cases []Case
	r.tree.Root().WalkPrefix([]byte(prefix), func(_ []byte, v interface{}) bool {
		cases = append(cases, v.(Case))
		return false
	})
	return cases
}
