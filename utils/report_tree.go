package utils

import (
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"
)

// ResultTree is a hierarchical text report: a case with one child per input
// size, each carrying its formatted measurements.
type ResultTree struct {
	Name     string       `json:"name"`
	Detail   string       `json:"detail,omitempty"`
	Children []ResultTree `json:"children,omitempty"`
}

// Write prints the tree to w, two spaces per level.
func (r ResultTree) Write(w io.Writer, indent int) error {
	prefix := strings.Repeat("  ", indent)
	var err error
	if r.Detail == "" {
		_, err = fmt.Fprintf(w, "%s- %s\n", prefix, r.Name)
	} else {
		_, err = fmt.Fprintf(w, "%s- %s: %s\n", prefix, r.Name, r.Detail)
	}
	if err != nil {
		return err
	}
	for _, child := range r.Children {
		if err := child.Write(w, indent+1); err != nil {
			return err
		}
	}
	return nil
}

// JSON returns a JSON string representation of the tree.
func (r ResultTree) JSON() string {
	s, err := sonic.MarshalString(r)
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return s
}

// String returns the tree as Write renders it.
func (r ResultTree) String() string {
	var sb strings.Builder
	_ = r.Write(&sb, 0)
	return sb.String()
}
