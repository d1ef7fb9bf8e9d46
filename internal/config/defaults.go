package config

import orderedmap "github.com/wk8/go-ordered-map/v2"

// DefaultSpec returns the built-in demonstration specification: B and C
// depend on A, and B also depends on C. It resolves to A, C, B.
func DefaultSpec() *Spec {
	deps := orderedmap.New[string, []string]()
	deps.Set("A", []string{"B", "C"})
	deps.Set("C", []string{"B"})
	return &Spec{Dependencies: deps}
}
