// Package config loads dependency specifications from YAML files.
//
// A specification file has two optional top-level keys:
//
//	dependencies:
//	  A: [B, C]   # B and C depend on A
//	  C: [B]      # B depends on C
//	elements:     # elements that should appear even with no relations
//	  - D
//
// Keys under dependencies are dependency targets; each value lists the
// elements that depend on that target. Key order is preserved, and so is the
// order of elements, because both decide which element comes first when
// several are ready at the same time.
//
// Errors are reported as SpecError values carrying the file path, the kind of
// failure, the line number when known, and suggestions for fixing it.
package config
