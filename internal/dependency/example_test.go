package dependency_test

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"depmanager/internal/dependency"
)

func ExampleManager() {
	m := dependency.NewManager[string]()
	_ = m.AddDependency("app", "lib")
	_ = m.AddDependency("app", "runtime")
	_ = m.AddDependency("runtime", "lib")

	fmt.Println(m.GetDependencies())
	// Output: [lib runtime app]
}

func ExampleManager_BuildOrderedDependencyGraph() {
	spec := orderedmap.New[rune, []rune]()
	spec.Set('A', []rune{'B', 'C'})
	spec.Set('C', []rune{'B'})

	m := dependency.NewManager[rune]()
	if err := m.BuildOrderedDependencyGraph(spec); err != nil {
		fmt.Println(err)
		return
	}
	for _, c := range m.GetDependencies() {
		fmt.Printf("%c ", c)
	}
	fmt.Println()
	// Output: A C B
}

func ExampleOrder() {
	g := dependency.NewGraph[int]()
	_ = g.AddDependency(3, 2)
	_ = g.AddDependency(2, 1)

	for x := range g.Order().All() {
		fmt.Println(x)
	}
	// Output:
	// 1
	// 2
	// 3
}
