package dependency

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain[T comparable](t *testing.T, o *Order[T]) []T {
	t.Helper()
	var res []T
	for o.HasNext() {
		x, err := o.Next()
		require.NoError(t, err)
		res = append(res, x)
	}
	return res
}

func TestOrder_Empty(t *testing.T) {
	o := NewGraph[string]().Order()
	assert.False(t, o.HasNext())

	x, err := o.Next()
	assert.ErrorIs(t, err, ErrEmptyIteration)
	assert.Equal(t, "", x)
}

func TestOrder_KahnSteps(t *testing.T) {
	g := NewGraph[rune]()
	require.NoError(t, g.AddDependency('A', 'B'))
	require.NoError(t, g.AddDependency('A', 'C'))
	require.NoError(t, g.AddDependency('C', 'B'))

	o := g.Order()
	assert.Equal(t, []int{1}, o.ready, "only B starts ready")
	assert.Equal(t, []int{2, 0, 1}, o.outDegree)

	x, err := o.Next()
	require.NoError(t, err)
	assert.Equal(t, 'B', x)
	assert.Equal(t, []int{1, 0, 0}, o.outDegree)

	x, err = o.Next()
	require.NoError(t, err)
	assert.Equal(t, 'C', x)

	x, err = o.Next()
	require.NoError(t, err)
	assert.Equal(t, 'A', x)

	assert.False(t, o.HasNext())
	_, err = o.Next()
	assert.ErrorIs(t, err, ErrEmptyIteration)
}

func TestOrder_TieBreakFollowsDiscovery(t *testing.T) {
	g := NewGraph[string]()
	require.NoError(t, g.AddElement("z"))
	require.NoError(t, g.AddElement("y"))
	require.NoError(t, g.AddDependency("b", "x"))
	require.NoError(t, g.AddDependency("a", "x"))
	require.NoError(t, g.AddElement("x"))

	// z, y, x have no dependencies and are seeded in creation order; b and a
	// are unblocked by x in the order their edges were added.
	assert.Equal(t, []string{"z", "y", "x", "b", "a"}, drain(t, g.Order()))
}

func TestOrder_CyclesAreOmitted(t *testing.T) {
	tests := []struct {
		name     string
		edges    [][2]string
		expected []string
	}{
		{
			name:     "three node cycle yields nothing",
			edges:    [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}},
			expected: nil,
		},
		{
			name:     "self edge",
			edges:    [][2]string{{"A", "A"}, {"B", "C"}},
			expected: []string{"C", "B"},
		},
		{
			name: "dependents of a cycle are omitted too",
			edges: [][2]string{
				{"A", "B"}, {"B", "C"}, {"C", "A"},
				{"D", "A"}, {"E", "F"},
			},
			expected: []string{"F", "E"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGraph[string]()
			for _, e := range tt.edges {
				require.NoError(t, g.AddDependency(e[0], e[1]))
			}
			assert.Equal(t, tt.expected, drain(t, g.Order()))
		})
	}
}

func TestOrder_Snapshot(t *testing.T) {
	g := NewGraph[string]()
	require.NoError(t, g.AddDependency("b", "a"))

	o := g.Order()

	// Mutations after the snapshot are invisible to the producer.
	require.NoError(t, g.AddDependency("c", "a"))
	require.NoError(t, g.AddDependency("b", "d"))

	assert.Equal(t, []string{"a", "b"}, drain(t, o))
	assert.Equal(t, []string{"a", "d", "c", "b"}, drain(t, g.Order()))
}

func TestOrder_All(t *testing.T) {
	g := NewGraph[int]()
	require.NoError(t, g.AddDependency(2, 1))
	require.NoError(t, g.AddDependency(3, 2))

	o := g.Order()
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(o.All()))
	assert.False(t, o.HasNext(), "All drains the producer")

	o = g.Order()
	for x := range o.All() {
		if x == 1 {
			break
		}
	}
	x, err := o.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, x, "breaking out of All keeps the rest")
}

func TestOrder_RespectsEveryEdge(t *testing.T) {
	edges := [][2]string{
		{"binary", "compile"}, {"compile", "generate"}, {"compile", "deps"},
		{"generate", "deps"}, {"test", "compile"}, {"lint", "generate"},
		{"release", "binary"}, {"release", "test"}, {"release", "lint"},
		{"docs", "generate"},
	}
	g := NewGraph[string]()
	for _, e := range edges {
		require.NoError(t, g.AddDependency(e[0], e[1]))
	}

	order := drain(t, g.Order())
	require.Len(t, order, g.Len())

	pos := make(map[string]int, len(order))
	for i, x := range order {
		_, dup := pos[x]
		require.False(t, dup, "%s emitted twice", x)
		pos[x] = i
	}
	for _, e := range edges {
		assert.Less(t, pos[e[1]], pos[e[0]], "%s must come before %s", e[1], e[0])
	}
}
