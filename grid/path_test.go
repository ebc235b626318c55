package grid

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// bfsDistance is an independent oracle over the raw grid.
func bfsDistance(gr Grid, start, end Cell) (int, bool) {
	dist := map[Cell]int{start: 0}
	queue := []Cell{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == end {
			return dist[cur], true
		}
		for _, d := range Directions {
			next := Cell{Row: cur.Row + d.Row, Col: cur.Col + d.Col}
			if _, seen := dist[next]; seen || !gr.IsOpen(next) {
				continue
			}
			dist[next] = dist[cur] + 1
			queue = append(queue, next)
		}
	}
	return 0, false
}

func assertValidPath(t *testing.T, gr Grid, res Result, start, end Cell) {
	t.Helper()
	if !assert.NotEmpty(t, res.Path) {
		return
	}
	assert.Equal(t, start, res.Path[0])
	assert.Equal(t, end, res.Path[len(res.Path)-1])
	for i, c := range res.Path {
		assert.True(t, gr.IsOpen(c), "path steps onto %s", c)
		if i > 0 {
			assert.True(t, res.Path[i-1].Adjacent(c), "%s and %s are not adjacent", res.Path[i-1], c)
		}
	}
}

func TestFindPathScenarios(t *testing.T) {
	t.Run("Open grid corner to corner", func(t *testing.T) {
		cells := make([][]int, 6)
		for r := range cells {
			cells[r] = make([]int, 6)
		}
		gr := MustNew(cells)

		res, err := FindPath(Build(gr), Cell{0, 0}, Cell{5, 5})
		assert.NoError(t, err)
		assert.True(t, res.Found)
		assert.Equal(t, 10, res.Len())
		assertValidPath(t, gr, res, Cell{0, 0}, Cell{5, 5})
	})

	t.Run("Reference board", func(t *testing.T) {
		gr := ReferenceBoard()

		res, err := FindPath(Build(gr), Cell{0, 0}, Cell{3, 3})
		assert.NoError(t, err)
		assert.True(t, res.Found)
		assert.Equal(t, 6, res.Len())
		assertValidPath(t, gr, res, Cell{0, 0}, Cell{3, 3})
	})

	t.Run("Partitioned board", func(t *testing.T) {
		gr := MustNew([][]int{
			{0, 0, 1, 0, 0},
			{0, 0, 1, 0, 0},
			{0, 0, 1, 0, 0},
		})

		res, err := FindPath(Build(gr), Cell{0, 0}, Cell{2, 4})
		assert.NoError(t, err)
		assert.False(t, res.Found)
		assert.Nil(t, res.Path)
		assert.Equal(t, 0, res.Len())
	})

	t.Run("Same start and end", func(t *testing.T) {
		res, err := FindPath(Build(ReferenceBoard()), Cell{2, 2}, Cell{2, 2})
		assert.NoError(t, err)
		assert.True(t, res.Found)
		assert.Equal(t, []Cell{{2, 2}}, res.Path)
		assert.Equal(t, 0, res.Len())
	})
}

func TestFindPathInvalidEndpoint(t *testing.T) {
	g := Build(ReferenceBoard())

	cases := []struct {
		name       string
		start, end Cell
	}{
		{"Wall start", Cell{0, 1}, Cell{3, 3}},
		{"Wall end", Cell{0, 0}, Cell{2, 1}},
		{"Out of bounds", Cell{0, 0}, Cell{6, 0}},
		{"Negative", Cell{-1, 0}, Cell{0, 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := FindPath(g, tc.start, tc.end)
			assert.ErrorIs(t, err, ErrInvalidEndpoint)
			assert.False(t, res.Found)
		})
	}
}

func TestFindPathMatchesBFS(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 30; i++ {
		gr := randomGrid(rng, 6, 6, 0.3)
		g := Build(gr)
		nodes := g.Nodes()

		for _, a := range nodes {
			for _, b := range nodes {
				res, err := FindPath(g, a, b)
				assert.NoError(t, err)

				want, reachable := bfsDistance(gr, a, b)
				assert.Equal(t, reachable, res.Found, "reachability of %s -> %s", a, b)
				if !reachable {
					assert.Nil(t, res.Path)
					continue
				}
				assert.Equal(t, want, res.Len(), "length of %s -> %s", a, b)
				assertValidPath(t, gr, res, a, b)
			}
		}
	}
}

func TestFindPathSelf(t *testing.T) {
	g := Build(ReferenceBoard())
	for _, c := range g.Nodes() {
		res, err := FindPath(g, c, c)
		assert.NoError(t, err)
		assert.Equal(t, []Cell{c}, res.Path)
	}
}
