package tree

// Color is one side of the bipartition of a tree.
type Color uint8

const (
	// Blue is the colour of vertex 0 and of every vertex at even distance from it.
	Blue Color = iota
	// Red is the colour of every vertex at odd distance from vertex 0.
	Red
)

// String returns "blue" or "red".
func (c Color) String() string {
	if c == Blue {
		return "blue"
	}
	return "red"
}

// Coloring returns the proper 2-colouring of t obtained by breadth-first
// search from vertex 0. Vertices unreachable from 0 (only possible when t is
// not connected) are coloured from their own component's smallest vertex.
func Coloring(t *Tree) []Color {
	n := t.NumNodes()
	colors := make([]Color, n)
	seen := make([]bool, n)
	queue := make([]int, 0, n)
	for s := 0; s < n; s++ {
		if seen[s] {
			continue
		}
		seen[s] = true
		queue = append(queue[:0], s)
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range t.Neighbors(u) {
				if !seen[v] {
					seen[v] = true
					colors[v] = 1 - colors[u]
					queue = append(queue, v)
				}
			}
		}
	}
	return colors
}

// ColorCounts returns the number of blue and red vertices.
func ColorCounts(colors []Color) (blue, red int) {
	for _, c := range colors {
		if c == Blue {
			blue++
		} else {
			red++
		}
	}
	return blue, red
}
