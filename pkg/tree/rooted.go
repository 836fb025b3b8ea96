package tree

// Parents returns the parent of every vertex when t is rooted at root.
// The root's parent is -1. Vertices outside root's component also get -1.
func Parents(t *Tree, root int) []int {
	n := t.NumNodes()
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}
	if n == 0 {
		return parent
	}
	seen := make([]bool, n)
	seen[root] = true
	stack := []int{root}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, v := range t.Neighbors(u) {
			if !seen[v] {
				seen[v] = true
				parent[v] = u
				stack = append(stack, v)
			}
		}
	}
	return parent
}

// AreSiblings reports whether u and v are distinct children of the same
// parent in a rooted view produced by [Parents].
func AreSiblings(parent []int, u, v int) bool {
	return u != v && parent[u] >= 0 && parent[u] == parent[v]
}

// SubtreeSizes returns, for every vertex, the number of vertices in its
// subtree when t is rooted at root.
func SubtreeSizes(t *Tree, root int) []int {
	n := t.NumNodes()
	size := make([]int, n)
	if n == 0 {
		return size
	}
	parent := make([]int, n)
	order := make([]int, 0, n)
	parent[root] = -1
	order = append(order, root)
	for i := 0; i < len(order); i++ {
		u := order[i]
		for _, v := range t.Neighbors(u) {
			if v != parent[u] {
				parent[v] = u
				order = append(order, v)
			}
		}
	}
	for i := len(order) - 1; i >= 0; i-- {
		u := order[i]
		size[u]++
		if parent[u] >= 0 {
			size[parent[u]] += size[u]
		}
	}
	return size
}

// Contains reports whether v lies in the subtree of r in the rooted view
// described by parent.
func Contains(parent []int, r, v int) bool {
	for ; v >= 0; v = parent[v] {
		if v == r {
			return true
		}
	}
	return false
}

// Centers returns the one or two central vertices of t (the vertices of
// minimum eccentricity), in increasing order. It peels leaves layer by layer.
func Centers(t *Tree) []int {
	n := t.NumNodes()
	switch n {
	case 0:
		return nil
	case 1:
		return []int{0}
	}
	deg := make([]int, n)
	var layer []int
	for u := 0; u < n; u++ {
		deg[u] = t.Degree(u)
		if deg[u] <= 1 {
			layer = append(layer, u)
		}
	}
	remaining := n
	for remaining > 2 {
		remaining -= len(layer)
		var next []int
		for _, u := range layer {
			for _, v := range t.Neighbors(u) {
				deg[v]--
				if deg[v] == 1 {
					next = append(next, v)
				}
			}
		}
		layer = next
	}
	if len(layer) == 2 && layer[0] > layer[1] {
		layer[0], layer[1] = layer[1], layer[0]
	}
	return layer
}
