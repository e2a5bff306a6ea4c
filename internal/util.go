package internal

// ReconstructPath rebuilds the edge sequence ending at current.
// step returns the edge that led to a link, the previous link, and false once
// the start of the chain is reached.
func ReconstructPath[LinkType any, EdgeType any](
	current LinkType,
	step func(LinkType) (EdgeType, LinkType, bool),
) []EdgeType {
	path := []EdgeType{}
	for {
		edge, previous, exists := step(current)
		if !exists {
			break
		}
		path = append(path, edge)
		current = previous
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
