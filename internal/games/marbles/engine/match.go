package engine

// ExpandRun grows outward from index i over neighbours of the same color
// and returns the inclusive bounds of the run. Gaps are ignored.
func ExpandRun(c Chain, i int) (start, end int) {
	color := c[i].Color
	start, end = i, i
	for start > 0 && c[start-1].Color == color {
		start--
	}
	for end+1 < len(c) && c[end+1].Color == color {
		end++
	}
	return start, end
}

// ResolveInsertion puts shot into the chain in front of the marble at index,
// rigidly re-spaces everything behind it, and removes the same-color run
// through the shot if it is at least minRun long.
//
// It returns the new chain and the number of marbles removed (0 when the
// shot stays in the chain). The input chain is not modified.
func ResolveInsertion(c Chain, index int, shot Marble, spacing float64, minRun int) (Chain, int) {
	if index < 0 || index > len(c) {
		return c.Clone(), 0
	}

	out := make(Chain, 0, len(c)+1)
	out = append(out, c[:index]...)
	if index < len(c) {
		shot.T = c[index].T
	} else if index > 0 {
		shot.T = c[index-1].T + spacing
	}
	out = append(out, shot)
	out = append(out, c[index:]...)

	for j := index + 1; j < len(out); j++ {
		out[j].T = out[j-1].T + spacing
	}

	start, end := ExpandRun(out, index)
	n := end - start + 1
	if n < minRun {
		return out, 0
	}
	return out.Remove(start, n), n
}
