package game

import "github.com/vovakirdan/tui-2048/internal/grid"

// slot is one output position of a resolved line.
type slot struct {
	value   int
	sources []grid.Cell // one source for a slide, two for a merge
}

func (s slot) merged() bool {
	return len(s.sources) == 2
}

// lineResult is the outcome of merging a single line.
type lineResult struct {
	cells   []grid.Cell // destination-first traversal order
	slots   []slot      // filled prefix of the line, same order as cells
	gained  int         // score gained from merges
	changed bool
}

// mergeLine resolves one line. values[i] is the value currently stored at
// cells[i], with cells[0] being the end tiles travel toward.
//
// Each output slot absorbs at most one merge per move, so [2,2,2,2] becomes
// [4,4] rather than [8].
func mergeLine(cells []grid.Cell, values []int) lineResult {
	res := lineResult{cells: cells}

	for i, v := range values {
		if v == 0 {
			continue
		}

		if n := len(res.slots); n > 0 {
			prev := &res.slots[n-1]
			if prev.value == v && !prev.merged() {
				prev.value = 2 * v
				prev.sources = append(prev.sources, cells[i])
				res.gained += prev.value
				continue
			}
		}

		res.slots = append(res.slots, slot{value: v, sources: []grid.Cell{cells[i]}})
	}

	for i, s := range res.slots {
		if s.merged() || s.sources[0] != cells[i] {
			res.changed = true
			break
		}
	}

	return res
}
