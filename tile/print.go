package tile

import (
	"fmt"
	"io"
)

// String returns the tile's cell coordinates and costs.
func (t *Tile) String() string {
	return fmt.Sprintf("(%d, %d) F: %d G: %d H: %d", t.x/CellSize, t.y/CellSize, t.f, t.g, t.h)
}

// Print writes the tile followed by its predecessor chain, one tile per line.
// A chain that loops back on itself stops at the first repeated tile.
func (t *Tile) Print(w io.Writer) error {
	seen := make(map[*Tile]struct{}, 8)
	for cur := t; cur != nil; cur = cur.prev {
		if _, ok := seen[cur]; ok {
			return nil
		}
		seen[cur] = struct{}{}

		prefix := ""
		if cur != t {
			prefix = "\tPrev: "
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", prefix, cur); err != nil {
			return fmt.Errorf("tile: print: %w", err)
		}
	}
	return nil
}

// Path follows the backlinks from t and returns the chain starting at its
// root and ending at t.
func (t *Tile) Path() []*Tile {
	path := make([]*Tile, 0, 32)
	seen := make(map[*Tile]struct{}, 32)
	for cur := t; cur != nil; cur = cur.prev {
		if _, ok := seen[cur]; ok {
			break
		}
		seen[cur] = struct{}{}
		path = append(path, cur)
	}
	// reverse
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
