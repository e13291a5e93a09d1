package threshold

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/tso/matrix"
)

// similarity keeps, per case, the peers closer than the threshold ordered
// by ascending distance to that case, ties by id.
type similarity struct {
	peers [][]int
}

func newSimilarity(n int) *similarity {
	return &similarity{peers: make([][]int, n)}
}

// link records i and j as mutually similar.
func (s *similarity) link(i, j int) {
	s.peers[i] = append(s.peers[i], j)
	s.peers[j] = append(s.peers[j], i)
}

// sort orders every peer list with a comparator bound to its owning case.
func (s *similarity) sort(dist *matrix.Triangle) {
	for owner := range s.peers {
		slices.SortFunc(s.peers[owner], byDistanceTo(dist, owner))
	}
}

// byDistanceTo compares two peers by their distance to base, then by id.
func byDistanceTo(dist *matrix.Triangle, base int) func(a, b int) int {
	return func(a, b int) int {
		if c := cmp.Compare(dist.Get(base, a), dist.Get(base, b)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	}
}

// count returns the number of similar peers of c.
func (s *similarity) count(c int) int { return len(s.peers[c]) }

// nearestUnvisited returns the closest similar peer of c that is not yet
// visited, or -1.
func (s *similarity) nearestUnvisited(c int, visited []bool) int {
	for _, p := range s.peers[c] {
		if !visited[p] {
			return p
		}
	}
	return -1
}
