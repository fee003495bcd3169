// Package pointcloud — kd-tree adapter over gonum's spatial/kdtree.
//
// gonum's tree stores opaque Comparables; the adapter below carries the
// original cloud index alongside each coordinate so that nearest-neighbour
// queries recover which point matched, which is what both the Chamfer
// solver and the auction candidate-pruning stage need.
//
// Distances follow gonum's convention for spatial data: Distance (and the
// values returned by queries) are SQUARED Euclidean, matching SqDist and
// the transport costs used by the solvers.
package pointcloud

import (
	"sort"

	"gonum.org/v1/gonum/spatial/kdtree"
)

// Indexed is one cloud point tagged with its index in the source cloud.
type Indexed struct {
	P  Point
	ID int
}

// Compare satisfies kdtree.Comparable: signed offset along dimension d.
func (a Indexed) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	b := c.(Indexed)
	return a.P[int(d)] - b.P[int(d)]
}

// Dims satisfies kdtree.Comparable.
func (a Indexed) Dims() int { return 3 }

// Distance satisfies kdtree.Comparable: squared Euclidean distance.
func (a Indexed) Distance(c kdtree.Comparable) float64 {
	b := c.(Indexed)
	return SqDist(a.P, b.P)
}

// indexedCloud adapts a tagged cloud to kdtree.Interface.
type indexedCloud []Indexed

func (c indexedCloud) Index(i int) kdtree.Comparable { return c[i] }

func (c indexedCloud) Len() int { return len(c) }

func (c indexedCloud) Pivot(d kdtree.Dim) int {
	return plane{indexedCloud: c, Dim: d}.Pivot()
}

func (c indexedCloud) Slice(start, end int) kdtree.Interface { return c[start:end] }

// plane is the per-dimension sort view required by kdtree.Partition.
type plane struct {
	indexedCloud
	kdtree.Dim
}

func (p plane) Less(i, j int) bool {
	return p.indexedCloud[i].P[int(p.Dim)] < p.indexedCloud[j].P[int(p.Dim)]
}

func (p plane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }

func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.indexedCloud = p.indexedCloud[start:end]
	return p
}

func (p plane) Swap(i, j int) {
	p.indexedCloud[i], p.indexedCloud[j] = p.indexedCloud[j], p.indexedCloud[i]
}

// NewTree builds a kd-tree over c. Indexes into the tree report positions
// in the original cloud via Indexed.ID. The input is copied; later
// mutation of c does not affect the tree.
//
// Complexity: O(n log n) construction.
func NewTree(c Cloud) *kdtree.Tree {
	tagged := make(indexedCloud, len(c))
	for i, p := range c {
		tagged[i] = Indexed{P: p, ID: i}
	}
	return kdtree.New(tagged, false)
}

// Nearest returns the index of the tree point closest to q and the squared
// distance to it. Querying a tree built from an empty cloud reports (-1, 0);
// the solvers reject empty clouds before ever building a tree.
//
// Complexity: O(log n) expected per query.
func Nearest(t *kdtree.Tree, q Point) (id int, sq float64) {
	got, dist := t.Nearest(Indexed{P: q, ID: -1})
	if got == nil {
		return -1, 0
	}
	return got.(Indexed).ID, dist
}

// KNearest returns the indices of the k tree points closest to q, sorted
// ascending by index for deterministic downstream iteration. Fewer than k
// indices are returned when the tree is smaller than k.
//
// Complexity: O(k log n) expected per query.
func KNearest(t *kdtree.Tree, q Point, k int) []int {
	keep := kdtree.NewNKeeper(k)
	t.NearestSet(keep, Indexed{P: q, ID: -1})
	ids := make([]int, 0, k)
	for _, cd := range keep.Heap {
		if cd.Comparable == nil {
			continue // unfilled sentinel slot
		}
		ids = append(ids, cd.Comparable.(Indexed).ID)
	}
	sort.Ints(ids)
	return ids
}
