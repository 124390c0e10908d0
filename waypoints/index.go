package waypoints

import (
	"errors"

	"gonum.org/v1/gonum/spatial/kdtree"

	m "pfeifer.dev/dbwd/math"
)

var ErrEmptyTrajectory = errors.New("trajectory has no waypoints")

// Index finds the trajectory point closest to a position in the x/y plane.
// Equidistant points resolve to the lowest index so every implementation
// answers identically.
type Index interface {
	Nearest(pos m.Point) int
	Len() int
}

type indexedPoint struct {
	x, y float64
	idx  int
}

func (p indexedPoint) coord(d kdtree.Dim) float64 {
	if d == 0 {
		return p.x
	}
	return p.y
}

func (p indexedPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(indexedPoint)
	return p.coord(d) - q.coord(d)
}

func (p indexedPoint) Dims() int {
	return 2
}

func (p indexedPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(indexedPoint)
	dx := p.x - q.x
	dy := p.y - q.y
	return dx*dx + dy*dy
}

type indexedPoints []indexedPoint

func (p indexedPoints) Index(i int) kdtree.Comparable {
	return p[i]
}

func (p indexedPoints) Len() int {
	return len(p)
}

func (p indexedPoints) Pivot(d kdtree.Dim) int {
	return plane{dim: d, points: p}.Pivot()
}

func (p indexedPoints) Slice(start, end int) kdtree.Interface {
	return p[start:end]
}

type plane struct {
	dim    kdtree.Dim
	points indexedPoints
}

func (p plane) Len() int {
	return len(p.points)
}

func (p plane) Less(i, j int) bool {
	return p.points[i].coord(p.dim) < p.points[j].coord(p.dim)
}

func (p plane) Swap(i, j int) {
	p.points[i], p.points[j] = p.points[j], p.points[i]
}

func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.points = p.points[start:end]
	return p
}

func (p plane) Pivot() int {
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

func toIndexed(points []m.Point) indexedPoints {
	ip := make(indexedPoints, len(points))
	for i, pt := range points {
		ip[i] = indexedPoint{x: pt.X, y: pt.Y, idx: i}
	}
	return ip
}

// KDIndex is a balanced 2-d tree over the trajectory, built once.
type KDIndex struct {
	tree *kdtree.Tree
	size int
}

func NewKDIndex(points []m.Point) (*KDIndex, error) {
	if len(points) == 0 {
		return nil, ErrEmptyTrajectory
	}
	return &KDIndex{tree: kdtree.New(toIndexed(points), false), size: len(points)}, nil
}

func (k *KDIndex) Len() int {
	return k.size
}

func (k *KDIndex) Nearest(pos m.Point) int {
	q := indexedPoint{x: pos.X, y: pos.Y}
	c, dist := k.tree.Nearest(q)
	if c == nil {
		return 0
	}
	best := c.(indexedPoint).idx

	// collect exact ties so the lowest index wins
	keeper := kdtree.NewDistKeeper(dist)
	k.tree.NearestSet(keeper, q)
	for _, cd := range keeper.Heap {
		if cd.Comparable == nil || cd.Dist > dist {
			continue
		}
		if idx := cd.Comparable.(indexedPoint).idx; idx < best {
			best = idx
		}
	}
	return best
}

// LinearIndex scans every point. It is only worth using for short tracks.
type LinearIndex struct {
	points indexedPoints
}

func NewLinearIndex(points []m.Point) (*LinearIndex, error) {
	if len(points) == 0 {
		return nil, ErrEmptyTrajectory
	}
	return &LinearIndex{points: toIndexed(points)}, nil
}

func (l *LinearIndex) Len() int {
	return len(l.points)
}

func (l *LinearIndex) Nearest(pos m.Point) int {
	q := indexedPoint{x: pos.X, y: pos.Y}
	best := 0
	bestDist := l.points[0].Distance(q)
	for i, p := range l.points[1:] {
		if d := p.Distance(q); d < bestDist {
			best = i + 1
			bestDist = d
		}
	}
	return best
}
