package quadtree

import "math"

// RegionTree is the Boolean specialization of the quadtree: it covers
// a square area with true/false cells and keeps the uniformity
// invariant that no internal node ever has four equal-valued leaf
// children — such a node is collapsed back into a single leaf. The
// zero value is not usable; create one with [NewRegion].
type RegionTree struct {
	bounds Bounds
	root   *quadrant[bool]
	size   int // number of true cells
	depth  int
}

// NewRegion creates a [RegionTree] covering width x height centered at
// (centerX, centerY), initially entirely false.
func NewRegion(centerX, centerY, width, height float64) *RegionTree {
	return &RegionTree{bounds: NewBounds(centerX, centerY, width, height)}
}

// Bounds returns the tree's root bounds.
func (r *RegionTree) Bounds() Bounds { return r.bounds }

// Size returns the number of unit cells currently set to true.
func (r *RegionTree) Size() int { return r.size }

// Depth returns the maximum leaf depth.
func (r *RegionTree) Depth() int { return r.depth }

// At reports whether the cell at (x, y) is set.
func (r *RegionTree) At(x, y float64) bool {
	if r.root == nil || !r.bounds.Contains(x, y) {
		return false
	}
	cur := r.root
	for !cur.isLeaf() {
		label, _ := cur.bounds.quadrantFor(x, y)
		cur = childFor(cur, label)
	}
	return cur.value
}

// Set marks the cell at (x, y) true.
func (r *RegionTree) Set(x, y float64) { r.setValue(x, y, true) }

// Unset marks the cell at (x, y) false.
func (r *RegionTree) Unset(x, y float64) { r.setValue(x, y, false) }

// setValue descends to the unit cell containing (x, y), subdividing
// non-unit leaves whose value differs from the target along the way,
// overwrites the unit cell, adjusts the filled-cell count, and then
// attempts a uniform merge on the way back up.
func (r *RegionTree) setValue(x, y float64, value bool) {
	if !r.bounds.Contains(x, y) {
		return
	}
	if r.root == nil {
		r.root = newLeaf[bool](r.bounds, nil, false)
	}

	cur := r.root
	for {
		if cur.isLeaf() {
			if cur.value == value {
				return
			}
			if cur.bounds.isUnit() {
				cur.value = value
				if value {
					r.size++
				} else {
					r.size--
				}
				r.mergeFrom(cur.parent)
				r.depth = r.root.depthFrom()
				return
			}
			cur.subdivide()
		}
		label, _ := cur.bounds.quadrantFor(x, y)
		cur = childFor(cur, label)
	}
}

// mergeFrom walks upward from q, collapsing any internal node whose
// four immediate children are all leaves holding the same value.
func (r *RegionTree) mergeFrom(q *quadrant[bool]) {
	for q != nil {
		if !canMerge(q) {
			return
		}
		q.collapse(q.ne.value)
		q = q.parent
	}
}

func canMerge(q *quadrant[bool]) bool {
	if q.isLeaf() {
		return false
	}
	for _, c := range q.children() {
		if !c.isLeaf() || c.value != q.ne.value {
			return false
		}
	}
	return true
}

// SetRegion fills every unit cell whose center lies inside polygon
// (evaluated with the standard even-odd / ray-casting rule) with true.
// polygon vertices are consumed in order; the polygon is implicitly
// closed from the last vertex back to the first.
func (r *RegionTree) SetRegion(polygon []Point) { r.fillRegion(polygon, true) }

// UnsetRegion is the complement of [RegionTree.SetRegion]: it fills
// every unit cell whose center lies inside polygon with false.
func (r *RegionTree) UnsetRegion(polygon []Point) { r.fillRegion(polygon, false) }

func (r *RegionTree) fillRegion(polygon []Point, value bool) {
	if len(polygon) < 3 {
		return
	}

	minX, minY, maxX, maxY := polygon[0].X, polygon[0].Y, polygon[0].X, polygon[0].Y
	for _, p := range polygon[1:] {
		minX, maxX = minF(minX, p.X), maxF(maxX, p.X)
		minY, maxY = minF(minY, p.Y), maxF(maxY, p.Y)
	}
	minX, minY = maxF(minX, r.bounds.Left), maxF(minY, r.bounds.Bottom)
	maxX, maxY = minF(maxX, r.bounds.Right-1), minF(maxY, r.bounds.Top-1)

	for cy := alignUnit(minY); cy <= maxY; cy++ {
		for cx := alignUnit(minX); cx <= maxX; cx++ {
			if pointInPolygon(cx+0.5, cy+0.5, polygon) {
				r.setValue(cx, cy, value)
			}
		}
	}
}

func alignUnit(v float64) float64 {
	return math.Floor(v)
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// pointInPolygon reports whether (x, y) lies inside polygon under the
// even-odd (ray-casting) rule.
func pointInPolygon(x, y float64, polygon []Point) bool {
	inside := false
	n := len(polygon)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := polygon[i], polygon[j]
		if (pi.Y > y) != (pj.Y > y) {
			xCross := pi.X + (y-pi.Y)/(pj.Y-pi.Y)*(pj.X-pi.X)
			if x < xCross {
				inside = !inside
			}
		}
	}
	return inside
}
