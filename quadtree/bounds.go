package quadtree

// Point is a 2-D coordinate pair, used by [RegionTree.SetRegion] and
// [RegionTree.UnsetRegion] to describe a polygon's vertices.
type Point struct {
	X, Y float64
}

// Bounds is a half-open axis-aligned rectangle [Left,Right) x
// [Bottom,Top). A point on the splitting line between quadrants
// belongs unambiguously to the quadrant on the right/top side.
type Bounds struct {
	Left, Right, Bottom, Top float64
}

// NewBounds builds the Bounds of width x height centered at
// (centerX, centerY).
func NewBounds(centerX, centerY, width, height float64) Bounds {
	return Bounds{
		Left:   centerX - width/2,
		Right:  centerX + width/2,
		Bottom: centerY - height/2,
		Top:    centerY + height/2,
	}
}

// Contains reports whether (x, y) lies inside b, using the half-open
// convention on the right and top edges.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.Left && x < b.Right && y >= b.Bottom && y < b.Top
}

// CenterX returns the x coordinate of b's center.
func (b Bounds) CenterX() float64 { return (b.Left + b.Right) / 2 }

// CenterY returns the y coordinate of b's center.
func (b Bounds) CenterY() float64 { return (b.Bottom + b.Top) / 2 }

// Width returns b's extent along x.
func (b Bounds) Width() float64 { return b.Right - b.Left }

// Height returns b's extent along y.
func (b Bounds) Height() float64 { return b.Top - b.Bottom }

// isUnit reports whether b has reached the one-unit-per-axis floor the
// region quadtree uses to stop subdividing.
func (b Bounds) isUnit() bool {
	return b.Width() <= 1 && b.Height() <= 1
}

// split partitions b into its four quadrants at its exact center.
func (b Bounds) split() (ne, nw, sw, se Bounds) {
	cx, cy := b.CenterX(), b.CenterY()
	ne = Bounds{Left: cx, Right: b.Right, Bottom: cy, Top: b.Top}
	nw = Bounds{Left: b.Left, Right: cx, Bottom: cy, Top: b.Top}
	sw = Bounds{Left: b.Left, Right: cx, Bottom: b.Bottom, Top: cy}
	se = Bounds{Left: cx, Right: b.Right, Bottom: b.Bottom, Top: cy}
	return
}

// quadrantFor returns the child bounds of b that contains (x, y). The
// point is assumed to already lie within b.
func (b Bounds) quadrantFor(x, y float64) (which quadrantLabel, bounds Bounds) {
	ne, nw, sw, se := b.split()
	switch {
	case ne.Contains(x, y):
		return labelNE, ne
	case nw.Contains(x, y):
		return labelNW, nw
	case sw.Contains(x, y):
		return labelSW, sw
	default:
		return labelSE, se
	}
}

type quadrantLabel int

const (
	labelNE quadrantLabel = iota
	labelNW
	labelSW
	labelSE
)

func (l quadrantLabel) String() string {
	switch l {
	case labelNE:
		return "NE"
	case labelNW:
		return "NW"
	case labelSW:
		return "SW"
	default:
		return "SE"
	}
}
