package quadtree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// boundsColor and leafColor are shared package-level colorizers so
// every pretty-printer call site gets identical formatting without
// re-allocating a *color.Color per call.
var (
	boundsColor = color.New(color.FgCyan)
	leafColor   = color.New(color.FgYellow)
)

// String renders t as an indented textual tree: internal nodes are
// labeled by their bounds, leaves by their stored value and position.
// The exact format is a debugging aid, not part of the stable API.
func (t *Tree[V]) String() string {
	var b strings.Builder
	if t.root == nil {
		b.WriteString(boundsColor.Sprint("(empty)"))
		return b.String()
	}
	writeQuadrant(&b, t.root, 0)
	return b.String()
}

func writeQuadrant[V any](b *strings.Builder, q *quadrant[V], depth int) {
	indent := strings.Repeat("  ", depth)
	if q.isLeaf() {
		pos := "-"
		if q.hasPos {
			pos = fmt.Sprintf("(%g,%g)", q.posX, q.posY)
		}
		fmt.Fprintf(b, "%s%s\n", indent, leafColor.Sprintf("leaf value=%v pos=%s", q.value, pos))
		return
	}

	fmt.Fprintf(b, "%s%s\n", indent, boundsColor.Sprintf("node %s", formatBounds(q.bounds)))
	for _, label := range []quadrantLabel{labelNE, labelNW, labelSW, labelSE} {
		child := childFor(q, label)
		fmt.Fprintf(b, "%s%s:\n", strings.Repeat("  ", depth+1), label)
		writeQuadrant(b, child, depth+2)
	}
}

func formatBounds(b Bounds) string {
	return fmt.Sprintf("[%s,%s)x[%s,%s)",
		strconv.FormatFloat(b.Left, 'g', -1, 64),
		strconv.FormatFloat(b.Right, 'g', -1, 64),
		strconv.FormatFloat(b.Bottom, 'g', -1, 64),
		strconv.FormatFloat(b.Top, 'g', -1, 64),
	)
}

// Grid renders the region covered by r as a row-major 0/1 grid, one
// character per unit cell, true cells colorized.
func (r *RegionTree) Grid() string {
	var b strings.Builder
	top, bottom := int64(r.bounds.Top), int64(r.bounds.Bottom)
	left, right := int64(r.bounds.Left), int64(r.bounds.Right)

	for y := top - 1; y >= bottom; y-- {
		for x := left; x < right; x++ {
			if r.At(float64(x), float64(y)) {
				b.WriteString(leafColor.Sprint("1"))
			} else {
				b.WriteString("0")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
