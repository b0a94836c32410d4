// Package quadtree provides a square axis-aligned spatial index with
// lazy subdivision: [Tree] associates a value with a 2-D point, and
// [RegionTree] specializes the same recursive structure to cover
// contiguous regions of boolean cells with automatic uniform-quadrant
// merging.
//
// Neither type is internally synchronized; callers that mutate a tree
// from more than one goroutine must serialize access externally.
// Internal synchronization is reserved for the packages whose job is
// coordinating goroutines, workerpool and pipeline.
//
// # Point Quadtree
//
//	t := quadtree.NewComparable(0, 0, 20, 20, "")
//	t.Insert(5, 5, "a")
//	t.Insert(3, 3, "b")
//	t.At(5, 5)              // "a"
//	t.Find("b", nil)         // (3, 3, true)
//
// By default a second insert at an existing point replaces its value;
// [WithNoReplace] makes repeated inserts at the same point no-ops.
//
// # Region Quadtree
//
// [RegionTree] is the Boolean specialization: whenever subdividing
// would produce four leaf children with the same value, the tree
// collapses them back into a single leaf on the way up, so a fully
// set or fully unset region always ends up as one leaf regardless of
// how many individual [RegionTree.Set]/[RegionTree.Unset] calls built
// it.
package quadtree
