// Package orderedmap provides a height-balanced (AVL) ordered associative
// container. Keys are compared with a caller-supplied strict weak
// ordering; values are mutated in place through [Map.At].
//
// # Construction
//
// Use [New] with an explicit comparator, or [NewOrdered] for key types
// that already satisfy [cmp.Ordered]:
//
//	m := orderedmap.NewOrdered[int, string]()
//	m.Insert(10, "ten")
//	m.Insert(5, "five")
//
// # Balance
//
// Every public mutation ([Map.Insert], [Map.Erase]) leaves the tree
// height-balanced: for every node, the heights of its left and right
// subtrees differ by at most one. Insert and erase each rebalance by
// walking from the mutated leaf up to the root, performing a single or
// double rotation at every ancestor whose balance factor has drifted
// outside [-1, 1].
//
// # Iteration
//
// [Map.Iterator] and [Map.ReverseIterator] walk the tree in strictly
// ascending (resp. descending) key order without allocating the full
// key set up front:
//
//	for it := m.Iterator(); it.Next(); {
//	    fmt.Println(it.Key(), it.Value())
//	}
//
// Iterators are invalidated by any structural mutation of the map that
// produced them; continuing to use one after an [Map.Insert] or
// [Map.Erase] has undefined results.
package orderedmap
