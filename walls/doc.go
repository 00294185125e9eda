// Package walls holds the read-only wall catalogue consumed by the
// mirror-receiver search, and the spatial index used to pre-select the walls
// that matter for one source–receiver pair.
//
// What:
//
//   - Wall:      oriented segment (CCW around its building) + building id.
//   - Catalogue: random-access, read-only wall sequence; walls are referenced
//     by index and never copied by consumers.
//   - Index:     query-by-envelope contract returning catalogue indices.
//   - RTree:     Index implementation on github.com/tidwall/rtree.
//   - Near:      envelope query followed by an exact distance cut, producing
//     the near-wall catalogue of a source–receiver pair.
//
// Complexity:
//
//   - RTree.Insert: O(log n) amortized.
//   - RTree.Query:  O(log n + k log k) for k reported items.
//   - Near:            one query plus O(k) distance tests.
//
// Errors:
//
//   - ErrInvalidEnvelope  an indexed envelope is empty or not finite.
//   - ErrNilCatalogue     nil catalogue passed to IndexCatalogue or Near.
package walls
