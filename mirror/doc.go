// Package mirror enumerates specular reflection paths between a source and
// a receiver with the image-source ("mirror-receiver") method.
//
// What:
//
//   - Enumerator: depth-first odometer over wall-index sequences of length
//     1..MaxDepth that never repeats a wall in direct succession, with a
//     Prune primitive cutting every deeper continuation of a dead prefix.
//   - Walker: pulls sequences from the Enumerator, validates each one
//     geometrically (wall orientation, wall-to-wall visibility, distance to
//     the direct path, propagation range) and yields the admissible ones as
//     chains of Node values.
//   - Node: immutable reflection step (mirrored receiver, wall, building,
//     parent). Siblings share their common prefix nodes.
//   - Unfold: turns a Node chain back into the receiver → reflection
//     points → source polyline.
//   - Collect / Search / SearchReceivers: drivers with cooperative
//     cancellation through a progress.Visitor.
//
// Enumeration order:
//
//	maxDepth=2, 3 walls: [0] [0 1] [0 2] [1] [1 0] [1 2] [2] [2 0] [2 1]
//
// Facing rules:
//
//   - depth 1: the wall must face the receiver.
//   - depth>1: the wall and its parent wall must face each other, and the
//     wall must face the receiver itself (not the current image).
//
// Complexity:
//
//   - Worst case O(W·(W−1)^(D−1)) candidates for W walls and depth D;
//     pruning removes the subtree of every rejected prefix.
//   - Each candidate costs O(D) for parent resolution plus O(1) geometry.
//   - Memory: O(D) for the enumerator; results share prefixes.
//
// Errors:
//
//   - ErrNilCatalogue           catalogue is nil
//   - ErrEmptyCatalogue         catalogue has no wall
//   - ErrNegativeDepth          MaxDepth < 0
//   - ErrNonPositiveLimit       a distance limitation is <= 0 or NaN
//   - ErrNonPositiveWorkers     Workers < 1
//   - ErrUnsupportedOperation   Remove on a Walker
//   - ErrCanceled               Collect stopped by its progress.Visitor
//
// A Walker is single-goroutine. Nodes are immutable and may be read from
// any goroutine. SearchReceivers runs up to Options.Workers walkers at once,
// so its visitor must be safe for concurrent use when Workers > 1
// (progress.Root is).
package mirror
