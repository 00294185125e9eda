// Package mirrorpath finds the specular reflection paths between a sound
// source and a receiver in a 2.5D city made of oriented building walls,
// using the image-source ("mirror-receiver") method.
//
// What is in the box:
//
//   - geom/     — points, oriented segments, envelopes, CCW predicates
//   - walls/    — wall catalogue, quadtree envelope index, near-wall selection
//   - mirror/   — wall-sequence enumerator with pruning, path walker,
//     shared reflection chains, path unfolding, batch drivers
//   - progress/ — progress + cooperative cancellation for batch runs
//
// Why image sources:
//
//	A path bouncing off walls w1..wk is a straight line from the source to
//	the receiver mirrored k times. Enumerating wall sequences and mirroring
//	the receiver step by step turns path finding into a bounded tree search,
//	and a wall that cannot reflect cuts its whole subtree.
//
// Quick picture:
//
//	      wall ←─────────
//	S ─────────────────── R
//	      wall ─────────→
//	                       R' (R mirrored across the lower wall)
//
// Acoustic levels, attenuation and GIS I/O are out of scope: the module
// stops at validated paths.
//
//	go get github.com/katalvlaran/mirrorpath
package mirrorpath
