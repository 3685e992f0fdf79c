// Package io reads and writes skew-heap tree descriptions and query results.
//
// # Batch Format
//
// A tree of n nodes is described by n followed by one "left right" pair per
// node 1..n, with 0 for an absent child:
//
//	3
//	2 0
//	3 0
//	0 0
//
// [ReadDescription] parses it into a [Description]; [WriteDescription] writes
// it back. A query result is written by [WriteResult] either as two lines
// (smallest and largest insertion order) or as the single line "impossible".
//
// # JSON Format
//
// For interchange with other tools a description can also be written as
// JSON with [WriteJSON] and read back with [ReadJSON]:
//
//	{"nodes": [{"id": 1, "left": 2}, {"id": 2}]}
//
// Absent children are omitted.
package io
