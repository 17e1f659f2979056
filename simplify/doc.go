// Package simplify reduces a raw cell path to the bend points of the
// connector it describes, in diagram coordinates.
//
// The output always starts at the true (unquantized) start anchor and ends at
// the true end anchor, so a drawn connector touches its shapes exactly. Next
// to them come the quantized start and goal cells, which carry the leg from
// the anchor to the first bend. An anchor off the grid is joined to its cell
// through one elbow point, so that leg stays axis-aligned too. In between,
// only cells where the path changes axis are kept:
//
//	keep curr  iff  prev.X == curr.X != next.X  or  prev.Y == curr.Y != next.Y
//
// Kept cells are converted with Grid.ToPoint, the same Grid the mapper used to
// quantize. Finally Collapse removes consecutive duplicates and interior
// points lying on the same axis as their kept neighbours; the result of
// Simplify is therefore a fixpoint of Collapse.
//
// WithAnchorsOnly leaves the quantized start and goal cells out. The legs
// from the anchors to the first and last bends are then diagonal unless the
// anchors line up with those bends.
//
// Complexity: O(n) time and space for a raw path of n cells.
package simplify
