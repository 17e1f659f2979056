// Package gridmap turns continuous diagram geometry into the discrete search
// space of one route computation.
//
// What:
//
//   - Bounds: the inclusive cell rectangle [0..MaxX]×[0..MaxY] that covers every
//     shape plus a safety margin, so routes can pass around shapes that touch the
//     right or bottom edge of the diagram.
//   - Endpoint: the start or goal cell for an anchor, nudged just outside the
//     owning shape before quantizing, so the first step is not blocked by that
//     shape's own collision geometry.
//
// Formulas (step = grid step, m = margin in cells):
//
//	MaxX = max over shapes of floor((right  + m*step) / step)
//	MaxY = max over shapes of floor((bottom + m*step) / step)
//	start.X = floor((anchor.X ± offset) / step)   // − for left anchors, + otherwise
//
// An empty diagram yields Bounds{0, 0}, which is valid.
//
// Options:
//
//   - WithMargin(cells):       margin past the right/bottom-most shape (default 5).
//   - WithAnchorOffset(units): nudge distance in diagram units (default 20).
//   - WithNormalOffset():      nudge top/bottom anchors along Y instead of X.
//
// Complexity:
//
//   - Bounds: O(S) for S shapes.
//   - Endpoint, Map: O(1) beyond Bounds.
//
// Errors:
//
//   - ErrOptionViolation: a negative margin or offset was supplied.
package gridmap
