// Package route assembles orthogonal connector routes.
//
// A Router asks its Host for the connector's anchors, maps them onto the grid
// (gridmap), builds a fresh walkability oracle (walk), searches (search) and
// reduces the cell path to bend points (simplify). The result always starts
// at the true source anchor and ends at the true target anchor.
//
// Self-connections, where both ends sit on the same shape, are not routed on
// the grid. They go to the configured SelfRouter, or fail with
// ErrSelfConnection when there is none.
//
// Routing failures are not errors: an embedded anchor, an unreachable goal or
// an exhausted expansion budget degrade to the direct line
// [trueStart, trueEnd] and are reported through Route.Outcome and the logger.
//
// A Router holds no per-route state. It is safe for concurrent use as long as
// the Host tolerates concurrent reads.
package route
