// Package walk answers the only obstacle question the search ever asks:
// may a route step from one cell into its neighbour?
//
// A cell `to` is walkable from `from` iff all of:
//
//  1. to lies inside the route's Bounds;
//  2. the host reports no shape at to's diagram point (Collider);
//  3. the segment from→to, in diagram space, crosses no connector except the
//     one being routed (Crosser). Crossing itself is allowed.
//
// With WithLeads, rule 3 relaxes at the route's start and goal cells: a step
// out of start (into goal) may touch another connector at that cell, provided
// the contact does not reach the step's other end. Connectors sharing an
// anchor then fan out instead of blocking each other.
//
// The Oracle also offers Collides (the standalone collision test used for the
// blocked-endpoint short-circuit) and Passable (bounds + collision).
//
// An Oracle belongs to a single route computation. Collision answers are
// memoized in an unsynchronized map, so instances must not be shared between
// goroutines; create one per route instead.
package walk
