// Package orthoroute routes diagram connectors as orthogonal ("Manhattan")
// polylines that go around shapes and avoid crossing other connectors.
//
// A route is computed in four stages, each in its own package:
//
//	gridmap: quantize anchors and shape extents into a bounded cell grid
//	walk: decide which cell steps are allowed (shapes, foreign crossings)
//	search: best-first search restricted to straight runs and 90° turns
//	simplify: reduce the cell path to bend points between the exact anchors
//
// route.Router runs the stages for one connector against any route.Host;
// diagram.Diagram is an in-memory host with YAML scene loading, and render
// draws the result as PNG or in a terminal.
//
// Quick example:
//
//	┌────┐         ┌──┐          ┌────┐
//	│ a  ├──┐      │c │      ┌──┤ b  │
//	└────┘  │      └──┘      │  └────┘
//	        └────────────────┘
//
// Command-line use:
//
//	go run ./cmd/orthoroute -in scene.yaml -png scene.png
package orthoroute
