// Package diagram is an in-memory diagram: shapes, connectors between shape
// anchors and the current route of every connector.
//
// *Diagram implements route.Host and route.Drawer. LoopRouter implements
// route.SelfRouter by walking a rectangle around the shape. LoadScene builds
// a Diagram from a YAML scene:
//
//	step: 10
//	shapes:
//	  - {id: a, x: 0, y: 0, w: 60, h: 40}
//	  - {id: b, x: 120, y: 0, w: 60, h: 40}
//	connectors:
//	  - {id: c1, from: {shape: a, side: right}, to: {shape: b, side: left}}
//
// Connectors added without an id receive a ULID.
//
// All methods are safe for concurrent use.
package diagram
