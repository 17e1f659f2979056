// Package core defines the value types shared by every orthoroute package:
// grid cells, diagram points, the step that converts between them, cell bounds,
// movement directions, shapes and the identifiers of shapes and connectors.
//
// Two coordinate spaces are kept strictly apart:
//
//   - Point is a continuous position in the diagram's own units.
//   - Cell is an integer grid position used only inside the search.
//
// The only bridge between them is Grid:
//
//	cell  = floor(point / step)   // Grid.ToCell
//	point = cell * step           // Grid.ToPoint
//
// A single Grid value must be shared by everything that maps one route
// (bounds, walkability queries, simplification); a mismatch is a correctness
// bug, not a runtime error.
//
// Movement is expressed with Dir, which has exactly four headings plus DirNone.
// A diagonal step cannot be constructed.
//
// Errors:
//
//   - ErrBadStep: the step passed to NewGrid is zero, negative, NaN or infinite.
package core
