// Package render draws a routed diagram, either as a PNG image (gg with the
// Go Mono face for labels) or onto a tcell screen for terminal preview.
//
// Both renderers take a Frame: the shapes and the current connector routes.
// FrameOf snapshots a *diagram.Diagram into one.
//
// Drawing order is routes first, shapes last, so shape outlines stay crisp
// where a connector meets its anchor.
package render
