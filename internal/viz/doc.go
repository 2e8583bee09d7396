// Package viz renders the simulation live in the terminal: a braille-canvas
// projection of the XZ plane with a stats panel and energy strip chart.
// The view owns the frame loop; the stepping core has no timing of its own.
package viz
