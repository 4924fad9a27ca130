// Package layout computes shelf geometry from a shelf plan.
//
// Each plan row becomes a shelf: spines stand on a board, left to right, in
// plan order. Spine height varies with the title so a shelf does not look
// machine-cut; the same title always gets the same height. The tilted book of
// a row leans against its right-hand neighbour, pivoting on its bottom-right
// corner, and the spines after it move right to make room.
//
// Coordinates are SVG user units with y growing downwards.
package layout
