// Package styles defines how spines, labels and shelf boards are drawn.
//
// A [Style] writes SVG fragments into a buffer. Two styles ship with the
// package:
//
//   - [Palette]: spines are filled with the colour of their colour class
//   - [Cover]: spines use the colour extracted from the book's cover image
//     and fall back to the palette when a book has none
//
// Use [Lookup] to resolve a style by its configuration name.
package styles
