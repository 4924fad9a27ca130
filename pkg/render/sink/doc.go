// Package sink writes a shelf plan or layout to an output format.
//
// # Formats
//
//   - [RenderHTML]: the bookshelf include markup, styled by the site CSS
//   - [RenderSVG]: a standalone drawing of the layout
//   - [RenderJSON]: the render plan, for tooling and caching
//   - [RenderPNG], [RenderPDF]: SVG converted with rsvg-convert
//
// Every renderer takes functional options; none of them modify their input.
package sink
