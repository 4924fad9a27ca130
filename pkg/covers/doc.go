// Package covers extracts a spine colour from each book's cover image.
//
// For every book with an image URL the [Extractor] downloads the cover,
// decodes it (JPEG, PNG, GIF or WebP), and stores the [Dominant] colour as a
// hex string in the book's CoverColor field. The result is written back to
// the book data file so the renderer can shade spines to match their covers.
//
// # Dominant colour
//
// The image is scaled to 80x80 and each channel is quantised into eight
// buckets. Near-black and near-white buckets are ignored unless nothing else
// remains. Of the eight most frequent buckets, the one with the best score
// wins:
//
//	score = 0.7*saturation + 0.3*max(0, 1 - 2*|value - 0.45|)
//
// Saturated, medium-bright colours read best as book spines.
//
// # Failures
//
// A failed download or decode is recorded in the [Report] and the book keeps
// its previous colour. One bad cover never aborts the run.
package covers
