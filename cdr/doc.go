/*
Package cdr implements the CDR rectangle image codec.

An image is tiled into axis-aligned rectangles of near-uniform color by a
single greedy scan (columns outer, rows inner). Each rectangle is stored as
an 11 byte record behind a 4 byte header holding the image dimensions:

	offset  size  field
	0       2     width  (big-endian)
	2       2     height (big-endian)
	4+11k   2     record k: x
	6+11k   2     record k: y
	8+11k   2     record k: horizontal extent
	10+11k  2     record k: vertical extent
	12+11k  3     record k: r, g, b

Extents are zero-based, so a record with extents (0, 0) covers one pixel.
Decoding paints the records in stream order onto an opaque black canvas.
*/
package cdr
