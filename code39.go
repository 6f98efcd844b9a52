// Package code39 encodes text as Code 39 linear barcodes.
//
// Encoding is split in two pure steps. Encode turns text into a Sequence of
// bar and space modules, framed by the '*' start/stop sentinel. Layout maps
// a Sequence onto rectangles for a given narrow unit width and bar height.
// Drawing the rectangles is left to the caller; package render provides
// SVG, PNG and raster sinks.
//
//	seq := code39.Encode("fuaz/23/agr/0567")
//	plan, err := code39.Layout(seq, 1.5, 40)
//
// Characters outside the Code 39 alphabet are encoded as spaces by default.
// Use NewEncoder(Strict) to reject them instead.
package code39
