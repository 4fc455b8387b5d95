// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

/*
Package layout places rasterized blocks on fixed-size pages.

All units are millimetres. A page reserves a band at the top (header) and at
the bottom (footer); content flows between them, separated by a fixed
spacing, and a block is never split across pages.

Plan-for-zoom sizing:

Blocks carry a zoom factor. Instead of sizing a block to fit and then
magnifying it (which pushes it off the page), the engine first divides the
available space by the zoom, sizes the block inside that budget while
keeping its aspect ratio, and only then multiplies by the zoom. The final
rectangle therefore always fits the usable area and is exactly zoom times
the base size. For a 1200x900 px capture at zoom 3 on a 190x120 mm area:

	base budget: 63.33 x 40 mm
	base size:   53.33 x 40 mm (height bound)
	drawn:       160 x 120 mm

Failed captures (zero width, missing bytes) produce a placeholder at the
block's planned position instead of a rectangle.

Layout is a pure function: the same blocks and page always produce the
same placements.
*/
package layout
