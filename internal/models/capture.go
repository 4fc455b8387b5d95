// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package models

// CaptureResult is a rasterized visual block.
// The failed sentinel has empty ImageBytes and zero dimensions.
type CaptureResult struct {
	ImageBytes  []byte `json:"-"`
	PixelWidth  int    `json:"pixel_width"`
	PixelHeight int    `json:"pixel_height"`
}

// FailedCapture returns the failed capture sentinel.
func FailedCapture() CaptureResult {
	return CaptureResult{}
}

// Failed reports whether the capture cannot be placed on a page.
func (c CaptureResult) Failed() bool {
	return len(c.ImageBytes) == 0 || c.PixelWidth <= 0 || c.PixelHeight <= 0
}
