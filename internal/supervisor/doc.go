// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

// Package supervisor runs the long-lived parts of the server under suture.
//
// The tree has two layers so a failing background job never restarts the
// HTTP listener:
//
//	fleetwatch
//	├── maintenance-layer  (cache cleanup)
//	└── api-layer          (HTTP server)
//
// Supervisor events are logged through sutureslog, which receives a
// slog.Logger backed by zerolog (see logging.NewSlogLogger).
package supervisor
