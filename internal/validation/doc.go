// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

// Package validation wraps go-playground/validator v10 with the custom tags
// used by Fleetwatch request and configuration structs.
//
// Custom tags:
//
//	alarmtype  a known alarm type code, or the "todos"/"all" sentinel
//	groupby    a grouping accepted by models.ParseGroupBy
//	timezone   an IANA location name accepted by time.LoadLocation
//
// Field names in errors come from the json tag, so messages refer to the
// names clients actually send:
//
//	if err := validation.ValidateStruct(&req); err != nil {
//	    apiErr := err.ToAPIError()
//	    ...
//	}
package validation
