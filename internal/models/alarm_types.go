// Fleetwatch - Fleet Alarm Rankings and Driving Reports
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fleetwatch

package models

// Alarm type codes emitted by the telematics platform.
const (
	AlarmSeatbelt      = "cinturon"
	AlarmDistracted    = "distraido"
	AlarmLaneCrossing  = "cruce"
	AlarmFollowing     = "distancia"
	AlarmFatigue       = "fatiga"
	AlarmHarshBraking  = "frenada"
	AlarmStopViolation = "stop"
	AlarmPhone         = "telefono"
	AlarmPanicButton   = "boton"
	AlarmVideoRequest  = "video"
)

// AlarmTypeCodes lists the known alarm types in catalog order.
var AlarmTypeCodes = []string{
	AlarmSeatbelt,
	AlarmDistracted,
	AlarmLaneCrossing,
	AlarmFollowing,
	AlarmFatigue,
	AlarmHarshBraking,
	AlarmStopViolation,
	AlarmPhone,
	AlarmPanicButton,
	AlarmVideoRequest,
}

var alarmTypeNames = map[string]string{
	AlarmSeatbelt:      "Cinturón de seguridad",
	AlarmDistracted:    "Conductor distraído",
	AlarmLaneCrossing:  "Cruce de carril",
	AlarmFollowing:     "Distancia de seguridad",
	AlarmFatigue:       "Fatiga",
	AlarmHarshBraking:  "Frenada brusca",
	AlarmStopViolation: "Infracción de señal de stop",
	AlarmPhone:         "Teléfono móvil",
	AlarmPanicButton:   "Botón de Alerta",
	AlarmVideoRequest:  "Video Solicitado",
}

// AlarmTypeName returns the display name of an alarm type.
// Unknown types are returned unchanged.
func AlarmTypeName(alarmType string) string {
	if name, ok := alarmTypeNames[alarmType]; ok {
		return name
	}
	return alarmType
}

// IsKnownAlarmType reports whether alarmType is in the catalog.
func IsKnownAlarmType(alarmType string) bool {
	_, ok := alarmTypeNames[alarmType]
	return ok
}
