package datamodel

import (
	"strconv"
)

// Common transforms shared across device models. Each pair round-trips:
// TransformForMagma(TransformForENB(v)) == v for canonical v in domain.

// BoolEnbToMagma converts the device's "1"/"0" wire encoding to the
// canonical "true"/"false" used in the configuration store.
func BoolEnbToMagma(v string) string {
	if v == "1" || v == "true" || v == "True" {
		return "true"
	}
	return "false"
}

// BoolMagmaToEnb converts canonical "true"/"false" to the device's
// "1"/"0" wire encoding.
func BoolMagmaToEnb(v string) string {
	if v == "true" {
		return "1"
	}
	return "0"
}

// gpsScale is the fixed-point scale Baicells firmware reports GPS
// coordinates in (degrees * 1,000,000).
const gpsScale = 1000000.0

// GPSCoordEnbToMagma converts a scaled integer wire value to a decimal
// degree string.
func GPSCoordEnbToMagma(v string) string {
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return v
	}
	return strconv.FormatFloat(float64(n)/gpsScale, 'f', 6, 64)
}

// GPSCoordMagmaToEnb converts a decimal degree string to the device's
// scaled integer wire encoding.
func GPSCoordMagmaToEnb(v string) string {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return v
	}
	return strconv.FormatInt(int64(f*gpsScale), 10)
}
