// Package cbrs implements the CBRS/SAS coupling used by the QRTB data
// model: the domain-proxy client adapter, the notify_dp state, and the
// spectrum-grant arithmetic that turns a CBSD channel window into
// TR-069 radio parameters.
package cbrs

import "math"

// Band is the fixed 3GPP band number for the CBRS (3.5 GHz) spectrum;
// every QRTB grant is written with this BAND value regardless of the
// actual channel, since band 48 covers the full CBRS range.
const Band = 48

// band48LowMHz/band48NOffsDL are the 3GPP 36.101 Table 5.7.3-1 anchor
// values for band 48: FDL_low = 3550.0 MHz, N_Offs-DL = 55990.
const (
	band48LowMHz   = 3550.0
	band48NOffsDL  = 55990
)

// SASMinPSD and SASMaxPSD bound the power spectral density SAS may
// grant, in dBm/MHz.
const (
	SASMinPSD = -137
	SASMaxPSD = 37
)

// CalcEARFCN derives the downlink EARFCN for a CBSD channel window
// centered between low and high (both in Hz), per the band 48 formula
// EARFCN = NOffsDL + 10*(centerMHz - FDLlowMHz).
func CalcEARFCN(lowHz, highHz float64) int {
	centerMHz := (lowHz + highHz) / 2 / 1e6
	return band48NOffsDL + int(math.Round(10*(centerMHz-band48LowMHz)))
}

// CalcBandwidthMHz returns the channel width in MHz.
func CalcBandwidthMHz(lowHz, highHz float64) float64 {
	return (highHz - lowHz) / 1e6
}

// CalcBandwidthRBs maps a channel width to the LTE resource-block
// count TR-069's DL_BANDWIDTH/UL_BANDWIDTH expect, per the standard
// 3GPP 36.101 channel-bandwidth table. Widths that don't land on a
// standard LTE channel round down to the nearest one.
func CalcBandwidthRBs(bandwidthMHz float64) int {
	switch {
	case bandwidthMHz >= 20:
		return 100
	case bandwidthMHz >= 15:
		return 75
	case bandwidthMHz >= 10:
		return 50
	case bandwidthMHz >= 5:
		return 25
	case bandwidthMHz >= 3:
		return 15
	default:
		return 6
	}
}

// CalcPSD floors maxEIRPDBmMHz to an integer PSD and validates it
// against the SAS-allowed range. It returns the floored PSD and false
// when that PSD is out of range; NotifyDP turns a false into a
// *config.ConfigurationError.
func CalcPSD(maxEIRPDBmMHz float64) (int, bool) {
	psd := int(math.Floor(maxEIRPDBmMHz))
	if psd < SASMinPSD || psd > SASMaxPSD {
		return psd, false
	}
	return psd, true
}
