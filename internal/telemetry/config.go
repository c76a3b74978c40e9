package telemetry

import (
	"os"
)

var (
	calibrationModeEnabled bool
	observeEnabled         bool
)

func init() {
	// Read once at process start. Mid-run environment changes have no effect.
	calibrationModeEnabled = os.Getenv("GHS_CALIBRATION_MODE") == "1"

	// Observe: default to 1 when calibration=1 and GHS_OBSERVE_JSON is unset;
	// honour explicit 0/1.
	if v, ok := os.LookupEnv("GHS_OBSERVE_JSON"); ok {
		observeEnabled = (v == "1")
	} else {
		observeEnabled = calibrationModeEnabled
	}
}

// CalibrationModeEnabled reports whether calibration mode was enabled at startup.
func CalibrationModeEnabled() bool { return calibrationModeEnabled }

// ObserveEnabled reports whether JSONL emission was enabled at startup,
// considering calibration defaults.
func ObserveEnabled() bool {
	// Preserve startup-evaluated default, but allow tests to enable mid-run
	// via env override.
	if os.Getenv("GHS_OBSERVE_JSON") == "1" {
		return true
	}
	return observeEnabled
}
