package telemetry

import (
	"context"

	"github.com/ghscout/ghscout/internal/metrics"
)

// EmitPromptFeatures records size features of an incoming prompt. Only active
// in calibration mode with observation on.
func EmitPromptFeatures(ctx context.Context, prompt string) {
	if !(CalibrationModeEnabled() && ObserveEnabled()) {
		return
	}
	turnID, _ := TurnIDFromContext(ctx)
	f := metrics.CountFeatures(prompt)
	Emit("prompt_features", map[string]any{
		"turn_id":          turnID,
		"features_version": "1",
		"prompt": map[string]any{
			"bytes": f.Bytes,
			"runes": f.Runes,
			"words": f.Words,
			"lines": f.Lines,
		},
	})
}
