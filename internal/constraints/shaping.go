package constraints

import (
	"fmt"

	"github.com/luccasniccolas177/uctp-scheduler/internal/config"
)

// ShapingParams carries the configuration knobs soft constraints need: preferred hours,
// midday-break window, course-split target, and clustering block sizes, all pre-parsed out of
// their "HH:MM" / int config.GAConfig form so the hot evaluation path never re-parses strings.
type ShapingParams struct {
	PreferredStartMinutes int
	PreferredEndMinutes   int

	MiddayBreakStartMinutes int
	MiddayBreakEndMinutes   int

	CourseSplitTargetDays int

	ClusterBlockMin int
	ClusterBlockMax int

	IsolatedPenalty         float64
	OversizePenaltyPerQuant float64
}

// NewShapingParams parses a GAConfig into ShapingParams. Malformed HH:MM strings fall back to
// an all-day preferred window / zero-width break rather than panicking. config.Load does not
// check these strings, so this fallback is the only guard against malformed values.
func NewShapingParams(cfg *config.GAConfig) ShapingParams {
	return ShapingParams{
		PreferredStartMinutes:   parseMinutesOrDefault(cfg.PreferredStartHHMM, 0),
		PreferredEndMinutes:     parseMinutesOrDefault(cfg.PreferredEndHHMM, 24*60),
		MiddayBreakStartMinutes: parseMinutesOrDefault(cfg.MiddayBreakStartHHMM, 0),
		MiddayBreakEndMinutes:   parseMinutesOrDefault(cfg.MiddayBreakEndHHMM, 0),
		CourseSplitTargetDays:   cfg.CourseSplitTargetDays,
		ClusterBlockMin:         cfg.ClusteringBlockMin,
		ClusterBlockMax:         cfg.ClusteringBlockMax,
		IsolatedPenalty:         cfg.IsolatedPenalty,
		OversizePenaltyPerQuant: cfg.OversizePenaltyPerQuant,
	}
}

func parseMinutesOrDefault(hhmm string, fallback int) int {
	var h, m int
	if _, err := fmt.Sscanf(hhmm, "%d:%d", &h, &m); err != nil {
		return fallback
	}
	return h*60 + m
}
