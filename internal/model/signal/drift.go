package signal

import (
	"github.com/ghalamif/ForgeFeed/internal/domain"
	"github.com/ghalamif/ForgeFeed/internal/rng"
)

// Per-day drift rate bounds. Each unit gets its own rates, drawn once before
// the first tick and read-only afterwards.
const (
	tempDriftBound = 0.1
	vibDriftBound  = 0.05
)

// InitDrift samples a drift state for every profile. Called exactly once per
// run, before signal generation begins.
func InitDrift(profiles []domain.EquipmentProfile, r *rng.Rand) map[string]domain.DriftState {
	states := make(map[string]domain.DriftState, len(profiles))
	for _, p := range profiles {
		states[p.ID] = domain.DriftState{
			TempPerDay: r.Uniform(-tempDriftBound, tempDriftBound),
			VibPerDay:  r.Uniform(-vibDriftBound, vibDriftBound),
		}
	}
	return states
}
