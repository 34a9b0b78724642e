package requests

import (
	"fmt"
	"os-cpu-scheduling/internal/core"
)

type ScheduleRequest struct {
	Algorithm string         `json:"algorithm"`
	Processes []core.Process `json:"processes"`
	Quantum   *int           `json:"quantum,omitempty"`
}

// TimeQuantum returns the requested quantum, or fallback when none was sent.
// An explicit non-positive quantum is rejected.
func (r *ScheduleRequest) TimeQuantum(fallback int) (int, error) {
	if r.Quantum == nil {
		return fallback, nil
	}
	if *r.Quantum <= 0 {
		return 0, fmt.Errorf("%w: got %d", core.ErrInvalidQuantum, *r.Quantum)
	}
	return *r.Quantum, nil
}
