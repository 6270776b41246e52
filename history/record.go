// Package history provides read-only access to the host shell's command
// history. The bridge only ever needs the most recent record: the exit status
// and timestamps of the command that just finished.
package history

import "math"

// Record is one executed command's history entry. Start and End are
// wall-clock timestamps in seconds since the Unix epoch, matching the
// fractional-second timestamps shells keep in their history logs.
type Record struct {
	Command string  `json:"cmd,omitempty"`
	Status  int     `json:"status"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
}

// DurationMillis returns the command's elapsed wall time in milliseconds,
// rounded half-up. Clock skew can produce End < Start; the result is clamped
// to zero rather than reporting a negative duration.
func (r Record) DurationMillis() int64 {
	ms := (r.End - r.Start) * 1000
	if ms <= 0 {
		return 0
	}
	return int64(math.Floor(ms + 0.5))
}
