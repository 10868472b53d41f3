package ui

import "time"

// Stats counts engine work. Phase durations describe the most recent call.
type Stats struct {
	// InvalidateCalls counts calls to Invalidate.
	InvalidateCalls uint64
	// UpdateCalls counts calls to Tick.
	UpdateCalls uint64
	// DataCalls counts bind calls, chained nodes included. Reset by Tick.
	DataCalls uint64

	MeasureTime time.Duration
	PlaceTime   time.Duration
	UpdateTime  time.Duration
}

// MeasureMs returns the last measure duration in milliseconds.
func (st Stats) MeasureMs() float64 { return float64(st.MeasureTime) / float64(time.Millisecond) }

// PlaceMs returns the last place duration in milliseconds.
func (st Stats) PlaceMs() float64 { return float64(st.PlaceTime) / float64(time.Millisecond) }

// UpdateMs returns the last tick duration in milliseconds.
func (st Stats) UpdateMs() float64 { return float64(st.UpdateTime) / float64(time.Millisecond) }

// Stats returns a snapshot of the counters.
func (s *State) Stats() Stats { return s.stats }
