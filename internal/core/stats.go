package core

import "time"

// Stats tracks throughput and a smoothed population across a run.
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     uint64
	StartTime            time.Time
}

// NewStats returns stats anchored at the current time.
func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one completed generation.
func (s *Stats) Update(generation uint64, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}
	// Exponential moving average so single-frame spikes don't dominate.
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = s.AveragePopulation*0.9 + float64(population)*0.1
	}
}

// Elapsed returns the wall-clock time since the stats were created.
func (s *Stats) Elapsed() time.Duration {
	return time.Since(s.StartTime)
}
