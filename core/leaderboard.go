package core

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// LeaderboardSize is how many maze times are kept.
const LeaderboardSize = 3

// Record is one finished maze run.
type Record struct {
	Name   string        `json:"name"`
	Time   time.Duration `json:"time"`
	Levels int           `json:"levels"`
}

// Leaderboard keeps the fastest runs, fastest first.
type Leaderboard struct {
	Entries []Record `json:"entries"`
}

// Add records a run and trims to LeaderboardSize. It returns the 0-based
// rank of the new entry, or -1 when it did not place.
func (lb *Leaderboard) Add(s Record) int {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		s.Name = "anon"
	}
	lb.Entries = append(lb.Entries, s)
	// Stable, so an equal time never bumps an earlier run.
	slices.SortStableFunc(lb.Entries, func(a, b Record) int {
		switch {
		case a.Time < b.Time:
			return -1
		case a.Time > b.Time:
			return 1
		}
		return 0
	})
	rank := -1
	for i := range lb.Entries {
		if lb.Entries[i] == s && i < LeaderboardSize {
			rank = i
		}
	}
	if len(lb.Entries) > LeaderboardSize {
		lb.Entries = lb.Entries[:LeaderboardSize]
	}
	return rank
}

// Qualifies reports whether a time would make the board.
func (lb *Leaderboard) Qualifies(t time.Duration) bool {
	return len(lb.Entries) < LeaderboardSize || t < lb.Entries[len(lb.Entries)-1].Time
}

// FormatStopwatch renders a run time as seconds:milliseconds.
func FormatStopwatch(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	return fmt.Sprintf("%d:%03d", ms/1000, ms%1000)
}

// ElapsedDuration converts the sim stopwatch to a duration.
func (s *Sim) ElapsedDuration() time.Duration {
	return time.Duration(s.Elapsed * float64(time.Second))
}
