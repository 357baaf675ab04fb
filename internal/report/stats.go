package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/BobbyKostko/Astron1221-project2/internal/lunar"
)

// Stats summarizes a run of day records.
type Stats struct {
	Days       int
	FullMoons  int
	NewMoons   int
	Supermoons int
	Eclipses   int

	UpAllDays   int
	DownAllDays int

	AvgIllumination float64
	MinIllumination float64
	MaxIllumination float64

	PhaseCounts map[lunar.Phase]int
}

// ComputeStats derives aggregate statistics from records.
func ComputeStats(records []lunar.DayRecord) Stats {
	s := Stats{
		Days:        len(records),
		PhaseCounts: make(map[lunar.Phase]int),
	}
	if len(records) == 0 {
		return s
	}

	s.MinIllumination = records[0].Illumination
	s.MaxIllumination = records[0].Illumination

	var sum float64
	for _, r := range records {
		s.PhaseCounts[r.Phase]++
		switch r.Phase {
		case lunar.PhaseFull:
			s.FullMoons++
		case lunar.PhaseNew:
			s.NewMoons++
		}
		if r.Supermoon {
			s.Supermoons++
		}
		if r.HasEclipse {
			s.Eclipses++
		}
		if r.Moon.UpAllDay() {
			s.UpAllDays++
		}
		if r.Moon.DownAllDay() {
			s.DownAllDays++
		}

		sum += r.Illumination
		if r.Illumination < s.MinIllumination {
			s.MinIllumination = r.Illumination
		}
		if r.Illumination > s.MaxIllumination {
			s.MaxIllumination = r.Illumination
		}
	}

	s.AvgIllumination = sum / float64(len(records))

	return s
}

// WriteSummaryTable writes a plain-text summary of the run.
func WriteSummaryTable(w io.Writer, records []lunar.DayRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No records")
		return
	}

	s := ComputeStats(records)
	first := records[0].DateString()
	last := records[len(records)-1].DateString()

	fmt.Fprintf(w, "Lunar report %s to %s (%d days)\n", first, last, s.Days)
	fmt.Fprintln(w, strings.Repeat("─", 72))
	fmt.Fprintf(w, "Full moons: %-4d New moons: %-4d Supermoons: %-4d Eclipse days: %d\n",
		s.FullMoons, s.NewMoons, s.Supermoons, s.Eclipses)
	fmt.Fprintf(w, "Illumination avg %.1f%%  min %.1f%%  max %.1f%%\n",
		s.AvgIllumination, s.MinIllumination, s.MaxIllumination)
	fmt.Fprintf(w, "Moon up all day: %d days   down all day: %d days\n",
		s.UpAllDays, s.DownAllDays)

	// Eclipse detail rows
	var eclipseRows []lunar.DayRecord
	for _, r := range records {
		if r.HasEclipse {
			eclipseRows = append(eclipseRows, r)
		}
	}
	if len(eclipseRows) > 0 {
		fmt.Fprintln(w, strings.Repeat("─", 72))
		fmt.Fprintf(w, "%-12s %-10s %-8s %s\n", "Date", "Type", "Depth", "Time")
		for _, r := range eclipseRows {
			fmt.Fprintf(w, "%-12s %-10s %6d%%  %s\n",
				r.DateString(), r.EclipseTypeString(), r.Eclipse.Depth, r.EclipseTimeString())
		}
	}
}
