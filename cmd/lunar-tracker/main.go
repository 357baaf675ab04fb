// Command lunar-tracker computes lunar phase, rise/set, eclipse and
// supermoon data for an observer and renders it as CSV, a text summary or
// a terminal dashboard.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/BobbyKostko/Astron1221-project2/internal/astro"
	"github.com/BobbyKostko/Astron1221-project2/internal/ephem"
	"github.com/BobbyKostko/Astron1221-project2/internal/logging"
	"github.com/BobbyKostko/Astron1221-project2/internal/lunar"
	"github.com/BobbyKostko/Astron1221-project2/internal/report"
	"github.com/BobbyKostko/Astron1221-project2/internal/ui"
	"github.com/BobbyKostko/Astron1221-project2/internal/version"
)

const defaultDays = 365

func main() {
	var (
		dateStr   = flag.String("date", "", "Single UTC instant to query (YYYY-MM-DD or \"YYYY-MM-DD HH:MM:SS\")")
		startStr  = flag.String("start", "", "First date of the batch range (YYYY-MM-DD, default today)")
		days      = flag.Int("days", defaultDays, "Number of days to generate")
		lat       = flag.Float64("lat", astro.Columbus.LatDeg, "Observer latitude in degrees")
		lon       = flag.Float64("lon", astro.Columbus.LonDeg, "Observer longitude in degrees")
		elev      = flag.Float64("elev", astro.Columbus.ElevM, "Observer elevation in meters")
		site      = flag.String("site", astro.Columbus.Name, "Observer site name")
		tz        = flag.String("tz", lunar.DefaultZone, "IANA time zone for the 11 PM anchor and date labels")
		outPath   = flag.String("out", "", "Write CSV to file (use - for stdout)")
		inPath    = flag.String("in", "", "Load records from a previously written CSV instead of generating")
		summary   = flag.Bool("summary", false, "Print a text summary table")
		dashboard = flag.Bool("dashboard", false, "Open the interactive report dashboard")
		logLevel  = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		showVer   = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVer {
		fmt.Println("lunar-tracker " + version.Version)
		return
	}

	logger := logging.New(logging.ParseLevel(*logLevel))
	provider := ephem.NewAnalyticProvider()

	// Single-instant phase query
	if *dateStr != "" {
		t, err := parseUTC(*dateStr)
		if err != nil {
			fatalf("invalid -date: %v", err)
		}
		printPhase(provider, t)
		return
	}

	records, err := loadOrGenerate(provider, logger,
		*inPath, *startStr, *days, *lat, *lon, *elev, *site, *tz)
	if err != nil {
		fatalf("%v", err)
	}

	if *outPath != "" {
		if err := writeCSV(*outPath, records); err != nil {
			fatalf("write csv: %v", err)
		}
		logger.Info("wrote %d records to %s", len(records), *outPath)
	}

	if *summary {
		report.WriteSummaryTable(os.Stdout, records)
	}

	if *dashboard {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fatalf("dashboard requires a terminal (stdout is not a TTY)")
		}
		p := tea.NewProgram(ui.New(records), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fatalf("dashboard: %v", err)
		}
		return
	}

	// With no other output mode, default to the summary so a bare
	// invocation still shows something useful.
	if *outPath == "" && !*summary {
		report.WriteSummaryTable(os.Stdout, records)
	}
}

// loadOrGenerate either reads a saved CSV or runs the batch driver.
func loadOrGenerate(provider ephem.Provider, logger *logging.Logger,
	inPath, startStr string, days int,
	lat, lon, elev float64, site, tz string) ([]lunar.DayRecord, error) {

	if inPath != "" {
		f, err := os.Open(inPath)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", inPath, err)
		}
		defer f.Close()

		records, err := report.ReadCSV(f)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", inPath, err)
		}
		logger.Info("loaded %d records from %s", len(records), inPath)
		return records, nil
	}

	zone, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid -tz %q: %w", tz, err)
	}

	start := time.Now().UTC()
	if startStr != "" {
		start, err = parseUTC(startStr)
		if err != nil {
			return nil, fmt.Errorf("invalid -start: %w", err)
		}
	}

	return lunar.Generate(provider, lunar.BatchConfig{
		Start: start,
		Days:  days,
		Observer: &astro.Observer{
			LatDeg: lat,
			LonDeg: lon,
			ElevM:  elev,
			Name:   site,
		},
		Zone:   zone,
		Logger: logger,
	})
}

// parseUTC parses a date or datetime string. Inputs carry no zone and are
// taken as UTC; a bare date means midnight.
func parseUTC(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	layout := "2006-01-02"
	if len(s) > len(layout) {
		layout = "2006-01-02 15:04:05"
	}
	return time.ParseInLocation(layout, s, time.UTC)
}

// printPhase prints the single-instant query result.
func printPhase(p ephem.Provider, t time.Time) {
	phase, illumination := lunar.PhaseAt(p, t)

	fmt.Printf("Date: %s UTC\n", t.Format("2006-01-02 15:04:05"))
	fmt.Printf("Phase: %s\n", phase)
	fmt.Printf("Illumination: %.1f%%\n", illumination)
}

// writeCSV writes records to a file or stdout.
func writeCSV(path string, records []lunar.DayRecord) error {
	if path == "-" {
		return report.WriteCSV(os.Stdout, records)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := report.WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
