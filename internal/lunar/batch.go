package lunar

import (
	"errors"
	"fmt"
	"time"

	"github.com/BobbyKostko/Astron1221-project2/internal/astro"
	"github.com/BobbyKostko/Astron1221-project2/internal/ephem"
	"github.com/BobbyKostko/Astron1221-project2/internal/logging"
)

const (
	// AnchorHour is the local clock hour every day is sampled at.
	AnchorHour = 23

	// SupermoonDistanceKm is the perigee threshold: a Full Moon at or
	// inside this geocentric distance counts as a supermoon.
	SupermoonDistanceKm = 360000.0

	// EclipseSearchIllumination gates the night-window eclipse search;
	// below this percentage the Moon cannot be near enough to opposition.
	EclipseSearchIllumination = 85.0

	// progressLogInterval is how often the driver reports progress.
	progressLogInterval = 365
)

// DefaultZone is the civil time zone the 11 PM anchor is expressed in.
const DefaultZone = "America/New_York"

// ErrInvalidDays is returned when the configured day count is not positive.
var ErrInvalidDays = errors.New("day count must be positive")

// BatchConfig configures a batch generation run.
type BatchConfig struct {
	Start    time.Time       // First local calendar date of the range
	Days     int             // Number of consecutive days to generate
	Observer *astro.Observer // Site for rise/set computations; nil means Columbus
	Zone     *time.Location  // Civil zone for the anchor and date labels
	Logger   *logging.Logger // Optional; defaults to a discard logger
}

// dateKey labels a local calendar date for eclipse aggregation.
type dateKey string

// localDateKey derives the aggregation key for an instant in a zone.
func localDateKey(t time.Time, zone *time.Location) dateKey {
	return dateKey(t.In(zone).Format("2006-01-02"))
}

// mergeEclipse is the reduction step for the eclipse-by-date accumulator:
// the deeper eclipse wins, and the incumbent survives ties so that the
// first write (earliest anchor day processed) is kept.
func mergeEclipse(have EclipseEvent, haveOK bool, next EclipseEvent) EclipseEvent {
	if !haveOK || next.Result.Depth > have.Result.Depth {
		return next
	}
	return have
}

// Generate produces one DayRecord per calendar day of the configured range,
// in chronological order. The computation is deterministic: re-running with
// the same configuration yields identical records.
func Generate(p ephem.Provider, cfg BatchConfig) ([]DayRecord, error) {
	if cfg.Days <= 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidDays, cfg.Days)
	}

	zone := cfg.Zone
	if zone == nil {
		var err error
		zone, err = time.LoadLocation(DefaultZone)
		if err != nil {
			return nil, fmt.Errorf("load default zone: %w", err)
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	obs := astro.Columbus
	if cfg.Observer != nil {
		obs = *cfg.Observer
	}

	start := cfg.Start.In(zone)
	anchorBase := time.Date(start.Year(), start.Month(), start.Day(), AnchorHour, 0, 0, 0, zone)

	logger.Info("generating %d day records from %s (site %s, zone %s, ephemeris %s)",
		cfg.Days, anchorBase.Format("2006-01-02"), obs.Name, zone.String(), p.Name())

	records := make([]DayRecord, 0, cfg.Days)
	eclipses := make(map[dateKey]EclipseEvent)

	for i := 0; i < cfg.Days; i++ {
		anchorLocal := anchorBase.AddDate(0, 0, i)
		anchorUTC := anchorLocal.UTC()

		elongation := p.Elongation(anchorUTC)
		phase := ClassifyPhase(elongation)
		illumination := Illumination(elongation)

		supermoon := phase == PhaseFull &&
			p.GeocentricDistance(ephem.BodyMoon, anchorUTC) <= SupermoonDistanceKm

		day := FindHorizonCrossings(p, obs, anchorUTC)

		// The search window can spill past midnight, so a found eclipse is
		// keyed by its own local calendar date, not the anchor day's.
		if illumination > EclipseSearchIllumination {
			dayStart := time.Date(anchorUTC.Year(), anchorUTC.Month(), anchorUTC.Day(), 0, 0, 0, 0, time.UTC)
			if ev := SampleNightWindow(p, day, dayStart); ev.Found {
				key := localDateKey(ev.At, zone)
				have, ok := eclipses[key]
				eclipses[key] = mergeEclipse(have, ok, ev)
				logger.Debug("eclipse candidate %s depth %d%% at %s",
					ev.Result.Type, ev.Result.Depth, ev.At.UTC().Format(time.RFC3339))
			}
		}

		records = append(records, DayRecord{
			Date: time.Date(anchorLocal.Year(), anchorLocal.Month(), anchorLocal.Day(),
				0, 0, 0, 0, zone),
			Phase:        phase,
			Illumination: illumination,
			Moon:         day,
			Supermoon:    supermoon,
		})

		if (i+1)%progressLogInterval == 0 {
			logger.Info("generated %d/%d days", i+1, cfg.Days)
		}
	}

	// Second pass: each record picks up the eclipse that landed on its own
	// local date, if any.
	for i := range records {
		key := dateKey(records[i].DateString())
		if ev, ok := eclipses[key]; ok {
			records[i].Eclipse = ev.Result
			records[i].EclipseAt = ev.At
			records[i].HasEclipse = true
		}
	}

	logger.Info("batch complete: %d records, %d eclipse dates", len(records), len(eclipses))

	return records, nil
}
