package lunar

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/BobbyKostko/Astron1221-project2/internal/astro"
)

func fullMoonProvider() *fakeProvider {
	return &fakeProvider{
		elongationFn: func(time.Time) float64 { return 180 },
		altitudeFn:   constantAltitude(10),
		distanceFn:   func(time.Time) float64 { return 356500 },
	}
}

func TestGenerate_FullMoonRun(t *testing.T) {
	cfg := BatchConfig{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Days:  3,
		Zone:  time.UTC,
	}

	records, err := Generate(fullMoonProvider(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	for i, rec := range records {
		wantDate := cfg.Start.AddDate(0, 0, i)
		if rec.DateString() != wantDate.Format("2006-01-02") {
			t.Errorf("record %d: date %s, want %s", i, rec.DateString(), wantDate.Format("2006-01-02"))
		}
		if rec.Phase != PhaseFull {
			t.Errorf("record %d: phase %v, want Full Moon", i, rec.Phase)
		}
		if rec.Illumination != 100 {
			t.Errorf("record %d: illumination %v, want 100", i, rec.Illumination)
		}
		if !rec.Supermoon {
			t.Errorf("record %d: perigee full moon not flagged as supermoon", i)
		}
		if !rec.Moon.UpAllDay() {
			t.Errorf("record %d: expected up-all-day", i)
		}
		if !rec.HasEclipse {
			t.Errorf("record %d: no eclipse on a day at exact opposition", i)
			continue
		}
		if rec.Eclipse.Type != EclipseTotal || rec.Eclipse.Depth != 100 {
			t.Errorf("record %d: eclipse %v depth %d, want Total 100", i, rec.Eclipse.Type, rec.Eclipse.Depth)
		}
		if rec.EclipseAt.UTC().Hour() != 0 {
			t.Errorf("record %d: eclipse at %v, want the window start", i, rec.EclipseAt)
		}
	}
}

func TestGenerate_QuarterMoonSkipsEclipseSearch(t *testing.T) {
	p := &fakeProvider{
		elongationFn: func(time.Time) float64 { return 90 },
		altitudeFn:   constantAltitude(10),
	}

	cfg := BatchConfig{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Days:  5,
		Zone:  time.UTC,
	}

	records, err := Generate(p, cfg)
	if err != nil {
		t.Fatal(err)
	}

	// One elongation evaluation per anchor day, no night-window sampling.
	if p.elongationCalls != cfg.Days {
		t.Errorf("%d elongation calls, want %d (search must be gated off below %.0f%%)",
			p.elongationCalls, cfg.Days, EclipseSearchIllumination)
	}
	for i, rec := range records {
		if rec.HasEclipse {
			t.Errorf("record %d: eclipse reported at first quarter", i)
		}
		if rec.Supermoon {
			t.Errorf("record %d: supermoon reported at first quarter", i)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	cfg := BatchConfig{
		Start: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		Days:  10,
		Zone:  time.UTC,
	}

	first, err := Generate(fullMoonProvider(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Generate(fullMoonProvider(), cfg)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("two runs with the same configuration produced different records")
	}
}

func TestGenerate_InvalidDays(t *testing.T) {
	for _, days := range []int{0, -1} {
		_, err := Generate(fullMoonProvider(), BatchConfig{Days: days, Zone: time.UTC})
		if !errors.Is(err, ErrInvalidDays) {
			t.Errorf("Days=%d: err = %v, want ErrInvalidDays", days, err)
		}
	}
}

func TestGenerate_ApogeeFullMoonIsNotSupermoon(t *testing.T) {
	p := fullMoonProvider()
	p.distanceFn = func(time.Time) float64 { return 405000 }

	records, err := Generate(p, BatchConfig{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Days:  1,
		Zone:  time.UTC,
	})
	if err != nil {
		t.Fatal(err)
	}
	if records[0].Supermoon {
		t.Error("apogee full moon flagged as supermoon")
	}
}

func TestGenerate_EclipseKeyedToItsOwnDate(t *testing.T) {
	// The Moon sets 06:00 and rises 18:00 every UTC day, so the night
	// window spills past midnight. The eclipse peaks 02:00 on the second
	// day; its record, not the anchor day's, must carry it.
	day0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	peak := day0.Add(26 * time.Hour)

	p := &fakeProvider{
		altitudeFn: func(at time.Time) float64 {
			h := math.Mod(at.Sub(day0).Hours(), 24)
			return -(h - 6) * (18 - h)
		},
		elongationFn: func(at time.Time) float64 {
			return 180 + 0.5*math.Abs(at.Sub(peak).Hours())
		},
	}

	records, err := Generate(p, BatchConfig{Start: day0, Days: 2, Zone: time.UTC})
	if err != nil {
		t.Fatal(err)
	}

	if records[0].HasEclipse {
		t.Errorf("anchor day %s carries the eclipse that peaked after midnight", records[0].DateString())
	}

	second := records[1]
	if !second.HasEclipse {
		t.Fatalf("no eclipse on %s, the day of the maximum", second.DateString())
	}
	if second.Eclipse.Type != EclipseTotal || second.Eclipse.Depth < 99 {
		t.Errorf("eclipse %v depth %d, want Total near 100", second.Eclipse.Type, second.Eclipse.Depth)
	}
	if d := second.EclipseAt.Sub(peak); math.Abs(d.Seconds()) > 1 {
		t.Errorf("eclipse instant %v is %v from the true maximum", second.EclipseAt, d)
	}
}

func TestGenerate_LocalAnchorConvertsToUTC(t *testing.T) {
	zone, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatal(err)
	}

	var anchors []time.Time
	p := &fakeProvider{
		elongationFn: func(at time.Time) float64 {
			anchors = append(anchors, at)
			return 90
		},
		altitudeFn: constantAltitude(10),
	}

	records, err := Generate(p, BatchConfig{
		Start: time.Date(2024, 1, 15, 0, 0, 0, 0, zone),
		Days:  2,
		Zone:  zone,
	})
	if err != nil {
		t.Fatal(err)
	}

	// 11 PM EST is 4 AM UTC the next calendar day.
	want := []time.Time{
		time.Date(2024, 1, 16, 4, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 17, 4, 0, 0, 0, time.UTC),
	}
	if len(anchors) != len(want) {
		t.Fatalf("%d anchor evaluations, want %d", len(anchors), len(want))
	}
	for i := range want {
		if !anchors[i].Equal(want[i]) {
			t.Errorf("anchor %d evaluated at %v, want %v", i, anchors[i].UTC(), want[i])
		}
	}

	// Date labels stay on the local calendar.
	if got := records[0].DateString(); got != "2024-01-15" {
		t.Errorf("first record dated %s, want 2024-01-15", got)
	}
}

func TestGenerate_ObserverDefaulting(t *testing.T) {
	cfg := BatchConfig{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Days:  1,
		Zone:  time.UTC,
	}

	// An explicit observer is honored even at the all-zero site.
	nullIsland := &astro.Observer{Name: "Null Island"}
	p := fullMoonProvider()
	cfg.Observer = nullIsland
	if _, err := Generate(p, cfg); err != nil {
		t.Fatal(err)
	}
	if p.lastObserver != *nullIsland {
		t.Errorf("observer %+v, want %+v", p.lastObserver, *nullIsland)
	}

	// Nil falls back to the default site.
	p = fullMoonProvider()
	cfg.Observer = nil
	if _, err := Generate(p, cfg); err != nil {
		t.Fatal(err)
	}
	if p.lastObserver != astro.Columbus {
		t.Errorf("observer %+v, want the Columbus default", p.lastObserver)
	}
}

func TestMergeEclipse(t *testing.T) {
	t0 := time.Date(2024, 3, 25, 5, 0, 0, 0, time.UTC)
	shallow := EclipseEvent{Result: EclipseResult{Type: EclipsePenumbral, Depth: 10}, At: t0, Found: true}
	deep := EclipseEvent{Result: EclipseResult{Type: EclipseTotal, Depth: 90}, At: t0.Add(time.Hour), Found: true}
	sameDepth := EclipseEvent{Result: EclipseResult{Type: EclipsePenumbral, Depth: 10}, At: t0.Add(2 * time.Hour), Found: true}

	if got := mergeEclipse(EclipseEvent{}, false, shallow); got != shallow {
		t.Errorf("first write: got %+v, want the incoming event", got)
	}
	if got := mergeEclipse(shallow, true, deep); got != deep {
		t.Errorf("deeper event must replace: got %+v", got)
	}
	if got := mergeEclipse(deep, true, shallow); got != deep {
		t.Errorf("shallower event must not replace: got %+v", got)
	}
	if got := mergeEclipse(shallow, true, sameDepth); got != shallow {
		t.Errorf("tie must keep the incumbent: got %+v", got)
	}
}
