// Package report writes and reads the tabular day-record output and derives
// the aggregate statistics shown by the summary table and the dashboard.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/BobbyKostko/Astron1221-project2/internal/lunar"
)

// Columns is the output header, in contract order. Do not reorder: the
// dashboard and any saved datasets depend on these exact names.
var Columns = []string{
	"Date",
	"Phase",
	"Illumination_%",
	"Moon_Rise",
	"Moon_Set",
	"Up_All_Day",
	"Down_All_Day",
	"Eclipse_Type",
	"Eclipse_Depth_%",
	"Eclipse_Time",
	"Supermoon",
}

// formatBool renders booleans the way the original datasets spell them.
func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// WriteCSV writes records as a delimited table with the contract header.
func WriteCSV(w io.Writer, records []lunar.DayRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.DateString(),
			r.Phase.String(),
			r.IlluminationString(),
			r.MoonRiseString(),
			r.MoonSetString(),
			formatBool(r.Moon.UpAllDay()),
			formatBool(r.Moon.DownAllDay()),
			r.EclipseTypeString(),
			strconv.Itoa(r.Eclipse.Depth),
			r.EclipseTimeString(),
			formatBool(r.Supermoon),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %s: %w", r.DateString(), err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a previously written table back into day records so the
// dashboard can run on saved datasets. Crossing instants are reconstructed
// on the record's own date; only their time of day is meaningful.
func ReadCSV(r io.Reader) ([]lunar.DayRecord, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(Columns) {
		return nil, fmt.Errorf("unexpected header %q", strings.Join(header, ","))
	}
	for i, name := range Columns {
		if header[i] != name {
			return nil, fmt.Errorf("unexpected header column %d: got %q, want %q", i+1, header[i], name)
		}
	}

	var records []lunar.DayRecord
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}

		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func parseRow(row []string) (lunar.DayRecord, error) {
	var rec lunar.DayRecord

	if len(row) != len(Columns) {
		return rec, fmt.Errorf("expected %d fields, got %d", len(Columns), len(row))
	}

	date, err := time.Parse("2006-01-02", row[0])
	if err != nil {
		return rec, fmt.Errorf("parse date: %w", err)
	}
	rec.Date = date

	phase, ok := lunar.ParsePhase(row[1])
	if !ok {
		return rec, fmt.Errorf("unknown phase %q", row[1])
	}
	rec.Phase = phase

	illum, err := strconv.ParseFloat(row[2], 64)
	if err != nil {
		return rec, fmt.Errorf("parse illumination: %w", err)
	}
	rec.Illumination = illum

	if rec.Moon, err = parseMoonDay(row[3], row[4], date); err != nil {
		return rec, err
	}

	etype, ok := lunar.ParseEclipseType(row[7])
	if !ok {
		return rec, fmt.Errorf("unknown eclipse type %q", row[7])
	}
	depth, err := strconv.Atoi(row[8])
	if err != nil {
		return rec, fmt.Errorf("parse eclipse depth: %w", err)
	}
	if etype != lunar.EclipseNone {
		rec.HasEclipse = true
		rec.Eclipse = lunar.EclipseResult{Type: etype, Depth: depth}
		if row[9] != lunar.SentinelNone {
			at, err := parseTimeOfDay(row[9], date)
			if err != nil {
				return rec, fmt.Errorf("parse eclipse time: %w", err)
			}
			rec.EclipseAt = at
		}
	}

	rec.Supermoon = row[10] == "True"

	return rec, nil
}

// parseMoonDay reconstructs the three-way horizon outcome from the rise/set
// sentinel contract.
func parseMoonDay(rise, set string, date time.Time) (lunar.MoonDay, error) {
	var day lunar.MoonDay

	switch {
	case rise == lunar.SentinelAllDay:
		day.Outcome = lunar.OutcomeUpAllDay
		return day, nil
	case set == lunar.SentinelDownAllDay:
		day.Outcome = lunar.OutcomeDownAllDay
		return day, nil
	}

	day.Outcome = lunar.OutcomeCrossings

	if rise != lunar.SentinelNoRise {
		t, err := parseTimeOfDay(rise, date)
		if err != nil {
			return day, fmt.Errorf("parse rise: %w", err)
		}
		day.Rise = t
		day.HasRise = true
	}
	if set != lunar.SentinelNoSet {
		t, err := parseTimeOfDay(set, date)
		if err != nil {
			return day, fmt.Errorf("parse set: %w", err)
		}
		day.Set = t
		day.HasSet = true
	}

	return day, nil
}

// parseTimeOfDay parses "HH:MM:SS UTC" onto the given calendar date.
func parseTimeOfDay(s string, date time.Time) (time.Time, error) {
	tod, err := time.Parse("15:04:05 UTC", s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		tod.Hour(), tod.Minute(), tod.Second(), 0, time.UTC), nil
}
