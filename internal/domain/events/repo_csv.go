package events

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// timeLayouts are the timestamp forms accepted in CSV exports, tried in
// order.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// repoCSV serves the event repositories from CSV exports, for runs without
// a database. Files are read in full on each call; expected headers are
//
//	cultures:    hadm_id,charttime
//	antibiotics: hadm_id,drug,drug_name_generic,route,startdate,enddate
//	sofa:        hadm_id,starttime,sofa_24hours
type repoCSV struct {
	culturePath    string
	antibioticPath string
	sofaPath       string
}

// NewRepoCSV creates CSV-backed event repositories from the three export
// paths.
func NewRepoCSV(culturePath, antibioticPath, sofaPath string) *repoCSV {
	return &repoCSV{
		culturePath:    culturePath,
		antibioticPath: antibioticPath,
		sofaPath:       sofaPath,
	}
}

func (r *repoCSV) ListCultures(_ context.Context, hadmIDs []int64) ([]CultureRow, error) {
	want := idSet(hadmIDs)
	var out []CultureRow
	err := readCSV(r.culturePath, 2, func(rec []string) error {
		hadm, err := strconv.ParseInt(rec[0], 10, 64)
		if err != nil {
			return fmt.Errorf("hadm_id %q: %w", rec[0], err)
		}
		if _, ok := want[hadm]; !ok {
			return nil
		}
		ts, err := parseTime(rec[1])
		if err != nil {
			return fmt.Errorf("charttime: %w", err)
		}
		out = append(out, CultureRow{HadmID: hadm, ChartTime: ts})
		return nil
	})
	return out, err
}

func (r *repoCSV) ListOrders(_ context.Context, hadmIDs []int64) ([]AbxOrder, error) {
	want := idSet(hadmIDs)
	var out []AbxOrder
	err := readCSV(r.antibioticPath, 6, func(rec []string) error {
		hadm, err := strconv.ParseInt(rec[0], 10, 64)
		if err != nil {
			return fmt.Errorf("hadm_id %q: %w", rec[0], err)
		}
		if _, ok := want[hadm]; !ok {
			return nil
		}
		start, err := parseTime(rec[4])
		if err != nil {
			return fmt.Errorf("startdate: %w", err)
		}
		end, err := parseTime(rec[5])
		if err != nil {
			return fmt.Errorf("enddate: %w", err)
		}
		out = append(out, AbxOrder{
			HadmID:      hadm,
			Drug:        rec[1],
			GenericName: rec[2],
			Route:       rec[3],
			StartDate:   start,
			EndDate:     end,
		})
		return nil
	})
	return out, err
}

func (r *repoCSV) ListScores(_ context.Context, hadmIDs []int64) ([]SOFARow, error) {
	want := idSet(hadmIDs)
	var out []SOFARow
	err := readCSV(r.sofaPath, 3, func(rec []string) error {
		hadm, err := strconv.ParseInt(rec[0], 10, 64)
		if err != nil {
			return fmt.Errorf("hadm_id %q: %w", rec[0], err)
		}
		if _, ok := want[hadm]; !ok {
			return nil
		}
		ts, err := parseTime(rec[1])
		if err != nil {
			return fmt.Errorf("starttime: %w", err)
		}
		score, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return fmt.Errorf("sofa_24hours %q: %w", rec[2], err)
		}
		out = append(out, SOFARow{HadmID: hadm, StartTime: ts, Score: score})
		return nil
	})
	return out, err
}

// readCSV streams records from path, skipping the header row, and calls fn
// per data record. Records shorter than minFields are rejected.
func readCSV(path string, minFields int, fn func(rec []string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	line := 0
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		line++
		if line == 1 {
			continue
		}
		if len(rec) < minFields {
			return fmt.Errorf("%s line %d: want %d fields, got %d", path, line, minFields, len(rec))
		}
		if err := fn(rec); err != nil {
			return fmt.Errorf("%s line %d: %w", path, line, err)
		}
	}
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

func idSet(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
