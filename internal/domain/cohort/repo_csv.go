package cohort

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

var admitTimeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// LoadAdmissionsCSV reads a pre-selected cohort from a CSV export with the
// header hadm_id,subject_id,admittime,dischtime,hospital_expire_flag. It
// backs offline runs where the cohort was selected elsewhere and only the
// labeling pipeline needs to execute.
func LoadAdmissionsCSV(path string) ([]Admission, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	var out []Admission
	line := 0
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		line++
		if line == 1 {
			continue
		}
		if len(rec) < 5 {
			return nil, fmt.Errorf("%s line %d: want 5 fields, got %d", path, line, len(rec))
		}

		adm, err := parseAdmissionRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line, err)
		}
		out = append(out, adm)
	}
}

func parseAdmissionRecord(rec []string) (Admission, error) {
	hadmID, err := strconv.ParseInt(rec[0], 10, 64)
	if err != nil {
		return Admission{}, fmt.Errorf("hadm_id %q: %w", rec[0], err)
	}
	subjectID, err := strconv.ParseInt(rec[1], 10, 64)
	if err != nil {
		return Admission{}, fmt.Errorf("subject_id %q: %w", rec[1], err)
	}
	admit, err := parseAdmitTime(rec[2])
	if err != nil {
		return Admission{}, fmt.Errorf("admittime: %w", err)
	}
	disch, err := parseAdmitTime(rec[3])
	if err != nil {
		return Admission{}, fmt.Errorf("dischtime: %w", err)
	}
	return Admission{
		HadmID:     hadmID,
		SubjectID:  subjectID,
		AdmitTime:  admit,
		DischTime:  disch,
		ExpireFlag: rec[4] == "1" || rec[4] == "true",
	}, nil
}

func parseAdmitTime(s string) (time.Time, error) {
	for _, layout := range admitTimeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
