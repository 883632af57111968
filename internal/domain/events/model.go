package events

import "time"

// CultureRow is one raw blood culture row from microbiologyevents. ChartTime
// may carry only date precision when the source charttime was null and the
// chartdate was used instead.
type CultureRow struct {
	HadmID    int64     `db:"hadm_id"`
	ChartTime time.Time `db:"charttime"`
}

// CultureEvent is a preprocessed blood culture: taken at or after 72 hospital
// hours, one per admission day. Index is the 0-based position of the event in
// the admission's chronologically ordered culture table.
type CultureEvent struct {
	HadmID    int64     `json:"hadm_id"`
	Index     int       `json:"cx_index"`
	ChartTime time.Time `json:"cx_datetime"`
	Day       int       `json:"cx_day"`
}

// AbxOrder is one raw prescription row before qualification and
// consolidation. StartDate and EndDate are calendar dates.
type AbxOrder struct {
	HadmID      int64     `db:"hadm_id"`
	Drug        string    `db:"drug"`
	GenericName string    `db:"drug_name_generic"`
	Route       string    `db:"route"`
	StartDate   time.Time `db:"startdate"`
	EndDate     time.Time `db:"enddate"`
}

// AntibioticEvent is a consolidated course of one drug: overlapping or
// contiguous orders merged into a single span. Day is the 1-based hospital
// day the course started; Index is the 0-based position of the event in the
// admission's start-date ordered antibiotic table.
type AntibioticEvent struct {
	HadmID    int64     `json:"hadm_id"`
	Index     int       `json:"abx_index"`
	Drug      string    `json:"drug"`
	StartDate time.Time `json:"startdate"`
	EndDate   time.Time `json:"enddate"`
	Day       int       `json:"abx_day"`
}

// SOFARow is one raw hourly modified SOFA score (GCS and urine output
// excluded) for an ICU stay.
type SOFARow struct {
	HadmID    int64     `db:"hadm_id"`
	StartTime time.Time `db:"starttime"`
	Score     float64   `db:"sofa_24hours"`
}

// SOFASample is a SOFA row stamped with its hospital day. Index is the
// 0-based position of the sample in the admission's chronologically ordered
// score table.
type SOFASample struct {
	HadmID    int64     `json:"hadm_id"`
	Index     int       `json:"sofa_index"`
	StartTime time.Time `json:"starttime"`
	Day       int       `json:"sofa_day"`
	Score     float64   `json:"score"`
}
