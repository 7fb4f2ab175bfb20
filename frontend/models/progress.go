package models

import (
	"encoding/json"
	"strconv"
	"time"
)

type ProgressEntry struct {
	ID         int       `json:"id"`
	CourseID   int       `json:"course_id"`
	Percentage Percent   `json:"percentage"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Percent decodes either a JSON number or a quoted numeric string; the
// backend serializes its numeric column as a string.
type Percent float64

func (p *Percent) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*p = Percent(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*p = Percent(f)
	return nil
}

func (p Percent) Float() float64 {
	return float64(p)
}

func (p Percent) String() string {
	return strconv.FormatFloat(float64(p), 'f', -1, 64)
}
