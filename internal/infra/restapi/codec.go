package restapi

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// dateOnly is the wire format for calendar dates.
const dateOnly = "2006-01-02"

// apiDate is a calendar date on the wire. The backend is not consistent
// about the format: plain dates and full RFC 3339 timestamps both occur, so
// decoding accepts either and keeps only the date part.
type apiDate struct {
	time.Time
}

func (d apiDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateOnly))
}

func (d *apiDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		s = s[:i]
	}
	t, err := time.ParseInLocation(dateOnly, s, time.Local)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// apiInt is an integer on the wire that may arrive as a JSON number or a
// numeric string.
type apiInt int

func (n apiInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(n))
}

func (n *apiInt) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		*n = apiInt(int(value))
		return nil
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("invalid integer %q: %w", value, err)
		}
		*n = apiInt(parsed)
		return nil
	}
	return fmt.Errorf("invalid integer value %v", v)
}
