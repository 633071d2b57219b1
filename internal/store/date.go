package store

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
	"02/01/2006",
}

// Date holds a date or timestamp column. The datasets store these as text
// in a few layouts; drivers may also hand back time.Time directly. Text in
// any other layout is kept verbatim in Raw with Valid=false.
type Date struct {
	Time  time.Time
	Valid bool
	Raw   string
}

func NewDate(t time.Time) Date { return Date{Time: t, Valid: true} }

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = Date{Time: v, Valid: true}
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	default:
		return errors.Newf("cannot scan %T into store.Date", src)
	}
}

func (d *Date) parse(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		*d = Date{}
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*d = Date{Time: t, Valid: true}
			return nil
		}
	}
	*d = Date{Raw: s}
	return nil
}

// String renders date-only values without a clock part. Unparsed text is
// returned as stored.
func (d Date) String() string {
	if !d.Valid {
		return d.Raw
	}
	h, m, s := d.Time.Clock()
	if h == 0 && m == 0 && s == 0 && d.Time.Nanosecond() == 0 {
		return d.Time.Format("2006-01-02")
	}
	return d.Time.Format("2006-01-02 15:04:05")
}

func (d Date) Before(o Date) bool { return d.Time.Before(o.Time) }

func (d Date) MarshalJSON() ([]byte, error) {
	if !d.Valid && d.Raw == "" {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return d.parse(s)
}
