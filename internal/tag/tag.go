// Package tag decomposes observation tag names.
//
// A tag identifies a ~1 hour set of scans over a fixed azimuth range at
// constant elevation and deck (boresight) angle. The name is a string
// like "20150614C06_dk023": date 2015-06-14, scan set C06, deck angle
// 23 degrees.
package tag

import (
	"strconv"
	"time"

	apperrors "kecktod/internal/errors"
)

// minLength is the number of characters needed to hold every
// fixed-offset field.
const minLength = 17

// Tag holds the decomposed fields of one observation tag plus the
// directory its files live in.
type Tag struct {
	Raw     string
	Year    int
	Month   int
	Day     int
	ScanSet string
	// Boresight is the telescope dk angle in degrees.
	Boresight int
	// Dir is the resolved directory holding the tag's files.
	Dir string
}

// Parse extracts the tag fields by fixed character offsets. Beyond
// requiring the minimum length and numeric date/angle fields it performs
// no validation; out-of-range values pass through silently.
func Parse(raw string) (*Tag, error) {
	if len(raw) < minLength {
		return nil, apperrors.NewParsingError("tag string too short", nil).
			WithContext("tag", raw).
			WithContext("min_length", minLength)
	}

	year, err := strconv.Atoi(raw[0:4])
	if err != nil {
		return nil, apperrors.NewParsingError("invalid year field", err).WithContext("tag", raw)
	}
	month, err := strconv.Atoi(raw[4:6])
	if err != nil {
		return nil, apperrors.NewParsingError("invalid month field", err).WithContext("tag", raw)
	}
	day, err := strconv.Atoi(raw[6:8])
	if err != nil {
		return nil, apperrors.NewParsingError("invalid day field", err).WithContext("tag", raw)
	}
	boresight, err := strconv.Atoi(raw[14:17])
	if err != nil {
		return nil, apperrors.NewParsingError("invalid boresight field", err).WithContext("tag", raw)
	}

	return &Tag{
		Raw:       raw,
		Year:      year,
		Month:     month,
		Day:       day,
		ScanSet:   raw[8:11],
		Boresight: boresight,
	}, nil
}

// Resolve parses raw and sets the tag directory. An empty dir means the
// tag's files are expected in a directory named after the tag itself.
func Resolve(raw, dir string) (*Tag, error) {
	t, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	if dir == "" {
		t.Dir = raw
	} else {
		t.Dir = dir
	}
	return t, nil
}

// Date returns the observation date assembled from the parsed fields.
func (t *Tag) Date() time.Time {
	return time.Date(t.Year, time.Month(t.Month), t.Day, 0, 0, 0, 0, time.UTC)
}
