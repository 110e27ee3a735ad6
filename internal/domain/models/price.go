package models

import (
	"strconv"
	"time"
)

// DateLayout is the calendar date format used by the input file ("YYYY-MM-DD").
const DateLayout = "2006-01-02"

// Columns lists the CSV column names in file order. The header of the
// input file must match this exactly (names and order).
var Columns = []string{"date", "open", "high", "low", "close", "volume", "Name"}

// PriceRecord represents a single daily price bar for one ticker.
// Each field matches one column of the input file.
//
// Numeric fields are pointers so that an empty (missing) cell can be
// told apart from a legitimate zero value. Date holds the raw cell text
// until coercion; Day is populated once the text has been parsed as a
// calendar date.
//
// Column order:
//  1. date
//  2. open
//  3. high
//  4. low
//  5. close
//  6. volume
//  7. Name
type PriceRecord struct {
	Date   string    // raw date text, "YYYY-MM-DD" once coerced
	Day    time.Time // parsed date; zero until coercion succeeds
	Open   *float64
	High   *float64
	Low    *float64
	Close  *float64
	Volume *int64
	Name   string
}

// Complete reports whether every field of the record is present.
func (r PriceRecord) Complete() bool {
	return r.Date != "" &&
		r.Open != nil &&
		r.High != nil &&
		r.Low != nil &&
		r.Close != nil &&
		r.Volume != nil &&
		r.Name != ""
}

// Absent reports whether the named column is missing in this record.
// Unknown column names are treated as absent.
func (r PriceRecord) Absent(column string) bool {
	switch column {
	case "date":
		return r.Date == ""
	case "open":
		return r.Open == nil
	case "high":
		return r.High == nil
	case "low":
		return r.Low == nil
	case "close":
		return r.Close == nil
	case "volume":
		return r.Volume == nil
	case "Name":
		return r.Name == ""
	}
	return true
}

// Fields returns the record's cells as text, in file column order.
// Missing fields serialize as empty strings. The same representation is
// used for output serialization and for duplicate detection, so two
// records are duplicates exactly when their serialized rows are equal.
func (r PriceRecord) Fields() []string {
	return []string{
		r.Date,
		formatFloat(r.Open),
		formatFloat(r.High),
		formatFloat(r.Low),
		formatFloat(r.Close),
		formatInt(r.Volume),
		r.Name,
	}
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatInt(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}
