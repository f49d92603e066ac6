package dataset

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	numre = regexp.MustCompile(`^[-+]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][-+]?[0-9]+)?$`)
	intre = regexp.MustCompile(`^[-+]?[0-9]+$`)
)

// TimeLayouts are the timestamp layouts ParseCell accepts for time columns.
var TimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// IsMissing reports whether a raw cell denotes an absent value.
func IsMissing(v string) bool {
	switch strings.TrimSpace(v) {
	case "", "NA", "N/A", "NaN", "nan", "null", "NULL", "None":
		return true
	}
	return false
}

// ParseTime parses v with the first matching layout of TimeLayouts.
func ParseTime(v string) (time.Time, bool) {
	for _, layout := range TimeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseBool(v string) (bool, bool) {
	switch strings.ToLower(v) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// InferKind determines a column kind from raw text cells. Every non-missing
// value must agree for a typed kind to win; anything else is a string column.
// Integer columns that contain missing cells are widened to float. Date-like
// text stays a string so it is written back exactly as read.
func InferKind(values []string) Kind {
	var n, nums, ints, bools int
	missing := false
	for _, raw := range values {
		v := strings.TrimSpace(raw)
		if IsMissing(v) {
			missing = true
			continue
		}
		n++
		if numre.MatchString(v) {
			nums++
			if intre.MatchString(v) {
				ints++
			}
			continue
		}
		if _, ok := parseBool(v); ok {
			bools++
		}
	}
	switch {
	case n == 0:
		return KindFloat
	case ints == n && !missing:
		return KindInt
	case nums == n:
		return KindFloat
	case bools == n:
		return KindBool
	default:
		return KindString
	}
}

// ParseCell converts a raw text cell to a value for a column of kind k.
// Missing or unparsable cells yield nil.
func ParseCell(k Kind, raw string) any {
	if IsMissing(raw) {
		return nil
	}
	v := strings.TrimSpace(raw)
	switch k {
	case KindFloat:
		if x, err := strconv.ParseFloat(v, 64); err == nil {
			return x
		}
	case KindInt:
		if x, err := strconv.ParseInt(v, 10, 64); err == nil {
			return x
		}
	case KindBool:
		if x, ok := parseBool(v); ok {
			return x
		}
	case KindTime:
		if t, ok := ParseTime(v); ok {
			return t
		}
	default:
		return raw
	}
	return nil
}

// FrameFromRecords builds a frame from a header and raw text records,
// inferring one kind per column. Short records leave trailing cells null.
func FrameFromRecords(header []string, records [][]string) (*Frame, error) {
	cols := make([]Column, len(header))
	for c, name := range header {
		vals := make([]string, len(records))
		for r, rec := range records {
			if c < len(rec) {
				vals[r] = rec[c]
			}
		}
		kind := InferKind(vals)
		col, err := NewColumn(name, kind, len(records))
		if err != nil {
			return nil, err
		}
		for r, v := range vals {
			setParsed(col, r, ParseCell(kind, v))
		}
		cols[c] = col
	}
	f, err := NewFrameFromColumns(cols...)
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		f.nrows = len(records)
	}
	return f, nil
}

func setParsed(c Column, row int, v any) {
	if v == nil {
		c.SetNull(row)
		return
	}
	switch col := c.(type) {
	case *BoolColumn:
		col.Set(row, v.(bool))
	case *IntColumn:
		col.Set(row, v.(int64))
	case *FloatColumn:
		col.Set(row, v.(float64))
	case *StringColumn:
		col.Set(row, v.(string))
	case *TimeColumn:
		col.Set(row, v.(time.Time))
	}
}
