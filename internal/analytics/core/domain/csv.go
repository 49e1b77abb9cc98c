package domain

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// Column coercion allow-lists. Header names must match exactly.
var (
	IntegerColumns = []string{"Followers", "Impressions", "Reach", "Posts", "Likes", "Comments", "Shares"}

	PercentageColumns = []string{"Engagement (%)", "Growth (%)"}
)

const (
	percentSuffix = " (%)"
	byteOrderMark = "\ufeff"
)

var (
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
	floatPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

type columnKind int

const (
	kindString columnKind = iota
	kindInteger
	kindPercentage
)

type column struct {
	kind columnKind
	key  string
}

func classify(header string) column {
	for _, h := range IntegerColumns {
		if header == h {
			return column{kind: kindInteger, key: strings.ToLower(header)}
		}
	}
	for _, h := range PercentageColumns {
		if header == h {
			return column{kind: kindPercentage, key: strings.TrimSuffix(strings.ToLower(header), percentSuffix)}
		}
	}
	return column{kind: kindString, key: strings.ToLower(header)}
}

// ParseCSV turns the exported sheet into rows.
//
// The first non-blank line is the header; every following non-blank line is a
// data row aligned by position. Cells are split on bare commas with no quote
// handling, so a comma inside a value shifts the remaining columns. Unparsable
// numeric cells and missing trailing cells become zero.
func ParseCSV(text string) []Row {
	lines := nonBlankLines(text)
	if len(lines) == 0 {
		return []Row{}
	}

	headers := splitCells(strings.TrimPrefix(strings.TrimSpace(lines[0]), byteOrderMark))
	columns := make([]column, len(headers))
	for i, h := range headers {
		columns[i] = classify(h)
	}

	rows := make([]Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := splitCells(line)

		var row Row
		for i, col := range columns {
			value := ""
			if i < len(values) {
				value = values[i]
			}
			row.set(col, value)
		}
		rows = append(rows, row)
	}

	return rows
}

func (r *Row) set(col column, value string) {
	switch col.kind {
	case kindInteger:
		*r.intField(col.key) = ParseInteger(value)
	case kindPercentage:
		*r.percentField(col.key) = ParsePercentage(value)
	default:
		switch col.key {
		case fieldDate:
			r.Date = value
		case fieldPlatform:
			r.Platform = value
		default:
			// a lower-case "followers" header is not allow-listed and must not
			// shadow the typed column
			if isTypedField(col.key) {
				return
			}
			if r.Extra == nil {
				r.Extra = map[string]string{}
			}
			r.Extra[col.key] = value
		}
	}
}

// ParseInteger reads the leading integer of s, or 0 when there is none.
// Values beyond the int64 range clamp to its bounds.
func ParseInteger(s string) int64 {
	m := intPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseInt(m, 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return v
}

// ParsePercentage reads the leading decimal number of s, or 0 when there is none.
func ParsePercentage(s string) float64 {
	m := floatPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return v
}

func nonBlankLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

func splitCells(line string) []string {
	cells := strings.Split(line, ",")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}
