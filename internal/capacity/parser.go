package capacity

import (
	"strconv"
	"strings"

	appErrors "github.com/noah-isme/contract-capacity-api/pkg/errors"
)

// Column identifiers reported by MissingColumnsError.
const (
	ColumnName  = "name"
	ColumnHours = "hours"
)

var (
	nameHeaderTokens  = []string{"nome", "docente", "professor", "instrutor"}
	hoursHeaderTokens = []string{"carga", "horas", "mensal", "total"}
)

// WorkloadRow is an accepted (name, monthly hours) pair from an upload.
type WorkloadRow struct {
	Name  string  `json:"name"`
	Hours float64 `json:"hours"`
}

// ParseResult carries the accepted rows in input order together with what the
// parser detected in the header.
type ParseResult struct {
	Rows        []WorkloadRow
	Skipped     int
	Delimiter   string
	NameColumn  int
	HoursColumn int
}

// MissingColumnsError lists the required columns absent from the header line.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "missing columns: " + strings.Join(e.Columns, ", ")
}

// ParseWorkload reads a delimited workload sheet. The first non-blank line is
// the header; the delimiter is ';' when the header has one and ',' otherwise.
// Data rows without a name or with an unreadable hours cell are skipped and
// counted, never reported as errors.
func ParseWorkload(content string) (*ParseResult, error) {
	lines := splitLines(content)
	if len(lines) == 0 {
		return nil, appErrors.Clone(appErrors.ErrEmptyInput, "")
	}

	delimiter := ","
	if strings.Contains(lines[0], ";") {
		delimiter = ";"
	}

	headers := strings.Split(lines[0], delimiter)
	for i, h := range headers {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	nameIdx := findColumn(headers, nameHeaderTokens)
	hoursIdx := findColumn(headers, hoursHeaderTokens)

	var missing []string
	if nameIdx < 0 {
		missing = append(missing, ColumnName)
	}
	if hoursIdx < 0 {
		missing = append(missing, ColumnHours)
	}
	if len(missing) > 0 {
		columnsErr := &MissingColumnsError{Columns: missing}
		return nil, appErrors.Wrap(columnsErr, appErrors.ErrColumnNotFound.Code, appErrors.ErrColumnNotFound.Status,
			"required column not found: "+strings.Join(missing, ", "))
	}

	result := &ParseResult{
		Rows:        make([]WorkloadRow, 0, len(lines)-1),
		Delimiter:   delimiter,
		NameColumn:  nameIdx,
		HoursColumn: hoursIdx,
	}
	for _, line := range lines[1:] {
		cells := strings.Split(line, delimiter)
		for i, cell := range cells {
			cells[i] = cleanCell(cell)
		}
		if nameIdx >= len(cells) || hoursIdx >= len(cells) {
			result.Skipped++
			continue
		}
		name := cells[nameIdx]
		hours, ok := parseHours(cells[hoursIdx])
		if name == "" || !ok {
			result.Skipped++
			continue
		}
		result.Rows = append(result.Rows, WorkloadRow{Name: name, Hours: hours})
	}

	return result, nil
}

func splitLines(content string) []string {
	raw := strings.Split(content, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func findColumn(headers []string, tokens []string) int {
	for i, h := range headers {
		for _, token := range tokens {
			if strings.Contains(h, token) {
				return i
			}
		}
	}
	return -1
}

func cleanCell(cell string) string {
	cell = strings.TrimSpace(cell)
	cell = strings.ReplaceAll(cell, `"`, "")
	return strings.TrimSpace(cell)
}

// parseHours accepts a decimal point or a lone decimal comma ("160,5").
// Capacity is never negative, so negative figures are skipped like any other
// unreadable cell. Non-finite and hexadecimal figures ("0x1p4") are rejected.
func parseHours(raw string) (float64, bool) {
	if raw == "" || isHexLiteral(raw) {
		return 0, false
	}
	if !strings.Contains(raw, ".") && strings.Count(raw, ",") == 1 {
		raw = strings.Replace(raw, ",", ".", 1)
	}
	hours, err := strconv.ParseFloat(raw, 64)
	if err != nil || !isFinite(hours) || hours < 0 {
		return 0, false
	}
	return hours, true
}

func isHexLiteral(raw string) bool {
	digits := strings.TrimLeft(raw, "+-")
	return len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X')
}
