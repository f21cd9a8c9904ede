package focalplane

import (
	"encoding/csv"
	"log/slog"
	"os"
	"strings"

	apperrors "kecktod/internal/errors"
)

// headerMarker is the token that identifies the real header line.
// Everything before it is uncommented preamble.
const headerMarker = "GCP"

// unitLines is the number of non-data lines following the header.
const unitLines = 2

// rawTable is a parsed metadata file before coercion: trimmed column
// names plus data rows as raw text cells.
type rawTable struct {
	header  []string
	records [][]string
}

// scanHeader returns the 0-based index of the first line containing the
// header marker. When no line matches, found is false and the offset
// equals the total line count; callers must carry that degenerate offset
// through rather than special-casing it, since some files rely on it.
func scanHeader(lines []string) (offset int, found bool) {
	for _, line := range lines {
		if strings.Contains(line, headerMarker) {
			return offset, true
		}
		offset++
	}
	return offset, false
}

// splitLines breaks file content into lines the way a line iterator
// would: no trailing empty line, carriage returns stripped.
func splitLines(data []byte) []string {
	s := strings.TrimSuffix(string(data), "\n")
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// readTable reads one focal-plane metadata file: locate the header,
// drop the two unit lines after it, parse the rest as delimited data.
// Column names are trimmed; cell values are left raw for the coercion
// pass.
func readTable(path string) (*rawTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewNotFoundError("focal plane metadata file", err).
			WithContext("path", path)
	}

	lines := splitLines(data)
	offset, found := scanHeader(lines)

	tbl := &rawTable{}
	if !found {
		// Degenerate case: offset sits past the last line and the
		// table comes out empty. Coercion then reports the missing
		// columns.
		return tbl, nil
	}

	region := []string{lines[offset]}
	if rest := offset + 1 + unitLines; rest < len(lines) {
		region = append(region, lines[rest:]...)
	}

	reader := csv.NewReader(strings.NewReader(strings.Join(region, "\n")))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewParsingError("malformed focal plane metadata", err).
			WithContext("path", path)
	}
	if len(records) == 0 {
		return tbl, nil
	}

	tbl.header = records[0]
	for i, name := range tbl.header {
		tbl.header[i] = strings.TrimSpace(name)
	}
	tbl.records = records[1:]

	return tbl, nil
}

// columnIndex returns the position of a named column, or a schema error
// when the header lacks it. The error surfaces at first use of the
// column, not at parse time.
func (t *rawTable) columnIndex(name string) (int, error) {
	for i, h := range t.header {
		if h == name {
			return i, nil
		}
	}
	return -1, apperrors.NewSchemaError("expected column " + name + " not found")
}

// cell returns the raw value at column idx of a record, or the empty
// string when the record is short.
func cell(record []string, idx int) string {
	if idx < len(record) {
		return record[idx]
	}
	return ""
}

// logTableRead emits the per-file diagnostic line. Informational only;
// it never gates success or failure.
func logTableRead(logger *slog.Logger, file string, rows int) {
	logger.Info("read focal plane metadata",
		slog.String("file", file),
		slog.Int("rows", rows))
}
