package focalplane

import (
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	apperrors "kecktod/internal/errors"
)

// MasterFile is the index listing one metadata file and drum angle per
// receiver, relative to the tag directory.
const MasterFile = "fp_data_master"

// indexEntry is one row of the master index: the metadata file path and
// the receiver's drum (mounting) angle.
type indexEntry struct {
	file string
	drum float64
}

// readMaster parses the master index. Lines beginning with # are
// comments; remaining rows are (file, drum angle) in receiver order.
func readMaster(dir string) ([]indexEntry, error) {
	path := filepath.Join(dir, MasterFile)
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewNotFoundError("master index file", err).
			WithContext("path", path)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewParsingError("malformed master index", err).
			WithContext("path", path)
	}

	entries := make([]indexEntry, 0, len(records))
	for _, rec := range records {
		if len(rec) != 2 {
			return nil, apperrors.NewParsingError("master index row must have two columns", nil).
				WithContext("path", path).
				WithContext("columns", len(rec))
		}
		drum, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			return nil, apperrors.NewParsingError("invalid drum angle in master index", err).
				WithContext("path", path)
		}
		entries = append(entries, indexEntry{
			file: strings.TrimSpace(rec[0]),
			drum: drum,
		})
	}
	return entries, nil
}

// loadReceiver reads and coerces one receiver's metadata file.
func loadReceiver(logger *slog.Logger, dir, file string) ([]Row, error) {
	tbl, err := readTable(filepath.Join(dir, file))
	if err != nil {
		return nil, err
	}
	logTableRead(logger, file, len(tbl.records))
	return coerceRows(tbl)
}

// LoadAll builds the combined focal-plane table for the tag directory:
// walk the master index in order, load and coerce each receiver's file,
// stamp the derived DRUM_ANGLE/THETA/RX fields, and concatenate.
// Per-receiver row indices are discarded; the combined table is numbered
// contiguously.
func LoadAll(logger *slog.Logger, dir string) (*Table, error) {
	if logger == nil {
		logger = slog.Default()
	}

	entries, err := readMaster(dir)
	if err != nil {
		return nil, err
	}

	var merged []Row
	for rx, entry := range entries {
		rows, err := loadReceiver(logger, dir, entry.file)
		if err != nil {
			return nil, err
		}
		for i := range rows {
			rows[i].DrumAngle = entry.drum
			// Reference-frame correction: reported polar angle
			// minus the mounting angle.
			rows[i].Theta -= entry.drum
			rows[i].RX = rx
		}
		merged = append(merged, rows...)
	}

	return &Table{Rows: merged}, nil
}
