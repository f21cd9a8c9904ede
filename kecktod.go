// Package kecktod reads one tag of processed Keck Array time-ordered
// data: the decomposed tag fields, the merged focal-plane metadata
// table, and a read-only handle to the binary sample container.
package kecktod

import (
	"log/slog"
	"path/filepath"

	"kecktod/internal/focalplane"
	"kecktod/internal/tag"
	"kecktod/internal/tod"
)

// todSuffix names the sample container inside the tag directory.
const todSuffix = "_tod.mat"

// Dataset is everything known about one tag after loading.
type Dataset struct {
	Tag        *tag.Tag
	FocalPlane *focalplane.Table
	TOD        *tod.Container
}

// Load reads the tag's files and builds the dataset. An empty dir means
// the tag's files live in a directory named after the tag. Loading is
// fully sequential: tag fields first, then the sample container, then
// one focal-plane file per receiver in master-index order. Every failure
// propagates; nothing is caught or retried here.
func Load(rawTag, dir string) (*Dataset, error) {
	return LoadWithLogger(rawTag, dir, nil)
}

// LoadWithLogger is Load with an explicit logger for the per-file
// diagnostics. A nil logger falls back to slog's default.
func LoadWithLogger(rawTag, dir string, logger *slog.Logger) (*Dataset, error) {
	t, err := tag.Resolve(rawTag, dir)
	if err != nil {
		return nil, err
	}

	container, err := tod.Open(filepath.Join(t.Dir, t.Raw+todSuffix))
	if err != nil {
		return nil, err
	}

	fp, err := focalplane.LoadAll(logger, t.Dir)
	if err != nil {
		container.Close()
		return nil, err
	}

	return &Dataset{
		Tag:        t,
		FocalPlane: fp,
		TOD:        container,
	}, nil
}

// Close releases the sample container handle. The in-memory tables stay
// valid.
func (d *Dataset) Close() error {
	return d.TOD.Close()
}
