package focalplane

import (
	"math"
	"strconv"
	"strings"
)

// Per-column coercion policy. Target type and missing-value handling are
// explicit per column:
//
//   - integer columns: unparseable or missing becomes -1 (lossy; the
//     sentinel is indistinguishable from absent data downstream)
//   - string columns: surrounding whitespace trimmed
//   - text columns: taken as trimmed text even when every value looks
//     numeric
//   - float columns: unparseable or missing becomes NaN (missingness
//     preserved)
//
// The passes run in the order int, string, text, float.

type intRule struct {
	name string
	set  func(*Row, int)
}

type stringRule struct {
	name string
	set  func(*Row, string)
}

type floatRule struct {
	name string
	set  func(*Row, float64)
}

var intRules = []intRule{
	{"TILE", func(r *Row, v int) { r.Tile = v }},
	{"DET_COL", func(r *Row, v int) { r.DetCol = v }},
	{"DET_ROW", func(r *Row, v int) { r.DetRow = v }},
}

var stringRules = []stringRule{
	{"POL", func(r *Row, v string) { r.Pol = v }},
	{"TYPE", func(r *Row, v string) { r.Type = v }},
	{"NIST_ROW", func(r *Row, v string) { r.NistRow = v }},
	{"SMUX_SN", func(r *Row, v string) { r.SmuxSN = v }},
	{"DET_ARR_SN", func(r *Row, v string) { r.DetArrSN = v }},
}

var textRules = []stringRule{
	{"NYQ_SN", func(r *Row, v string) { r.NyqSN = v }},
}

var floatRules = []floatRule{
	{"SQ1_ICMAX", func(r *Row, v float64) { r.SQ1ICMax = v }},
	{"DET_RES", func(r *Row, v float64) { r.DetRes = v }},
	{"DC_SHT_GND_BP1", func(r *Row, v float64) { r.DCShtGndBP1 = v }},
	{"DC_SHT_GND_BP2", func(r *Row, v float64) { r.DCShtGndBP2 = v }},
	{"ANT_SHT_GND", func(r *Row, v float64) { r.AntShtGnd = v }},
	{"TES_INSP", func(r *Row, v float64) { r.TesInsp = v }},
	{"ANT_INSP", func(r *Row, v float64) { r.AntInsp = v }},
	{"PIX_PHYS_X", func(r *Row, v float64) { r.PixPhysX = v }},
	{"PIX_PHYS_Y", func(r *Row, v float64) { r.PixPhysY = v }},
	{"FWHM_MAJ", func(r *Row, v float64) { r.FWHMMaj = v }},
	{"FWHM_MIN", func(r *Row, v float64) { r.FWHMMin = v }},
	{"R", func(r *Row, v float64) { r.R = v }},
	{"THETA", func(r *Row, v float64) { r.Theta = v }},
	{"ALPHA", func(r *Row, v float64) { r.Alpha = v }},
	{"CHI", func(r *Row, v float64) { r.Chi = v }},
	{"EPSILON", func(r *Row, v float64) { r.Epsilon = v }},
}

// coerceFloat parses a cell as a float; anything unparseable is NaN.
func coerceFloat(v string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// coerceInt parses a cell as a number and truncates; anything
// unparseable or NaN becomes the -1 sentinel.
func coerceInt(v string) int {
	f := coerceFloat(v)
	if math.IsNaN(f) {
		return -1
	}
	return int(f)
}

// coerceRows applies the per-column policy to a parsed table and
// produces typed rows. A required column absent from the header yields a
// schema error at its first use.
func coerceRows(tbl *rawTable) ([]Row, error) {
	rows := make([]Row, len(tbl.records))

	for _, rule := range intRules {
		idx, err := tbl.columnIndex(rule.name)
		if err != nil {
			return nil, err
		}
		for i, rec := range tbl.records {
			rule.set(&rows[i], coerceInt(cell(rec, idx)))
		}
	}

	for _, rule := range stringRules {
		idx, err := tbl.columnIndex(rule.name)
		if err != nil {
			return nil, err
		}
		for i, rec := range tbl.records {
			rule.set(&rows[i], strings.TrimSpace(cell(rec, idx)))
		}
	}

	for _, rule := range textRules {
		idx, err := tbl.columnIndex(rule.name)
		if err != nil {
			return nil, err
		}
		for i, rec := range tbl.records {
			rule.set(&rows[i], strings.TrimSpace(cell(rec, idx)))
		}
	}

	for _, rule := range floatRules {
		idx, err := tbl.columnIndex(rule.name)
		if err != nil {
			return nil, err
		}
		for i, rec := range tbl.records {
			rule.set(&rows[i], coerceFloat(cell(rec, idx)))
		}
	}

	return rows, nil
}
