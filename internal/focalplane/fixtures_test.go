package focalplane

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testColumns is a realistic header layout: a channel column first, then
// the full coerced set, padded unevenly the way the source files are.
var testColumns = []string{
	"GCP_CHAN", "TILE", "DET_COL", "DET_ROW",
	"POL", "TYPE", "NIST_ROW", "SMUX_SN", "DET_ARR_SN", "NYQ_SN",
	"SQ1_ICMAX", "DET_RES", "DC_SHT_GND_BP1", "DC_SHT_GND_BP2",
	"ANT_SHT_GND", "TES_INSP", "ANT_INSP", "PIX_PHYS_X", "PIX_PHYS_Y",
	"FWHM_MAJ", "FWHM_MIN", "R", "THETA", "ALPHA", "CHI", "EPSILON",
}

// metadataContent renders a focal-plane metadata file: commented and
// uncommented preamble, the GCP header with padded names, two unit
// lines, then one data line per row map (missing keys become empty
// cells).
func metadataContent(rows ...map[string]string) string {
	var b strings.Builder
	b.WriteString("# focal plane parameters\n")
	b.WriteString("calibration run 7, uncommented preamble\n")

	padded := make([]string, len(testColumns))
	for i, c := range testColumns {
		padded[i] = " " + c + " "
	}
	b.WriteString(strings.Join(padded, ",") + "\n")
	b.WriteString("chan,id,col,row,pol,type,row,sn,sn,sn,uA,Ohm,V,V,V,-,-,mm,mm,deg,deg,deg,deg,deg,deg,-\n")
	b.WriteString("----,--,---,---,---,----,---,--,--,--,--,---,-,-,-,-,-,--,--,---,---,---,---,---,---,-\n")

	for _, r := range rows {
		cells := make([]string, len(testColumns))
		for i, c := range testColumns {
			cells[i] = r[c]
		}
		b.WriteString(strings.Join(cells, ",") + "\n")
	}
	return b.String()
}

// defaultRow returns a fully populated data row; callers override the
// cells under test.
func defaultRow() map[string]string {
	return map[string]string{
		"GCP_CHAN": "0",
		"TILE":     "1", "DET_COL": "2", "DET_ROW": "3",
		"POL": " A ", "TYPE": " TES ", "NIST_ROW": " r1 ",
		"SMUX_SN": " mux01 ", "DET_ARR_SN": " arr01 ", "NYQ_SN": " 602 ",
		"SQ1_ICMAX": "11.0", "DET_RES": "0.07",
		"DC_SHT_GND_BP1": "0.1", "DC_SHT_GND_BP2": "0.2",
		"ANT_SHT_GND": "0.3", "TES_INSP": "1", "ANT_INSP": "1",
		"PIX_PHYS_X": "4.5", "PIX_PHYS_Y": "-4.5",
		"FWHM_MAJ": "0.21", "FWHM_MIN": "0.20",
		"R": "5.0", "THETA": "10.0", "ALPHA": "90.0",
		"CHI": "45.0", "EPSILON": "0.01",
	}
}

// writeFile writes content into dir under name and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", name, err)
	}
	return path
}
