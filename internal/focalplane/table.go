// Package focalplane loads per-receiver focal-plane metadata tables and
// merges them into one combined table.
//
// The source files are delimited text with irregular, inconsistently
// padded headers. The header line is located by scanning for the marker
// token "GCP"; the two lines after it hold units/formatting metadata and
// carry no data. Column values are coerced to canonical types under a
// fixed per-column policy (see coerce.go).
package focalplane

// Row is one physical detector's metadata, the atomic unit of the
// merged table.
type Row struct {
	// Integer columns. Missing or non-numeric source values are
	// replaced by -1, which downstream cannot distinguish from
	// legitimately absent data. This matches the instrument
	// community convention and is kept for compatibility.
	Tile   int
	DetCol int
	DetRow int

	// String columns, whitespace-trimmed.
	Pol      string
	Type     string
	NistRow  string
	SmuxSN   string
	DetArrSN string
	// NyqSN is text even though some upstream generators emit it as
	// all-numeric values.
	NyqSN string

	// Floating-point physical and calibration parameters. Missing or
	// non-numeric source values are NaN; missingness is preserved
	// here, unlike the integer columns.
	SQ1ICMax    float64
	DetRes      float64
	DCShtGndBP1 float64
	DCShtGndBP2 float64
	AntShtGnd   float64
	TesInsp     float64
	AntInsp     float64
	PixPhysX    float64
	PixPhysY    float64
	FWHMMaj     float64
	FWHMMin     float64
	R           float64
	// Theta is the polar angle after subtraction of the receiver's
	// drum angle.
	Theta   float64
	Alpha   float64
	Chi     float64
	Epsilon float64

	// DrumAngle is the receiver's mounting angle, broadcast to every
	// row of that receiver.
	DrumAngle float64
	// RX is the receiver's 0-based position in the master index.
	RX int
}

// Table is the combined focal-plane table covering all receivers.
// Rows keep per-receiver encounter order; receivers appear in master
// index order. Receiver boundaries survive only through the RX column.
type Table struct {
	Rows []Row
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Receiver returns the rows belonging to receiver rx, in order.
func (t *Table) Receiver(rx int) []Row {
	var rows []Row
	for _, r := range t.Rows {
		if r.RX == rx {
			rows = append(rows, r)
		}
	}
	return rows
}

// Receivers returns the number of distinct receivers in the table.
func (t *Table) Receivers() int {
	n := 0
	for _, r := range t.Rows {
		if r.RX+1 > n {
			n = r.RX + 1
		}
	}
	return n
}

// Columns returns the canonical column names of the merged table.
func (t *Table) Columns() []string {
	names := make([]string, 0, len(intRules)+len(stringRules)+len(textRules)+len(floatRules)+2)
	for _, r := range intRules {
		names = append(names, r.name)
	}
	for _, r := range stringRules {
		names = append(names, r.name)
	}
	for _, r := range textRules {
		names = append(names, r.name)
	}
	for _, r := range floatRules {
		names = append(names, r.name)
	}
	return append(names, "DRUM_ANGLE", "RX")
}
