package dataset

import (
	"encoding/csv"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/moleculight/photoswitch/pkg/errors"
)

// Table is an immutable named-column view over a CSV file. It is not a
// general-purpose CSV layer: it supports exactly what the property loaders
// need, a header row followed by one row per molecule.
type Table struct {
	headers []string
	index   map[string]int
	rows    [][]string
}

// LoadTable reads a CSV file with a header row.
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "LoadTable: opening %s", path)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "LoadTable: parsing %s", path)
	}
	if len(records) == 0 {
		return nil, errors.Wrapf(errors.ErrEmptyData, "LoadTable: %s", path)
	}

	headers := records[0]
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[h] = i
	}

	return &Table{
		headers: headers,
		index:   index,
		rows:    records[1:],
	}, nil
}

// Headers returns the column names in file order.
func (t *Table) Headers() []string {
	out := make([]string, len(t.headers))
	copy(out, t.headers)
	return out
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// Column returns the raw string values of a named column.
func (t *Table) Column(name string) ([]string, error) {
	j, ok := t.index[name]
	if !ok {
		return nil, errors.NewColumnNotFoundError("Table.Column", name, t.Headers())
	}
	out := make([]string, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[j]
	}
	return out, nil
}

// FloatColumn returns a named column parsed as float64. Empty cells and
// the spellings "NaN"/"nan"/"NA"/"n/a" parse to NaN; "inf" spellings parse
// to ±Inf. Any other unparsable cell is a malformed table and fails.
func (t *Table) FloatColumn(name string) ([]float64, error) {
	raw, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(raw))
	for i, cell := range raw {
		v, err := parseCell(cell)
		if err != nil {
			return nil, errors.Wrapf(err, "Table.FloatColumn: column %q row %d", name, i)
		}
		out[i] = v
	}
	return out, nil
}

// parseCell converts one cell to float64, mapping missing-value spellings
// to NaN. strconv.ParseFloat already accepts "inf" and "nan" variants.
func parseCell(cell string) (float64, error) {
	s := strings.TrimSpace(cell)
	switch s {
	case "", "NA", "na", "n/a", "N/A":
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Newf("unparsable numeric cell %q", cell)
	}
	return v, nil
}
