package dataset

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/moleculight/photoswitch/pkg/errors"
	"github.com/moleculight/photoswitch/pkg/log"
)

const fixturePath = "testdata/photoswitches.csv"

// Valid-molecule counts for the canonical 98-row table. The upstream
// documentation claims the same figures; the suite validates them against
// the fixture instead of trusting the comments.
var wantCounts = map[Property]int{
	Thermal: 65,
	EIsoPi:  97,
	EIsoN:   96,
	ZIsoPi:  84,
	ZIsoN:   93,
}

func TestLoaderCounts(t *testing.T) {
	loaders := map[Property]func(string) (*Dataset, error){
		Thermal: LoadThermal,
		EIsoPi:  LoadEIsoPi,
		EIsoN:   LoadEIsoN,
		ZIsoPi:  LoadZIsoPi,
		ZIsoN:   LoadZIsoN,
	}

	for prop, loader := range loaders {
		t.Run(prop.String(), func(t *testing.T) {
			ds, err := loader(fixturePath)
			if err != nil {
				t.Fatalf("load failed: %v", err)
			}

			smiles := ds.SMILES()
			targets := ds.Targets()
			if len(smiles) != len(targets) {
				t.Errorf("alignment broken: %d SMILES vs %d targets", len(smiles), len(targets))
			}
			if ds.Len() != wantCounts[prop] {
				t.Errorf("Len() = %d, want %d", ds.Len(), wantCounts[prop])
			}
			for i, v := range targets {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Errorf("target %d is non-finite: %v", i, v)
				}
			}
		})
	}
}

func TestLoadIdempotent(t *testing.T) {
	first, err := LoadZIsoPi(fixturePath)
	if err != nil {
		t.Fatalf("first load failed: %v", err)
	}
	second, err := LoadZIsoPi(fixturePath)
	if err != nil {
		t.Fatalf("second load failed: %v", err)
	}

	if !reflect.DeepEqual(first.Records(), second.Records()) {
		t.Error("loading the same path twice returned different records")
	}
}

// TestExclusionMatchesUpstreamIndices cross-checks the declarative
// predicate against the frozen row indices the reference implementation
// sliced away. On the canonical fixture they must agree exactly; if this
// test fails, either the fixture's row order changed or the predicate
// diverged from the reference behaviour.
func TestExclusionMatchesUpstreamIndices(t *testing.T) {
	tbl, err := LoadTable(fixturePath)
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}
	allSMILES, err := tbl.Column(SMILESColumn)
	if err != nil {
		t.Fatal(err)
	}

	for prop, excluded := range upstreamExcludedRows {
		t.Run(prop.String(), func(t *testing.T) {
			values, err := tbl.FloatColumn(prop.Column())
			if err != nil {
				t.Fatal(err)
			}

			drop := make(map[int]bool, len(excluded))
			for _, i := range excluded {
				drop[i] = true
			}
			var wantSMILES []string
			var wantTargets []float64
			for i := range allSMILES {
				if drop[i] {
					continue
				}
				wantSMILES = append(wantSMILES, allSMILES[i])
				wantTargets = append(wantTargets, values[i])
			}

			ds, err := Load(fixturePath, prop)
			if err != nil {
				t.Fatalf("load failed: %v", err)
			}
			if !reflect.DeepEqual(ds.SMILES(), wantSMILES) {
				t.Error("predicate-selected SMILES diverge from upstream index slicing")
			}
			if !reflect.DeepEqual(ds.Targets(), wantTargets) {
				t.Error("predicate-selected targets diverge from upstream index slicing")
			}
		})
	}

	// Thermal: upstream kept the first 65 rows.
	ds, err := LoadThermal(fixturePath)
	if err != nil {
		t.Fatalf("thermal load failed: %v", err)
	}
	if !reflect.DeepEqual(ds.SMILES(), allSMILES[:upstreamThermalKept]) {
		t.Error("thermal predicate diverges from upstream [:65] truncation")
	}
}

func TestEIsoPiExcludesBridgedAzobenzene(t *testing.T) {
	ds, err := LoadEIsoPi(fixturePath)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	for _, s := range ds.SMILES() {
		if s == bridgedAzobenzene {
			t.Fatal("bridged azobenzene should be excluded from e_iso_pi")
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := LoadThermal("testdata/does_not_exist.csv"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadMissingColumn(t *testing.T) {
	path := writeTempCSV(t, "SMILES,some other column\nCC,1.0\n")

	_, err := LoadEIsoN(path)
	if err == nil {
		t.Fatal("expected error for missing property column")
	}
	var cnf *errors.ColumnNotFoundError
	if !errors.As(err, &cnf) {
		t.Errorf("expected ColumnNotFoundError, got %v", err)
	}
	if cnf.Column != EIsoNColumn {
		t.Errorf("Column = %q, want %q", cnf.Column, EIsoNColumn)
	}
}

func TestLoadMalformedTable(t *testing.T) {
	path := writeTempCSV(t, "SMILES,"+ThermalColumn+"\nCC,1.0,extra\n")

	if _, err := LoadThermal(path); err == nil {
		t.Error("expected error for ragged rows")
	}
}

// A loader over a 10-row synthetic table with one missing value keeps the
// other 9 records, none NaN.
func TestSyntheticTableWithMissingValue(t *testing.T) {
	content := "SMILES," + EIsoNColumn + "\n"
	for i := 0; i < 10; i++ {
		val := "450.0"
		if i == 3 {
			val = ""
		}
		content += "CC" + string(rune('a'+i)) + "," + val + "\n"
	}
	path := writeTempCSV(t, content)

	ds, err := LoadEIsoN(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if ds.Len() != 9 {
		t.Errorf("Len() = %d, want 9", ds.Len())
	}
	for _, v := range ds.Targets() {
		if math.IsNaN(v) {
			t.Error("NaN target survived exclusion")
		}
	}
}

func TestLoadEmitsSummaryEvent(t *testing.T) {
	logger, _ := log.NewTestLogger(log.LevelInfo)
	prev := log.GetLogger()
	log.SetLogger(logger)
	defer log.SetLogger(prev)

	if _, err := LoadZIsoN(fixturePath); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if !logger.ContainsMessage("dataset loaded") {
		t.Error("expected a load summary event")
	}
	if !logger.ContainsField(log.PropertyKey, "z_iso_n") {
		t.Error("summary event missing property field")
	}
	if !logger.ContainsField(log.SamplesKey, float64(93)) {
		t.Error("summary event missing sample count")
	}
	if !logger.ContainsField(log.ExcludedKey, float64(5)) {
		t.Error("summary event missing excluded count")
	}
}

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
