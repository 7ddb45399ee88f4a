package preprocessing

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/moleculight/photoswitch/pkg/errors"
)

func TestStandardScalerFitTransform(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		1, 10,
		2, 20,
		3, 30,
		4, 40,
	})

	scaler := NewStandardScaler()
	scaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform failed: %v", err)
	}

	// Fitted statistics are the column mean and population std.
	if scaler.Mean[0] != 2.5 || scaler.Mean[1] != 25 {
		t.Errorf("Mean = %v, want [2.5 25]", scaler.Mean)
	}

	// Each scaled column has zero mean and unit variance.
	r, c := scaled.Dims()
	for j := 0; j < c; j++ {
		sum, sumSq := 0.0, 0.0
		for i := 0; i < r; i++ {
			v := scaled.At(i, j)
			sum += v
			sumSq += v * v
		}
		mean := sum / float64(r)
		variance := sumSq/float64(r) - mean*mean
		if math.Abs(mean) > 1e-12 {
			t.Errorf("column %d mean = %v, want 0", j, mean)
		}
		if math.Abs(variance-1) > 1e-12 {
			t.Errorf("column %d variance = %v, want 1", j, variance)
		}
	}
}

func TestStandardScalerInverseRoundTrip(t *testing.T) {
	X := mat.NewDense(5, 1, []float64{347.2, 355.1, 311.6, 369.9, 340.0})

	scaler := NewStandardScaler()
	scaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform failed: %v", err)
	}
	back, err := scaler.InverseTransform(scaled)
	if err != nil {
		t.Fatalf("InverseTransform failed: %v", err)
	}

	for i := 0; i < 5; i++ {
		if math.Abs(back.At(i, 0)-X.At(i, 0)) > 1e-9 {
			t.Errorf("row %d: round trip %v != %v", i, back.At(i, 0), X.At(i, 0))
		}
	}
}

func TestStandardScalerConstantColumn(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{7, 7, 7})

	scaler := NewStandardScaler()
	scaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		if scaled.At(i, 0) != 0 {
			t.Errorf("constant column should scale to 0, got %v", scaled.At(i, 0))
		}
	}
}

func TestStandardScalerNotFitted(t *testing.T) {
	scaler := NewStandardScaler()
	_, err := scaler.Transform(mat.NewDense(1, 1, []float64{1}))
	if err == nil {
		t.Fatal("expected error for unfitted scaler")
	}
	var nfe *errors.NotFittedError
	if !errors.As(err, &nfe) {
		t.Errorf("expected NotFittedError, got %v", err)
	}
}

func TestStandardScalerDimensionMismatch(t *testing.T) {
	scaler := NewStandardScaler()
	if err := scaler.Fit(mat.NewDense(3, 2, nil)); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	_, err := scaler.Transform(mat.NewDense(3, 5, nil))
	var dimErr *errors.DimensionError
	if !errors.As(err, &dimErr) {
		t.Fatalf("expected DimensionError, got %v", err)
	}
	if dimErr.Expected != 2 || dimErr.Got != 5 {
		t.Errorf("unexpected dimensions: %+v", dimErr)
	}
}

func TestStandardScalerRejectsNonFinite(t *testing.T) {
	X := mat.NewDense(2, 1, []float64{1, math.NaN()})
	scaler := NewStandardScaler()
	if err := scaler.Fit(X); err == nil {
		t.Error("expected error for NaN input")
	}
}
