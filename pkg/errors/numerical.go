package errors

import (
	"fmt"
	"math"
)

// NumericalInstabilityError reports NaN or Inf values detected in data
// that an operation requires to be finite.
type NumericalInstabilityError struct {
	Operation string
	Values    []float64
}

func (e *NumericalInstabilityError) Error() string {
	valStr := ""
	for i, v := range e.Values {
		if i > 0 {
			valStr += ", "
		}
		if i >= 5 {
			valStr += "..."
			break
		}
		valStr += fmt.Sprintf("%.6g", v)
	}
	return fmt.Sprintf("photoswitch: non-finite values detected in %s. Values: [%s]", e.Operation, valStr)
}

// NewNumericalInstabilityError creates a NumericalInstabilityError with a
// stack trace attached.
func NewNumericalInstabilityError(operation string, values []float64) error {
	err := &NumericalInstabilityError{Operation: operation, Values: values}
	return WithStack(err)
}

// CheckValues returns an error if values contain NaN or Inf.
func CheckValues(operation string, values []float64) error {
	var bad []float64
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			bad = append(bad, v)
			if len(bad) >= 10 {
				break
			}
		}
	}
	if len(bad) > 0 {
		return NewNumericalInstabilityError(operation, bad)
	}
	return nil
}

// CheckMatrix returns an error if any entry of the matrix is NaN or Inf.
func CheckMatrix(operation string, matrix interface{ At(int, int) float64 }, rows, cols int) error {
	var bad []float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := matrix.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				bad = append(bad, v)
				if len(bad) >= 10 {
					break
				}
			}
		}
		if len(bad) > 0 {
			break
		}
	}
	if len(bad) > 0 {
		return NewNumericalInstabilityError(operation, bad)
	}
	return nil
}
