package model

import "gonum.org/v1/gonum/mat"

// Transformer is the interface for data transforms fitted on a training
// partition and applied to any partition.
type Transformer interface {
	// Fit learns the transform parameters from X.
	Fit(X mat.Matrix) error

	// Transform applies the fitted transform to X.
	Transform(X mat.Matrix) (mat.Matrix, error)

	// FitTransform fits on X and returns the transformed X.
	FitTransform(X mat.Matrix) (mat.Matrix, error)
}

// InverseTransformer is satisfied by transforms that can map transformed
// data back to the original space, e.g. to invert scaled predictions.
type InverseTransformer interface {
	Transformer

	// InverseTransform maps transformed data back to the original space.
	InverseTransform(X mat.Matrix) (mat.Matrix, error)
}
