package preprocessing

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/moleculight/photoswitch/core/model"
	"github.com/moleculight/photoswitch/pkg/errors"
)

// PCA projects data onto the directions of maximal variance, computed by
// singular value decomposition of the centered training data.
type PCA struct {
	model.BaseEstimator

	// NComponents is the number of principal components to keep.
	NComponents int

	// Components holds the principal axes, one per row (NComponents × NFeatures).
	Components *mat.Dense

	// Mean holds the per-column mean of the training data.
	Mean []float64

	// ExplainedVariance holds the variance captured by each kept component.
	ExplainedVariance []float64

	// ExplainedVarianceRatio holds each kept component's fraction of the
	// total variance.
	ExplainedVarianceRatio []float64

	// NFeatures is the number of columns PCA was fitted on.
	NFeatures int
}

var _ model.InverseTransformer = (*PCA)(nil)

// NewPCA creates an unfitted PCA keeping nComponents components.
func NewPCA(nComponents int) *PCA {
	return &PCA{NComponents: nComponents}
}

// Fit computes the principal-component basis from X.
func (p *PCA) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("PCA.Fit", "empty data", errors.ErrEmptyData)
	}
	if p.NComponents < 1 {
		return errors.NewValueError("PCA.Fit", fmt.Sprintf("n_components must be >= 1, got %d", p.NComponents))
	}
	maxComponents := min(r, c)
	if p.NComponents > maxComponents {
		return errors.NewValueError("PCA.Fit",
			fmt.Sprintf("n_components=%d must be <= min(n_samples, n_features)=%d", p.NComponents, maxComponents))
	}
	if err := errors.CheckMatrix("PCA.Fit", X, r, c); err != nil {
		return err
	}

	p.NFeatures = c
	p.Mean = make([]float64, c)
	for j := 0; j < c; j++ {
		sum := 0.0
		for i := 0; i < r; i++ {
			sum += X.At(i, j)
		}
		p.Mean[j] = sum / float64(r)
	}

	centered := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			centered.Set(i, j, X.At(i, j)-p.Mean[j])
		}
	}

	var svd mat.SVD
	if ok := svd.Factorize(centered, mat.SVDThin); !ok {
		return errors.NewModelError("PCA.Fit", "SVD failed to converge", nil)
	}

	singular := svd.Values(nil)
	var v mat.Dense
	svd.VTo(&v)

	// Variance along component i is s_i^2 / (n - 1). With a single
	// sample there is no variance to apportion; treat it as zero.
	denominator := float64(r - 1)
	totalVariance := 0.0
	allVariances := make([]float64, len(singular))
	for i, s := range singular {
		if denominator > 0 {
			allVariances[i] = s * s / denominator
		}
		totalVariance += allVariances[i]
	}

	p.Components = mat.NewDense(p.NComponents, c, nil)
	p.ExplainedVariance = make([]float64, p.NComponents)
	p.ExplainedVarianceRatio = make([]float64, p.NComponents)
	for k := 0; k < p.NComponents; k++ {
		for j := 0; j < c; j++ {
			p.Components.Set(k, j, v.At(j, k))
		}
		p.ExplainedVariance[k] = allVariances[k]
		if totalVariance > 0 {
			p.ExplainedVarianceRatio[k] = allVariances[k] / totalVariance
		}
	}

	p.SetFitted()
	return nil
}

// Transform projects X onto the fitted principal-component basis.
func (p *PCA) Transform(X mat.Matrix) (mat.Matrix, error) {
	if !p.IsFitted() {
		return nil, errors.NewNotFittedError("PCA", "Transform")
	}

	r, c := X.Dims()
	if c != p.NFeatures {
		return nil, errors.NewDimensionError("PCA.Transform", p.NFeatures, c, 1)
	}

	centered := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			centered.Set(i, j, X.At(i, j)-p.Mean[j])
		}
	}

	result := mat.NewDense(r, p.NComponents, nil)
	result.Mul(centered, p.Components.T())
	return result, nil
}

// FitTransform fits on X and returns the projected X.
func (p *PCA) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := p.Fit(X); err != nil {
		return nil, err
	}
	return p.Transform(X)
}

// InverseTransform maps projected data back to the original feature space.
// The reconstruction is lossy when NComponents < NFeatures.
func (p *PCA) InverseTransform(X mat.Matrix) (mat.Matrix, error) {
	if !p.IsFitted() {
		return nil, errors.NewNotFittedError("PCA", "InverseTransform")
	}

	r, c := X.Dims()
	if c != p.NComponents {
		return nil, errors.NewDimensionError("PCA.InverseTransform", p.NComponents, c, 1)
	}

	result := mat.NewDense(r, p.NFeatures, nil)
	result.Mul(X, p.Components)
	for i := 0; i < r; i++ {
		for j := 0; j < p.NFeatures; j++ {
			result.Set(i, j, result.At(i, j)+p.Mean[j])
		}
	}
	return result, nil
}

// VarianceRetained returns the fraction of total variance captured by the
// kept components, in [0, 1].
func (p *PCA) VarianceRetained() float64 {
	total := 0.0
	for _, ratio := range p.ExplainedVarianceRatio {
		total += ratio
	}
	return total
}

// String returns a short description of the PCA transform.
func (p *PCA) String() string {
	if !p.IsFitted() {
		return fmt.Sprintf("PCA(n_components=%d)", p.NComponents)
	}
	return fmt.Sprintf("PCA(n_components=%d, n_features=%d)", p.NComponents, p.NFeatures)
}
