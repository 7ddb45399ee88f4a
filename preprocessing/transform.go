package preprocessing

import (
	"gonum.org/v1/gonum/mat"

	"github.com/moleculight/photoswitch/pkg/errors"
	"github.com/moleculight/photoswitch/pkg/log"
)

// TransformParams controls the optional dimensionality reduction applied
// by TransformData.
type TransformParams struct {
	// UsePCA enables projection onto principal components after scaling.
	UsePCA bool

	// NComponents is the number of components to keep when UsePCA is set.
	NComponents int
}

// TransformResult holds the scaled (and optionally reduced) partitions
// together with the fitted estimators a caller needs afterwards: YScaler
// to invert predictions back to measurement units, PCA for the fitted
// basis when reduction was requested.
type TransformResult struct {
	XTrain *mat.Dense
	YTrain *mat.Dense
	XTest  *mat.Dense
	YTest  *mat.Dense

	// YScaler is the target scaler fitted on yTrain.
	YScaler *StandardScaler

	// PCA is the fitted reducer, nil when UsePCA was false.
	PCA *PCA

	// VarianceRetained is the fraction of variance kept by the
	// projection, 0 when UsePCA was false.
	VarianceRetained float64
}

// TransformData standardizes features and targets and optionally reduces
// the feature dimensionality.
//
// The feature scaler is fitted on XTrain only and applied to both
// partitions, so test statistics never influence the fit. Targets get
// their own scaler, fitted on yTrain reshaped to a single column. When
// params.UsePCA is set, a PCA basis with params.NComponents components is
// fitted on the scaled XTrain and both partitions are projected onto it;
// the retained-variance fraction is returned and emitted as a structured
// log event. Every call fits fresh estimator instances.
func TransformData(XTrain mat.Matrix, yTrain []float64, XTest mat.Matrix, yTest []float64, params TransformParams) (*TransformResult, error) {
	trainRows, trainCols := XTrain.Dims()
	testRows, testCols := XTest.Dims()
	if trainCols != testCols {
		return nil, errors.NewDimensionError("TransformData", trainCols, testCols, 1)
	}
	if len(yTrain) != trainRows {
		return nil, errors.NewDimensionError("TransformData", trainRows, len(yTrain), 0)
	}
	if len(yTest) != testRows {
		return nil, errors.NewDimensionError("TransformData", testRows, len(yTest), 0)
	}
	if err := errors.CheckValues("TransformData: y_train", yTrain); err != nil {
		return nil, err
	}
	if err := errors.CheckValues("TransformData: y_test", yTest); err != nil {
		return nil, err
	}
	// XTrain is checked by the scaler's Fit; the test partition is only
	// ever transformed, so check it here.
	if err := errors.CheckMatrix("TransformData: X_test", XTest, testRows, testCols); err != nil {
		return nil, err
	}

	xScaler := NewStandardScaler()
	xTrainScaled, err := xScaler.FitTransform(XTrain)
	if err != nil {
		return nil, err
	}
	xTestScaled, err := xScaler.Transform(XTest)
	if err != nil {
		return nil, err
	}

	yScaler := NewStandardScaler()
	yTrainScaled, err := yScaler.FitTransform(columnVector(yTrain))
	if err != nil {
		return nil, err
	}
	yTestScaled, err := yScaler.Transform(columnVector(yTest))
	if err != nil {
		return nil, err
	}

	result := &TransformResult{
		XTrain:  xTrainScaled.(*mat.Dense),
		YTrain:  yTrainScaled.(*mat.Dense),
		XTest:   xTestScaled.(*mat.Dense),
		YTest:   yTestScaled.(*mat.Dense),
		YScaler: yScaler,
	}

	if params.UsePCA {
		pca := NewPCA(params.NComponents)
		xTrainReduced, err := pca.FitTransform(result.XTrain)
		if err != nil {
			return nil, err
		}
		xTestReduced, err := pca.Transform(result.XTest)
		if err != nil {
			return nil, err
		}

		result.XTrain = xTrainReduced.(*mat.Dense)
		result.XTest = xTestReduced.(*mat.Dense)
		result.PCA = pca
		result.VarianceRetained = pca.VarianceRetained()

		log.GetLoggerWithName("preprocessing").Info("variance retained by projection",
			log.OperationKey, "fit_transform",
			log.EstimatorKey, "PCA",
			log.ComponentsKey, params.NComponents,
			log.VarianceRetainedKey, result.VarianceRetained,
			log.SamplesKey, trainRows,
			log.FeaturesKey, trainCols,
		)
	}

	return result, nil
}

// columnVector reshapes a target slice to the n×1 matrix the scaler
// operates on.
func columnVector(y []float64) *mat.Dense {
	data := make([]float64, len(y))
	copy(data, y)
	return mat.NewDense(len(y), 1, data)
}
