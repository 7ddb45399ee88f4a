// Standard attribute keys used across the photoswitch pipeline. Using
// fixed keys keeps log output filterable: every load and transform event
// can be traced by property, operation, and data shape.

package log

// Operation context.
const (
	// OperationKey names the operation being performed.
	// Standard values: "load", "fit", "transform", "fit_transform".
	OperationKey = "ml.operation"

	// ComponentKey identifies the package performing the operation.
	// Examples: "dataset", "preprocessing", "metrics".
	ComponentKey = "ml.component"

	// EstimatorKey identifies the estimator type.
	// Examples: "StandardScaler", "PCA".
	EstimatorKey = "estimator.name"
)

// Data shape.
const (
	// SamplesKey is the number of samples (rows) processed.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of features (columns) processed.
	FeaturesKey = "data.features"

	// PropertyKey names the photophysical property a dataset was loaded
	// for. Examples: "thermal", "e_iso_pi".
	PropertyKey = "data.property"

	// ExcludedKey is the number of records dropped by an exclusion rule.
	ExcludedKey = "data.excluded"

	// PathKey is the source file a table was read from.
	PathKey = "data.path"
)

// Dimensionality reduction.
const (
	// ComponentsKey is the number of principal components kept.
	ComponentsKey = "pca.components"

	// VarianceRetainedKey is the fraction of total variance retained by
	// the kept components, in [0, 1].
	VarianceRetainedKey = "pca.variance_retained"
)
