// Package photoswitch prepares the photoswitch molecular datasets for
// property-prediction models.
//
// The module has two parts. Package dataset loads the tabular photoswitch
// data (SMILES strings paired with measured photophysical values) for one
// of five properties, dropping records whose measurement is missing or
// unusable. Package preprocessing standardizes feature and target
// partitions with statistics fitted on the training split only, and
// optionally projects the features onto a principal-component basis.
//
// A typical flow:
//
//	ds, err := dataset.LoadEIsoPi("photoswitches.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// featurize ds.SMILES() and split into train/test...
//	result, err := preprocessing.TransformData(XTrain, yTrain, XTest, yTest,
//	    preprocessing.TransformParams{UsePCA: true, NComponents: 50})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// train a model on result.XTrain/result.YTrain, then use
//	// result.YScaler.InverseTransform to bring predictions back to nm.
package photoswitch
