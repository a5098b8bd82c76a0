// Package reconv converts legacy v1 review-checklist documents into
// normalized v2 recommendation records and stores them as one file per
// record.
//
// Quick start:
//
//	records, err := reconv.ConvertFile("checklist.en.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	summary, err := reconv.Store(records, "v2",
//	    reconv.WithFormat("yaml"),
//	    reconv.WithOverwrite(true),
//	)
//
// Conversion is a pure in-memory transformation; Store is where the
// filesystem is touched. Both are safe to call repeatedly against the same
// output root — existing files for a guid are detected anywhere in the
// tree and either reported or replaced.
package reconv
