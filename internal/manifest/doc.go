// Package manifest provides types and utilities for loading and validating
// golden-dataset manifest files. A manifest describes labeled reference
// videos with known-correct landing/takeoff timestamps plus the acceptance
// thresholds used to regression-test detection accuracy.
//
// # Manifest Format
//
// Manifests are JSON documents (YAML is accepted with the same shape):
//
//	{
//	  "version": "1",
//	  "fpsAssumption": 60,
//	  "cases": [
//	    {
//	      "id": "hop-01",
//	      "uri": "videos/hop-01.mp4",
//	      "roi": {"space": "normalized", "x": 0.2, "y": 0.1, "width": 0.6, "height": 0.8},
//	      "labels": {
//	        "source": "manual-label-mode",
//	        "toleranceMs": 20,
//	        "landingsMs": [1200, 1810],
//	        "takeoffsMs": [1450, 2100]
//	      },
//	      "expected": {"shouldAccept": true, "maxMedianGctErrorMs": 15}
//	    }
//	  ]
//	}
//
// # Usage
//
// Load a manifest file:
//
//	loader := manifest.NewLoader()
//	m, err := loader.Load("golden.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, c := range m.Cases {
//	    // Feed c.URI and c.ROI to the detection pipeline
//	}
//
// Case URIs are normalized during loading: file:// prefixes are stripped and
// relative paths resolve against the manifest's own directory, so every
// loaded case carries an absolute media path.
//
// # Error Handling
//
// Read and parse failures surface as plain errors (wrapping ErrFileNotFound
// or ErrInvalidFormat). Schema violations surface as *ValidationError with
// the offending field path. Validation is fail-fast: the first invalid field
// aborts the load and no partial manifest is ever returned.
package manifest
