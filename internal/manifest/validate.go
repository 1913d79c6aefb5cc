package manifest

import (
	"fmt"
	"math"
	"sort"
)

// asNumber coerces the numeric types the JSON and YAML decoders emit.
// Booleans are never numbers, and neither is YAML's .nan: it would slip
// through every ordered comparison the schema rules rely on.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) {
			return 0, false
		}
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func validateManifest(raw any, baseDir string) (*Manifest, error) {
	root, ok := raw.(map[string]any)
	if !ok {
		return nil, NewValidationError("$", "manifest root must be an object")
	}

	version, ok := root["version"].(string)
	if !ok {
		return nil, NewValidationError("version", "must be a string")
	}

	fps, ok := asNumber(root["fpsAssumption"])
	if !ok || fps <= 0 {
		return nil, NewValidationError("fpsAssumption", "must be a number greater than zero")
	}

	// Absent or non-string descriptions collapse to "".
	description, _ := root["description"].(string)

	rawCases, ok := root["cases"].([]any)
	if !ok {
		return nil, NewValidationError("cases", "must be an array")
	}
	if len(rawCases) == 0 {
		return nil, NewValidationError("cases", "must contain at least one case")
	}

	m := &Manifest{
		Version:       version,
		Description:   description,
		FPSAssumption: fps,
		Cases:         make([]Case, 0, len(rawCases)),
	}
	for i, rc := range rawCases {
		c, err := validateCase(rc, fmt.Sprintf("cases[%d]", i), baseDir)
		if err != nil {
			return nil, err
		}
		m.Cases = append(m.Cases, c)
	}
	return m, nil
}

func validateCase(raw any, path, baseDir string) (Case, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return Case{}, NewValidationError(path, "must be an object")
	}

	id, ok := obj["id"].(string)
	if !ok || id == "" {
		return Case{}, NewValidationError(path+".id", "must be a non-empty string")
	}

	uri, ok := obj["uri"].(string)
	if !ok || uri == "" {
		return Case{}, NewValidationError(path+".uri", "must be a non-empty string")
	}

	var notes string
	if v, present := obj["notes"]; present {
		notes, ok = v.(string)
		if !ok {
			return Case{}, NewValidationError(path+".notes", "must be a string")
		}
	}

	roi, err := validateROI(obj["roi"], path+".roi")
	if err != nil {
		return Case{}, err
	}

	labels, err := validateLabels(obj["labels"], path+".labels")
	if err != nil {
		return Case{}, err
	}

	expected, err := validateExpected(obj["expected"], path+".expected")
	if err != nil {
		return Case{}, err
	}

	resolved, err := NormalizeURI(uri, baseDir)
	if err != nil {
		return Case{}, &ValidationError{
			Path:    path + ".uri",
			Message: fmt.Sprintf("cannot resolve media reference: %v", err),
			Details: uri,
		}
	}

	return Case{
		ID:       id,
		URI:      resolved,
		Notes:    notes,
		ROI:      roi,
		Labels:   labels,
		Expected: expected,
	}, nil
}

func validateROI(raw any, path string) (ROI, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return ROI{}, NewValidationError(path, "must be an object")
	}

	space, ok := obj["space"].(string)
	if !ok || !roiSpaces[space] {
		return ROI{}, NewValidationError(path+".space",
			fmt.Sprintf("must be %q or %q", RoiSpaceNormalized, RoiSpacePixel))
	}

	coords := make(map[string]float64, 4)
	for _, name := range []string{"x", "y", "width", "height"} {
		n, ok := asNumber(obj[name])
		if !ok {
			return ROI{}, NewValidationError(path+"."+name, "must be a number")
		}
		coords[name] = n
	}

	if space == RoiSpaceNormalized {
		for _, name := range []string{"x", "y", "width", "height"} {
			if v := coords[name]; v < 0 || v > 1 {
				return ROI{}, NewValidationError(path,
					fmt.Sprintf("normalized %s must lie within [0,1], got %v", name, v))
			}
		}
	}

	return ROI{
		Space:  space,
		X:      coords["x"],
		Y:      coords["y"],
		Width:  coords["width"],
		Height: coords["height"],
	}, nil
}

func validateLabels(raw any, path string) (Labels, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return Labels{}, NewValidationError(path, "must be an object")
	}

	source, ok := obj["source"].(string)
	if !ok || !labelSources[source] {
		return Labels{}, NewValidationError(path+".source",
			fmt.Sprintf("must be %q, %q or %q", LabelSourceManual, LabelSourceExternal, LabelSourceSynthetic))
	}

	tolerance, ok := asNumber(obj["toleranceMs"])
	if !ok || tolerance < 0 {
		return Labels{}, NewValidationError(path+".toleranceMs", "must be a non-negative number")
	}

	landings, err := validateTimestamps(obj["landingsMs"], path+".landingsMs")
	if err != nil {
		return Labels{}, err
	}
	takeoffs, err := validateTimestamps(obj["takeoffsMs"], path+".takeoffsMs")
	if err != nil {
		return Labels{}, err
	}

	labels := Labels{
		Source:      source,
		ToleranceMs: tolerance,
		LandingsMs:  landings,
		TakeoffsMs:  takeoffs,
	}
	if err := checkEventTimeline(labels, path); err != nil {
		return Labels{}, err
	}
	return labels, nil
}

// validateTimestamps checks that v is an array whose elements are all
// numbers, reporting the first offending index.
func validateTimestamps(v any, path string) ([]float64, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, NewValidationError(path, "must be an array of numbers")
	}
	out := make([]float64, 0, len(arr))
	for i, el := range arr {
		n, ok := asNumber(el)
		if !ok {
			return nil, NewValidationError(fmt.Sprintf("%s[%d]", path, i), "must be a number")
		}
		out = append(out, n)
	}
	return out, nil
}

// checkEventTimeline enforces the cross-field label invariants: pooled
// landing and takeoff timestamps are pairwise distinct, and every landing is
// covered by some strictly later takeoff.
func checkEventTimeline(labels Labels, path string) error {
	type event struct {
		timeMs float64
		kind   string
	}
	events := make([]event, 0, len(labels.LandingsMs)+len(labels.TakeoffsMs))
	for _, t := range labels.LandingsMs {
		events = append(events, event{t, "landing"})
	}
	for _, t := range labels.TakeoffsMs {
		events = append(events, event{t, "takeoff"})
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].timeMs < events[j].timeMs })

	for i := 1; i < len(events); i++ {
		if events[i].timeMs == events[i-1].timeMs {
			return &ValidationError{
				Path: path,
				Message: fmt.Sprintf("duplicate timestamp %vms shared by %s and %s events",
					events[i].timeMs, events[i-1].kind, events[i].kind),
				Details: events[i].timeMs,
			}
		}
	}

	// Any strictly later takeoff covers a landing; pairing is not required.
	for _, landing := range labels.LandingsMs {
		covered := false
		for _, takeoff := range labels.TakeoffsMs {
			if takeoff > landing {
				covered = true
				break
			}
		}
		if !covered {
			return &ValidationError{
				Path:    path,
				Message: fmt.Sprintf("landing at %vms has no corresponding takeoff", landing),
				Details: landing,
			}
		}
	}
	return nil
}

func validateExpected(raw any, path string) (Expected, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return Expected{}, NewValidationError(path, "must be an object")
	}

	shouldAccept, ok := obj["shouldAccept"].(bool)
	if !ok {
		return Expected{}, NewValidationError(path+".shouldAccept", "must be a boolean")
	}

	// Every declared threshold must be a non-negative number, even on
	// cases expected to be rejected.
	var thresholds map[string]float64
	for _, name := range ThresholdFields {
		v, present := obj[name]
		if !present {
			continue
		}
		n, ok := asNumber(v)
		if !ok {
			return Expected{}, NewValidationError(path+"."+name, "must be a number")
		}
		if n < 0 {
			return Expected{}, NewValidationError(path+"."+name, "must not be negative")
		}
		if thresholds == nil {
			thresholds = make(map[string]float64)
		}
		thresholds[name] = n
	}

	if shouldAccept && len(thresholds) == 0 {
		return Expected{}, NewValidationError(path,
			"accepted case must declare at least one accuracy threshold")
	}

	var reason string
	if v, present := obj["reason"]; present {
		reason, ok = v.(string)
		if !ok {
			return Expected{}, NewValidationError(path+".reason", "must be a string")
		}
	}

	return Expected{
		ShouldAccept: shouldAccept,
		Reason:       reason,
		Thresholds:   thresholds,
	}, nil
}
