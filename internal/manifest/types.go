package manifest

// ROI coordinate spaces
const (
	RoiSpaceNormalized = "normalized"
	RoiSpacePixel      = "pixel"
)

// Label provenance values
const (
	LabelSourceManual    = "manual-label-mode"
	LabelSourceExternal  = "external"
	LabelSourceSynthetic = "synthetic"
)

// Threshold field names recognized in a case's expected block. Each bounds
// the median or 95th-percentile error of one measured quantity, in
// milliseconds.
const (
	ThresholdMedianGct     = "maxMedianGctErrorMs"
	ThresholdP95Gct        = "maxP95GctErrorMs"
	ThresholdMedianFlight  = "maxMedianFlightErrorMs"
	ThresholdP95Flight     = "maxP95FlightErrorMs"
	ThresholdMedianLanding = "maxMedianLandingErrorMs"
	ThresholdP95Landing    = "maxP95LandingErrorMs"
	ThresholdMedianTakeoff = "maxMedianTakeoffErrorMs"
	ThresholdP95Takeoff    = "maxP95TakeoffErrorMs"
)

// ThresholdFields lists every accuracy threshold a case may declare.
var ThresholdFields = []string{
	ThresholdMedianGct,
	ThresholdP95Gct,
	ThresholdMedianFlight,
	ThresholdP95Flight,
	ThresholdMedianLanding,
	ThresholdP95Landing,
	ThresholdMedianTakeoff,
	ThresholdP95Takeoff,
}

var roiSpaces = map[string]bool{
	RoiSpaceNormalized: true,
	RoiSpacePixel:      true,
}

var labelSources = map[string]bool{
	LabelSourceManual:    true,
	LabelSourceExternal:  true,
	LabelSourceSynthetic: true,
}

// Manifest is a fully validated golden dataset. It is constructed once by
// the loader and never mutated afterwards.
type Manifest struct {
	Version       string  `json:"version"`
	Description   string  `json:"description"`
	FPSAssumption float64 `json:"fpsAssumption"`
	Cases         []Case  `json:"cases"`
}

// Case is one labeled video sample. URI is always an absolute path after
// loading, resolved against the manifest's own directory.
type Case struct {
	ID       string   `json:"id"`
	URI      string   `json:"uri"`
	Notes    string   `json:"notes,omitempty"`
	ROI      ROI      `json:"roi"`
	Labels   Labels   `json:"labels"`
	Expected Expected `json:"expected"`
}

// ROI is the frame sub-rectangle handed to the detection pipeline. In
// normalized space all four values lie within [0,1].
type ROI struct {
	Space  string  `json:"space"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Labels holds the hand-labeled ground truth event times for a case.
// Timestamps keep their manifest order; they are not required to be sorted.
type Labels struct {
	Source      string    `json:"source"`
	ToleranceMs float64   `json:"toleranceMs"`
	LandingsMs  []float64 `json:"landingsMs"`
	TakeoffsMs  []float64 `json:"takeoffsMs"`
}

// Expected is the acceptance oracle for downstream accuracy tests.
// Thresholds contains only the threshold fields actually present in the
// manifest, keyed by the Threshold* constants.
type Expected struct {
	ShouldAccept bool               `json:"shouldAccept"`
	Reason       string             `json:"reason,omitempty"`
	Thresholds   map[string]float64 `json:"thresholds,omitempty"`
}

// Threshold returns the named threshold and whether it was declared.
func (e Expected) Threshold(name string) (float64, bool) {
	v, ok := e.Thresholds[name]
	return v, ok
}
