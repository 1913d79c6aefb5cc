// Package audit provides reporting utilities over a validated golden
// dataset: media existence probes and aggregate label statistics. Nothing
// here ever fails; probe errors degrade to "missing".
package audit

import (
	"context"
	"fmt"
	"os"

	"gonum.org/v1/gonum/stat"

	"github.com/hopmetrics/goldenset-go/internal/manifest"
)

// Stats summarizes a loaded dataset. Derived on demand, never persisted.
type Stats struct {
	TotalCases           int     `json:"totalCases"`
	AcceptCases          int     `json:"acceptCases"`
	RejectCases          int     `json:"rejectCases"`
	TotalLabeledLandings int     `json:"totalLabeledLandings"`
	TotalLabeledTakeoffs int     `json:"totalLabeledTakeoffs"`
	AverageHopsPerCase   float64 `json:"averageHopsPerCase"`
}

// Report lists the outcome of probing every case's media file. Missing
// entries are formatted "<id>: <uri>".
type Report struct {
	Missing []string `json:"missing"`
	Found   int      `json:"found"`
}

// Auditor probes case media on disk. The stat function is swappable for
// tests.
type Auditor struct {
	stat func(string) (os.FileInfo, error)

	// Observe, when set, is invoked once per case probed by CheckURIs.
	Observe func(c manifest.Case, found bool)
}

// New creates an Auditor backed by the real filesystem.
func New() *Auditor {
	return &Auditor{stat: os.Stat}
}

// VideoExists reports whether the case's resolved media file is present.
// Probe failures of any kind are swallowed and read as absent.
func (a *Auditor) VideoExists(c manifest.Case) bool {
	_, err := a.stat(c.URI)
	return err == nil
}

// CheckURIs probes every case in manifest order and reports which media
// files are missing. It never fails.
func (a *Auditor) CheckURIs(m *manifest.Manifest) Report {
	return a.CheckURIsContext(context.Background(), m)
}

// CheckURIsContext is CheckURIs with cancellation: probing stops at the
// first case after ctx is done and the partial report is returned.
func (a *Auditor) CheckURIsContext(ctx context.Context, m *manifest.Manifest) Report {
	r := Report{Missing: []string{}}
	for _, c := range m.Cases {
		if ctx.Err() != nil {
			break
		}
		found := a.VideoExists(c)
		if found {
			r.Found++
		} else {
			r.Missing = append(r.Missing, fmt.Sprintf("%s: %s", c.ID, c.URI))
		}
		if a.Observe != nil {
			a.Observe(c, found)
		}
	}
	return r
}

// DatasetStats tallies acceptance and label counts in a single pass.
// AverageHopsPerCase is the mean labeled landing count per case, zero when
// the dataset has no labeled landings at all.
func DatasetStats(m *manifest.Manifest) Stats {
	s := Stats{TotalCases: len(m.Cases)}
	perCase := make([]float64, 0, len(m.Cases))
	for _, c := range m.Cases {
		if c.Expected.ShouldAccept {
			s.AcceptCases++
		} else {
			s.RejectCases++
		}
		s.TotalLabeledLandings += len(c.Labels.LandingsMs)
		s.TotalLabeledTakeoffs += len(c.Labels.TakeoffsMs)
		perCase = append(perCase, float64(len(c.Labels.LandingsMs)))
	}
	if s.TotalLabeledLandings > 0 {
		s.AverageHopsPerCase = stat.Mean(perCase, nil)
	}
	return s
}
