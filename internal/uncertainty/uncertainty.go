// Package uncertainty derives standard-deviation and standard-error bound
// arrays for a phenotype array, in either linear or log space. The input
// stdeviations are always measured in linear units; log-space views
// transform the bounds, not the widths.
package uncertainty

import (
	"fmt"
	"math"

	"gpmap/internal/transform"
)

// Kind selects which spread statistic a view represents.
type Kind int

const (
	StdDev Kind = iota
	StdErr
)

// View holds upper and lower bounds aligned with the phenotype array it
// was built from. Linear views reduce to phenotypes ± spread; log views
// carry the transformed bounds, which are asymmetric around the
// transformed phenotypes.
type View struct {
	kind  Kind
	upper []float64
	lower []float64
}

func (v *View) Kind() Kind       { return v.kind }
func (v *View) Upper() []float64 { return v.upper }
func (v *View) Lower() []float64 { return v.lower }

// New builds a view from linear-space phenotypes and stdeviations. For
// StdErr the spread is stdeviation / sqrt(nReplicates); nReplicates is
// ignored for StdDev. When logTransform is set the bounds are passed
// through the base's forward function.
func New(kind Kind, phenotypes, stdeviations []float64, logTransform bool, base transform.LogBase, nReplicates int) (*View, error) {
	if len(phenotypes) != len(stdeviations) {
		return nil, fmt.Errorf("uncertainty needs aligned arrays, got %d phenotypes and %d stdeviations", len(phenotypes), len(stdeviations))
	}
	if logTransform && !base.Callable() {
		return nil, fmt.Errorf("log-space uncertainty needs a callable logbase")
	}
	if kind == StdErr && nReplicates < 1 {
		return nil, fmt.Errorf("standard error needs at least one replicate, got %d", nReplicates)
	}

	view := &View{
		kind:  kind,
		upper: make([]float64, len(phenotypes)),
		lower: make([]float64, len(phenotypes)),
	}
	for i, p := range phenotypes {
		spread := stdeviations[i]
		if kind == StdErr {
			spread /= math.Sqrt(float64(nReplicates))
		}
		upper := p + spread
		lower := p - spread
		if logTransform {
			upper = base.Fn(upper)
			lower = base.Fn(lower)
		}
		view.upper[i] = upper
		view.lower[i] = lower
	}
	return view, nil
}
