package gpm

import "gpmap/internal/uncertainty"

// RawView holds the untransformed genotype/phenotype/stdeviation arrays of
// a log-transformed map, in the same ordering as the primary arrays. It
// exists iff the map is log-transformed.
type RawView struct {
	genotypes    []string
	phenotypes   []float64
	stdeviations []float64
	std          *uncertainty.View
	errView      *uncertainty.View
}

func (v *RawView) Genotypes() []string      { return v.genotypes }
func (v *RawView) Phenotypes() []float64    { return v.phenotypes }
func (v *RawView) StdDeviations() []float64 { return v.stdeviations }
func (v *RawView) Std() *uncertainty.View   { return v.std }
func (v *RawView) Err() *uncertainty.View   { return v.errView }
