package gpm

import (
	"fmt"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// SampleRequest selects what to sample and how many replicate draws to
// take per genotype. Zero values mean: one draw, random selection over the
// full space, derived genotype not forced.
type SampleRequest struct {
	NSamples  int
	Genotypes []string
	Fraction  float64
	Derived   bool
}

// Sample is an ephemeral value produced by Map.Sample: the per-replicate
// genotype and phenotype matrices plus their per-genotype summary
// statistics.
type Sample struct {
	src                 *Map
	replicateGenotypes  [][]string
	replicatePhenotypes [][]float64
	genotypes           []string
	phenotypes          []float64
	stdeviations        []float64
	indices             []int
}

func (s *Sample) ReplicateGenotypes() [][]string   { return s.replicateGenotypes }
func (s *Sample) ReplicatePhenotypes() [][]float64 { return s.replicatePhenotypes }
func (s *Sample) Genotypes() []string              { return s.genotypes }
func (s *Sample) Phenotypes() []float64            { return s.phenotypes }
func (s *Sample) StdDeviations() []float64         { return s.stdeviations }
func (s *Sample) Indices() []int                   { return s.indices }

// ToMap materializes a fresh map from the per-genotype means and sample
// stdeviations, inheriting wildtype, mutations, log transform, replicate
// count, and logbase from the source map.
func (s *Sample) ToMap() (*Map, error) {
	return New(s.src.wildtype, s.genotypes, ByIndex(s.phenotypes), Options{
		StdDeviations: s.stdeviations,
		LogTransform:  s.src.logTransform,
		Mutations:     s.src.mutations,
		NReplicates:   s.src.nReplicates,
		LogBase:       s.src.base,
	})
}

// Sample draws synthetic replicate measurements from each selected
// genotype's error distribution: normal draws centered on the raw
// phenotype with sigma equal to the genotype's upper standard-error
// spread. Without uncertainty views the call degenerates to returning the
// recorded values, and more than one replicate is an error. A nil rng is
// seeded from the clock.
func (m *Map) Sample(rng *rand.Rand, req SampleRequest) (*Sample, error) {
	rng = ensureRNG(rng)

	nSamples := req.NSamples
	if nSamples < 1 {
		nSamples = 1
	}

	indices, err := m.selectIndices(rng, req)
	if err != nil {
		return nil, err
	}

	// Measurement-space arrays: raw when the map is log-transformed.
	means := m.phenotypes
	var spreads []float64
	if m.logTransform {
		means = m.raw.phenotypes
		if m.HasUncertainty() {
			spreads = upperSpreads(m.raw.errView.Upper(), m.raw.phenotypes)
		}
	} else if m.HasUncertainty() {
		spreads = upperSpreads(m.errView.Upper(), m.phenotypes)
	}

	if spreads == nil && nSamples != 1 {
		return nil, fmt.Errorf("%w: requested %d replicates", ErrNoUncertainty, nSamples)
	}

	sample := &Sample{
		src:                 m,
		replicateGenotypes:  make([][]string, len(indices)),
		replicatePhenotypes: make([][]float64, len(indices)),
		genotypes:           make([]string, len(indices)),
		phenotypes:          make([]float64, len(indices)),
		stdeviations:        make([]float64, len(indices)),
		indices:             indices,
	}
	for i, index := range indices {
		seq := m.genotypes[index]
		row := make([]float64, nSamples)
		seqs := make([]string, nSamples)
		for j := 0; j < nSamples; j++ {
			seqs[j] = seq
			if spreads == nil {
				row[j] = means[index]
			} else {
				row[j] = means[index] + spreads[index]*rng.NormFloat64()
			}
		}
		sample.replicateGenotypes[i] = seqs
		sample.replicatePhenotypes[i] = row
		sample.genotypes[i] = seq
		sample.phenotypes[i] = stat.Mean(row, nil)
		sample.stdeviations[i] = stat.StdDev(row, nil)
	}
	return sample, nil
}

// selectIndices resolves an explicit genotype list, or draws a sorted
// random subset covering fraction of the space. Derived forces the most
// distant genotype (index n-1) into the selection.
func (m *Map) selectIndices(rng *rand.Rand, req SampleRequest) ([]int, error) {
	if req.Genotypes != nil {
		indices := make([]int, len(req.Genotypes))
		for i, g := range req.Genotypes {
			index, err := m.Index(g)
			if err != nil {
				return nil, err
			}
			indices[i] = index
		}
		return indices, nil
	}

	fraction := req.Fraction
	if fraction == 0 {
		fraction = 1.0
	}
	if fraction < 0 || fraction > 1 {
		return nil, fmt.Errorf("%w: %v", ErrFraction, fraction)
	}

	n := m.N()
	count := int(fraction * float64(n))
	indices := append([]int(nil), rng.Perm(n)[:count]...)
	sort.Ints(indices)
	if req.Derived {
		if len(indices) == 0 {
			indices = []int{n - 1}
		} else {
			indices[len(indices)-1] = n - 1
		}
	}
	return indices, nil
}

// upperSpreads converts absolute upper bounds back into per-genotype
// sigma values.
func upperSpreads(upper, phenotypes []float64) []float64 {
	spreads := make([]float64, len(upper))
	for i := range upper {
		spreads[i] = upper[i] - phenotypes[i]
	}
	return spreads
}
