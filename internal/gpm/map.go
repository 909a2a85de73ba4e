// Package gpm holds the genotype-phenotype map: the canonical genotype
// and phenotype arrays plus every representation derived from them
// (binary Hamming space, raw pre-transform snapshot, uncertainty bounds),
// with sampling and subspace extraction layered on top.
package gpm

import (
	"fmt"
	"math/rand"
	"time"

	"gpmap/internal/seqspace"
	"gpmap/internal/transform"
	"gpmap/internal/uncertainty"
)

// Options carries the optional construction inputs. The zero value means:
// no uncertainty, no log transform, mutation alphabet derived from the
// farthest observed genotype, one replicate, log10 base.
type Options struct {
	StdDeviations []float64
	LogTransform  bool
	Mutations     map[int][]string
	NReplicates   int
	LogBase       transform.LogBase
}

// Map is the aggregate root. Its phenotypes are log-transformed in place
// when LogTransform is set, with the untransformed arrays retained on the
// raw view. Setters are the single rebuild path for derived state; the
// type is not safe for concurrent mutation.
type Map struct {
	wildtype     string
	genotypes    []string
	phenotypes   []float64
	stdeviations []float64
	mutations    map[int][]string
	logTransform bool
	base         transform.LogBase
	nReplicates  int

	length   int
	index    map[string]int
	encoding []seqspace.SiteEncoding

	binary  *BinaryView
	raw     *RawView
	std     *uncertainty.View
	errView *uncertainty.View
}

// New validates and assembles a map: genotypes fix n and length, the
// mutation alphabet fixes the complete combinatorial space and the binary
// view, then phenotypes and uncertainty views are derived through the
// same setters used for later mutation.
func New(wildtype string, genotypes []string, phenotypes PhenotypeInput, opts Options) (*Map, error) {
	base := opts.LogBase
	switch {
	case base.Callable():
	case base.Name == "" && base.Inv == nil:
		base = transform.Log10
	default:
		return nil, fmt.Errorf("%w: %q has no transform function", ErrLogBase, base.Name)
	}

	nReplicates := opts.NReplicates
	if nReplicates < 1 {
		nReplicates = 1
	}

	m := &Map{
		wildtype:     wildtype,
		logTransform: opts.LogTransform,
		base:         base,
		nReplicates:  nReplicates,
	}
	if err := m.setGenotypes(genotypes); err != nil {
		return nil, err
	}

	mutations := opts.Mutations
	if mutations == nil {
		mutant, err := seqspace.FarthestGenotype(wildtype, genotypes)
		if err != nil {
			return nil, err
		}
		mutations, err = seqspace.BinaryMutationsMap(wildtype, mutant)
		if err != nil {
			return nil, err
		}
	}
	if err := m.setMutations(mutations); err != nil {
		return nil, err
	}

	if err := m.SetPhenotypes(phenotypes); err != nil {
		return nil, err
	}
	if err := m.SetStdDeviations(opts.StdDeviations); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Map) setGenotypes(genotypes []string) error {
	if len(genotypes) == 0 {
		return fmt.Errorf("genotypes are required")
	}
	length := len(genotypes[0])
	index := make(map[string]int, len(genotypes))
	for i, g := range genotypes {
		if len(g) != length {
			return fmt.Errorf("genotype %q has length %d, want %d", g, len(g), length)
		}
		if _, dup := index[g]; dup {
			return fmt.Errorf("duplicate genotype %q", g)
		}
		index[g] = i
	}
	if len(m.wildtype) != length {
		return fmt.Errorf("wildtype %q has length %d, want %d", m.wildtype, len(m.wildtype), length)
	}

	m.genotypes = append([]string(nil), genotypes...)
	m.length = length
	m.index = index
	return nil
}

// setMutations fixes the alphabet, the site encodings, and the binary view
// over the complete combinatorial space.
func (m *Map) setMutations(mutations map[int][]string) error {
	encoding, err := seqspace.EncodeMutations(m.wildtype, mutations)
	if err != nil {
		return err
	}
	binary, err := newBinaryView(m.genotypes, m.index, encoding)
	if err != nil {
		return err
	}

	m.mutations = make(map[int][]string, len(mutations))
	for site, alphabet := range mutations {
		m.mutations[site] = append([]string(nil), alphabet...)
	}
	m.encoding = encoding
	m.binary = binary
	if m.phenotypes != nil {
		m.binary.phenotypes = m.phenotypes
	}
	return nil
}

// SetPhenotypes resolves the input against the genotype order and stores
// it. Under a log transform the untransformed values are snapshotted onto
// the raw view first, then the primary array is overwritten with the
// transformed values. The binary view always mirrors the primary array.
func (m *Map) SetPhenotypes(phenotypes PhenotypeInput) error {
	values, err := phenotypes.resolve(m.genotypes)
	if err != nil {
		return err
	}

	if m.logTransform {
		m.raw = &RawView{genotypes: m.genotypes, phenotypes: values}
		m.phenotypes = m.base.Apply(values)
	} else {
		m.raw = nil
		m.phenotypes = values
	}
	if m.binary != nil {
		m.binary.phenotypes = m.phenotypes
	}

	if m.stdeviations != nil {
		return m.buildUncertainty()
	}
	return nil
}

// SetStdDeviations stores the raw-unit stdeviation array and rebuilds all
// uncertainty views. A nil array clears them.
func (m *Map) SetStdDeviations(stdeviations []float64) error {
	if stdeviations != nil && len(stdeviations) != len(m.genotypes) {
		return fmt.Errorf("%w: %d stdeviations for %d genotypes", ErrLengthMismatch, len(stdeviations), len(m.genotypes))
	}
	if stdeviations == nil {
		m.stdeviations = nil
	} else {
		m.stdeviations = append([]float64(nil), stdeviations...)
	}
	return m.buildUncertainty()
}

// buildUncertainty derives every std/err view from one parametrized
// builder. Uncertainty is computed against the representation the
// stdeviations were measured in (linear space) and separately re-expressed
// for log-space consumers.
func (m *Map) buildUncertainty() error {
	m.std, m.errView = nil, nil
	if m.binary != nil {
		m.binary.std, m.binary.errView = nil, nil
	}
	if m.raw != nil {
		m.raw.stdeviations = nil
		m.raw.std, m.raw.errView = nil, nil
	}
	if m.stdeviations == nil {
		return nil
	}

	if m.logTransform {
		if m.raw == nil {
			return ErrMissingRaw
		}
		m.raw.stdeviations = m.stdeviations

		std, errv, err := buildViews(m.raw.phenotypes, m.stdeviations, false, m.base, m.nReplicates)
		if err != nil {
			return err
		}
		m.raw.std, m.raw.errView = std, errv

		std, errv, err = buildViews(m.raw.phenotypes, m.stdeviations, true, m.base, m.nReplicates)
		if err != nil {
			return err
		}
		m.std, m.errView = std, errv
	} else {
		std, errv, err := buildViews(m.phenotypes, m.stdeviations, false, m.base, m.nReplicates)
		if err != nil {
			return err
		}
		m.std, m.errView = std, errv
	}

	if m.binary != nil {
		m.binary.std, m.binary.errView = m.std, m.errView
	}
	return nil
}

func buildViews(phenotypes, stdeviations []float64, logTransform bool, base transform.LogBase, nReplicates int) (*uncertainty.View, *uncertainty.View, error) {
	std, err := uncertainty.New(uncertainty.StdDev, phenotypes, stdeviations, logTransform, base, nReplicates)
	if err != nil {
		return nil, nil, err
	}
	sterr, err := uncertainty.New(uncertainty.StdErr, phenotypes, stdeviations, logTransform, base, nReplicates)
	if err != nil {
		return nil, nil, err
	}
	return std, sterr, nil
}

// HasUncertainty reports whether an error distribution exists to sample
// from.
func (m *Map) HasUncertainty() bool {
	return m.errView != nil
}

func (m *Map) Wildtype() string           { return m.wildtype }
func (m *Map) Genotypes() []string        { return m.genotypes }
func (m *Map) Phenotypes() []float64      { return m.phenotypes }
func (m *Map) StdDeviations() []float64   { return m.stdeviations }
func (m *Map) LogTransform() bool         { return m.logTransform }
func (m *Map) LogBase() transform.LogBase { return m.base }
func (m *Map) NReplicates() int           { return m.nReplicates }
func (m *Map) N() int                     { return len(m.genotypes) }
func (m *Map) Length() int                { return m.length }
func (m *Map) Binary() *BinaryView        { return m.binary }
func (m *Map) Raw() *RawView              { return m.raw }
func (m *Map) Std() *uncertainty.View     { return m.std }
func (m *Map) Err() *uncertainty.View     { return m.errView }

// Mutations returns the per-site substitution alphabet, wildtype symbol
// included.
func (m *Map) Mutations() map[int][]string { return m.mutations }

// Indices returns the identity index array 0..n-1.
func (m *Map) Indices() []int {
	indices := make([]int, len(m.genotypes))
	for i := range indices {
		indices[i] = i
	}
	return indices
}

// MissingGenotypes lists complete-space genotypes absent from the
// observed data.
func (m *Map) MissingGenotypes() []string {
	if m.binary == nil {
		return nil
	}
	return m.binary.missingGenotypes
}

// CompleteGenotypes returns the observed genotypes followed by the
// missing ones; together they cover the combinatorial space implied by
// the mutation alphabet.
func (m *Map) CompleteGenotypes() []string {
	complete := make([]string, 0, len(m.genotypes)+len(m.MissingGenotypes()))
	complete = append(complete, m.genotypes...)
	complete = append(complete, m.MissingGenotypes()...)
	return complete
}

// Index resolves a genotype to its array position.
func (m *Map) Index(genotype string) (int, error) {
	i, ok := m.index[genotype]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownGenotype, genotype)
	}
	return i, nil
}

func ensureRNG(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
