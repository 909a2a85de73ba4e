package gpm

import (
	"fmt"

	"gpmap/internal/seqspace"
)

// Subspace extracts the complete combinatorial sub-lattice spanned by two
// endpoint genotypes as a fresh map. The endpoints act as a new
// wildtype/mutant pair, independent of the parent's own wildtype and
// alphabet. Every member of the sub-lattice must already exist in the
// parent; there is no interpolation.
func (m *Map) Subspace(genotype1, genotype2 string) (*Map, error) {
	mutations, err := seqspace.BinaryMutationsMap(genotype1, genotype2)
	if err != nil {
		return nil, err
	}
	encoding, err := seqspace.EncodeMutations(genotype1, mutations)
	if err != nil {
		return nil, err
	}
	genotypes, _ := seqspace.ConstructGenotypes(encoding)

	// Resolve through the measurement-space phenotypes of the parent.
	source := m.phenotypes
	if m.logTransform {
		source = m.raw.phenotypes
	}

	phenotypes := make([]float64, len(genotypes))
	var stdeviations []float64
	if m.stdeviations != nil {
		stdeviations = make([]float64, len(genotypes))
	}
	for i, g := range genotypes {
		index, err := m.Index(g)
		if err != nil {
			return nil, fmt.Errorf("subspace between %q and %q: %w", genotype1, genotype2, err)
		}
		phenotypes[i] = source[index]
		if stdeviations != nil {
			stdeviations[i] = m.stdeviations[index]
		}
	}

	return New(genotype1, genotypes, ByIndex(phenotypes), Options{
		StdDeviations: stdeviations,
		LogTransform:  m.logTransform,
		Mutations:     mutations,
		NReplicates:   m.nReplicates,
		LogBase:       m.base,
	})
}
