package gpm

import "fmt"

// PhenotypeInput supplies phenotype values either positionally or keyed by
// genotype. Both forms resolve to one index-ordered array before storage.
type PhenotypeInput interface {
	resolve(genotypes []string) ([]float64, error)
}

type byIndex struct {
	values []float64
}

// ByIndex wraps an array already ordered like the map's genotypes.
func ByIndex(values []float64) PhenotypeInput {
	return byIndex{values: values}
}

func (in byIndex) resolve(genotypes []string) ([]float64, error) {
	if len(in.values) != len(genotypes) {
		return nil, fmt.Errorf("%w: %d phenotypes for %d genotypes", ErrLengthMismatch, len(in.values), len(genotypes))
	}
	out := make([]float64, len(in.values))
	copy(out, in.values)
	return out, nil
}

type byGenotype struct {
	values map[string]float64
}

// ByGenotype wraps a genotype-keyed mapping; resolution orders the values
// by the map's genotype array.
func ByGenotype(values map[string]float64) PhenotypeInput {
	return byGenotype{values: values}
}

func (in byGenotype) resolve(genotypes []string) ([]float64, error) {
	out := make([]float64, len(genotypes))
	for i, g := range genotypes {
		v, ok := in.values[g]
		if !ok {
			return nil, fmt.Errorf("%w: no phenotype for %q", ErrUnknownGenotype, g)
		}
		out[i] = v
	}
	return out, nil
}
