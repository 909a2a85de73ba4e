package gpm

import (
	"gpmap/internal/seqspace"
	"gpmap/internal/uncertainty"
)

// BinaryView is the Hamming-space representation of the map: one binary
// encoding per observed genotype relative to the wildtype, plus the
// complete-space genotypes that the observed data does not cover. Its
// phenotype array always mirrors the primary (possibly transformed)
// phenotypes.
type BinaryView struct {
	encodings        []string
	phenotypes       []float64
	missingGenotypes []string
	missingEncodings []string
	std              *uncertainty.View
	errView          *uncertainty.View
}

func newBinaryView(observed []string, index map[string]int, encoding []seqspace.SiteEncoding) (*BinaryView, error) {
	encodings := make([]string, len(observed))
	for i, g := range observed {
		binary, err := seqspace.EncodeGenotype(g, encoding)
		if err != nil {
			return nil, err
		}
		encodings[i] = binary
	}

	complete, binaries := seqspace.ConstructGenotypes(encoding)
	var missingGenotypes, missingEncodings []string
	for i, g := range complete {
		if _, ok := index[g]; ok {
			continue
		}
		missingGenotypes = append(missingGenotypes, g)
		missingEncodings = append(missingEncodings, binaries[i])
	}

	return &BinaryView{
		encodings:        encodings,
		missingGenotypes: missingGenotypes,
		missingEncodings: missingEncodings,
	}, nil
}

// Encodings returns the binary strings aligned with the map's genotypes.
func (v *BinaryView) Encodings() []string { return v.encodings }

// Phenotypes mirrors the primary phenotype array.
func (v *BinaryView) Phenotypes() []float64 { return v.phenotypes }

// MissingGenotypes lists complete-space genotypes absent from the data.
func (v *BinaryView) MissingGenotypes() []string { return v.missingGenotypes }

// MissingEncodings lists the binary strings for the missing genotypes.
func (v *BinaryView) MissingEncodings() []string { return v.missingEncodings }

func (v *BinaryView) Std() *uncertainty.View { return v.std }
func (v *BinaryView) Err() *uncertainty.View { return v.errView }
