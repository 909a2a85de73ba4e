package gpm

import (
	"errors"
	"slices"
	"testing"
)

func threeSiteMap(t *testing.T, opts Options) *Map {
	t.Helper()
	genotypes := []string{"AAA", "AAT", "ATA", "ATT", "TAA", "TAT", "TTA", "TTT"}
	phenotypes := make([]float64, len(genotypes))
	stdeviations := make([]float64, len(genotypes))
	for i := range genotypes {
		phenotypes[i] = float64(i + 1)
		stdeviations[i] = 0.1 * float64(i+1)
	}
	if opts.StdDeviations != nil {
		opts.StdDeviations = stdeviations
	}
	return mustMap(t, "AAA", genotypes, phenotypes, opts)
}

func TestSubspaceExtractsSubLattice(t *testing.T) {
	m := threeSiteMap(t, Options{StdDeviations: []float64{1}})

	sub, err := m.Subspace("AAA", "ATT")
	if err != nil {
		t.Fatalf("subspace: %v", err)
	}

	if sub.Wildtype() != "AAA" {
		t.Fatalf("subspace wildtype %q, want AAA", sub.Wildtype())
	}
	if sub.N() != 4 {
		t.Fatalf("two differing sites must span 4 genotypes, got %d", sub.N())
	}
	want := []string{"AAA", "AAT", "ATA", "ATT"}
	got := append([]string(nil), sub.Genotypes()...)
	slices.Sort(got)
	if !slices.Equal(got, want) {
		t.Fatalf("unexpected sub-lattice: %v", sub.Genotypes())
	}
	for i, g := range sub.Genotypes() {
		parentIndex, err := m.Index(g)
		if err != nil {
			t.Fatalf("parent lookup %q: %v", g, err)
		}
		if sub.Phenotypes()[i] != m.Phenotypes()[parentIndex] {
			t.Fatalf("phenotype for %q diverged from parent", g)
		}
		if sub.StdDeviations()[i] != m.StdDeviations()[parentIndex] {
			t.Fatalf("stdeviation for %q diverged from parent", g)
		}
	}
	if len(sub.MissingGenotypes()) != 0 {
		t.Fatalf("sub-lattice is complete, got missing %v", sub.MissingGenotypes())
	}
}

func TestSubspacePropagatesRawValuesUnderLogTransform(t *testing.T) {
	genotypes := []string{"AA", "AT", "TA", "TT"}
	rawPhenotypes := []float64{1, 10, 100, 1000}
	m := mustMap(t, "AA", genotypes, rawPhenotypes, Options{LogTransform: true})

	sub, err := m.Subspace("AA", "TT")
	if err != nil {
		t.Fatalf("subspace: %v", err)
	}
	if !sub.LogTransform() {
		t.Fatal("subspace must inherit the log transform")
	}
	for i, g := range sub.Genotypes() {
		parentIndex, err := m.Index(g)
		if err != nil {
			t.Fatalf("parent lookup %q: %v", g, err)
		}
		if sub.Raw().Phenotypes()[i] != rawPhenotypes[parentIndex] {
			t.Fatalf("raw phenotype for %q diverged from parent", g)
		}
	}
}

func TestSubspaceRequiresEveryMember(t *testing.T) {
	m := mustMap(t, "AAA", []string{"AAA", "ATT", "TTT"}, []float64{0, 1, 2}, Options{})
	if _, err := m.Subspace("AAA", "ATT"); !errors.Is(err, ErrUnknownGenotype) {
		t.Fatalf("expected ErrUnknownGenotype for incomplete sub-lattice, got %v", err)
	}
}
