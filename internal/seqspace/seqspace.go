package seqspace

import (
	"fmt"
	"sort"
	"strings"
)

// HammingDistance counts the sites at which two equal-length sequences
// differ.
func HammingDistance(a, b string) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("hamming distance needs equal lengths, got %d and %d", len(a), len(b))
	}
	distance := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			distance++
		}
	}
	return distance, nil
}

// FarthestGenotype returns the observed genotype with the greatest Hamming
// distance from the wildtype. Ties keep the earliest genotype in the list.
func FarthestGenotype(wildtype string, genotypes []string) (string, error) {
	if len(genotypes) == 0 {
		return "", fmt.Errorf("genotypes are required")
	}
	farthest := ""
	best := -1
	for _, g := range genotypes {
		d, err := HammingDistance(wildtype, g)
		if err != nil {
			return "", err
		}
		if d > best {
			best = d
			farthest = g
		}
	}
	return farthest, nil
}

// BinaryMutationsMap derives a per-site substitution alphabet between two
// equal-length sequences. Sites where the sequences agree carry a
// single-symbol alphabet; sites where they differ carry both symbols with
// the first sequence's symbol leading.
func BinaryMutationsMap(a, b string) (map[int][]string, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("mutation alphabet needs equal lengths, got %d and %d", len(a), len(b))
	}
	mutations := make(map[int][]string, len(a))
	for i := 0; i < len(a); i++ {
		if a[i] == b[i] {
			mutations[i] = []string{string(a[i])}
		} else {
			mutations[i] = []string{string(a[i]), string(b[i])}
		}
	}
	return mutations, nil
}

// SiteEncoding holds the symbol-to-bits code for one site. Symbols list
// the site alphabet with the wildtype symbol first; Codes is aligned with
// Symbols. A fixed site (single-symbol alphabet) contributes no bits.
type SiteEncoding struct {
	Site    int
	Symbols []string
	Codes   []string
}

// EncodeMutations builds per-site binary codes for a mutation alphabet.
// The wildtype symbol at a site with k symbols encodes as k-1 zero bits;
// the i-th substitution encodes as the matching one-hot string. Sites
// absent from the alphabet are treated as fixed at the wildtype symbol.
func EncodeMutations(wildtype string, mutations map[int][]string) ([]SiteEncoding, error) {
	encoding := make([]SiteEncoding, 0, len(wildtype))
	for site := 0; site < len(wildtype); site++ {
		wt := string(wildtype[site])
		alphabet, ok := mutations[site]
		if !ok || len(alphabet) == 0 {
			alphabet = []string{wt}
		}
		substitutions := make([]string, 0, len(alphabet))
		seenWildtype := false
		for _, symbol := range alphabet {
			if symbol == wt {
				seenWildtype = true
				continue
			}
			substitutions = append(substitutions, symbol)
		}
		if !seenWildtype {
			return nil, fmt.Errorf("site %d alphabet %v does not include wildtype symbol %q", site, alphabet, wt)
		}

		width := len(substitutions)
		symbols := make([]string, 0, width+1)
		codes := make([]string, 0, width+1)
		symbols = append(symbols, wt)
		codes = append(codes, strings.Repeat("0", width))
		for i, symbol := range substitutions {
			bits := []byte(strings.Repeat("0", width))
			bits[i] = '1'
			symbols = append(symbols, symbol)
			codes = append(codes, string(bits))
		}
		encoding = append(encoding, SiteEncoding{Site: site, Symbols: symbols, Codes: codes})
	}

	// Alphabet keys beyond the sequence length have no site to encode.
	for site := range mutations {
		if site < 0 || site >= len(wildtype) {
			return nil, fmt.Errorf("mutation site %d outside sequence of length %d", site, len(wildtype))
		}
	}

	sort.Slice(encoding, func(i, j int) bool { return encoding[i].Site < encoding[j].Site })
	return encoding, nil
}

// ConstructGenotypes expands site encodings into the complete combinatorial
// genotype set and the aligned binary strings. Sites vary fastest at the
// end of the sequence.
func ConstructGenotypes(encoding []SiteEncoding) (genotypes, binaries []string) {
	genotypes = []string{""}
	binaries = []string{""}
	for _, site := range encoding {
		nextGenotypes := make([]string, 0, len(genotypes)*len(site.Symbols))
		nextBinaries := make([]string, 0, len(binaries)*len(site.Symbols))
		for i, prefix := range genotypes {
			for j, symbol := range site.Symbols {
				nextGenotypes = append(nextGenotypes, prefix+symbol)
				nextBinaries = append(nextBinaries, binaries[i]+site.Codes[j])
			}
		}
		genotypes = nextGenotypes
		binaries = nextBinaries
	}
	return genotypes, binaries
}

// EncodeGenotype returns the binary string for one genotype under the
// given site encodings.
func EncodeGenotype(genotype string, encoding []SiteEncoding) (string, error) {
	if len(genotype) != len(encoding) {
		return "", fmt.Errorf("genotype %q does not span %d encoded sites", genotype, len(encoding))
	}
	var builder strings.Builder
	for _, site := range encoding {
		symbol := string(genotype[site.Site])
		matched := false
		for i, candidate := range site.Symbols {
			if candidate == symbol {
				builder.WriteString(site.Codes[i])
				matched = true
				break
			}
		}
		if !matched {
			return "", fmt.Errorf("symbol %q at site %d is outside the mutation alphabet", symbol, site.Site)
		}
	}
	return builder.String(), nil
}
