// Package export flattens a genotype-phenotype map into tabular form for
// downstream analysis tools.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"gpmap/internal/gpm"
)

type TableOptions struct {
	IncludeBinary      bool
	IncludeUncertainty bool
}

// WriteTable writes one CSV row per observed genotype: index, genotype,
// phenotype, then optional binary encoding and uncertainty bound columns.
func WriteTable(w io.Writer, m *gpm.Map, opts TableOptions) error {
	writer := csv.NewWriter(w)

	header := []string{"index", "genotype", "phenotype"}
	if opts.IncludeBinary {
		header = append(header, "binary")
	}
	if opts.IncludeUncertainty && m.Std() != nil {
		header = append(header, "std_lower", "std_upper", "err_lower", "err_upper")
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	phenotypes := m.Phenotypes()
	for i, g := range m.Genotypes() {
		row := []string{
			strconv.Itoa(i),
			g,
			formatFloat(phenotypes[i]),
		}
		if opts.IncludeBinary {
			row = append(row, m.Binary().Encodings()[i])
		}
		if opts.IncludeUncertainty && m.Std() != nil {
			row = append(row,
				formatFloat(m.Std().Lower()[i]),
				formatFloat(m.Std().Upper()[i]),
				formatFloat(m.Err().Lower()[i]),
				formatFloat(m.Err().Upper()[i]),
			)
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteMissing lists complete-space genotypes absent from the data, with
// their binary encodings.
func WriteMissing(w io.Writer, m *gpm.Map) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"genotype", "binary"}); err != nil {
		return err
	}
	missing := m.Binary().MissingGenotypes()
	encodings := m.Binary().MissingEncodings()
	for i, g := range missing {
		if err := writer.Write([]string{g, encodings[i]}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
