package gpm

import (
	"errors"
	"slices"
	"testing"
)

func TestParseRecordRequiredFields(t *testing.T) {
	data := []byte(`{
		"wildtype": "AA",
		"genotypes": ["AA", "AT", "TA", "TT"],
		"phenotypes": [0, 1, 1, 2],
		"stdeviations": [0.1, 0.1, 0.1, 0.2],
		"n_replicates": 4
	}`)
	record, err := ParseRecord(data)
	if err != nil {
		t.Fatalf("parse record: %v", err)
	}
	if record.Wildtype != "AA" || len(record.Genotypes) != 4 || record.NReplicates != 4 {
		t.Fatalf("unexpected record: %+v", record)
	}

	for _, missing := range []string{"wildtype", "genotypes", "phenotypes"} {
		broken := map[string]string{
			"wildtype":   `{"genotypes": ["AA"], "phenotypes": [0]}`,
			"genotypes":  `{"wildtype": "AA", "phenotypes": [0]}`,
			"phenotypes": `{"wildtype": "AA", "genotypes": ["AA"]}`,
		}[missing]
		if _, err := ParseRecord([]byte(broken)); !errors.Is(err, ErrMissingField) {
			t.Fatalf("dropping %s: expected ErrMissingField, got %v", missing, err)
		}
	}
}

func TestFromRecordCoercesMutationKeys(t *testing.T) {
	record, err := ParseRecord([]byte(`{
		"wildtype": "AA",
		"genotypes": ["AA", "AT", "TA", "TT"],
		"phenotypes": [0, 1, 1, 2],
		"mutations": {"0": ["A", "T"], "1": ["A", "T"]}
	}`))
	if err != nil {
		t.Fatalf("parse record: %v", err)
	}

	m, err := FromRecord(record)
	if err != nil {
		t.Fatalf("from record: %v", err)
	}
	if !slices.Equal(m.Mutations()[0], []string{"A", "T"}) {
		t.Fatalf("mutation keys not coerced: %v", m.Mutations())
	}

	record.Mutations = map[string][]string{"zero": {"A", "T"}}
	if _, err := FromRecord(record); err == nil {
		t.Fatal("expected error for non-integer mutation key")
	}
}

func TestFromRecordResolvesLogBaseByName(t *testing.T) {
	record, err := ParseRecord([]byte(`{
		"wildtype": "AA",
		"genotypes": ["AA", "TT"],
		"phenotypes": [2, 8],
		"log_transform": true,
		"logbase": "log2"
	}`))
	if err != nil {
		t.Fatalf("parse record: %v", err)
	}

	m, err := FromRecord(record)
	if err != nil {
		t.Fatalf("from record: %v", err)
	}
	if !slices.Equal(m.Phenotypes(), []float64{1, 3}) {
		t.Fatalf("log2 transform not applied: %v", m.Phenotypes())
	}

	record.LogBase = "log7"
	if _, err := FromRecord(record); !errors.Is(err, ErrLogBase) {
		t.Fatalf("expected ErrLogBase for unknown base, got %v", err)
	}
}

func TestRecordOverridesBeforeConstruction(t *testing.T) {
	record, err := ParseRecord([]byte(`{
		"wildtype": "AA",
		"genotypes": ["AA", "TT"],
		"phenotypes": [1, 100],
		"log_transform": false
	}`))
	if err != nil {
		t.Fatalf("parse record: %v", err)
	}

	// Caller overrides take precedence: mutate the record before use.
	record.LogTransform = true
	m, err := FromRecord(record)
	if err != nil {
		t.Fatalf("from record: %v", err)
	}
	if m.Raw() == nil {
		t.Fatal("override must enable the raw view")
	}
}

func TestToRecordRoundTrip(t *testing.T) {
	m := mustMap(t, "AA", []string{"AA", "AT", "TA", "TT"}, []float64{1, 10, 10, 100}, Options{
		LogTransform:  true,
		StdDeviations: []float64{0.1, 1, 1, 10},
		NReplicates:   2,
	})

	record := ToRecord(m, "m-1")
	if record.ID != "m-1" || !record.LogTransform || record.LogBase != "log10" {
		t.Fatalf("unexpected record: %+v", record)
	}
	if !slices.Equal(record.Phenotypes, []float64{1, 10, 10, 100}) {
		t.Fatalf("record must store raw phenotypes, got %v", record.Phenotypes)
	}

	back, err := FromRecord(record)
	if err != nil {
		t.Fatalf("from record: %v", err)
	}
	if !slices.Equal(back.Phenotypes(), m.Phenotypes()) {
		t.Fatal("round-tripped phenotypes diverged")
	}
	if !slices.Equal(back.StdDeviations(), m.StdDeviations()) {
		t.Fatal("round-tripped stdeviations diverged")
	}
	if !slices.Equal(back.MissingGenotypes(), m.MissingGenotypes()) {
		t.Fatal("round-tripped missing genotypes diverged")
	}
}
