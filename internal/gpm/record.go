package gpm

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"gpmap/internal/model"
	"gpmap/internal/transform"
)

var requiredFields = []string{"wildtype", "genotypes", "phenotypes"}

// ParseRecord decodes a JSON map record and checks the load contract:
// wildtype, genotypes, and phenotypes must be present. Callers that want
// to override fields mutate the record before handing it to FromRecord.
func ParseRecord(data []byte) (model.MapRecord, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return model.MapRecord{}, fmt.Errorf("decode map record: %w", err)
	}
	for _, field := range requiredFields {
		if _, ok := raw[field]; !ok {
			return model.MapRecord{}, fmt.Errorf("%w: %s", ErrMissingField, field)
		}
	}

	var record model.MapRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return model.MapRecord{}, fmt.Errorf("decode map record: %w", err)
	}
	return record, nil
}

// ParseRecordFile reads and parses one JSON map record from disk.
func ParseRecordFile(path string) (model.MapRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.MapRecord{}, err
	}
	return ParseRecord(data)
}

// FromRecord constructs a map from a load/persistence record. Mutation
// keys are coerced from JSON strings to integer site indices; the logbase
// is resolved by name.
func FromRecord(record model.MapRecord) (*Map, error) {
	base, err := transform.Lookup(record.LogBase)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLogBase, err)
	}

	var mutations map[int][]string
	if record.Mutations != nil {
		mutations = make(map[int][]string, len(record.Mutations))
		for key, alphabet := range record.Mutations {
			site, err := strconv.Atoi(key)
			if err != nil {
				return nil, fmt.Errorf("mutation site key %q is not an integer", key)
			}
			mutations[site] = alphabet
		}
	}

	return New(record.Wildtype, record.Genotypes, ByIndex(record.Phenotypes), Options{
		StdDeviations: record.StdDevs,
		LogTransform:  record.LogTransform,
		Mutations:     mutations,
		NReplicates:   record.NReplicates,
		LogBase:       base,
	})
}

// ToRecord flattens a map back into its persistence form, always in raw
// measurement units so that FromRecord round-trips.
func ToRecord(m *Map, id string) model.MapRecord {
	phenotypes := m.phenotypes
	stdeviations := m.stdeviations
	if m.logTransform {
		phenotypes = m.raw.phenotypes
	}

	mutations := make(map[string][]string, len(m.mutations))
	for site, alphabet := range m.mutations {
		mutations[strconv.Itoa(site)] = alphabet
	}

	return model.MapRecord{
		ID:           id,
		Wildtype:     m.wildtype,
		Genotypes:    append([]string(nil), m.genotypes...),
		Phenotypes:   append([]float64(nil), phenotypes...),
		StdDevs:      append([]float64(nil), stdeviations...),
		LogTransform: m.logTransform,
		Mutations:    mutations,
		NReplicates:  m.nReplicates,
		LogBase:      m.base.Name,
	}
}
