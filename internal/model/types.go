package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// MapRecord is the load/persistence form of a genotype-phenotype map.
// Phenotypes and stdeviations are stored in raw (measurement) units;
// mutation-alphabet keys are JSON object keys and therefore strings until
// construction coerces them to site indices.
type MapRecord struct {
	VersionedRecord
	ID           string              `json:"id,omitempty"`
	Wildtype     string              `json:"wildtype"`
	Genotypes    []string            `json:"genotypes"`
	Phenotypes   []float64           `json:"phenotypes"`
	StdDevs      []float64           `json:"stdeviations,omitempty"`
	LogTransform bool                `json:"log_transform,omitempty"`
	Mutations    map[string][]string `json:"mutations,omitempty"`
	NReplicates  int                 `json:"n_replicates,omitempty"`
	LogBase      string              `json:"logbase,omitempty"`
}

// SampleRecord is the persistence form of one synthetic sampling run.
type SampleRecord struct {
	VersionedRecord
	ID                  string      `json:"id"`
	MapID               string      `json:"map_id"`
	Seed                int64       `json:"seed"`
	Indices             []int       `json:"indices"`
	ReplicateGenotypes  [][]string  `json:"replicate_genotypes"`
	ReplicatePhenotypes [][]float64 `json:"replicate_phenotypes"`
	Phenotypes          []float64   `json:"phenotypes"`
	StdDevs             []float64   `json:"stdeviations"`
}
