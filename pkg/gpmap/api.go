// Package gpmap is the public client surface: genotype-phenotype maps
// imported from JSON records, persisted through a pluggable store, and
// queried for summaries, synthetic samples, and subspace extractions.
package gpmap

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"gpmap/internal/gpm"
	"gpmap/internal/model"
	"gpmap/internal/storage"
)

const defaultDBPath = "gpmap.db"

type Options struct {
	StoreKind string
	DBPath    string
}

type Client struct {
	store storage.Store
}

type MapSummary struct {
	ID            string
	Wildtype      string
	N             int
	Length        int
	Missing       int
	LogTransform  bool
	LogBase       string
	NReplicates   int
	HasStdDevs    bool
	PhenotypeMin  float64
	PhenotypeMax  float64
	PhenotypeMean float64
	PhenotypeVar  float64
}

type SampleMapRequest struct {
	MapID    string
	SampleID string
	NSamples int
	Fraction float64
	Derived  bool
	Seed     int64
}

type SampleSummary struct {
	SampleID   string
	MapID      string
	Genotypes  int
	Replicates int
}

type SubspaceRequest struct {
	MapID     string
	NewID     string
	Genotype1 string
	Genotype2 string
}

func New(opts Options) (*Client, error) {
	storeKind := opts.StoreKind
	if storeKind == "" {
		storeKind = storage.DefaultStoreKind()
	}
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	store, err := storage.NewStore(storeKind, dbPath)
	if err != nil {
		return nil, err
	}
	return &Client{store: store}, nil
}

// NewWithStore wires a client over an existing store, mainly for tests.
func NewWithStore(store storage.Store) *Client {
	return &Client{store: store}
}

func (c *Client) Init(ctx context.Context) error {
	return c.store.Init(ctx)
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

// ImportMap loads a JSON map record from disk, validates it by full
// construction, and persists it. An empty id gets a generated UUID.
func (c *Client) ImportMap(ctx context.Context, path, id string) (MapSummary, error) {
	record, err := gpm.ParseRecordFile(path)
	if err != nil {
		return MapSummary{}, err
	}
	if id != "" {
		record.ID = id
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	m, err := gpm.FromRecord(record)
	if err != nil {
		return MapSummary{}, err
	}

	stored := gpm.ToRecord(m, record.ID)
	stored.VersionedRecord = model.VersionedRecord{
		SchemaVersion: storage.CurrentSchemaVersion,
		CodecVersion:  storage.CurrentCodecVersion,
	}
	if err := c.store.SaveMap(ctx, stored); err != nil {
		return MapSummary{}, err
	}
	return summarize(record.ID, m), nil
}

// GetMap reconstructs a stored map.
func (c *Client) GetMap(ctx context.Context, id string) (*gpm.Map, error) {
	record, ok, err := c.store.GetMap(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("map %s not found", id)
	}
	return gpm.FromRecord(record)
}

func (c *Client) ListMaps(ctx context.Context) ([]string, error) {
	return c.store.ListMaps(ctx)
}

func (c *Client) DeleteMap(ctx context.Context, id string) error {
	return c.store.DeleteMap(ctx, id)
}

// Summary computes descriptive statistics over a stored map's phenotypes.
func (c *Client) Summary(ctx context.Context, id string) (MapSummary, error) {
	m, err := c.GetMap(ctx, id)
	if err != nil {
		return MapSummary{}, err
	}
	return summarize(id, m), nil
}

// SampleMap draws a synthetic dataset from a stored map's error
// distributions and persists it as a sample record.
func (c *Client) SampleMap(ctx context.Context, req SampleMapRequest) (SampleSummary, error) {
	m, err := c.GetMap(ctx, req.MapID)
	if err != nil {
		return SampleSummary{}, err
	}

	rng := rand.New(rand.NewSource(req.Seed))
	sample, err := m.Sample(rng, gpm.SampleRequest{
		NSamples: req.NSamples,
		Fraction: req.Fraction,
		Derived:  req.Derived,
	})
	if err != nil {
		return SampleSummary{}, err
	}

	sampleID := req.SampleID
	if sampleID == "" {
		sampleID = uuid.NewString()
	}
	record := model.SampleRecord{
		VersionedRecord: model.VersionedRecord{
			SchemaVersion: storage.CurrentSchemaVersion,
			CodecVersion:  storage.CurrentCodecVersion,
		},
		ID:                  sampleID,
		MapID:               req.MapID,
		Seed:                req.Seed,
		Indices:             sample.Indices(),
		ReplicateGenotypes:  sample.ReplicateGenotypes(),
		ReplicatePhenotypes: sample.ReplicatePhenotypes(),
		Phenotypes:          sample.Phenotypes(),
		StdDevs:             sample.StdDeviations(),
	}
	if err := c.store.SaveSample(ctx, record); err != nil {
		return SampleSummary{}, err
	}

	replicates := req.NSamples
	if replicates < 1 {
		replicates = 1
	}
	return SampleSummary{
		SampleID:   sampleID,
		MapID:      req.MapID,
		Genotypes:  len(sample.Genotypes()),
		Replicates: replicates,
	}, nil
}

// SubspaceMap extracts the sub-lattice between two endpoint genotypes of
// a stored map and persists it as a new map.
func (c *Client) SubspaceMap(ctx context.Context, req SubspaceRequest) (MapSummary, error) {
	m, err := c.GetMap(ctx, req.MapID)
	if err != nil {
		return MapSummary{}, err
	}

	sub, err := m.Subspace(req.Genotype1, req.Genotype2)
	if err != nil {
		return MapSummary{}, err
	}

	newID := req.NewID
	if newID == "" {
		newID = uuid.NewString()
	}
	record := gpm.ToRecord(sub, newID)
	record.VersionedRecord = model.VersionedRecord{
		SchemaVersion: storage.CurrentSchemaVersion,
		CodecVersion:  storage.CurrentCodecVersion,
	}
	if err := c.store.SaveMap(ctx, record); err != nil {
		return MapSummary{}, err
	}
	return summarize(newID, sub), nil
}

func summarize(id string, m *gpm.Map) MapSummary {
	phenotypes := m.Phenotypes()
	return MapSummary{
		ID:            id,
		Wildtype:      m.Wildtype(),
		N:             m.N(),
		Length:        m.Length(),
		Missing:       len(m.MissingGenotypes()),
		LogTransform:  m.LogTransform(),
		LogBase:       m.LogBase().Name,
		NReplicates:   m.NReplicates(),
		HasStdDevs:    m.StdDeviations() != nil,
		PhenotypeMin:  floats.Min(phenotypes),
		PhenotypeMax:  floats.Max(phenotypes),
		PhenotypeMean: stat.Mean(phenotypes, nil),
		PhenotypeVar:  stat.Variance(phenotypes, nil),
	}
}
