package storage

import (
	"context"

	"gpmap/internal/model"
)

// Store defines persistence operations for genotype-phenotype map records
// and the synthetic samples drawn from them.
type Store interface {
	Init(ctx context.Context) error
	SaveMap(ctx context.Context, record model.MapRecord) error
	GetMap(ctx context.Context, id string) (model.MapRecord, bool, error)
	ListMaps(ctx context.Context) ([]string, error)
	DeleteMap(ctx context.Context, id string) error
	SaveSample(ctx context.Context, record model.SampleRecord) error
	GetSample(ctx context.Context, id string) (model.SampleRecord, bool, error)
	ListSamples(ctx context.Context, mapID string) ([]string, error)
}
