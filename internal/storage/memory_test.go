package storage

import (
	"context"
	"testing"

	"gpmap/internal/model"
)

func testMapRecord(id string) model.MapRecord {
	return model.MapRecord{
		VersionedRecord: model.VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion},
		ID:              id,
		Wildtype:        "AA",
		Genotypes:       []string{"AA", "AT", "TA", "TT"},
		Phenotypes:      []float64{0, 1, 1, 2},
		StdDevs:         []float64{0.1, 0.1, 0.1, 0.2},
		NReplicates:     4,
		LogBase:         "log10",
	}
}

func TestMemoryStoreMapRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	if err := store.SaveMap(ctx, testMapRecord("m1")); err != nil {
		t.Fatalf("save map: %v", err)
	}
	record, ok, err := store.GetMap(ctx, "m1")
	if err != nil {
		t.Fatalf("get map: %v", err)
	}
	if !ok || record.Wildtype != "AA" || len(record.Genotypes) != 4 {
		t.Fatalf("unexpected record: %+v", record)
	}

	if _, ok, _ := store.GetMap(ctx, "absent"); ok {
		t.Fatal("expected no record for absent id")
	}

	ids, err := store.ListMaps(ctx)
	if err != nil {
		t.Fatalf("list maps: %v", err)
	}
	if len(ids) != 1 || ids[0] != "m1" {
		t.Fatalf("unexpected map ids: %v", ids)
	}

	if err := store.DeleteMap(ctx, "m1"); err != nil {
		t.Fatalf("delete map: %v", err)
	}
	if _, ok, _ := store.GetMap(ctx, "m1"); ok {
		t.Fatal("expected map gone after delete")
	}
}

func TestMemoryStoreSamplesKeyedByMap(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	for _, id := range []string{"s1", "s2"} {
		record := model.SampleRecord{
			VersionedRecord: model.VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion},
			ID:              id,
			MapID:           "m1",
			Indices:         []int{0, 3},
			Phenotypes:      []float64{0.1, 1.9},
		}
		if err := store.SaveSample(ctx, record); err != nil {
			t.Fatalf("save sample %s: %v", id, err)
		}
	}

	ids, err := store.ListSamples(ctx, "m1")
	if err != nil {
		t.Fatalf("list samples: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 samples, got %v", ids)
	}
	if ids, _ := store.ListSamples(ctx, "other"); len(ids) != 0 {
		t.Fatalf("expected no samples for other map, got %v", ids)
	}
}

func TestMemoryStoreRequiresInit(t *testing.T) {
	store := NewMemoryStore()
	if err := store.SaveMap(context.Background(), testMapRecord("m1")); err == nil {
		t.Fatal("expected error before Init")
	}
}
