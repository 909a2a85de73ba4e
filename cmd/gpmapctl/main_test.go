package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeMapRecord(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "map.json")
	payload := `{
		"wildtype": "AA",
		"genotypes": ["AA", "AT", "TA", "TT"],
		"phenotypes": [0.1, 0.2, 0.3, 0.4],
		"stdeviations": [0.01, 0.01, 0.01, 0.01],
		"log_transform": false,
		"n_replicates": 1
	}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write record: %v", err)
	}
	return path
}

func TestRunSQLiteWorkflow(t *testing.T) {
	workdir := t.TempDir()
	dbPath := filepath.Join(workdir, "gpmap.db")
	recordPath := writeMapRecord(t, workdir)
	ctx := context.Background()

	storeArgs := []string{"-store", "sqlite", "-db-path", dbPath}

	if err := run(ctx, append([]string{"init"}, storeArgs...)); err != nil {
		t.Fatalf("init command: %v", err)
	}
	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("expected sqlite db at %s: %v", dbPath, err)
	}

	importArgs := append([]string{"import", "-file", recordPath, "-id", "binary-map"}, storeArgs...)
	if err := run(ctx, importArgs); err != nil {
		t.Fatalf("import command: %v", err)
	}

	if err := run(ctx, append([]string{"summary", "-id", "binary-map"}, storeArgs...)); err != nil {
		t.Fatalf("summary command: %v", err)
	}

	sampleArgs := append([]string{
		"sample", "-id", "binary-map", "-sample-id", "draw-1", "-n", "4", "-seed", "7",
	}, storeArgs...)
	if err := run(ctx, sampleArgs); err != nil {
		t.Fatalf("sample command: %v", err)
	}

	subspaceArgs := append([]string{
		"subspace", "-id", "binary-map", "-new-id", "sub-map", "-g1", "AA", "-g2", "TT",
	}, storeArgs...)
	if err := run(ctx, subspaceArgs); err != nil {
		t.Fatalf("subspace command: %v", err)
	}

	outPath := filepath.Join(workdir, "table.csv")
	exportArgs := append([]string{"export", "-id", "binary-map", "-out", outPath}, storeArgs...)
	if err := run(ctx, exportArgs); err != nil {
		t.Fatalf("export command: %v", err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	table := string(data)
	if !strings.Contains(table, "genotype") || !strings.Contains(table, "AA") {
		t.Fatalf("unexpected export table:\n%s", table)
	}
}

func TestRunSampleUsesConfigFile(t *testing.T) {
	workdir := t.TempDir()
	dbPath := filepath.Join(workdir, "gpmap.db")
	recordPath := writeMapRecord(t, workdir)
	ctx := context.Background()

	storeArgs := []string{"-store", "sqlite", "-db-path", dbPath}
	importArgs := append([]string{"import", "-file", recordPath, "-id", "cfg-map"}, storeArgs...)
	if err := run(ctx, importArgs); err != nil {
		t.Fatalf("import command: %v", err)
	}

	configPath := filepath.Join(workdir, "sample.json")
	payload := `{"map_id": "cfg-map", "sample_id": "cfg-draw", "n_samples": 3, "seed": 5}`
	if err := os.WriteFile(configPath, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	sampleArgs := append([]string{"sample", "-config", configPath}, storeArgs...)
	if err := run(ctx, sampleArgs); err != nil {
		t.Fatalf("sample with config: %v", err)
	}
}

func TestRunRejectsUnknownCommand(t *testing.T) {
	err := run(context.Background(), []string{"bogus"})
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestRunRequiresCommand(t *testing.T) {
	if err := run(context.Background(), nil); err == nil {
		t.Fatal("expected usage error")
	}
}

func TestImportRequiresFile(t *testing.T) {
	err := run(context.Background(), []string{"import"})
	if err == nil || !strings.Contains(err.Error(), "-file") {
		t.Fatalf("expected missing -file error, got %v", err)
	}
}
