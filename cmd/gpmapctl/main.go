package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"gpmap/internal/export"
	"gpmap/internal/storage"
	gpmapapi "gpmap/pkg/gpmap"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "init":
		return runInit(ctx, args[1:])
	case "import":
		return runImport(ctx, args[1:])
	case "maps":
		return runMaps(ctx, args[1:])
	case "summary":
		return runSummary(ctx, args[1:])
	case "sample":
		return runSample(ctx, args[1:])
	case "subspace":
		return runSubspace(ctx, args[1:])
	case "export":
		return runExport(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func storeFlags(fs *flag.FlagSet) (*string, *string) {
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "gpmap.db", "sqlite database path")
	return storeKind, dbPath
}

func newClient(ctx context.Context, storeKind, dbPath string) (*gpmapapi.Client, error) {
	client, err := gpmapapi.New(gpmapapi.Options{StoreKind: storeKind, DBPath: dbPath})
	if err != nil {
		return nil, err
	}
	if err := client.Init(ctx); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func runInit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	storeKind, dbPath := storeFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := newClient(ctx, *storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	fmt.Printf("initialized %s store\n", *storeKind)
	return nil
}

func runImport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	storeKind, dbPath := storeFlags(fs)
	file := fs.String("file", "", "path to a JSON map record")
	id := fs.String("id", "", "map id (generated when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return usageError("import requires -file")
	}

	client, err := newClient(ctx, *storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	summary, err := client.ImportMap(ctx, *file, *id)
	if err != nil {
		return err
	}
	printSummary(summary)
	return nil
}

func runMaps(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("maps", flag.ContinueOnError)
	storeKind, dbPath := storeFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := newClient(ctx, *storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	ids, err := client.ListMaps(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		fmt.Println(id)
	}
	return nil
}

func runSummary(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("summary", flag.ContinueOnError)
	storeKind, dbPath := storeFlags(fs)
	id := fs.String("id", "", "map id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return usageError("summary requires -id")
	}

	client, err := newClient(ctx, *storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	summary, err := client.Summary(ctx, *id)
	if err != nil {
		return err
	}
	printSummary(summary)
	return nil
}

func runSample(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("sample", flag.ContinueOnError)
	storeKind, dbPath := storeFlags(fs)
	configPath := fs.String("config", "", "JSON sampling config")
	id := fs.String("id", "", "map id")
	sampleID := fs.String("sample-id", "", "sample id (generated when empty)")
	nSamples := fs.Int("n", 1, "replicate draws per genotype")
	fraction := fs.Float64("fraction", 1.0, "fraction of the space to sample")
	derived := fs.Bool("derived", true, "always include the most-derived genotype")
	seed := fs.Int64("seed", 0, "random seed")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := gpmapapi.SampleMapRequest{
		MapID:    *id,
		SampleID: *sampleID,
		NSamples: *nSamples,
		Fraction: *fraction,
		Derived:  *derived,
		Seed:     *seed,
	}
	if *configPath != "" {
		loaded, err := loadSampleRequestFromConfig(*configPath, req)
		if err != nil {
			return err
		}
		req = loaded
	}
	if req.MapID == "" {
		return usageError("sample requires -id or a config with map_id")
	}

	client, err := newClient(ctx, *storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	summary, err := client.SampleMap(ctx, req)
	if err != nil {
		return err
	}
	fmt.Printf("sample %s: %d genotypes x %d replicates from map %s\n",
		summary.SampleID, summary.Genotypes, summary.Replicates, summary.MapID)
	return nil
}

func runSubspace(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("subspace", flag.ContinueOnError)
	storeKind, dbPath := storeFlags(fs)
	id := fs.String("id", "", "parent map id")
	newID := fs.String("new-id", "", "child map id (generated when empty)")
	genotype1 := fs.String("g1", "", "first endpoint genotype (becomes wildtype)")
	genotype2 := fs.String("g2", "", "second endpoint genotype")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" || *genotype1 == "" || *genotype2 == "" {
		return usageError("subspace requires -id, -g1, and -g2")
	}

	client, err := newClient(ctx, *storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	summary, err := client.SubspaceMap(ctx, gpmapapi.SubspaceRequest{
		MapID:     *id,
		NewID:     *newID,
		Genotype1: *genotype1,
		Genotype2: *genotype2,
	})
	if err != nil {
		return err
	}
	printSummary(summary)
	return nil
}

func runExport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	storeKind, dbPath := storeFlags(fs)
	id := fs.String("id", "", "map id")
	out := fs.String("out", "", "output CSV path (stdout when empty)")
	binary := fs.Bool("binary", true, "include binary encodings")
	bounds := fs.Bool("uncertainty", true, "include uncertainty bounds")
	missing := fs.Bool("missing", false, "export the missing-genotype table instead")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return usageError("export requires -id")
	}

	client, err := newClient(ctx, *storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	m, err := client.GetMap(ctx, *id)
	if err != nil {
		return err
	}

	writer := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		writer = f
	}

	if *missing {
		return export.WriteMissing(writer, m)
	}
	return export.WriteTable(writer, m, export.TableOptions{
		IncludeBinary:      *binary,
		IncludeUncertainty: *bounds,
	})
}

func printSummary(summary gpmapapi.MapSummary) {
	fmt.Printf("map %s: wildtype %s, %d genotypes (length %d), %d missing\n",
		summary.ID, summary.Wildtype, summary.N, summary.Length, summary.Missing)
	fmt.Printf("  log_transform=%v logbase=%s n_replicates=%d stdeviations=%v\n",
		summary.LogTransform, summary.LogBase, summary.NReplicates, summary.HasStdDevs)
	fmt.Printf("  phenotypes: min %.6g max %.6g mean %.6g var %.6g\n",
		summary.PhenotypeMin, summary.PhenotypeMax, summary.PhenotypeMean, summary.PhenotypeVar)
}

func usageError(message string) error {
	return fmt.Errorf("%s\nusage: gpmapctl <init|import|maps|summary|sample|subspace|export> [flags]", message)
}
