// Command treebuilder is a one-shot batch runner: it builds a synthetic
// halo catalog through the ingest contract, runs the merger-tree
// builder over it, and logs the resulting trees and the per-snapshot
// baryon totals.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/LBJ-Wade/shark/pkg/halo"
	"github.com/LBJ-Wade/shark/pkg/ingest"
	"github.com/LBJ-Wade/shark/pkg/logging"
	"github.com/LBJ-Wade/shark/pkg/metrics"
	"github.com/LBJ-Wade/shark/pkg/physics"
	"github.com/LBJ-Wade/shark/pkg/treebuilder"
	"github.com/LBJ-Wade/shark/pkg/validation"
)

// demoConfig is the YAML-loadable configuration for the demo binary,
// mirroring how a real cosmological pipeline hands the core its
// simulation/execution parameters.
type demoConfig struct {
	Simulation validation.SimulationParameters `yaml:"simulation"`
	Execution  validation.ExecutionParameters  `yaml:"execution"`
	GasCooling validation.GasCoolingParameters `yaml:"gasCooling"`
	Cosmology  struct {
		UniversalBaryonFraction float64 `yaml:"universalBaryonFraction"`
	} `yaml:"cosmology"`
	Demo struct {
		Chains      int `yaml:"chains"`
		ChainLength int `yaml:"chainLength"`
	} `yaml:"demo"`
}

func defaultConfig() demoConfig {
	var cfg demoConfig
	cfg.Simulation = validation.SimulationParameters{MinSnapshot: 0, MaxSnapshot: 9}
	cfg.Execution = validation.ExecutionParameters{
		OutputSnapshots:          []int{9},
		EnsureMassGrowth:         true,
		SkipMissingDescendants:   false,
		WarnOnMissingDescendants: true,
		ThreadCount:              4,
	}
	cfg.GasCooling = validation.GasCoolingParameters{MaxFractionalAccretedMass: 0}
	cfg.Cosmology.UniversalBaryonFraction = 0.17
	cfg.Demo.Chains = 8
	cfg.Demo.ChainLength = 10
	return cfg
}

func loadConfig(path string) (demoConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %q: %w", path, err)
	}
	return cfg, nil
}

type fixedCosmology struct{ fb float64 }

func (c fixedCosmology) UniversalBaryonFraction() float64 { return c.fb }

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (simulation/execution/gasCooling/cosmology/demo)")
	threads := flag.Int("threads", 0, "override the configured thread count (0 = use config)")
	flag.Parse()

	if envPath := os.Getenv("TREEBUILDER_CONFIG"); *configPath == "" && envPath != "" {
		*configPath = envPath
	}

	logger := logging.NewJSONLogger(os.Stdout, logging.InfoLevel)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error("failed to load config", logging.Error(err))
		os.Exit(1)
	}
	if *threads > 0 {
		cfg.Execution.ThreadCount = *threads
	}

	logger.Info("building synthetic catalog",
		logging.Int("chains", cfg.Demo.Chains),
		logging.Int("chain_length", cfg.Demo.ChainLength))

	reader := syntheticCatalog(cfg.Demo.Chains, cfg.Demo.ChainLength)
	halos, err := loadHalosFromReader(reader)
	if err != nil {
		logger.Error("failed to load halo catalog", logging.Error(err))
		os.Exit(1)
	}

	registry := metrics.NewRegistry()
	builder := treebuilder.New(logger, registry)
	cosmology := fixedCosmology{fb: cfg.Cosmology.UniversalBaryonFraction}
	allBaryons := physics.NewAllBaryons(
		halo.Snapshot(cfg.Simulation.MinSnapshot),
		halo.Snapshot(cfg.Simulation.MaxSnapshot),
	)

	trees, err := builder.Build(context.Background(), halos, &cfg.Simulation, &cfg.Execution, &cfg.GasCooling, cosmology, allBaryons)
	if err != nil {
		logger.Error("build failed", logging.Error(err))
		os.Exit(1)
	}

	logger.Info("build succeeded", logging.Count(len(trees)))
	for _, tree := range trees {
		logger.Info("tree summary",
			logging.TreeID(tree.ID),
			logging.Count(len(tree.Halos())))
	}
	for s := halo.Snapshot(cfg.Simulation.MinSnapshot); s <= halo.Snapshot(cfg.Simulation.MaxSnapshot); s++ {
		logger.Info("baryon total created",
			logging.SnapshotField(int(s)),
			logging.Float64("total", allBaryons.BaryonTotalCreated[s]))
	}
}

// syntheticCatalog builds an in-memory hierarchical catalog of
// independent linear progenitor chains through the ingest contract,
// exercising the same '/'-separated traversal a real HDF5-backed
// reader would serve.
func syntheticCatalog(chains, chainLength int) *ingest.MemReader {
	reader := ingest.NewMemReader()
	halosGroup := ingest.NewGroup()
	subhalosGroup := ingest.NewGroup()
	reader.Root.Groups["halos"] = halosGroup
	reader.Root.Groups["subhalos"] = subhalosGroup

	var haloIDs, haloSnapshots []int64
	var haloMvir []float64
	var subIDs, subSnapshots, subHostHaloIDs, subHasDescendant, subDescHaloIDs, subDescIDs []int64
	var subMvir []float64

	nextHaloID := int64(0)
	nextSubID := int64(0)
	for c := 0; c < chains; c++ {
		prevSubID := int64(-1)
		for s := 0; s < chainLength; s++ {
			haloID := nextHaloID
			nextHaloID++
			mvir := float64(10*(c+1)) * float64(s+1)

			haloIDs = append(haloIDs, haloID)
			haloSnapshots = append(haloSnapshots, int64(s))
			haloMvir = append(haloMvir, mvir)

			subID := nextSubID
			nextSubID++
			subIDs = append(subIDs, subID)
			subSnapshots = append(subSnapshots, int64(s))
			subHostHaloIDs = append(subHostHaloIDs, haloID)
			subMvir = append(subMvir, mvir)

			subHasDescendant = append(subHasDescendant, 0)
			subDescHaloIDs = append(subDescHaloIDs, -1)
			subDescIDs = append(subDescIDs, -1)

			if prevSubID >= 0 {
				prevIdx := len(subIDs) - 2
				subHasDescendant[prevIdx] = 1
				subDescHaloIDs[prevIdx] = haloID
				subDescIDs[prevIdx] = subID
			}

			prevSubID = subID
		}
	}

	halosGroup.Datasets["id"] = ingest.Int64Dataset(haloIDs)
	halosGroup.Datasets["snapshot"] = ingest.Int64Dataset(haloSnapshots)
	halosGroup.Datasets["mvir"] = ingest.Float64Dataset(haloMvir)

	subhalosGroup.Datasets["id"] = ingest.Int64Dataset(subIDs)
	subhalosGroup.Datasets["snapshot"] = ingest.Int64Dataset(subSnapshots)
	subhalosGroup.Datasets["host_halo_id"] = ingest.Int64Dataset(subHostHaloIDs)
	subhalosGroup.Datasets["mvir"] = ingest.Float64Dataset(subMvir)
	subhalosGroup.Datasets["has_descendant"] = ingest.Int64Dataset(subHasDescendant)
	subhalosGroup.Datasets["descendant_halo_id"] = ingest.Int64Dataset(subDescHaloIDs)
	subhalosGroup.Datasets["descendant_id"] = ingest.Int64Dataset(subDescIDs)

	return reader
}

// loadHalosFromReader reads the flat halo/subhalo datasets back out of
// the reader and assembles the halo.Halo/halo.Subhalo entities the
// builder consumes. This is the ingest-layer boundary described in
// spec.md §6: everything past this point is core, untouched by how the
// catalog was produced.
func loadHalosFromReader(reader ingest.DatasetReader) ([]*halo.Halo, error) {
	haloIDs, err := readInt64s(reader, "halos/id")
	if err != nil {
		return nil, err
	}
	haloSnapshots, err := readInt64s(reader, "halos/snapshot")
	if err != nil {
		return nil, err
	}
	haloMvir, err := readFloat64s(reader, "halos/mvir")
	if err != nil {
		return nil, err
	}

	halosByID := make(map[halo.Id]*halo.Halo, len(haloIDs))
	var halos []*halo.Halo
	for i := range haloIDs {
		h := &halo.Halo{
			ID:       halo.Id(haloIDs[i]),
			Snapshot: halo.Snapshot(haloSnapshots[i]),
			Mvir:     haloMvir[i],
		}
		halosByID[h.ID] = h
		halos = append(halos, h)
	}

	subIDs, err := readInt64s(reader, "subhalos/id")
	if err != nil {
		return nil, err
	}
	subSnapshots, err := readInt64s(reader, "subhalos/snapshot")
	if err != nil {
		return nil, err
	}
	subHostHaloIDs, err := readInt64s(reader, "subhalos/host_halo_id")
	if err != nil {
		return nil, err
	}
	subMvir, err := readFloat64s(reader, "subhalos/mvir")
	if err != nil {
		return nil, err
	}
	subHasDescendant, err := readInt64s(reader, "subhalos/has_descendant")
	if err != nil {
		return nil, err
	}
	subDescHaloIDs, err := readInt64s(reader, "subhalos/descendant_halo_id")
	if err != nil {
		return nil, err
	}
	subDescIDs, err := readInt64s(reader, "subhalos/descendant_id")
	if err != nil {
		return nil, err
	}

	for i := range subIDs {
		host, ok := halosByID[halo.Id(subHostHaloIDs[i])]
		if !ok {
			return nil, fmt.Errorf("subhalo %d names unknown host halo %d", subIDs[i], subHostHaloIDs[i])
		}
		sub := &halo.Subhalo{
			ID:               halo.SubhaloId(subIDs[i]),
			Snapshot:         halo.Snapshot(subSnapshots[i]),
			Host:             host,
			Mvir:             subMvir[i],
			HasDescendant:    subHasDescendant[i] != 0,
			DescendantHaloID: halo.Id(subDescHaloIDs[i]),
			DescendantID:     halo.SubhaloId(subDescIDs[i]),
		}
		host.SatelliteSubhalos = append(host.SatelliteSubhalos, sub)
	}

	return halos, nil
}

func readInt64s(reader ingest.DatasetReader, path string) ([]int64, error) {
	ds, err := reader.GetDataset(path)
	if err != nil {
		return nil, fmt.Errorf("dataset %q: %w", path, err)
	}
	return ds.Int64Slice()
}

func readFloat64s(reader ingest.DatasetReader, path string) ([]float64, error) {
	ds, err := reader.GetDataset(path)
	if err != nil {
		return nil, fmt.Errorf("dataset %q: %w", path, err)
	}
	return ds.Float64Slice()
}
