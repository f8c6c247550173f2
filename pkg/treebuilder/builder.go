// Package treebuilder assembles a forest of merger trees from a flat
// population of halos: linking halos and subhalos across snapshots,
// designating central subhalos along main-progenitor branches,
// enforcing monotonic mass growth, and computing per-halo baryonic
// accretion from dark-matter growth.
package treebuilder

import (
	"context"
	"errors"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/LBJ-Wade/shark/pkg/errs"
	"github.com/LBJ-Wade/shark/pkg/halo"
	"github.com/LBJ-Wade/shark/pkg/logging"
	"github.com/LBJ-Wade/shark/pkg/metrics"
	"github.com/LBJ-Wade/shark/pkg/parallel"
	"github.com/LBJ-Wade/shark/pkg/physics"
	"github.com/LBJ-Wade/shark/pkg/validation"
)

// Builder runs the fixed build pipeline: seed, link, verify, (grow),
// centralize, accrete. It is safe for reuse across calls; each Build
// call constructs its own worker pool sized from ExecutionParameters.
type Builder struct {
	Logger   logging.Logger
	Registry *metrics.Registry
}

// New returns a Builder using the given logger and metrics registry.
// A nil logger falls back to logging.DefaultLogger(); a nil registry
// falls back to metrics.DefaultRegistry().
func New(logger logging.Logger, registry *metrics.Registry) *Builder {
	if logger == nil {
		logger = logging.DefaultLogger()
	}
	if registry == nil {
		registry = metrics.DefaultRegistry()
	}
	return &Builder{Logger: logger, Registry: registry}
}

// Build executes the fixed pipeline over halos and returns the
// resulting forest of merger trees. Any step failing with an invariant
// violation aborts the build; partial state is discarded.
func (b *Builder) Build(
	ctx context.Context,
	halos []*halo.Halo,
	simParams *validation.SimulationParameters,
	execParams *validation.ExecutionParameters,
	gasCoolingParams *validation.GasCoolingParameters,
	cosmology physics.Cosmology,
	allBaryons *physics.AllBaryons,
) ([]*halo.MergerTree, error) {
	correlationID := uuid.NewString()
	logger := b.Logger.With(logging.CorrelationID(correlationID))
	start := time.Now()

	b.Registry.BuildsInFlight.Inc()
	trees, err := b.build(ctx, halos, simParams, execParams, gasCoolingParams, cosmology, allBaryons, logger)
	b.Registry.BuildsInFlight.Dec()

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	b.Registry.SetGoRoutines(runtime.NumGoroutine())
	b.Registry.SetMemoryAllocBytes(memStats.Alloc)

	duration := time.Since(start)
	result := "ok"
	if err != nil {
		result = resultLabel(err)
	}
	b.Registry.RecordBuild(result, duration)

	builderLogger := logger.Stage("builder")
	if err != nil {
		builderLogger.Error("build failed", append(errs.Fields(err), logging.Latency(duration))...)
		return nil, err
	}

	b.Registry.SetTreesBuilt(len(trees))
	builderLogger.Info("build succeeded",
		logging.Count(len(trees)),
		logging.Latency(duration))
	return trees, nil
}

func (b *Builder) build(
	ctx context.Context,
	halos []*halo.Halo,
	simParams *validation.SimulationParameters,
	execParams *validation.ExecutionParameters,
	gasCoolingParams *validation.GasCoolingParameters,
	cosmology physics.Cosmology,
	allBaryons *physics.AllBaryons,
	logger logging.Logger,
) ([]*halo.MergerTree, error) {
	if err := validation.ValidateSimulationParameters(simParams); err != nil {
		return nil, errs.InvalidArgument("builder.Build").Cause(err).Msg("%v", err).Err()
	}
	if err := validation.ValidateExecutionParameters(execParams); err != nil {
		return nil, errs.InvalidArgument("builder.Build").Cause(err).Msg("%v", err).Err()
	}
	if err := validation.ValidateGasCoolingParameters(gasCoolingParams); err != nil {
		return nil, errs.InvalidArgument("builder.Build").Cause(err).Msg("%v", err).Err()
	}

	pool, err := parallel.NewWorkerPool(execParams.ThreadCount)
	if err != nil {
		return nil, errs.InvalidArgument("builder.Build").Cause(err).Msg("%v", err).Err()
	}
	defer pool.Close()
	pool.WithPanicHandler(func(recovered any) {
		logger.Stage("builder").Error("worker panic recovered", logging.Any("panic", recovered))
		b.Registry.RecordWorkerPanic()
	})

	minSnapshot := halo.Snapshot(simParams.MinSnapshot)
	maxSnapshot := halo.Snapshot(simParams.MaxSnapshot)

	trees, err := seedTrees(halos, execParams.OutputSnapshots)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	linkStart := time.Now()
	if err := linkHalos(halos, execParams.SkipMissingDescendants, execParams.WarnOnMissingDescendants, b.Registry, logger.Stage("linker")); err != nil {
		return nil, err
	}
	b.Registry.LinkerDuration.Observe(time.Since(linkStart).Seconds())
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := verifySelfContainment(pool, trees); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if execParams.EnsureMassGrowth {
		if err := enforceMassGrowth(pool, trees, minSnapshot, maxSnapshot, b.Registry); err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	centralStart := time.Now()
	if err := defineCentralSubhalos(pool, trees, minSnapshot, maxSnapshot, b.Registry, logger.Stage("central")); err != nil {
		return nil, err
	}
	b.Registry.CentralDefinerDuration.Observe(time.Since(centralStart).Seconds())
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if allBaryons == nil {
		allBaryons = physics.NewAllBaryons(minSnapshot, maxSnapshot)
	}
	if err := computeAccretion(pool, trees, minSnapshot, maxSnapshot, cosmology, allBaryons, b.Registry); err != nil {
		return nil, err
	}

	return trees, nil
}

func resultLabel(err error) string {
	switch {
	case errors.Is(err, errs.ErrInvalidData):
		return string(errs.KindInvalidData)
	case errors.Is(err, errs.ErrInvalidArgument):
		return string(errs.KindInvalidArgument)
	case errors.Is(err, errs.ErrSubhaloNotFound):
		return string(errs.KindSubhaloNotFound)
	default:
		return "invalid_data"
	}
}
