package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/panacus-go/pkg/abacus"
	"github.com/dd0wney/panacus-go/pkg/config"
	"github.com/dd0wney/panacus-go/pkg/gfa"
	"github.com/dd0wney/panacus-go/pkg/growth"
	"github.com/dd0wney/panacus-go/pkg/hist"
	"github.com/dd0wney/panacus-go/pkg/logging"
	"github.com/dd0wney/panacus-go/pkg/metrics"
	"github.com/dd0wney/panacus-go/pkg/parallel"
	"github.com/dd0wney/panacus-go/pkg/resolve"
	"github.com/dd0wney/panacus-go/pkg/shard"
	"github.com/dd0wney/panacus-go/pkg/sink"
	"github.com/dd0wney/panacus-go/pkg/source"
)

// run dispatches the shared flag-parsing/logging/metrics/persistence
// scaffolding and then one subcommand-specific pipeline (spec §4, §6).
func run(cmd config.Subcommand, rawArgs []string) error {
	parsed, err := parseArgs(cmd, rawArgs[2:])
	if err != nil {
		return err
	}
	opts := parsed.opts
	opts.InvocationText = strings.Join(rawArgs, " ")
	if opts.Input == "" {
		opts.Input = parsed.positionalPath
	}

	invocationID := uuid.New().String()
	log := logging.NewDefaultLogger().With(
		logging.String("invocation_id", invocationID),
		logging.String("subcommand", string(cmd)),
		logging.String("count_type", string(opts.Count)),
	)

	reg := metrics.DefaultRegistry()
	if opts.MetricsFile != "" {
		defer func() {
			if err := reg.DumpToFile(opts.MetricsFile); err != nil {
				log.Warn("failed to dump metrics", logging.Error(err))
			}
		}()
	}

	var pgSink *sink.PGSink
	if opts.PersistDSN != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		pgSink, err = sink.NewPGSink(ctx, opts.PersistDSN)
		if err != nil {
			return err
		}
		defer pgSink.Close()
	}

	w, closeOut, err := openOutput(opts.Output, opts.Compress)
	if err != nil {
		return err
	}
	defer closeOut()
	if err := writeInvocationComment(w, opts.InvocationText); err != nil {
		return err
	}

	switch cmd {
	case config.CmdHist:
		return runHist(opts, w, log, reg, pgSink, invocationID)
	case config.CmdHistGrowth:
		return runHistGrowth(opts, w, log, reg, pgSink, invocationID)
	case config.CmdGrowth:
		return runGrowth(opts, w, log, reg, pgSink, invocationID)
	case config.CmdOrderedHistGrowth:
		return runOrderedHistGrowth(opts, w, log, reg, pgSink, invocationID)
	case config.CmdTable:
		return runTable(opts, w, log, reg)
	default:
		return fmt.Errorf("panacus: unhandled subcommand %s", cmd)
	}
}

// buildAbacus runs the two-pass indexer/resolver/builder pipeline (spec
// §4.1-§4.3) against opts.Input (the positional GFA path), honoring
// --count/--subset/--exclude/--groupby.
func buildAbacus(opts config.Options, byGroup bool, log logging.Logger, reg *metrics.Registry) (*gfa.GraphIndex, *resolve.Resolution, *abacus.Result, error) {
	if opts.Input == "" {
		return nil, nil, nil, fmt.Errorf("panacus: a graph path is required")
	}
	src, err := source.Open(opts.Input)
	if err != nil {
		return nil, nil, nil, err
	}
	if c, ok := src.(io.Closer); ok {
		defer c.Close()
	}

	withEdges := opts.Count == config.CountEdge
	r1, err := src.Open()
	if err != nil {
		return nil, nil, nil, err
	}
	indexTimer := logging.StartPhase(log, logging.PhaseIndex)
	gi, err := gfa.Index(r1, withEdges, log)
	r1.Close()
	if err != nil {
		return nil, nil, nil, err
	}
	indexTimer.End()
	reg.ItemsIndexed.Set(float64(gi.NodeCount()))

	subsetR, err := openOptionalFile(opts.Subset)
	if err != nil {
		return nil, nil, nil, err
	}
	defer closeIfSet(subsetR)
	excludeR, err := openOptionalFile(opts.Exclude)
	if err != nil {
		return nil, nil, nil, err
	}
	defer closeIfSet(excludeR)
	groupbyR, err := openOptionalFile(opts.Groupby)
	if err != nil {
		return nil, nil, nil, err
	}
	defer closeIfSet(groupbyR)

	resolveTimer := logging.StartPhase(log, logging.PhaseResolve)
	res, err := resolve.Resolve(gi.PathSegments, resolve.Options{
		Subset:      subsetR,
		Exclude:     excludeR,
		Groupby:     groupbyR,
		BySample:    opts.GroupbySample,
		ByHaplotype: opts.GroupbyHap,
	}, log)
	if err != nil {
		return nil, nil, nil, err
	}
	resolveTimer.End()
	reg.GroupsTotal.Set(float64(len(res.GroupLabels)))

	pool := parallel.NewWorkerPool(parallel.ResolveThreadCount(opts.Threads))
	defer pool.Close()

	r2, err := src.Open()
	if err != nil {
		return nil, nil, nil, err
	}
	defer r2.Close()

	start := time.Now()
	buildTimer := logging.StartPhase(log, logging.PhaseBuild)
	abRes, err := abacus.Build(r2, gi, res, abacus.Options{
		Count:         abacusCountOf(opts.Count),
		ByGroup:       byGroup,
		Pool:          pool,
		ShardStrategy: shard.Default,
	}, log)
	reg.BuildDurationSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, nil, nil, err
	}
	buildTimer.End()
	return gi, res, abRes, nil
}

func abacusCountOf(ct config.CountType) abacus.CountType {
	switch ct {
	case config.CountEdge:
		return abacus.CountEdge
	case config.CountBp:
		return abacus.CountBp
	default:
		return abacus.CountNode
	}
}

func runHist(opts config.Options, w io.Writer, log logging.Logger, reg *metrics.Registry, pg *sink.PGSink, invocationID string) error {
	_, res, abRes, err := buildAbacus(opts, false, log, reg)
	if err != nil {
		return err
	}
	histTimer := logging.StartPhase(log, logging.PhaseHistogram)
	h := hist.FromAbacus(abRes.ByTotal, len(res.GroupLabels))
	histTimer.End()
	if err := h.ToTSV(w); err != nil {
		return err
	}
	if pg != nil {
		return persistHist(pg, invocationID, "hist", h)
	}
	return nil
}

func runHistGrowth(opts config.Options, w io.Writer, log logging.Logger, reg *metrics.Registry, pg *sink.PGSink, invocationID string) error {
	_, res, abRes, err := buildAbacus(opts, false, log, reg)
	if err != nil {
		return err
	}
	histTimer := logging.StartPhase(log, logging.PhaseHistogram)
	h := hist.FromAbacus(abRes.ByTotal, len(res.GroupLabels))
	histTimer.End()
	if err := h.ToTSV(w); err != nil {
		return err
	}

	covT, quoT := thresholdsOf(opts)
	pool := parallel.NewWorkerPool(parallel.ResolveThreadCount(opts.Threads))
	defer pool.Close()
	growthTimer := logging.StartPhase(log, logging.PhaseGrowth)
	curve, err := growth.FromHistogram(h, covT, quoT, pool)
	if err != nil {
		return err
	}
	growthTimer.End()
	if err := curve.ToTSV(w, nil); err != nil {
		return err
	}
	if pg != nil {
		return persistCurve(pg, invocationID, "histgrowth", opts, curve)
	}
	return nil
}

func runGrowth(opts config.Options, w io.Writer, log logging.Logger, reg *metrics.Registry, pg *sink.PGSink, invocationID string) error {
	if opts.Input == "" {
		return fmt.Errorf("panacus: growth requires --input <histogram.tsv> (spec: growth never re-parses a graph)")
	}
	f, err := os.Open(opts.Input)
	if err != nil {
		return err
	}
	defer f.Close()
	h, err := hist.FromTSV(f)
	if err != nil {
		return err
	}

	covT, quoT := thresholdsOf(opts)
	pool := parallel.NewWorkerPool(parallel.ResolveThreadCount(opts.Threads))
	defer pool.Close()
	growthTimer := logging.StartPhase(log, logging.PhaseGrowth)
	curve, err := growth.FromHistogram(h, covT, quoT, pool)
	if err != nil {
		return err
	}
	growthTimer.End()
	if err := curve.ToTSV(w, nil); err != nil {
		return err
	}
	if pg != nil {
		return persistCurve(pg, invocationID, "growth", opts, curve)
	}
	return nil
}

func runOrderedHistGrowth(opts config.Options, w io.Writer, log logging.Logger, reg *metrics.Registry, pg *sink.PGSink, invocationID string) error {
	gi, res, abRes, err := buildAbacus(opts, true, log, reg)
	if err != nil {
		return err
	}

	orderR, err := openOptionalFile(opts.Order)
	if err != nil {
		return err
	}
	defer closeIfSet(orderR)
	order, err := growth.ResolveOrder(orderR, res.GroupLabels, gi.PathSegments, res.GroupOf)
	if err != nil {
		return err
	}

	covT, quoT := thresholdsOf(opts)
	oc := growth.FromByGroupOrdered(abRes.ByGroup, order, covT, quoT)
	if err := oc.ToTSV(w, res.GroupLabels); err != nil {
		return err
	}
	if pg != nil {
		return persistOrdered(pg, invocationID, opts, oc)
	}
	return nil
}

func runTable(opts config.Options, w io.Writer, log logging.Logger, reg *metrics.Registry) error {
	_, _, abRes, err := buildAbacus(opts, true, log, reg)
	if err != nil {
		return err
	}
	return abRes.ByGroup.TableToTSV(w, opts.Total)
}

// thresholdsOf broadcasts --coverage/--quorum into equal-length Threshold
// pairs (spec §3 "list broadcasting").
func thresholdsOf(opts config.Options) ([]growth.Threshold, []growth.Threshold) {
	coverage, quorum := config.BroadcastThresholds(opts.Coverage, opts.Quorum)
	covT := make([]growth.Threshold, len(coverage))
	quoT := make([]growth.Threshold, len(quorum))
	for i := range coverage {
		covT[i] = growth.Absolute(coverage[i])
		quoT[i] = growth.Relative(quorum[i])
	}
	return covT, quoT
}
