package main

import (
	"context"
	"time"

	"github.com/dd0wney/panacus-go/pkg/config"
	"github.com/dd0wney/panacus-go/pkg/growth"
	"github.com/dd0wney/panacus-go/pkg/hist"
	"github.com/dd0wney/panacus-go/pkg/sink"
)

// persistHist upserts a coverage histogram as a single-row curve, so
// --persist-dsn gives every subcommand the same queryable shape.
func persistHist(pg *sink.PGSink, invocationID, subcommand string, h *hist.Hist) error {
	values := make([]float64, len(h.Coverage))
	for i, c := range h.Coverage {
		values[i] = float64(c)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return pg.Upsert(ctx, sink.Run{
		InvocationID: invocationID,
		Subcommand:   subcommand,
		CountType:    h.CountType.String(),
		Values:       [][]float64{values},
		CreatedAt:    time.Now(),
	})
}

func persistCurve(pg *sink.PGSink, invocationID, subcommand string, opts config.Options, curve *growth.Curve) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return pg.Upsert(ctx, sink.Run{
		InvocationID: invocationID,
		Subcommand:   subcommand,
		CountType:    string(opts.Count),
		Coverage:     opts.Coverage,
		Quorum:       opts.Quorum,
		Values:       curve.Values,
		CreatedAt:    time.Now(),
	})
}

func persistOrdered(pg *sink.PGSink, invocationID string, opts config.Options, oc *growth.OrderedCurve) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return pg.Upsert(ctx, sink.Run{
		InvocationID: invocationID,
		Subcommand:   string(config.CmdOrderedHistGrowth),
		CountType:    string(opts.Count),
		Coverage:     opts.Coverage,
		Quorum:       opts.Quorum,
		Values:       oc.Values,
		CreatedAt:    time.Now(),
	})
}
