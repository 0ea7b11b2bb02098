package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dd0wney/panacus-go/pkg/config"
)

// cliOptions is config.Options plus the raw, not-yet-parsed threshold list
// strings and the positional graph/input path.
type cliOptions struct {
	opts           config.Options
	coverageRaw    string
	quorumRaw      string
	positionalPath string
}

// findConfigFile pre-scans args for --config/-config, since a YAML defaults
// layer must already be in place before the flag.FlagSet's own defaults are
// built (spec.md §6 "one config layer, not a cascading chain").
func findConfigFile(args []string) string {
	for i, a := range args {
		if a == "--config" || a == "-config" {
			if i+1 < len(args) {
				return args[i+1]
			}
		}
		if strings.HasPrefix(a, "--config=") {
			return strings.TrimPrefix(a, "--config=")
		}
		if strings.HasPrefix(a, "-config=") {
			return strings.TrimPrefix(a, "-config=")
		}
	}
	return ""
}

// parseArgs builds the shared flag surface (spec §6) for cmd, layering:
// DefaultOptions -> --config YAML -> command-line flags.
func parseArgs(cmd config.Subcommand, args []string) (cliOptions, error) {
	base := config.DefaultOptions()
	if cf := findConfigFile(args); cf != "" {
		data, err := os.ReadFile(cf)
		if err != nil {
			return cliOptions{}, fmt.Errorf("panacus: reading --config %s: %w", cf, err)
		}
		base, err = config.LoadDefaultsFile(data)
		if err != nil {
			return cliOptions{}, err
		}
	}

	fs := flag.NewFlagSet(string(cmd), flag.ContinueOnError)
	c := cliOptions{opts: base}

	count := string(base.Count)
	fs.StringVar(&count, "c", count, "count type: node|edge|bp")
	fs.StringVar(&count, "count", count, "count type: node|edge|bp")

	fs.StringVar(&c.opts.Subset, "s", base.Subset, "subset file")
	fs.StringVar(&c.opts.Subset, "subset", base.Subset, "subset file")

	fs.StringVar(&c.opts.Exclude, "e", base.Exclude, "exclude file")
	fs.StringVar(&c.opts.Exclude, "exclude", base.Exclude, "exclude file")

	fs.StringVar(&c.opts.Groupby, "g", base.Groupby, "groupby file")
	fs.StringVar(&c.opts.Groupby, "groupby", base.Groupby, "groupby file")

	fs.BoolVar(&c.opts.GroupbyHap, "H", base.GroupbyHap, "group by sample#haplotype")
	fs.BoolVar(&c.opts.GroupbyHap, "groupby-haplotype", base.GroupbyHap, "group by sample#haplotype")

	fs.BoolVar(&c.opts.GroupbySample, "S", base.GroupbySample, "group by sample")
	fs.BoolVar(&c.opts.GroupbySample, "groupby-sample", base.GroupbySample, "group by sample")

	fs.StringVar(&c.quorumRaw, "q", "", "comma-separated quorum thresholds in [0,1]")
	fs.StringVar(&c.quorumRaw, "quorum", "", "comma-separated quorum thresholds in [0,1]")

	fs.StringVar(&c.coverageRaw, "l", "", "comma-separated absolute coverage thresholds")
	fs.StringVar(&c.coverageRaw, "coverage", "", "comma-separated absolute coverage thresholds")

	fs.IntVar(&c.opts.Threads, "t", base.Threads, "worker count (0 = all cores)")
	fs.IntVar(&c.opts.Threads, "threads", base.Threads, "worker count (0 = all cores)")

	fs.BoolVar(&c.opts.Total, "total", base.Total, "table: single total column")
	fs.StringVar(&c.opts.Order, "order", base.Order, "ordered-histgrowth: explicit group order file")
	fs.StringVar(&c.opts.Input, "input", base.Input, "growth: histogram TSV to read")
	fs.StringVar(&c.opts.Output, "output", base.Output, "output file (default stdout)")
	fs.BoolVar(&c.opts.Compress, "compress", base.Compress, "snappy-compress the output file")
	fs.StringVar(&c.opts.MetricsFile, "metrics-file", base.MetricsFile, "dump Prometheus text metrics here at exit")
	fs.StringVar(&c.opts.PersistDSN, "persist-dsn", base.PersistDSN, "additionally upsert the run into Postgres")
	fs.String("config", "", "YAML file of default flag values (already consumed)")

	if err := fs.Parse(args); err != nil {
		return cliOptions{}, err
	}

	c.opts.Count = config.CountType(count)
	if rest := fs.Args(); len(rest) > 0 {
		c.positionalPath = rest[0]
	}

	coverage, err := config.ParseIntList(c.coverageRaw)
	if err != nil {
		return cliOptions{}, err
	}
	quorum, err := config.ParseFloatList(c.quorumRaw)
	if err != nil {
		return cliOptions{}, err
	}
	c.opts.Coverage, c.opts.Quorum = coverage, quorum

	if err := c.opts.Validate(cmd); err != nil {
		return cliOptions{}, err
	}
	return c, nil
}
