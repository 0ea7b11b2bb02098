package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dd0wney/panacus-go/pkg/errs"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// CountType selects what the abacus builder counts (spec §3).
type CountType string

const (
	CountNode CountType = "node"
	CountEdge CountType = "edge"
	CountBp   CountType = "bp"
)

// Subcommand identifies one of the five CLI entry points (spec §6).
type Subcommand string

const (
	CmdHistGrowth        Subcommand = "histgrowth"
	CmdHist              Subcommand = "hist"
	CmdGrowth            Subcommand = "growth"
	CmdOrderedHistGrowth Subcommand = "ordered-histgrowth"
	CmdTable             Subcommand = "table"
)

var subcommandAliases = map[string]Subcommand{
	"histgrowth": CmdHistGrowth, "hg": CmdHistGrowth,
	"hist": CmdHist, "h": CmdHist,
	"growth": CmdGrowth, "g": CmdGrowth,
	"ordered-histgrowth": CmdOrderedHistGrowth, "o": CmdOrderedHistGrowth,
	"table": CmdTable,
}

// ResolveSubcommand maps a CLI token (including its short alias) to a
// Subcommand, or reports false if unknown.
func ResolveSubcommand(token string) (Subcommand, bool) {
	c, ok := subcommandAliases[strings.ToLower(token)]
	return c, ok
}

// Options holds the parsed and validated shared CLI surface (spec §6).
// Fields tagged `validate:` get per-field shape checks via
// go-playground/validator; cross-field rules (mutually exclusive grouping
// flags, threshold-list broadcasting) are checked separately with
// ConfigValidator since they can't be expressed as struct tags.
type Options struct {
	Input          string    `yaml:"input" validate:"omitempty"`
	Count          CountType `yaml:"count" validate:"omitempty,oneof=node edge bp"`
	Subset         string    `yaml:"subset"`
	Exclude        string    `yaml:"exclude"`
	Groupby        string    `yaml:"groupby"`
	GroupbyHap     bool      `yaml:"groupby_haplotype"`
	GroupbySample  bool      `yaml:"groupby_sample"`
	Quorum         []float64 `yaml:"quorum"`
	Coverage       []int     `yaml:"coverage"`
	Threads        int       `yaml:"threads" validate:"omitempty,min=0"`
	Total          bool      `yaml:"total"`
	Order          string    `yaml:"order"`
	MetricsFile    string    `yaml:"metrics_file"`
	PersistDSN     string    `yaml:"persist_dsn"`
	Compress       bool      `yaml:"compress"`
	Output         string    `yaml:"output"`
	InvocationText string    `yaml:"-"`
}

// DefaultOptions returns the zero-value defaults the spec requires before
// flags and config-file values are layered on (threads=1, count=node).
func DefaultOptions() Options {
	return Options{
		Count:   CountNode,
		Threads: 1,
	}
}

var structValidate = validator.New()

// LoadDefaultsFile reads a YAML defaults file (--config) the way the
// teacher's services load their startup configuration. Values present in
// the file seed Options; a subsequent flag parse overrides them — one
// config layer, not a cascading chain.
func LoadDefaultsFile(data []byte) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("config: parsing defaults file: %w", err)
	}
	return opts, nil
}

// Validate checks Options against the spec's cross-field rules (§3, §6, §7)
// and returns an InvalidInput-classed error listing every violation found,
// not just the first (config.ConfigValidator accumulates).
func (o *Options) Validate(cmd Subcommand) error {
	cv := NewConfigValidator("Options")

	if err := structValidate.Struct(o); err != nil {
		cv.errors = append(cv.errors, formatStructError(err))
	}

	// At most one of {explicit file, by-sample, by-haplotype} (spec §3).
	active := 0
	if o.Groupby != "" {
		active++
	}
	if o.GroupbyHap {
		active++
	}
	if o.GroupbySample {
		active++
	}
	if active > 1 {
		cv.errors = append(cv.errors, fmt.Errorf(
			"Options.groupby: at most one of --groupby, --groupby-haplotype, --groupby-sample may be set"))
	}

	for _, q := range o.Quorum {
		if q < 0 || q > 1 {
			cv.errors = append(cv.errors, fmt.Errorf("Options.quorum: value %v outside [0,1]", q))
		}
	}
	for _, c := range o.Coverage {
		if c < 0 {
			cv.errors = append(cv.errors, fmt.Errorf("Options.coverage: value %d must be non-negative", c))
		}
	}
	if len(o.Quorum) > 0 && len(o.Coverage) > 0 {
		lq, lc := len(o.Quorum), len(o.Coverage)
		if lq != lc && lq != 1 && lc != 1 {
			cv.errors = append(cv.errors, fmt.Errorf(
				"Options: quorum list (len %d) and coverage list (len %d) must have equal length, or one of length 1", lq, lc))
		}
	}

	if (cmd == CmdGrowth) && o.Input == "" {
		cv.errors = append(cv.errors, fmt.Errorf("Options.input: %s requires a histogram TSV input", cmd))
	}

	if !cv.HasErrors() {
		return nil
	}
	msgs := make([]string, len(cv.errors))
	for i, e := range cv.errors {
		msgs[i] = e.Error()
	}
	return errs.Invalid("config.Options.Validate", "%s", strings.Join(msgs, "; "))
}

// BroadcastThresholds expands Coverage/Quorum lists per the broadcast rule
// (a list of length 1 pairs with every entry of the other list).
func BroadcastThresholds(coverage []int, quorum []float64) ([]int, []float64) {
	if len(coverage) == 0 {
		coverage = []int{0}
	}
	if len(quorum) == 0 {
		quorum = []float64{0}
	}
	n := len(coverage)
	if len(quorum) > n {
		n = len(quorum)
	}
	c := make([]int, n)
	q := make([]float64, n)
	for i := 0; i < n; i++ {
		if len(coverage) == 1 {
			c[i] = coverage[0]
		} else {
			c[i] = coverage[i]
		}
		if len(quorum) == 1 {
			q[i] = quorum[0]
		} else {
			q[i] = quorum[i]
		}
	}
	return c, q
}

// ParseIntList parses a comma-separated list of integers
// (spec §6: "Threshold lists are comma-separated"). It does not check the
// sign; Options.Validate rejects negative coverage values.
func ParseIntList(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("config: invalid coverage value %q: %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// ParseFloatList parses a comma-separated list of floats. It does not check
// the range; Options.Validate rejects quorum values outside [0,1].
func ParseFloatList(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("config: invalid quorum value %q: %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func formatStructError(err error) error {
	if ve, ok := err.(validator.ValidationErrors); ok && len(ve) > 0 {
		e := ve[0]
		return fmt.Errorf("Options.%s: failed %q constraint", e.Field(), e.Tag())
	}
	return err
}
