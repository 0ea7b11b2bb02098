package main

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFF00"))

	fatalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF0000"))
)

// usageBanner renders the top-level --help text. Styling is applied once to
// static text; there is no bubbletea event loop (spec.md's Non-goal on
// interactive use).
func usageBanner() string {
	return titleStyle.Render("panacus-go") + " - pangenome count statistics over GFA1 graphs\n\n" +
		"Usage:\n" +
		"  panacus <subcommand> [flags] <graph.gfa>\n\n" +
		sectionStyle.Render("Subcommands:") + "\n" +
		"  histgrowth, hg            histogram + growth curve in one pass\n" +
		"  hist, h                   coverage histogram only\n" +
		"  growth, g                 growth curve from a persisted histogram\n" +
		"  ordered-histgrowth, o     growth curve over an explicit group order\n" +
		"  table                     item x group presence/absence table\n\n" +
		sectionStyle.Render("Common flags:") + "\n" +
		"  -c, --count TYPE          node|edge|bp (default node)\n" +
		"  -s, --subset FILE         restrict to path/BED-listed intervals\n" +
		"  -e, --exclude FILE        drop path/BED-listed intervals\n" +
		"  -g, --groupby FILE        explicit path to group-label assignment\n" +
		"  -H, --groupby-haplotype   group by sample#haplotype\n" +
		"  -S, --groupby-sample      group by sample\n" +
		"  -q, --quorum LIST         comma-separated quorum thresholds in [0,1]\n" +
		"  -l, --coverage LIST       comma-separated absolute coverage thresholds\n" +
		"  -t, --threads N           worker count (0 = all cores, default 1)\n" +
		"      --total               table: single total column instead of per-group\n" +
		"      --order FILE          ordered-histgrowth: explicit group order\n" +
		"      --input FILE          growth: histogram TSV to read instead of a graph\n" +
		"      --output FILE         write result here instead of stdout\n" +
		"      --compress            snappy-compress the output file\n" +
		"      --metrics-file FILE   dump Prometheus text metrics here at exit\n" +
		"      --persist-dsn DSN     additionally upsert the run into Postgres\n" +
		"      --config FILE         YAML file of default flag values\n\n" +
		"Use \"panacus help\" to see this message again.\n"
}
