package metrics

import (
	"os"

	"github.com/prometheus/common/expfmt"
)

// DumpToFile renders every gathered metric in Prometheus text exposition
// format and writes it to path, truncating any existing content. Called
// once at process exit (SPEC_FULL §3: "the registry is dumped once...
// rather than served over HTTP").
func (r *Registry) DumpToFile(path string) error {
	mfs, err := r.registry.Gather()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := expfmt.NewEncoder(f, expfmt.FmtText)
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
