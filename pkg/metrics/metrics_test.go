package metrics

import (
	"os"
	"strings"
	"testing"

	dto "github.com/prometheus/client_model/go"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}
	if r.LinesScannedTotal == nil {
		t.Error("LinesScannedTotal not initialized")
	}
	if r.ItemsIndexed == nil {
		t.Error("ItemsIndexed not initialized")
	}
	if r.BuildDurationSeconds == nil {
		t.Error("BuildDurationSeconds not initialized")
	}
	if r.GroupsTotal == nil {
		t.Error("GroupsTotal not initialized")
	}
	if r.registry == nil {
		t.Error("Prometheus registry not initialized")
	}
}

func TestDefaultRegistry(t *testing.T) {
	r1 := DefaultRegistry()
	r2 := DefaultRegistry()
	if r1 != r2 {
		t.Error("DefaultRegistry() should return the same instance")
	}
}

func TestLinesScannedIncrements(t *testing.T) {
	r := NewRegistry()
	r.LinesScannedTotal.Add(3)
	r.LinesScannedTotal.Inc()

	var metric dto.Metric
	if err := r.LinesScannedTotal.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 4 {
		t.Errorf("Counter value = %v, want 4", metric.Counter.GetValue())
	}
}

func TestDumpToFileProducesTextFormat(t *testing.T) {
	r := NewRegistry()
	r.GroupsTotal.Set(7)

	f, err := os.CreateTemp(t.TempDir(), "metrics-*.prom")
	if err != nil {
		t.Fatal(err)
	}
	path := f.Name()
	f.Close()

	if err := r.DumpToFile(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "panacus_groups_total") {
		t.Errorf("dumped metrics missing panacus_groups_total:\n%s", data)
	}
}
