package abacus

import (
	"strings"
	"testing"
)

func TestTableToTSVGroupColumns(t *testing.T) {
	by := &AbacusByGroup{
		R:      []int{0, 1, 3},
		V:      []uint16{0, 0, 1},
		Groups: []string{"g0", "g1"},
		Names:  []string{"a", "b"},
	}
	var buf strings.Builder
	if err := by.TableToTSV(&buf, false); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[0] != "item\tg0\tg1" {
		t.Errorf("header: want %q, got %q", "item\tg0\tg1", lines[0])
	}
	if lines[1] != "a\t1\t0" {
		t.Errorf("row a: want %q, got %q", "a\t1\t0", lines[1])
	}
	if lines[2] != "b\t1\t1" {
		t.Errorf("row b: want %q, got %q", "b\t1\t1", lines[2])
	}
}

func TestTableToTSVTotalColumn(t *testing.T) {
	by := &AbacusByGroup{
		R:      []int{0, 1, 3},
		V:      []uint16{0, 0, 1},
		Groups: []string{"g0", "g1"},
		Names:  []string{"a", "b"},
	}
	var buf strings.Builder
	if err := by.TableToTSV(&buf, true); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[0] != "item\ttotal" {
		t.Errorf("header: want %q, got %q", "item\ttotal", lines[0])
	}
	if lines[1] != "a\t1" {
		t.Errorf("row a: want %q, got %q", "a\t1", lines[1])
	}
	if lines[2] != "b\t2" {
		t.Errorf("row b: want %q, got %q", "b\t2", lines[2])
	}
}
