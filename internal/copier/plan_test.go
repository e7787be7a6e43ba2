package copier

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/sleuth-io/fmcat/internal/config"
)

func TestFindSources(t *testing.T) {
	dir := t.TempDir()
	writeSources(t, dir, 5, 1, 2, 4, 9)
	// Another layer's files are ignored
	writeSources(t, dir, 6, 3)

	found := FindSources(dir, config.Layer{SourceIndex: 5, Name: "maxp2", Count: 4})

	want := []int{1, 2, 4}
	if len(found) != len(want) {
		t.Fatalf("FindSources() = %v, want indices %v", found, want)
	}
	for i, src := range found {
		if src.Index != want[i] {
			t.Errorf("found[%d].Index = %d, want %d", i, src.Index, want[i])
		}
		if filepath.Dir(src.Path) != dir {
			t.Errorf("found[%d].Path = %s, want under %s", i, src.Path, dir)
		}
	}
}

func TestPlan(t *testing.T) {
	found := []Source{{Index: 1, Path: "a"}, {Index: 3, Path: "b"}, {Index: 4, Path: "c"}}
	layer := config.Layer{SourceIndex: 3, Name: "conv2", Count: 4}

	tests := []struct {
		name string
		mode config.IndexMode
		want []int
	}{
		{"compact", config.IndexModeCompact, []int{0, 1, 2}},
		{"preserve", config.IndexModePreserve, []int{0, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			placements := Plan(found, "ship", "ship", layer, tt.mode)
			for i, p := range placements {
				if p.DestIdx != tt.want[i] {
					t.Errorf("placement %d DestIdx = %d, want %d", i, p.DestIdx, tt.want[i])
				}
			}
			last := placements[len(placements)-1]
			base := "ship_conv2_" + strconv.Itoa(tt.want[2])
			wantDest := filepath.Join("ship", "conv2", base+".imageset", base+".png")
			if last.Dest != wantDest {
				t.Errorf("Dest = %s, want %s", last.Dest, wantDest)
			}
		})
	}
}

