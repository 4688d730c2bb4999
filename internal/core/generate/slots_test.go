package generate

import (
	"reflect"
	"testing"
)

func TestExtract(t *testing.T) {
	previous := `import numpy as np
from loading import load_file
files = ['a.nd2', "b.tiff"]
for filename in files:
    raw = load_file(f"data/{filename}")
plot_comparison(raw, processed,
                output_path=f"results/sub-11-YAaLR_ophys_comparison.png")
plot_overview(processed,
              output_path=f"results/overview.png")`

	v, f := Extract(previous, []string{"import numpy as np"})

	if !f.Files || !reflect.DeepEqual(v.Files, []string{"a.nd2", "b.tiff"}) {
		t.Errorf("Files = %v (found=%v), want [a.nd2 b.tiff]", v.Files, f.Files)
	}
	if !f.LoadPrefix || v.LoadPrefix != "data/" {
		t.Errorf("LoadPrefix = %q (found=%v), want data/", v.LoadPrefix, f.LoadPrefix)
	}
	if !f.ComparisonPrefix || v.ComparisonPrefix != "results/sub-11-YAaLR_ophys" {
		t.Errorf("ComparisonPrefix = %q (found=%v)", v.ComparisonPrefix, f.ComparisonPrefix)
	}
	if !f.OverviewName || v.OverviewName != "results/overview" {
		t.Errorf("OverviewName = %q (found=%v)", v.OverviewName, f.OverviewName)
	}
	if !f.Import || v.ImportModule != "loading" || v.ImportItems != "load_file" {
		t.Errorf("Import = %s/%s (found=%v)", v.ImportModule, v.ImportItems, f.Import)
	}
}

func TestExtractSkipsKnownImportLines(t *testing.T) {
	previous := `from nd2reader import ND2Reader
from src import helpers`

	v, f := Extract(previous, []string{"from nd2reader import ND2Reader"})

	if !f.Import {
		t.Fatal("import slot not found")
	}
	if v.ImportModule != "src" || v.ImportItems != "helpers" {
		t.Errorf("import = %s/%s, want src/helpers", v.ImportModule, v.ImportItems)
	}
}

func TestExtractMissingSlots(t *testing.T) {
	_, f := Extract("print('hello')", nil)

	if f.Files || f.LoadPrefix || f.ComparisonPrefix || f.OverviewName || f.Import {
		t.Errorf("Found = %+v, want all false", f)
	}
}

func TestExtractOverviewNeverMatchesComparisonLine(t *testing.T) {
	previous := `output_path=f"results/sub-11-YAaLR_ophys_comparison.png")`

	v, f := Extract(previous, nil)
	if f.OverviewName {
		t.Errorf("overview matched the comparison line: %q", v.OverviewName)
	}
	if !f.ComparisonPrefix {
		t.Error("comparison slot not found")
	}
}

func TestParseFileElements(t *testing.T) {
	tests := []struct {
		name  string
		inner string
		want  []string
	}{
		{"single quotes", `'a.nd2', 'b.tiff'`, []string{"a.nd2", "b.tiff"}},
		{"double quotes", `"a.nd2"`, []string{"a.nd2"}},
		{"mixed quotes", `'a.nd2', "b.tiff"`, []string{"a.nd2", "b.tiff"}},
		{"unquoted junk ignored", `'a.nd2', bare`, []string{"a.nd2"}},
		{"empty literal", ``, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseFileElements(tt.inner); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFileElements(%q) = %v, want %v", tt.inner, got, tt.want)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	base := Values{
		Files:        []string{"a.nd2"},
		LoadPrefix:   "",
		ImportModule: DefaultImportModule,
		ImportItems:  DefaultImportItems,
	}
	extracted := Values{
		Files:        []string{"b.tiff"},
		LoadPrefix:   "data/",
		ImportModule: "src",
		ImportItems:  "helpers",
	}

	merged := Merge(base, extracted, Found{Files: true, Import: true})

	if !reflect.DeepEqual(merged.Files, []string{"b.tiff"}) {
		t.Errorf("Files = %v, want the extracted list", merged.Files)
	}
	if merged.LoadPrefix != "" {
		t.Errorf("LoadPrefix = %q, want the base kept when not found", merged.LoadPrefix)
	}
	if merged.ImportModule != "src" || merged.ImportItems != "helpers" {
		t.Errorf("import = %s/%s, want src/helpers", merged.ImportModule, merged.ImportItems)
	}
}

func TestApplyEdit(t *testing.T) {
	v := Values{}

	v, err := ApplyEdit(v, SlotFilesList, "a.nd2, data/b.tiff")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(v.Files, []string{"a.nd2", "data/b.tiff"}) {
		t.Errorf("Files = %v", v.Files)
	}

	v, err = ApplyEdit(v, SlotLoadPrefix, "data/")
	if err != nil {
		t.Fatal(err)
	}
	if v.LoadPrefix != "data/" {
		t.Errorf("LoadPrefix = %q", v.LoadPrefix)
	}

	if _, err := ApplyEdit(v, SlotKind("bogus"), "x"); err == nil {
		t.Error("expected an error for an unknown slot")
	}
}

func TestRenderRoundTrips(t *testing.T) {
	v := Values{
		Files:            []string{"a.nd2", "b.tiff"},
		LoadPrefix:       "data/",
		ComparisonPrefix: "results/sub-11",
		OverviewName:     "results/overview",
		ImportModule:     "src",
		ImportItems:      "load_file",
	}

	got, f := Extract(Render(v), nil)

	if !f.Files || !f.LoadPrefix || !f.ComparisonPrefix || !f.OverviewName || !f.Import {
		t.Fatalf("Found = %+v, want every slot located", f)
	}
	if !reflect.DeepEqual(got, v) {
		t.Errorf("round trip = %+v, want %+v", got, v)
	}
}
