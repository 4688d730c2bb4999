package generate

import (
	"strings"
	"testing"

	"github.com/example/scriptsplit/internal/core/script"
	"github.com/example/scriptsplit/internal/models"
)

func TestDefaults(t *testing.T) {
	m := script.NewMicroscopy()
	v := Defaults(m)

	wantFiles := []string{script.DataFileND2, script.DataFileTIFF, script.DataFileNPY}
	if len(v.Files) != len(wantFiles) {
		t.Fatalf("Files = %v, want %v", v.Files, wantFiles)
	}
	for i, f := range wantFiles {
		if v.Files[i] != f {
			t.Errorf("Files[%d] = %q, want %q", i, v.Files[i], f)
		}
	}
	if v.LoadPrefix != "" {
		t.Errorf("LoadPrefix = %q, want empty in the pristine script", v.LoadPrefix)
	}
	if v.ComparisonPrefix != "sub-11-YAaLR_ophys" {
		t.Errorf("ComparisonPrefix = %q", v.ComparisonPrefix)
	}
	if v.OverviewName != "overview" {
		t.Errorf("OverviewName = %q", v.OverviewName)
	}
	if v.ImportModule != DefaultImportModule || v.ImportItems != DefaultImportItems {
		t.Errorf("import template = %s/%s, want placeholders", v.ImportModule, v.ImportItems)
	}
}

func TestGeneratePristine(t *testing.T) {
	m := script.NewMicroscopy()
	text := Generate(m, Input{})

	if !strings.HasPrefix(text, "import numpy as np") {
		t.Error("header imports must open the generated text")
	}
	if !strings.Contains(text, "from module_name import function_name") {
		t.Error("import template line missing")
	}
	if !strings.Contains(text, "def load_file") {
		t.Error("unassigned functions must stay in main")
	}
	if !strings.Contains(text, `files = ['sub-11-YAaLR_ophys.nd2', 'sub-12-BQnHJ_ophys.tiff', 'sub-14-KRsPU_ophys.npy']`) {
		t.Error("trailer files list missing or rewritten")
	}
}

func TestGenerateStripsAssignedUnits(t *testing.T) {
	m := script.NewMicroscopy()
	u, ok := m.Unit(models.UnitFunction, "load_file")
	if !ok {
		t.Fatal("load_file not found")
	}

	text := Generate(m, Input{AssignedUnits: []models.ScriptUnit{u}})

	if strings.Contains(text, "def load_file") {
		t.Error("assigned function still present in main")
	}
	if !strings.Contains(text, "def normalize_image") {
		t.Error("unassigned functions must survive")
	}
	if !strings.Contains(text, "load_file(f\"{filename}\")") {
		t.Error("the trailer call site must stay - only the definition moves")
	}
}

func TestGenerateCustomImports(t *testing.T) {
	m := script.NewMicroscopy()
	text := Generate(m, Input{CustomImports: []string{"from src import load_file"}})

	idx := strings.Index(text, "from src import load_file")
	tmpl := strings.Index(text, "from module_name import function_name")
	if idx < 0 {
		t.Fatal("custom import line missing")
	}
	if tmpl >= 0 && idx > tmpl {
		t.Error("custom imports must come before the template line")
	}
}

func TestGenerateCarriesSlotEditsAcrossPasses(t *testing.T) {
	m := script.NewMicroscopy()

	first := Generate(m, Input{})
	edited := strings.Replace(first,
		`load_file(f"{filename}")`,
		`load_file(f"data/{filename}")`, 1)
	edited = strings.Replace(edited,
		`output_path=f"overview.png")`,
		`output_path=f"results/overview.png")`, 1)

	u, _ := m.Unit(models.UnitFunction, "load_file")
	second := Generate(m, Input{
		AssignedUnits: []models.ScriptUnit{u},
		Previous:      edited,
	})

	if !strings.Contains(second, `load_file(f"data/{filename}")`) {
		t.Error("load prefix edit lost across regeneration")
	}
	if !strings.Contains(second, `output_path=f"results/overview.png")`) {
		t.Error("overview path edit lost across regeneration")
	}
	if strings.Contains(second, "def load_file") {
		t.Error("assignment not applied alongside carried edits")
	}
}

func TestGenerateIgnoresHeaderImportsAsTemplate(t *testing.T) {
	m := script.NewMicroscopy()

	first := Generate(m, Input{})
	second := Generate(m, Input{Previous: first})

	if !strings.Contains(second, "from module_name import function_name") {
		t.Error("template line must survive a no-op regeneration")
	}
	if strings.Count(second, "from nd2reader import ND2Reader") != 1 {
		t.Error("header import duplicated or dropped")
	}
}

func TestGenerateDeletedSlotFallsBackToDefault(t *testing.T) {
	m := script.NewMicroscopy()

	first := Generate(m, Input{})
	var kept []string
	for _, line := range strings.Split(first, "\n") {
		if strings.Contains(line, "files = [") {
			continue
		}
		kept = append(kept, line)
	}

	second := Generate(m, Input{Previous: strings.Join(kept, "\n")})

	if !strings.Contains(second, `files = ['sub-11-YAaLR_ophys.nd2'`) {
		t.Error("deleted files list must fall back to the pristine default")
	}
}
