package export

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/gorewood/xmlifyme/internal/record"
)

func TestPlanExport(t *testing.T) {
	records := []record.Record{
		{Name: "a/b", Content: "hello"},
		{Name: "a_b", Content: "日本"},
		{Name: "c", Content: ""},
		{Name: "a/b", Content: "x"},
	}

	plan := PlanExport(records, ".xml")

	if len(plan.Files) != 4 {
		t.Fatalf("len(Files) = %d, want 4", len(plan.Files))
	}
	if plan.Files[1] != (PlannedFile{Name: "a_b", Filename: "a_b.xml", Chars: 2, Bytes: 6}) {
		t.Errorf("Files[1] = %+v", plan.Files[1])
	}
	if plan.TotalChars != 8 || plan.TotalBytes != 12 {
		t.Errorf("totals = %d/%d, want 8/12", plan.TotalChars, plan.TotalBytes)
	}
	if !reflect.DeepEqual(plan.Collisions, []string{"a_b.xml"}) {
		t.Errorf("Collisions = %v, want [a_b.xml]", plan.Collisions)
	}
}

func TestPlanExport_MatchesExport(t *testing.T) {
	records := sampleRecords()
	plan := PlanExport(records, ".xml")

	dir := t.TempDir()
	result, err := Export(records, dir, FormatXML, ".xml")
	if err != nil {
		t.Fatal(err)
	}
	if plan.TotalChars != result.Stats.Chars() || plan.TotalBytes != result.Stats.Bytes() {
		t.Errorf("plan totals %d/%d differ from export %s", plan.TotalChars, plan.TotalBytes, result.Stats)
	}
	for _, f := range plan.Files {
		if _, err := os.Stat(filepath.Join(dir, f.Filename)); err != nil {
			t.Errorf("planned file %s was not written: %v", f.Filename, err)
		}
	}
}

func TestPlanExport_Empty(t *testing.T) {
	plan := PlanExport(nil, ".xml")
	if plan.Files == nil || len(plan.Files) != 0 {
		t.Errorf("Files = %#v, want empty non-nil slice", plan.Files)
	}
	if plan.Collisions != nil {
		t.Errorf("Collisions = %v, want nil", plan.Collisions)
	}
}
