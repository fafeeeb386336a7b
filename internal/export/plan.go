package export

import (
	"unicode/utf8"

	"github.com/gorewood/xmlifyme/internal/record"
)

// PlannedFile is the file one record would be written to.
type PlannedFile struct {
	Name     string `json:"name"`
	Filename string `json:"filename"`
	Chars    int    `json:"chars"`
	Bytes    int    `json:"bytes"`
}

// Plan describes what Export would write, without touching the disk.
type Plan struct {
	Files      []PlannedFile `json:"files"`
	TotalChars int           `json:"total_chars"`
	TotalBytes int           `json:"total_bytes"`
	// Collisions lists filenames derived from more than one record, in
	// first-seen order. The last such record wins on disk.
	Collisions []string `json:"collisions,omitempty"`
}

// PlanExport derives filenames and sizes for records.
func PlanExport(records []record.Record, extension string) Plan {
	plan := Plan{Files: make([]PlannedFile, 0, len(records))}
	seen := make(map[string]int, len(records))

	for _, rec := range records {
		f := PlannedFile{
			Name:     rec.Name,
			Filename: DeriveFilename(rec.Name, extension),
			Chars:    utf8.RuneCountInString(rec.Content),
			Bytes:    len(rec.Content),
		}
		plan.TotalChars += f.Chars
		plan.TotalBytes += f.Bytes
		plan.Files = append(plan.Files, f)

		seen[f.Filename]++
		if seen[f.Filename] == 2 {
			plan.Collisions = append(plan.Collisions, f.Filename)
		}
	}
	return plan
}
