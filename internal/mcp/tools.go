package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/xmlifyme/internal/config"
	"github.com/gorewood/xmlifyme/internal/export"
	"github.com/gorewood/xmlifyme/internal/record"
)

// --- Inspect tool ---

// InspectInput is the input for the inspect_records tool.
type InspectInput struct {
	InputPath        string `json:"input_path,omitempty"        jsonschema:"input JSON file (default: configured input)"`
	Extension        string `json:"extension,omitempty"         jsonschema:"extension used to show derived filenames (default: configured extension)"`
	StripBackslashes *bool  `json:"strip_backslashes,omitempty" jsonschema:"remove literal backslashes before parsing"`
}

// InspectOutput is the output for the inspect_records tool.
type InspectOutput struct {
	SourcePath string               `json:"source_path"          jsonschema:"file the records were read from"`
	Count      int                  `json:"count"                jsonschema:"number of records"`
	TotalChars int                  `json:"total_chars"          jsonschema:"sum of content character counts"`
	TotalBytes int                  `json:"total_bytes"          jsonschema:"sum of content byte lengths"`
	Records    []export.PlannedFile `json:"records"              jsonschema:"records in input order with the filename each would be written to"`
	Collisions []string             `json:"collisions,omitempty" jsonschema:"filenames derived from more than one record; the last one wins"`
}

func handleInspect(cfg config.Config) mcp.ToolHandlerFor[InspectInput, InspectOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input InspectInput) (*mcp.CallToolResult, InspectOutput, error) {
		store, err := record.Load(
			orDefault(input.InputPath, cfg.InputPath),
			record.WithStripBackslashesIf(boolOr(input.StripBackslashes, cfg.StripBackslashes)),
		)
		if err != nil {
			return nil, InspectOutput{}, err
		}

		plan := export.PlanExport(store.Records, orDefault(input.Extension, cfg.Extension))
		return nil, InspectOutput{
			SourcePath: store.SourcePath,
			Count:      store.Len(),
			TotalChars: plan.TotalChars,
			TotalBytes: plan.TotalBytes,
			Records:    plan.Files,
			Collisions: plan.Collisions,
		}, nil
	}
}

// --- Export tool ---

// ExportInput is the input for the export_records tool.
type ExportInput struct {
	Format           string `json:"format"                      jsonschema:"output format: xml or plain"`
	InputPath        string `json:"input_path,omitempty"        jsonschema:"input JSON file (default: configured input)"`
	OutputDir        string `json:"output_dir,omitempty"        jsonschema:"output directory, created if missing (default: configured output)"`
	Extension        string `json:"extension,omitempty"         jsonschema:"extension appended to each record name (default: .xml)"`
	StripBackslashes *bool  `json:"strip_backslashes,omitempty" jsonschema:"remove literal backslashes before parsing"`
	FailFast         *bool  `json:"fail_fast,omitempty"         jsonschema:"stop at the first record that fails"`
}

// FailureInfo describes a record that could not be exported.
type FailureInfo struct {
	Name     string `json:"name"     jsonschema:"record name"`
	Filename string `json:"filename" jsonschema:"output filename"`
	Error    string `json:"error"    jsonschema:"failure reason"`
}

// ExportOutput is the output for the export_records tool.
type ExportOutput struct {
	Format         string        `json:"format"              jsonschema:"format written"`
	CharCount      int           `json:"char_count"          jsonschema:"total characters of exported content"`
	ArrayLength    int           `json:"array_length"        jsonschema:"total bytes of exported content"`
	Exported       int           `json:"exported"            jsonschema:"records written"`
	Failed         int           `json:"failed"              jsonschema:"records that failed"`
	OutputDir      string        `json:"output_dir"          jsonschema:"directory of the last written file"`
	OutputFilename string        `json:"output_filename"     jsonschema:"name of the last written file"`
	Failures       []FailureInfo `json:"failures,omitempty"  jsonschema:"per-record failures"`
}

func handleExport(cfg config.Config) mcp.ToolHandlerFor[ExportInput, ExportOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ExportInput) (*mcp.CallToolResult, ExportOutput, error) {
		if input.Format == "" {
			return nil, ExportOutput{}, errors.New("format is required (xml or plain)")
		}
		format, err := export.ParseFormat(input.Format)
		if err != nil {
			return nil, ExportOutput{}, err
		}

		store, err := record.Load(
			orDefault(input.InputPath, cfg.InputPath),
			record.WithStripBackslashesIf(boolOr(input.StripBackslashes, cfg.StripBackslashes)),
		)
		if err != nil {
			return nil, ExportOutput{}, err
		}

		result, err := export.Export(
			store.Records,
			orDefault(input.OutputDir, cfg.OutputDir),
			format,
			orDefault(input.Extension, cfg.Extension),
			export.WithFailFastIf(boolOr(input.FailFast, cfg.FailFast)),
		)
		if result == nil {
			return nil, ExportOutput{}, err
		}
		// A fail-fast error is also listed in Failures; report it there.
		return nil, toExportOutput(format, result), nil
	}
}

// toExportOutput flattens an export result for the tool response.
func toExportOutput(format export.Format, result *export.Result) ExportOutput {
	s := result.Stats
	out := ExportOutput{
		Format:         format.String(),
		CharCount:      s.Chars(),
		ArrayLength:    s.Bytes(),
		Exported:       s.Exported(),
		Failed:         s.Failed(),
		OutputDir:      s.OutputDir(),
		OutputFilename: s.OutputFilename(),
	}
	for _, f := range result.Failures {
		out.Failures = append(out.Failures, FailureInfo{Name: f.Name, Filename: f.Filename, Error: f.Err.Error()})
	}
	return out
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
