package output

import (
	"encoding/json"
	"io"

	"github.com/CodMac/go-treesitter-fht-analyzer/model"
	"github.com/CodMac/go-treesitter-fht-analyzer/rule"
)

type JSONLWriter struct {
	encoder *json.Encoder
}

func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{
		encoder: json.NewEncoder(w),
	}
}

func (w *JSONLWriter) Write(v interface{}) error {
	return w.encoder.Encode(v)
}

// DiagnosticRecord 是诊断的 JSONL 形式。
type DiagnosticRecord struct {
	RuleID   string         `json:"RuleID"`
	Category string         `json:"Category"`
	Severity string         `json:"Severity"`
	Message  string         `json:"Message"`
	Args     []string       `json:"Args,omitempty"`
	Location model.Location `json:"Location"`
}

// FaultRecord 是规则故障的 JSONL 形式。
type FaultRecord struct {
	RuleID   string         `json:"RuleID"`
	Location model.Location `json:"Location"`
	Error    string         `json:"Error"`
}

// NewDiagnosticRecord 将诊断展开为扁平记录。
func NewDiagnosticRecord(d model.Diagnostic) DiagnosticRecord {
	rec := DiagnosticRecord{
		RuleID:   d.RuleID(),
		Severity: d.Severity().String(),
		Message:  d.Message(),
		Args:     d.Args,
		Location: d.Location,
	}
	if d.Descriptor != nil {
		rec.Category = d.Descriptor.Category
	}
	return rec
}

// ExportDiagnostics 每行写入一条诊断，并返回写入数量。
func ExportDiagnostics(w io.Writer, diags []model.Diagnostic) (int, error) {
	writer := NewJSONLWriter(w)
	count := 0
	for _, d := range diags {
		if err := writer.Write(NewDiagnosticRecord(d)); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// ExportFaults 每行写入一条规则故障。
func ExportFaults(w io.Writer, faults []rule.Fault) (int, error) {
	writer := NewJSONLWriter(w)
	count := 0
	for _, f := range faults {
		rec := FaultRecord{RuleID: f.RuleID, Location: f.Location}
		if f.Err != nil {
			rec.Error = f.Err.Error()
		}
		if err := writer.Write(rec); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
