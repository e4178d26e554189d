// Package sink 汇总规则报告的诊断。
package sink

import (
	"sort"
	"sync"

	"github.com/CodMac/go-treesitter-fht-analyzer/model"
)

// Sink 是只追加、并发安全的诊断存储。
type Sink struct {
	mu    sync.Mutex
	items []model.Diagnostic
}

// New 创建一个空的 Sink。
func New() *Sink {
	return &Sink{}
}

// Report 追加一条诊断，可并发调用。
func (s *Sink) Report(d model.Diagnostic) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, d)
}

// Len 返回已接收的诊断数量。
func (s *Sink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.items)
}

// Diagnostics 按到达顺序返回已接收诊断的副本。
func (s *Sink) Diagnostics() []model.Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Diagnostic, len(s.items))
	for i, d := range s.items {
		d.Args = append([]string(nil), d.Args...)
		out[i] = d
	}
	return out
}

// Sorted 返回按文件、位置和规则 id 排序的副本。
func (s *Sink) Sorted() []model.Diagnostic {
	out := s.Diagnostics()
	SortDiagnostics(out)
	return out
}

// HasErrors 判断是否存在 error 级别的诊断。
func (s *Sink) HasErrors() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Severity() >= model.SeverityError {
			return true
		}
	}
	return false
}

// SortDiagnostics 原地对诊断做确定性排序。
func SortDiagnostics(ds []model.Diagnostic) {
	sort.SliceStable(ds, func(i, j int) bool {
		a, b := ds[i].Location, ds[j].Location
		if a.FilePath != b.FilePath {
			return a.FilePath < b.FilePath
		}
		if a.StartLine != b.StartLine {
			return a.StartLine < b.StartLine
		}
		if a.StartColumn != b.StartColumn {
			return a.StartColumn < b.StartColumn
		}
		return ds[i].RuleID() < ds[j].RuleID()
	})
}
