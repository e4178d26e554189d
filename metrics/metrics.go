// Package metrics 为分析运行提供 prometheus 计数器。
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RuleInvocations 按规则 id 统计规则调用次数。
	RuleInvocations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fht_rule_invocations_total",
		Help: "Number of rule callbacks invoked, by rule id",
	}, []string{"rule"})

	// RuleFaults 统计失败或 panic 的规则调用。
	RuleFaults = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fht_rule_faults_total",
		Help: "Number of rule callbacks that faulted, by rule id",
	}, []string{"rule"})

	// Diagnostics 按规则 id 统计报告的诊断。
	Diagnostics = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fht_diagnostics_total",
		Help: "Number of diagnostics reported, by rule id",
	}, []string{"rule"})

	// FilesProcessed 按语言和结果（ok、skipped）统计源文件。
	FilesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fht_files_processed_total",
		Help: "Number of source files processed, by language and status",
	}, []string{"language", "status"})
)

// FilesProcessed 的状态标签。
const (
	StatusOK      = "ok"
	StatusSkipped = "skipped"
)

// WriteTextfile 以文本暴露格式写出默认注册表。
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
