// Package cmd 实现 fht-analyzer 命令行。
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// 导入各语言前端，触发其 init() 完成注册
	_ "github.com/CodMac/go-treesitter-fht-analyzer/x/csharp"
	_ "github.com/CodMac/go-treesitter-fht-analyzer/x/golang"
	_ "github.com/CodMac/go-treesitter-fht-analyzer/x/java"
)

// Version 用于 SARIF 输出和 --version。
const Version = "0.1.0"

// ErrViolations 表示 analyze 报告了 Error 级别的诊断。
var ErrViolations = errors.New("analysis reported errors")

var (
	debugMode bool
	noColor   bool
)

// NewRootCmd 构建命令树。
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fht-analyzer",
		Short:         "fht-analyzer - checks FHT coding rules in C#, Java and Go sources",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored text output")

	root.AddCommand(newAnalyzeCmd(), newRulesCmd())
	return root
}

// Execute 运行命令行，失败时以非零状态退出。
func Execute() {
	err := NewRootCmd().Execute()
	if err == nil {
		return
	}
	if !errors.Is(err, ErrViolations) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(1)
}
