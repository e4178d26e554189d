package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CodMac/go-treesitter-fht-analyzer/config"
	"github.com/CodMac/go-treesitter-fht-analyzer/logging"
	"github.com/CodMac/go-treesitter-fht-analyzer/metrics"
	"github.com/CodMac/go-treesitter-fht-analyzer/model"
	"github.com/CodMac/go-treesitter-fht-analyzer/output"
	"github.com/CodMac/go-treesitter-fht-analyzer/processor"
	"github.com/CodMac/go-treesitter-fht-analyzer/rule"
	"github.com/CodMac/go-treesitter-fht-analyzer/watcher"
)

// 输出格式
const (
	FormatText  = "text"
	FormatJSONL = "jsonl"
	FormatSARIF = "sarif"
)

type analyzeOptions struct {
	configPath  string
	lang        string
	workers     int
	format      string
	outputPath  string
	metricsFile string
	watch       bool
}

func newAnalyzeCmd() *cobra.Command {
	opts := &analyzeOptions{}
	c := &cobra.Command{
		Use:   "analyze [path]",
		Short: "Analyzes a source tree and reports rule violations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(debugMode)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			cfg, err := loadConfig(cmd, opts, args[0])
			if err != nil {
				return err
			}
			return runAnalyze(cmd.Context(), cmd.OutOrStdout(), args[0], cfg, opts, logger)
		},
	}

	f := c.Flags()
	f.StringVar(&opts.configPath, "config", "", "configuration file (default <path>/"+config.FileName+")")
	f.StringVarP(&opts.lang, "lang", "l", "", "source language: csharp, java or go")
	f.IntVarP(&opts.workers, "workers", "w", 0, "number of concurrent workers (default number of CPUs)")
	f.StringVarP(&opts.format, "format", "f", FormatText, "output format: text, jsonl or sarif")
	f.StringVarP(&opts.outputPath, "output", "o", "", "write the report to a file instead of stdout")
	f.StringVar(&opts.metricsFile, "metrics-file", "", "write prometheus metrics to this file after each run")
	f.BoolVar(&opts.watch, "watch", false, "re-run the analysis when source files change")
	return c
}

// loadConfig 读取配置文件并应用命令行参数覆盖。
func loadConfig(cmd *cobra.Command, opts *analyzeOptions, root string) (*config.Config, error) {
	path := opts.configPath
	if path == "" {
		path = config.Path(root)
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("lang") {
		cfg.Language = strings.ToLower(opts.lang)
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = opts.workers
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch opts.format {
	case FormatText, FormatJSONL, FormatSARIF:
	default:
		return nil, fmt.Errorf("unknown output format %q", opts.format)
	}
	return cfg, nil
}

func runAnalyze(ctx context.Context, stdout io.Writer, root string, cfg *config.Config, opts *analyzeOptions, logger *zap.SugaredLogger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	settings, err := cfg.RuleSettings()
	if err != nil {
		return err
	}
	registry, err := rule.BuildRegistry(settings, rule.WithLogger(logger))
	if err != nil {
		return err
	}
	lang := model.Language(cfg.Language)
	proc := processor.NewFileProcessor(lang, registry, cfg.Workers, logger)

	once := func(ctx context.Context) (*processor.Result, error) {
		files, err := processor.DiscoverFiles(root, lang, cfg.ExcludeDirs)
		if err != nil {
			return nil, err
		}
		logger.Infow("starting analysis", "root", root, "language", lang, "files", len(files))

		res, err := proc.ProcessFiles(ctx, files)
		if err != nil {
			return nil, err
		}
		if err := writeReport(stdout, opts, registry.Descriptors(), res); err != nil {
			return nil, err
		}
		if opts.metricsFile != "" {
			if err := metrics.WriteTextfile(opts.metricsFile); err != nil {
				logger.Warnw("failed to write metrics", "file", opts.metricsFile, "error", err)
			}
		}
		return res, nil
	}

	if !opts.watch {
		res, err := once(ctx)
		if err != nil {
			return err
		}
		if res.HasErrors() {
			return ErrViolations
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := once(ctx); err != nil {
		return err
	}
	w, err := watcher.New(root, model.Extensions(lang), cfg.ExcludeDirs, 0, logger)
	if err != nil {
		return err
	}
	logger.Infow("watching for changes", "root", root)
	err = w.Run(ctx, func(ctx context.Context) error {
		_, err := once(ctx)
		return err
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func writeReport(stdout io.Writer, opts *analyzeOptions, descriptors []*model.RuleDescriptor, res *processor.Result) error {
	w := stdout
	if opts.outputPath != "" {
		f, err := os.Create(opts.outputPath)
		if err != nil {
			return fmt.Errorf("create report %s: %w", opts.outputPath, err)
		}
		defer f.Close()
		w = f
	}

	switch opts.format {
	case FormatJSONL:
		if _, err := output.ExportDiagnostics(w, res.Diagnostics); err != nil {
			return err
		}
		_, err := output.ExportFaults(w, res.Faults)
		return err
	case FormatSARIF:
		tool := output.ToolInfo{Name: "fht-analyzer", Version: Version}
		return output.WriteSARIF(w, tool, descriptors, res.Diagnostics)
	default:
		return output.NewTextWriter(w, !noColor).WriteAll(res.Diagnostics, res.Files)
	}
}
