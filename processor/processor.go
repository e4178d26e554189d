package processor

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/CodMac/go-treesitter-fht-analyzer/collector"
	"github.com/CodMac/go-treesitter-fht-analyzer/core"
	"github.com/CodMac/go-treesitter-fht-analyzer/extractor"
	"github.com/CodMac/go-treesitter-fht-analyzer/logging"
	"github.com/CodMac/go-treesitter-fht-analyzer/metrics"
	"github.com/CodMac/go-treesitter-fht-analyzer/model"
	"github.com/CodMac/go-treesitter-fht-analyzer/noisefilter"
	"github.com/CodMac/go-treesitter-fht-analyzer/parser"
	"github.com/CodMac/go-treesitter-fht-analyzer/rule"
	"github.com/CodMac/go-treesitter-fht-analyzer/sink"
)

var tracer = otel.Tracer("fht.processor")

// FileProcessor 分两个阶段分析同一语言的文件：先从所有文件收集类型定义并链接符号表，
// 再提取语法节点并分发给规则。
type FileProcessor struct {
	Language model.Language
	Workers  int
	Registry *rule.Registry
	Logger   *zap.SugaredLogger
}

// Result 是一次分析运行的结果。
type Result struct {
	// Diagnostics 按文件、行、列和规则 id 排序。
	Diagnostics []model.Diagnostic
	Faults      []rule.Fault
	Files       int
	// Skipped 列出无法读取或解析的文件。
	Skipped []string
}

// HasErrors 判断是否产生了 Error 级别的诊断。
func (r *Result) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity() == model.SeverityError {
			return true
		}
	}
	return false
}

func NewFileProcessor(lang model.Language, registry *rule.Registry, workers int, logger *zap.SugaredLogger) *FileProcessor {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &FileProcessor{
		Language: lang,
		Workers:  workers,
		Registry: registry,
		Logger:   logging.OrNop(logger),
	}
}

// ProcessFiles 执行两个阶段。无法读取或解析的文件会记录日志并跳过。
// 取消 ctx 后不再调度新的任务，此时返回 ctx.Err()。
func (fp *FileProcessor) ProcessFiles(ctx context.Context, filePaths []string) (*Result, error) {
	ctx, span := tracer.Start(ctx, "processor.ProcessFiles",
		trace.WithAttributes(
			attribute.String("language", string(fp.Language)),
			attribute.Int("files", len(filePaths)),
		),
	)
	defer span.End()

	res := &Result{Files: len(filePaths)}
	if len(filePaths) == 0 {
		return res, nil
	}

	coll, err := collector.GetCollector(fp.Language)
	if err != nil {
		return nil, err
	}
	ext, err := extractor.GetExtractor(fp.Language)
	if err != nil {
		return nil, err
	}
	resolver, err := core.GetSymbolResolver(fp.Language)
	if err != nil {
		return nil, err
	}

	gc := core.NewGlobalContext(resolver, noisefilter.GetNoiseFilter(fp.Language))
	defer func() {
		for _, fc := range gc.FileContexts {
			fc.Close()
		}
	}()

	// --- 阶段 1：收集定义 ---
	fp.Logger.Debugf("phase 1: collecting definitions from %d files", len(filePaths))
	skipped, err := fp.collectPhase(ctx, filePaths, coll, gc)
	res.Skipped = skipped
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "collection cancelled")
		return res, err
	}

	span.AddEvent("linking_symbols")
	gc.Link()

	// --- 阶段 2：提取节点并运行规则 ---
	fp.Logger.Debugf("phase 2: running rules on %d files", len(gc.FileContexts))
	s := sink.New()
	faults, err := fp.rulePhase(ctx, gc, ext, s)
	res.Faults = faults
	res.Diagnostics = s.Sorted()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "analysis cancelled")
		return res, err
	}

	span.SetAttributes(
		attribute.Int("diagnostics", len(res.Diagnostics)),
		attribute.Int("faults", len(res.Faults)),
		attribute.Int("skipped", len(res.Skipped)),
	)
	return res, nil
}

func (fp *FileProcessor) collectPhase(ctx context.Context, filePaths []string, coll collector.Collector, gc *core.GlobalContext) ([]string, error) {
	ctx, span := tracer.Start(ctx, "processor.collect")
	defer span.End()

	var mu sync.Mutex
	var skipped []string

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fp.Workers)
	for _, path := range filePaths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fc, err := fp.collectFile(path, coll)
			if err != nil {
				fp.Logger.Warnw("skipping file", "file", path, "error", err)
				metrics.FilesProcessed.WithLabelValues(string(fp.Language), metrics.StatusSkipped).Inc()
				mu.Lock()
				skipped = append(skipped, path)
				mu.Unlock()
				return nil
			}
			gc.RegisterFileContext(fc)
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	sort.Strings(skipped)
	return skipped, err
}

func (fp *FileProcessor) collectFile(path string, coll collector.Collector) (*core.FileContext, error) {
	p, err := parser.NewParser(fp.Language)
	if err != nil {
		return nil, err
	}
	defer p.Close()

	tree, src, err := p.ParseFile(path)
	if err != nil {
		return nil, err
	}
	fc, err := coll.CollectDefinitions(tree, path, src)
	if err != nil {
		tree.Close()
		return nil, fmt.Errorf("collect definitions in %s: %w", path, err)
	}
	return fc, nil
}

func (fp *FileProcessor) rulePhase(ctx context.Context, gc *core.GlobalContext, ext extractor.Extractor, reporter rule.Reporter) ([]rule.Fault, error) {
	ctx, span := tracer.Start(ctx, "processor.rules")
	defer span.End()

	kinds := extractor.NewKindSet(fp.Registry.Kinds()...)
	semantic := gc.SemanticModel()

	var mu sync.Mutex
	var faults []rule.Fault

	files := make([]*core.FileContext, 0, len(gc.FileContexts))
	for _, fc := range gc.FileContexts {
		files = append(files, fc)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].FilePath < files[j].FilePath })

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fp.Workers)
	for _, fc := range files {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			nodes, err := ext.Extract(fc, kinds)
			if err != nil {
				fp.Logger.Warnw("skipping file", "file", fc.FilePath, "error", err)
				metrics.FilesProcessed.WithLabelValues(string(fp.Language), metrics.StatusSkipped).Inc()
				return nil
			}
			for _, n := range nodes {
				if err := gctx.Err(); err != nil {
					return err
				}
				if f := fp.Registry.Dispatch(n, semantic, reporter); len(f) > 0 {
					mu.Lock()
					faults = append(faults, f...)
					mu.Unlock()
				}
			}
			metrics.FilesProcessed.WithLabelValues(string(fp.Language), metrics.StatusOK).Inc()
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	return faults, err
}

// DiscoverFiles 列出 root 下属于 lang 的源文件，跳过指定目录。root 是文件时直接返回。
func DiscoverFiles(root string, lang model.Language, excludeDirs []string) ([]string, error) {
	exts := model.Extensions(lang)
	if len(exts) == 0 {
		return nil, fmt.Errorf("%w: %s", model.ErrLanguageNotRegistered, lang)
	}
	excluded := make(map[string]bool, len(excludeDirs))
	for _, d := range excludeDirs {
		excluded[d] = true
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && excluded[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if HasExtension(path, exts) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover files under %s: %w", root, err)
	}
	sort.Strings(files)
	return files, nil
}

// HasExtension 判断 path 是否以 exts 之一结尾（忽略大小写）。
func HasExtension(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}
