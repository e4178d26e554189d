// Package watcher 在源文件变化时重新运行分析。
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/CodMac/go-treesitter-fht-analyzer/logging"
	"github.com/CodMac/go-treesitter-fht-analyzer/processor"
)

// DefaultDebounce 将一次保存或检出产生的事件合并为一次运行。
const DefaultDebounce = 300 * time.Millisecond

// Watcher 监视目录树中指定扩展名的源文件变化。子目录递归监视，排除指定目录。
type Watcher struct {
	watcher     *fsnotify.Watcher
	extensions  []string
	excludeDirs map[string]bool
	debounce    time.Duration
	logger      *zap.SugaredLogger
}

// New 开始监视 root，debounce 为 0 时使用 DefaultDebounce。
func New(root string, extensions, excludeDirs []string, debounce time.Duration, logger *zap.SugaredLogger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		watcher:     fw,
		extensions:  extensions,
		excludeDirs: make(map[string]bool, len(excludeDirs)),
		debounce:    debounce,
		logger:      logging.OrNop(logger),
	}
	for _, d := range excludeDirs {
		w.excludeDirs[d] = true
	}

	if err := w.addRecursive(root); err != nil {
		fw.Close()
		return nil, err
	}
	return w, nil
}

// Run 对每一批相关事件调用一次 onChange，直到 ctx 结束。
// onChange 返回的错误只记录日志，不会停止监视。
func (w *Watcher) Run(ctx context.Context, onChange func(context.Context) error) error {
	defer w.watcher.Close()

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debugw("source changed", "file", event.Name, "op", event.Op.String())
			timer.Reset(w.debounce)
		case <-timer.C:
			if err := onChange(ctx); err != nil {
				w.logger.Errorw("analysis failed", "error", err)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warnw("watcher error", "error", err)
		}
	}
}

// relevant 判断事件是否涉及源文件；新建的目录会加入监视列表。
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if w.excludeDirs[filepath.Base(filepath.Dir(event.Name))] {
		return false
	}
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addRecursive(event.Name); err != nil {
				w.logger.Warnw("failed to watch directory", "dir", event.Name, "error", err)
			}
			return false
		}
	}
	if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
		return false
	}
	return processor.HasExtension(event.Name, w.extensions)
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != root && w.excludeDirs[d.Name()] {
			return filepath.SkipDir
		}
		return w.watcher.Add(p)
	})
}
