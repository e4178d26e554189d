package collector

import (
	"fmt"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/CodMac/go-treesitter-fht-analyzer/core"
	"github.com/CodMac/go-treesitter-fht-analyzer/model"
)

// Collector 收集单个文件中的类型声明。
type Collector interface {
	// CollectDefinitions 遍历语法树并返回该文件的 FileContext。
	CollectDefinitions(tree *sitter.Tree, filePath string, sourceBytes *[]byte) (*core.FileContext, error)
}

var (
	mu           sync.RWMutex
	collectorMap = make(map[model.Language]Collector)
)

// RegisterCollector 注册某种语言的收集器。
func RegisterCollector(lang model.Language, collector Collector) {
	mu.Lock()
	defer mu.Unlock()

	collectorMap[lang] = collector
}

// GetCollector 返回为 lang 注册的收集器。
func GetCollector(lang model.Language) (Collector, error) {
	mu.RLock()
	defer mu.RUnlock()

	collector, ok := collectorMap[lang]
	if !ok {
		return nil, fmt.Errorf("no collector registered for language: %s", lang)
	}

	return collector, nil
}
