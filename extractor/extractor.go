package extractor

import (
	"fmt"
	"sync"

	"github.com/CodMac/go-treesitter-fht-analyzer/core"
	"github.com/CodMac/go-treesitter-fht-analyzer/model"
)

// Extractor 将已解析的文件转换为规则观察的语法节点。
type Extractor interface {
	// Extract 按源码顺序返回所请求类别的节点，kinds 为 nil 时返回全部类别。
	Extract(fc *core.FileContext, kinds KindSet) ([]model.Node, error)
}

// KindSet 表示一组节点类别。
type KindSet map[model.NodeKind]bool

// NewKindSet 由 kinds 构建集合。
func NewKindSet(kinds ...model.NodeKind) KindSet {
	s := make(KindSet, len(kinds))
	for _, k := range kinds {
		s[k] = true
	}
	return s
}

// Wants 判断 k 是否被选中，nil 集合选中全部。
func (s KindSet) Wants(k model.NodeKind) bool {
	return s == nil || s[k]
}

var (
	mu           sync.RWMutex
	extractorMap = make(map[model.Language]Extractor)
)

// RegisterExtractor 注册某种语言的提取器。
func RegisterExtractor(lang model.Language, ext Extractor) {
	mu.Lock()
	defer mu.Unlock()

	extractorMap[lang] = ext
}

// GetExtractor 返回为 lang 注册的提取器。
func GetExtractor(lang model.Language) (Extractor, error) {
	mu.RLock()
	defer mu.RUnlock()

	ext, ok := extractorMap[lang]
	if !ok {
		return nil, fmt.Errorf("no extractor registered for language: %s", lang)
	}
	return ext, nil
}
