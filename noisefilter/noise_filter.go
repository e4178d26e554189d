package noisefilter

import (
	"strings"
	"sync"

	"github.com/CodMac/go-treesitter-fht-analyzer/model"
)

// NoiseFilter 识别属于平台而非被分析项目的名称，噪音名称不会在符号表中解析。
type NoiseFilter interface {
	IsNoise(qualifiedName string) bool
}

var (
	mu             sync.RWMutex
	noiseFilterMap = make(map[model.Language]NoiseFilter)
)

// RegisterNoiseFilter 注册某种语言的过滤器。
func RegisterNoiseFilter(lang model.Language, noiseFilter NoiseFilter) {
	mu.Lock()
	defer mu.Unlock()

	noiseFilterMap[lang] = noiseFilter
}

// GetNoiseFilter 返回 lang 的过滤器，未注册时返回不过滤任何名称的默认实现。
func GetNoiseFilter(lang model.Language) NoiseFilter {
	mu.RLock()
	defer mu.RUnlock()

	noiseFilter, ok := noiseFilterMap[lang]
	if !ok {
		return &DefaultNoiseFilter{}
	}

	return noiseFilter
}

// DefaultNoiseFilter 不把任何名称视为噪音。
type DefaultNoiseFilter struct{}

func (d *DefaultNoiseFilter) IsNoise(qn string) bool { return false }

// PrefixFilter 将以任一前缀开头或与某个精确名称相同的名称视为噪音。
type PrefixFilter struct {
	Prefixes []string
	Exact    []string
}

func (f *PrefixFilter) IsNoise(qn string) bool {
	qn = strings.TrimPrefix(qn, "global::")
	for _, p := range f.Prefixes {
		if strings.HasPrefix(qn, p) {
			return true
		}
	}
	for _, e := range f.Exact {
		if qn == e {
			return true
		}
	}
	return false
}
