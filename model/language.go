package model

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Language 标识一种受支持的源码语言。
type Language string

const (
	LangCSharp Language = "csharp"
	LangJava   Language = "java"
	LangGo     Language = "go"
)

// ErrLanguageNotRegistered 表示该语言没有任何前端完成注册。
var ErrLanguageNotRegistered = errors.New("language not registered")

var (
	langMu  sync.RWMutex
	langMap = make(map[Language]*sitter.Language)
	extMap  = make(map[Language][]string)
)

// RegisterLanguage 注册 Tree-sitter 语法及其对应的文件扩展名。
func RegisterLanguage(lang Language, tsLang *sitter.Language, exts ...string) {
	langMu.Lock()
	defer langMu.Unlock()

	langMap[lang] = tsLang
	extMap[lang] = append([]string(nil), exts...)
}

// GetLanguage 返回已注册的 Tree-sitter 语法。
func GetLanguage(lang Language) (*sitter.Language, error) {
	langMu.RLock()
	defer langMu.RUnlock()

	tsLang, ok := langMap[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLanguageNotRegistered, lang)
	}

	return tsLang, nil
}

// Extensions 返回已注册语言的源文件扩展名。
func Extensions(lang Language) []string {
	langMu.RLock()
	defer langMu.RUnlock()

	return append([]string(nil), extMap[lang]...)
}

// Languages 按字母序列出所有已注册的语言。
func Languages() []Language {
	langMu.RLock()
	defer langMu.RUnlock()

	out := make([]Language, 0, len(langMap))
	for l := range langMap {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
