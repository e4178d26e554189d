package parser

import (
	"fmt"
	"os"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/CodMac/go-treesitter-fht-analyzer/model"
)

// TreeSitterParser 解析某一种语言的源文件。它不是并发安全的，每个 worker 持有自己的解析器。
type TreeSitterParser struct {
	Language model.Language
	tsParser *sitter.Parser
}

// NewParser 为已注册的语言创建解析器。
func NewParser(lang model.Language) (*TreeSitterParser, error) {
	tsLang, err := model.GetLanguage(lang)
	if err != nil {
		return nil, err
	}

	tsParser := sitter.NewParser()
	if err := tsParser.SetLanguage(tsLang); err != nil {
		tsParser.Close()
		return nil, fmt.Errorf("set language %s: %w", lang, err)
	}

	return &TreeSitterParser{
		Language: lang,
		tsParser: tsParser,
	}, nil
}

// ParseFile 读取并解析 filePath，返回的语法树由调用方负责关闭。
func (p *TreeSitterParser) ParseFile(filePath string) (*sitter.Tree, *[]byte, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	tree, err := p.ParseBytes(filePath, content)
	if err != nil {
		return nil, nil, err
	}
	return tree, &content, nil
}

// ParseBytes 解析已在内存中的内容。
func (p *TreeSitterParser) ParseBytes(filePath string, content []byte) (*sitter.Tree, error) {
	tree := p.tsParser.Parse(content, nil)
	if tree == nil {
		return nil, fmt.Errorf("tree-sitter failed to parse file %s", filePath)
	}
	return tree, nil
}

// Close 释放 Tree-sitter 解析器。
func (p *TreeSitterParser) Close() {
	if p.tsParser != nil {
		p.tsParser.Close()
		p.tsParser = nil
	}
}
