// Package golang 是 Go 语言前端。Go 没有类继承，因此只提取调用点和比较表达式；
// 收集器只记录 package 子句。
package golang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/CodMac/go-treesitter-fht-analyzer/core"
	"github.com/CodMac/go-treesitter-fht-analyzer/model"
	"github.com/CodMac/go-treesitter-fht-analyzer/parser"
)

type Collector struct{}

func NewGoCollector() *Collector {
	return &Collector{}
}

func (c *Collector) CollectDefinitions(tree *sitter.Tree, filePath string, sourceBytes *[]byte) (*core.FileContext, error) {
	fCtx := core.NewFileContext(filePath, tree, sourceBytes)
	fCtx.Language = model.LangGo

	if pkg := parser.NamedChildOfKind(fCtx.RootNode, "package_clause"); pkg != nil {
		fCtx.PackageName = parser.Content(parser.NamedChildOfKind(pkg, "package_identifier"), fCtx.Source())
	}
	return fCtx, nil
}
