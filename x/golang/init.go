package golang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_go "github.com/tree-sitter/tree-sitter-go/bindings/go"

	"github.com/CodMac/go-treesitter-fht-analyzer/collector"
	"github.com/CodMac/go-treesitter-fht-analyzer/core"
	"github.com/CodMac/go-treesitter-fht-analyzer/extractor"
	"github.com/CodMac/go-treesitter-fht-analyzer/model"
)

func init() {
	model.RegisterLanguage(model.LangGo, sitter.NewLanguage(tree_sitter_go.Language()), ".go")
	collector.RegisterCollector(model.LangGo, NewGoCollector())
	extractor.RegisterExtractor(model.LangGo, NewGoExtractor())
	core.RegisterSymbolResolver(model.LangGo, core.DottedResolver{})
}
