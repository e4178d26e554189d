package csharp

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_csharp "github.com/tree-sitter/tree-sitter-c-sharp/bindings/go"

	"github.com/CodMac/go-treesitter-fht-analyzer/collector"
	"github.com/CodMac/go-treesitter-fht-analyzer/core"
	"github.com/CodMac/go-treesitter-fht-analyzer/extractor"
	"github.com/CodMac/go-treesitter-fht-analyzer/model"
	"github.com/CodMac/go-treesitter-fht-analyzer/noisefilter"
)

func init() {
	model.RegisterLanguage(model.LangCSharp, sitter.NewLanguage(tree_sitter_csharp.Language()), ".cs")
	collector.RegisterCollector(model.LangCSharp, NewCSharpCollector())
	extractor.RegisterExtractor(model.LangCSharp, NewCSharpExtractor())
	noisefilter.RegisterNoiseFilter(model.LangCSharp, NewCSharpNoiseFilter())
	core.RegisterSymbolResolver(model.LangCSharp, NewCSharpSymbolResolver())
}
