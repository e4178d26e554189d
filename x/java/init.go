package java

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"

	"github.com/CodMac/go-treesitter-fht-analyzer/collector"
	"github.com/CodMac/go-treesitter-fht-analyzer/core"
	"github.com/CodMac/go-treesitter-fht-analyzer/extractor"
	"github.com/CodMac/go-treesitter-fht-analyzer/model"
	"github.com/CodMac/go-treesitter-fht-analyzer/noisefilter"
)

func init() {
	model.RegisterLanguage(model.LangJava, sitter.NewLanguage(tree_sitter_java.Language()), ".java")
	collector.RegisterCollector(model.LangJava, NewJavaCollector())
	extractor.RegisterExtractor(model.LangJava, NewJavaExtractor())
	noisefilter.RegisterNoiseFilter(model.LangJava, NewJavaNoiseFilter())
	core.RegisterSymbolResolver(model.LangJava, NewJavaSymbolResolver())
}
