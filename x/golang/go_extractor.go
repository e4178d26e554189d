package golang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/CodMac/go-treesitter-fht-analyzer/core"
	"github.com/CodMac/go-treesitter-fht-analyzer/extractor"
	"github.com/CodMac/go-treesitter-fht-analyzer/model"
	"github.com/CodMac/go-treesitter-fht-analyzer/parser"
)

var exprKinds = extractor.ExprKinds{
	"interpreted_string_literal": model.ExprStringLiteral,
	"raw_string_literal":         model.ExprStringLiteral,
	"identifier":                 model.ExprIdentifier,
	"int_literal":                model.ExprLiteral,
	"float_literal":              model.ExprLiteral,
	"imaginary_literal":          model.ExprLiteral,
	"rune_literal":               model.ExprLiteral,
	"true":                       model.ExprLiteral,
	"false":                      model.ExprLiteral,
	"nil":                        model.ExprLiteral,
}

type Extractor struct{}

func NewGoExtractor() *Extractor {
	return &Extractor{}
}

func (e *Extractor) Extract(fc *core.FileContext, kinds extractor.KindSet) ([]model.Node, error) {
	src := fc.Source()
	var nodes []model.Node

	parser.Walk(fc.RootNode, func(n *sitter.Node) bool {
		switch n.Kind() {
		case "call_expression":
			if kinds.Wants(model.KindInvocation) {
				nodes = append(nodes, e.invocation(n, src, fc.FilePath))
			}
		case "binary_expression":
			if cmp := e.comparison(n, src, fc.FilePath); cmp != nil && kinds.Wants(cmp.Kind()) {
				nodes = append(nodes, cmp)
			}
		}
		return true
	})

	extractor.SortNodes(nodes)
	return nodes, nil
}

func (e *Extractor) invocation(n *sitter.Node, src []byte, filePath string) *model.Invocation {
	inv := &model.Invocation{
		Target: extractor.CompactText(parser.Content(n.ChildByFieldName("function"), src)),
		Loc:    parser.Location(n, filePath),
		Source: parser.Content(n, src),
	}
	for _, arg := range parser.NamedChildren(n.ChildByFieldName("arguments")) {
		if arg.Kind() == "comment" {
			continue
		}
		inv.Arguments = append(inv.Arguments, exprKinds.Expression(arg, src, filePath))
	}
	return inv
}

func (e *Extractor) comparison(n *sitter.Node, src []byte, filePath string) *model.Comparison {
	equal, ok := extractor.ComparisonOperator(n, src)
	if !ok {
		return nil
	}
	left, right := n.ChildByFieldName("left"), n.ChildByFieldName("right")
	if left == nil || right == nil {
		return nil
	}
	return &model.Comparison{
		Equal:  equal,
		Left:   exprKinds.Expression(left, src, filePath),
		Right:  exprKinds.Expression(right, src, filePath),
		Loc:    parser.Location(n, filePath),
		Source: parser.Content(n, src),
	}
}
