package java

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/CodMac/go-treesitter-fht-analyzer/core"
	"github.com/CodMac/go-treesitter-fht-analyzer/extractor"
	"github.com/CodMac/go-treesitter-fht-analyzer/model"
	"github.com/CodMac/go-treesitter-fht-analyzer/parser"
)

var exprKinds = extractor.ExprKinds{
	kindStringLiteral:                model.ExprStringLiteral,
	"template_expression":            model.ExprInterpolatedString,
	"identifier":                     model.ExprIdentifier,
	"character_literal":              model.ExprLiteral,
	"decimal_integer_literal":        model.ExprLiteral,
	"hex_integer_literal":            model.ExprLiteral,
	"octal_integer_literal":          model.ExprLiteral,
	"binary_integer_literal":         model.ExprLiteral,
	"decimal_floating_point_literal": model.ExprLiteral,
	"hex_floating_point_literal":     model.ExprLiteral,
	"true":                           model.ExprLiteral,
	"false":                          model.ExprLiteral,
	"null_literal":                   model.ExprLiteral,
}

type Extractor struct{}

func NewJavaExtractor() *Extractor {
	return &Extractor{}
}

func (e *Extractor) Extract(fc *core.FileContext, kinds extractor.KindSet) ([]model.Node, error) {
	src := fc.Source()
	var nodes []model.Node

	if kinds.Wants(model.KindClassDeclaration) {
		for _, def := range fc.Definitions {
			if def.Kind != model.Class || def.Node == nil {
				continue
			}
			nodes = append(nodes, &model.ClassDeclaration{
				Name:          def.Name,
				QualifiedName: def.QualifiedName,
				BaseTypes:     baseTypes(def.Node, src),
				Loc:           def.Location,
				Source:        parser.Content(def.Node, src),
			})
		}
	}

	parser.Walk(fc.RootNode, func(n *sitter.Node) bool {
		switch n.Kind() {
		case kindMethodInvocation:
			if kinds.Wants(model.KindInvocation) {
				nodes = append(nodes, e.invocation(n, src, fc.FilePath))
			}
		case kindBinary:
			if cmp := e.comparison(n, src, fc.FilePath); cmp != nil && kinds.Wants(cmp.Kind()) {
				nodes = append(nodes, cmp)
			}
		}
		return true
	})

	extractor.SortNodes(nodes)
	return nodes, nil
}

// invocation 将调用目标渲染为 "object.name"，无限定调用时为 "name"。
func (e *Extractor) invocation(n *sitter.Node, src []byte, filePath string) *model.Invocation {
	target := parser.Content(n.ChildByFieldName("name"), src)
	if obj := n.ChildByFieldName("object"); obj != nil {
		target = parser.Content(obj, src) + "." + target
	}
	inv := &model.Invocation{
		Target: extractor.CompactText(target),
		Loc:    parser.Location(n, filePath),
		Source: parser.Content(n, src),
	}
	for _, arg := range parser.NamedChildren(n.ChildByFieldName("arguments")) {
		if arg.Kind() == "line_comment" || arg.Kind() == "block_comment" {
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
