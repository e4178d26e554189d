package csharp

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/CodMac/go-treesitter-fht-analyzer/core"
	"github.com/CodMac/go-treesitter-fht-analyzer/extractor"
	"github.com/CodMac/go-treesitter-fht-analyzer/model"
	"github.com/CodMac/go-treesitter-fht-analyzer/parser"
)

var exprKinds = extractor.ExprKinds{
	kindStringLiteral:      model.ExprStringLiteral,
	kindVerbatimString:     model.ExprStringLiteral,
	kindRawString:          model.ExprStringLiteral,
	kindInterpolatedString: model.ExprInterpolatedString,
	kindIdentifier:         model.ExprIdentifier,
	"integer_literal":      model.ExprLiteral,
	"real_literal":         model.ExprLiteral,
	"character_literal":    model.ExprLiteral,
	"boolean_literal":      model.ExprLiteral,
	"null_literal":         model.ExprLiteral,
}

type Extractor struct{}

func NewCSharpExtractor() *Extractor {
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

	wantCalls := kinds.Wants(model.KindInvocation)
	wantCmp := kinds.Wants(model.KindEquals) || kinds.Wants(model.KindNotEquals)
	if wantCalls || wantCmp {
		parser.Walk(fc.RootNode, func(n *sitter.Node) bool {
			switch n.Kind() {
			case kindInvocation:
				if wantCalls {
					nodes = append(nodes, e.invocation(n, src, fc.FilePath))
				}
			case kindBinary:
				if cmp := e.comparison(n, src, fc.FilePath); cmp != nil && kinds.Wants(cmp.Kind()) {
					nodes = append(nodes, cmp)
				}
			}
			return true
		})
	}

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
		if arg.Kind() != kindArgument {
			continue
		}
		children := parser.NamedChildren(arg)
		if len(children) == 0 {
			continue
		}
		inv.Arguments = append(inv.Arguments, expression(children[len(children)-1], src, filePath))
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
		Left:   expression(left, src, filePath),
		Right:  expression(right, src, filePath),
		Loc:    parser.Location(n, filePath),
		Source: parser.Content(n, src),
	}
}

// expression 对参数或操作数分类。UTF-8 字符串字面量 ("..."u8) 是字节序列而不是字符串。
func expression(n *sitter.Node, src []byte, filePath string) model.Expression {
	expr := exprKinds.Expression(n, src, filePath)
	if expr.Kind == model.ExprStringLiteral && strings.HasSuffix(strings.ToLower(expr.Text), "u8") {
		expr.Kind = model.ExprOther
	}
	return expr
}
