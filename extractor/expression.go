package extractor

import (
	"sort"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/CodMac/go-treesitter-fht-analyzer/model"
	"github.com/CodMac/go-treesitter-fht-analyzer/parser"
)

// ExprKinds 将语法节点类型映射为表达式种类，未列出的类型视为 model.ExprOther。
type ExprKinds map[string]model.ExprKind

// Expression 对 n 分类并记录其文本和位置。
func (m ExprKinds) Expression(n *sitter.Node, source []byte, filePath string) model.Expression {
	kind, ok := m[n.Kind()]
	if !ok {
		kind = model.ExprOther
	}
	return model.Expression{
		Kind: kind,
		Text: parser.Content(n, source),
		Loc:  parser.Location(n, filePath),
	}
}

// ComparisonOperator 返回二元表达式的运算符，以及它是否为 == 或 !=。
func ComparisonOperator(n *sitter.Node, source []byte) (equal bool, ok bool) {
	op := n.ChildByFieldName("operator")
	if op == nil {
		return false, false
	}
	switch strings.TrimSpace(parser.Content(op, source)) {
	case "==":
		return true, true
	case "!=":
		return false, true
	}
	return false, false
}

// CompactText 去除多行成员访问中保留的空白，使 "Url\n  .Action" 输出为 "Url.Action"。
func CompactText(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// SortNodes 按起始位置排序节点。
func SortNodes(nodes []model.Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		a, b := nodes[i].Location(), nodes[j].Location()
		if a.StartLine != b.StartLine {
			return a.StartLine < b.StartLine
		}
		return a.StartColumn < b.StartColumn
	})
}
