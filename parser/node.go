package parser

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/CodMac/go-treesitter-fht-analyzer/model"
)

// Location 将节点范围转换为从 1 开始的位置。
func Location(n *sitter.Node, filePath string) model.Location {
	if n == nil {
		return model.Location{FilePath: filePath}
	}
	start, end := n.StartPosition(), n.EndPosition()
	return model.Location{
		FilePath:    filePath,
		StartLine:   int(start.Row) + 1,
		EndLine:     int(end.Row) + 1,
		StartColumn: int(start.Column) + 1,
		EndColumn:   int(end.Column) + 1,
	}
}

// Content 返回 n 的源码文本，n 为 nil 时返回 ""。
func Content(n *sitter.Node, source []byte) string {
	if n == nil {
		return ""
	}
	return n.Utf8Text(source)
}

// NamedChildOfKind 返回第一个属于给定类型之一的命名子节点。
func NamedChildOfKind(n *sitter.Node, kinds ...string) *sitter.Node {
	if n == nil {
		return nil
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(uint(i))
		if child == nil {
			continue
		}
		for _, k := range kinds {
			if child.Kind() == k {
				return child
			}
		}
	}
	return nil
}

// NamedChildren 返回 n 的所有命名子节点。
func NamedChildren(n *sitter.Node) []*sitter.Node {
	if n == nil {
		return nil
	}
	out := make([]*sitter.Node, 0, n.NamedChildCount())
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if child := n.NamedChild(uint(i)); child != nil {
			out = append(out, child)
		}
	}
	return out
}

// Walk 按源码顺序访问 n 及其后代，visit 返回 false 时跳过该节点的子节点。
func Walk(n *sitter.Node, visit func(*sitter.Node) bool) {
	if n == nil || !visit(n) {
		return
	}
	cursor := n.Walk()
	defer cursor.Close()

	if cursor.GotoFirstChild() {
		for {
			Walk(cursor.Node(), visit)
			if !cursor.GotoNextSibling() {
				break
			}
		}
	}
}
