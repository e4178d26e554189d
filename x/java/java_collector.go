package java

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/CodMac/go-treesitter-fht-analyzer/core"
	"github.com/CodMac/go-treesitter-fht-analyzer/extractor"
	"github.com/CodMac/go-treesitter-fht-analyzer/model"
	"github.com/CodMac/go-treesitter-fht-analyzer/parser"
)

type Collector struct{}

func NewJavaCollector() *Collector {
	return &Collector{}
}

func (c *Collector) CollectDefinitions(tree *sitter.Tree, filePath string, sourceBytes *[]byte) (*core.FileContext, error) {
	fCtx := core.NewFileContext(filePath, tree, sourceBytes)
	fCtx.Language = model.LangJava

	// 1. package 与 import
	c.processTopLevelDeclarations(fCtx)

	// 2. 类型声明（包括嵌套类型）
	c.collectScope(fCtx.RootNode, fCtx, "")
	return fCtx, nil
}

func (c *Collector) processTopLevelDeclarations(fCtx *core.FileContext) {
	src := fCtx.Source()
	for _, child := range parser.NamedChildren(fCtx.RootNode) {
		switch child.Kind() {
		case kindPackage:
			if name := parser.NamedChildOfKind(child, "scoped_identifier", "identifier"); name != nil {
				fCtx.PackageName = parser.Content(name, src)
			}
		case kindImport:
			c.handleImport(child, fCtx)
		}
	}
}

// handleImport 以简单名称记录单类型导入，按需导入记为通配符。静态导入引入的是成员而非类型。
func (c *Collector) handleImport(node *sitter.Node, fCtx *core.FileContext) {
	isWildcard := false
	for i := 0; i < int(node.ChildCount()); i++ {
		switch node.Child(uint(i)).Kind() {
		case "static":
			return
		case "asterisk":
			isWildcard = true
		}
	}

	target := parser.NamedChildOfKind(node, "scoped_identifier", "identifier")
	if target == nil {
		return
	}
	path := parser.Content(target, fCtx.Source())
	loc := parser.Location(node, fCtx.FilePath)
	entry := &core.ImportEntry{RawImportPath: path, IsWildcard: isWildcard, Location: &loc}
	if !isWildcard {
		entry.Alias = path[strings.LastIndex(path, ".")+1:]
	}
	fCtx.AddImport(entry)
}

func (c *Collector) collectScope(node *sitter.Node, fCtx *core.FileContext, containerQN string) {
	for _, child := range parser.NamedChildren(node) {
		switch child.Kind() {
		case "class_body", "interface_body", "enum_body", "enum_body_declarations":
			c.collectScope(child, fCtx, containerQN)
			continue
		}

		kind, ok := elementKind(child.Kind())
		if !ok {
			continue
		}
		name := parser.Content(child.ChildByFieldName("name"), fCtx.Source())
		if name == "" {
			continue
		}
		parent := fCtx.PackageName
		if containerQN != "" {
			parent = containerQN
		}
		def := &core.TypeDefinition{
			Name:          name,
			QualifiedName: joinName(parent, name),
			Namespace:     fCtx.PackageName,
			Kind:          kind,
			ContainerQN:   containerQN,
			Attributes:    annotations(child, fCtx.Source()),
			Location:      parser.Location(child, fCtx.FilePath),
			Node:          child,
		}
		if super := superclass(child, fCtx.Source()); super != nil {
			def.BaseRefs = []string{super.Text}
		}
		fCtx.AddDefinition(def)
		c.collectScope(child.ChildByFieldName("body"), fCtx, def.QualifiedName)
	}
}

func elementKind(nodeKind string) (model.ElementKind, bool) {
	switch nodeKind {
	case kindClass:
		return model.Class, true
	case kindRecord:
		return model.Record, true
	case kindInterface, kindAnnotationType:
		return model.Interface, true
	case kindEnum:
		return model.Enum, true
	}
	return "", false
}

// superclass 返回类声明的 extends 子句。
func superclass(node *sitter.Node, src []byte) *model.TypeRef {
	sc := node.ChildByFieldName("superclass")
	if sc == nil {
		return nil
	}
	children := parser.NamedChildren(sc)
	if len(children) == 0 {
		return nil
	}
	t := children[0]
	return &model.TypeRef{
		Text:   extractor.CompactText(parser.Content(t, src)),
		Simple: t.Kind() == kindTypeIdentifier,
	}
}

// interfaces 返回类声明的 implements 子句。
func interfaces(node *sitter.Node, src []byte) []model.TypeRef {
	si := node.ChildByFieldName("interfaces")
	if si == nil {
		return nil
	}
	var refs []model.TypeRef
	for _, t := range parser.NamedChildren(parser.NamedChildOfKind(si, "type_list")) {
		refs = append(refs, model.TypeRef{
			Text:   extractor.CompactText(parser.Content(t, src)),
			Simple: t.Kind() == kindTypeIdentifier,
		})
	}
	return refs
}

// baseTypes 依次返回父类和实现的接口。
func baseTypes(node *sitter.Node, src []byte) []model.TypeRef {
	var refs []model.TypeRef
	if super := superclass(node, src); super != nil {
		refs = append(refs, *super)
	}
	return append(refs, interfaces(node, src)...)
}

func annotations(node *sitter.Node, src []byte) []model.Attribute {
	mods := parser.NamedChildOfKind(node, kindModifiers)
	var out []model.Attribute
	for _, child := range parser.NamedChildren(mods) {
		if child.Kind() != kindMarkerAnnotation && child.Kind() != kindAnnotation {
			continue
		}
		written := parser.Content(child.ChildByFieldName("name"), src)
		if written == "" {
			continue
		}
		out = append(out, model.Attribute{
			Name:          written[strings.LastIndex(written, ".")+1:],
			QualifiedName: written,
		})
	}
	return out
}

func joinName(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}
