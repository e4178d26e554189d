package csharp

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/CodMac/go-treesitter-fht-analyzer/core"
	"github.com/CodMac/go-treesitter-fht-analyzer/extractor"
	"github.com/CodMac/go-treesitter-fht-analyzer/model"
	"github.com/CodMac/go-treesitter-fht-analyzer/parser"
)

type Collector struct{}

func NewCSharpCollector() *Collector {
	return &Collector{}
}

func (c *Collector) CollectDefinitions(tree *sitter.Tree, filePath string, sourceBytes *[]byte) (*core.FileContext, error) {
	fCtx := core.NewFileContext(filePath, tree, sourceBytes)
	fCtx.Language = model.LangCSharp

	c.collectScope(fCtx.RootNode, fCtx, "", "")
	return fCtx, nil
}

// collectScope 遍历编译单元、命名空间体或类型体的成员。文件范围命名空间作用于其后的所有成员。
func (c *Collector) collectScope(node *sitter.Node, fCtx *core.FileContext, ns, containerQN string) {
	for _, child := range parser.NamedChildren(node) {
		switch child.Kind() {
		case kindUsingDirective:
			c.handleUsing(child, fCtx)
		case kindNamespace:
			name := namespaceName(child, fCtx.Source())
			if fCtx.PackageName == "" {
				fCtx.PackageName = joinName(ns, name)
			}
			c.collectScope(child.ChildByFieldName("body"), fCtx, joinName(ns, name), "")
		case kindFileScopedNamespace:
			ns = joinName(ns, namespaceName(child, fCtx.Source()))
			if fCtx.PackageName == "" {
				fCtx.PackageName = ns
			}
			c.collectScope(child, fCtx, ns, "")
		case kindDeclarationList:
			c.collectScope(child, fCtx, ns, containerQN)
		default:
			kind, ok := elementKind(child.Kind())
			if !ok {
				continue
			}
			def := c.definition(child, kind, fCtx, ns, containerQN)
			if def == nil {
				continue
			}
			fCtx.AddDefinition(def)
			c.collectScope(typeBody(child), fCtx, ns, def.QualifiedName)
		}
	}
}

func (c *Collector) definition(node *sitter.Node, kind model.ElementKind, fCtx *core.FileContext, ns, containerQN string) *core.TypeDefinition {
	src := fCtx.Source()
	name := parser.Content(node.ChildByFieldName("name"), src)
	if name == "" {
		return nil
	}
	parent := ns
	if containerQN != "" {
		parent = containerQN
	}

	def := &core.TypeDefinition{
		Name:          name,
		QualifiedName: joinName(parent, name),
		Namespace:     ns,
		Kind:          kind,
		ContainerQN:   containerQN,
		Attributes:    attributes(node, src),
		Location:      parser.Location(node, fCtx.FilePath),
		Node:          node,
	}
	for _, ref := range baseTypes(node, src) {
		def.BaseRefs = append(def.BaseRefs, ref.Text)
	}
	return def
}

// handleUsing 记录命名空间导入和别名。using static 引入的是成员而非类型，忽略。
func (c *Collector) handleUsing(node *sitter.Node, fCtx *core.FileContext) {
	src := fCtx.Source()
	for i := 0; i < int(node.ChildCount()); i++ {
		if child := node.Child(uint(i)); child != nil && child.Kind() == "static" {
			return
		}
	}

	loc := parser.Location(node, fCtx.FilePath)
	entry := &core.ImportEntry{Location: &loc}

	alias := node.ChildByFieldName("name")
	if eq := parser.NamedChildOfKind(node, "name_equals"); eq != nil {
		alias = parser.NamedChildOfKind(eq, kindIdentifier)
	}
	if alias != nil {
		entry.Alias = parser.Content(alias, src)
		children := parser.NamedChildren(node)
		if target := children[len(children)-1]; target.StartByte() > alias.StartByte() {
			entry.RawImportPath = extractor.CompactText(parser.Content(target, src))
		}
	} else if target := parser.NamedChildOfKind(node, kindIdentifier, "qualified_name"); target != nil {
		entry.RawImportPath = extractor.CompactText(parser.Content(target, src))
		entry.IsWildcard = true
	}

	entry.RawImportPath = strings.TrimPrefix(entry.RawImportPath, "global::")
	if entry.RawImportPath == "" {
		return
	}
	fCtx.AddImport(entry)
}

func elementKind(nodeKind string) (model.ElementKind, bool) {
	switch nodeKind {
	case kindClass:
		return model.Class, true
	case kindRecord:
		return model.Record, true
	case kindStruct, kindRecordStruct:
		return model.Struct, true
	case kindInterface:
		return model.Interface, true
	case kindEnum:
		return model.Enum, true
	}
	return "", false
}

func typeBody(node *sitter.Node) *sitter.Node {
	if body := node.ChildByFieldName("body"); body != nil {
		return body
	}
	return parser.NamedChildOfKind(node, kindDeclarationList)
}

func namespaceName(node *sitter.Node, src []byte) string {
	return extractor.CompactText(parser.Content(node.ChildByFieldName("name"), src))
}

// baseTypes 按顺序返回基类列表中的原始写法。
func baseTypes(node *sitter.Node, src []byte) []model.TypeRef {
	list := node.ChildByFieldName("bases")
	if list == nil {
		list = parser.NamedChildOfKind(node, kindBaseList)
	}
	var refs []model.TypeRef
	for _, entry := range parser.NamedChildren(list) {
		if entry.Kind() == kindPrimaryCtorBase {
			if t := entry.ChildByFieldName("type"); t != nil {
				entry = t
			} else if children := parser.NamedChildren(entry); len(children) > 0 {
				entry = children[0]
			}
		}
		refs = append(refs, model.TypeRef{
			Text:   extractor.CompactText(parser.Content(entry, src)),
			Simple: entry.Kind() == kindIdentifier,
		})
	}
	return refs
}

// attributes 返回声明上的特性，名称统一补全 Attribute 后缀。
func attributes(node *sitter.Node, src []byte) []model.Attribute {
	var out []model.Attribute
	for _, list := range parser.NamedChildren(node) {
		if list.Kind() != kindAttributeList {
			continue
		}
		for _, attr := range parser.NamedChildren(list) {
			if attr.Kind() != kindAttribute {
				continue
			}
			written := extractor.CompactText(parser.Content(attr.ChildByFieldName("name"), src))
			if written == "" {
				continue
			}
			out = append(out, model.Attribute{Name: AttributeName(written), QualifiedName: written})
		}
	}
	return out
}

// AttributeName 返回源码写法对应的特性类简单名称。
func AttributeName(written string) string {
	name := written
	if i := strings.LastIndex(name, "::"); i >= 0 {
		name = name[i+2:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "<"); i >= 0 {
		name = name[:i]
	}
	if !strings.HasSuffix(name, attributeSuffix) {
		name += attributeSuffix
	}
	return name
}

func joinName(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}
