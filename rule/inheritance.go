package rule

import (
	"strings"

	"github.com/CodMac/go-treesitter-fht-analyzer/model"
)

const (
	// DefaultNamespaceRoot 是项目自有类型的命名空间前缀。
	DefaultNamespaceRoot = "fht."
	// DefaultMarkerAttribute 是 UI 模型基类必须标注的特性。
	DefaultMarkerAttribute = "IsPolymorphicBaseClassAttribute"
)

// InheritanceRule 要求 UI 模型（名称形如 *InputModel 或 *ViewModel 的类）的基类
// 在属于本项目时标注标记特性。
//
// 检查按开销从低到高进行：类名、基类的书写名称，最后是语义基类。
// 无法解析的基类直接跳过，不报告。
type InheritanceRule struct {
	namespaceRoot string
	marker        string
}

// NewInheritanceRule 创建规则，空参数使用默认值。
func NewInheritanceRule(namespaceRoot, marker string) *InheritanceRule {
	if namespaceRoot == "" {
		namespaceRoot = DefaultNamespaceRoot
	}
	if marker == "" {
		marker = DefaultMarkerAttribute
	}
	return &InheritanceRule{
		namespaceRoot: strings.ToLower(namespaceRoot),
		marker:        marker,
	}
}

func (r *InheritanceRule) Descriptor() *model.RuleDescriptor { return InheritanceCheck }

func (r *InheritanceRule) Kinds() []model.NodeKind {
	return []model.NodeKind{model.KindClassDeclaration}
}

func (r *InheritanceRule) Inspect(pass *Pass) error {
	cls, ok := pass.Node.(*model.ClassDeclaration)
	if !ok || len(cls.BaseTypes) == 0 {
		return nil
	}
	if !IsUIModelName(cls.Name) || !HasBaseOrModelBase(cls.BaseTypes) {
		return nil
	}
	if pass.Semantic == nil {
		return nil
	}

	sym, ok := pass.Semantic.DeclaredSymbol(cls)
	if !ok || sym == nil || sym.BaseType == nil {
		return nil
	}
	base := sym.BaseType
	if !InProjectNamespace(base.Namespace, r.namespaceRoot) {
		return nil
	}
	if base.HasAttribute(r.marker) {
		return nil
	}

	pass.Report(InheritanceCheck, cls.Loc, cls.Name)
	return nil
}

// IsUIModelName 判断类名是否像面向 UI 的模型。
func IsUIModelName(name string) bool {
	n := strings.ToLower(name)
	return strings.Contains(n, "inputmodel") || strings.Contains(n, "viewmodel")
}

// IsBaseOrModelName 判断基类名是否像模型基类。
func IsBaseOrModelName(name string) bool {
	n := strings.ToLower(name)
	return strings.Contains(n, "base") || strings.Contains(n, "model")
}

// HasBaseOrModelBase 对简单基类名应用 IsBaseOrModelName，不考虑限定名和泛型写法。
func HasBaseOrModelBase(bases []model.TypeRef) bool {
	for _, b := range bases {
		if b.Simple && IsBaseOrModelName(b.Text) {
			return true
		}
	}
	return false
}

// InProjectNamespace 判断 ns 是否以 root 开头（忽略大小写）。
func InProjectNamespace(ns, root string) bool {
	return strings.HasPrefix(strings.ToLower(ns), strings.ToLower(root))
}
