package csharp

import (
	"strings"

	"github.com/CodMac/go-treesitter-fht-analyzer/core"
)

type SymbolResolver struct {
	core.DottedResolver
}

func NewCSharpSymbolResolver() *SymbolResolver {
	return &SymbolResolver{}
}

// Resolve 按编译器绑定基类的方式查找类型名：
// 外层类型、命名空间链、别名、using 指令，最后按全限定名查找。
func (r *SymbolResolver) Resolve(gc *core.GlobalContext, scope *core.TypeDefinition, symbol string) []*core.TypeDefinition {
	name := normalizeTypeName(symbol)
	if name == "" {
		return nil
	}

	// 1. 限定名：展开开头的别名，否则按原样查找
	if head, rest, ok := strings.Cut(name, "."); ok {
		if imp := aliasOf(scope, head); imp != nil {
			return gc.Definitions(r.BuildQualifiedName(imp.RawImportPath, rest))
		}
		if defs := gc.Definitions(name); len(defs) > 0 {
			return defs
		}
	}

	// 2. 外层类型
	for container := scope.ContainerQN; container != ""; {
		if defs := gc.Definitions(r.BuildQualifiedName(container, name)); len(defs) > 0 {
			return defs
		}
		outer := gc.Definitions(container)
		if len(outer) == 0 {
			break
		}
		container = outer[0].ContainerQN
	}

	// 3. 声明所在命名空间及其父命名空间
	for ns := scope.Namespace; ns != ""; ns = parentNamespace(ns) {
		if defs := gc.Definitions(r.BuildQualifiedName(ns, name)); len(defs) > 0 {
			return defs
		}
	}

	if scope.File != nil {
		// 4. using 别名
		if imp := aliasOf(scope, name); imp != nil {
			return gc.Definitions(imp.RawImportPath)
		}
		// 5. using 指令
		for _, imp := range scope.File.Imports {
			if defs := gc.Definitions(r.BuildQualifiedName(imp.RawImportPath, name)); len(defs) > 0 {
				return defs
			}
		}
	}

	// 6. 全局命名空间
	return gc.Definitions(name)
}

func aliasOf(scope *core.TypeDefinition, name string) *core.ImportEntry {
	if scope.File == nil {
		return nil
	}
	return scope.File.Aliases[name]
}

// normalizeTypeName 去掉 global:: 别名和泛型参数。
func normalizeTypeName(name string) string {
	name = strings.TrimPrefix(name, "global::")
	if i := strings.Index(name, "<"); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}

func parentNamespace(ns string) string {
	if i := strings.LastIndex(ns, "."); i >= 0 {
		return ns[:i]
	}
	return ""
}
