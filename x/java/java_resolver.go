package java

import (
	"strings"

	"github.com/CodMac/go-treesitter-fht-analyzer/core"
)

type SymbolResolver struct {
	core.DottedResolver
}

func NewJavaSymbolResolver() *SymbolResolver {
	return &SymbolResolver{}
}

func (j *SymbolResolver) Resolve(gc *core.GlobalContext, scope *core.TypeDefinition, symbol string) []*core.TypeDefinition {
	symbol = stripTypeArguments(symbol)

	// 1. 外层类的嵌套类型
	for container := scope.ContainerQN; container != ""; {
		if defs := gc.Definitions(j.BuildQualifiedName(container, symbol)); len(defs) > 0 {
			return defs
		}
		outer := gc.Definitions(container)
		if len(outer) == 0 {
			break
		}
		container = outer[0].ContainerQN
	}

	// 2. 单类型导入
	if scope.File != nil {
		head, rest, qualified := strings.Cut(symbol, ".")
		if imp, ok := scope.File.Aliases[head]; ok {
			qn := imp.RawImportPath
			if qualified {
				qn = j.BuildQualifiedName(qn, rest)
			}
			if defs := gc.Definitions(qn); len(defs) > 0 {
				return defs
			}
		}
	}

	// 3. 同包
	if defs := gc.Definitions(j.BuildQualifiedName(scope.Namespace, symbol)); len(defs) > 0 {
		return defs
	}

	// 4. 按需导入
	if scope.File != nil {
		for _, imp := range scope.File.Imports {
			if !imp.IsWildcard {
				continue
			}
			if defs := gc.Definitions(j.BuildQualifiedName(imp.RawImportPath, symbol)); len(defs) > 0 {
				return defs
			}
		}
	}

	// 5. 全限定名
	return gc.Definitions(symbol)
}

func stripTypeArguments(name string) string {
	if i := strings.Index(name, "<"); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}
