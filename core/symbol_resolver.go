package core

import (
	"fmt"
	"sync"

	"github.com/CodMac/go-treesitter-fht-analyzer/model"
)

// SymbolResolver 封装特定语言的名称查找规则。
type SymbolResolver interface {
	// BuildQualifiedName 拼接父级名称与成员名称。
	BuildQualifiedName(parentQN, name string) string

	// Resolve 在声明所在作用域内查找源码中书写的类型名，按查找顺序返回候选。
	Resolve(gc *GlobalContext, scope *TypeDefinition, symbol string) []*TypeDefinition
}

var (
	resolverMu        sync.RWMutex
	symbolResolverMap = make(map[model.Language]SymbolResolver)
)

// RegisterSymbolResolver 注册某种语言的解析器。
func RegisterSymbolResolver(lang model.Language, resolver SymbolResolver) {
	resolverMu.Lock()
	defer resolverMu.Unlock()

	symbolResolverMap[lang] = resolver
}

// GetSymbolResolver 返回为 lang 注册的解析器。
func GetSymbolResolver(lang model.Language) (SymbolResolver, error) {
	resolverMu.RLock()
	defer resolverMu.RUnlock()

	resolver, ok := symbolResolverMap[lang]
	if !ok {
		return nil, fmt.Errorf("no SymbolResolver for language: %s", lang)
	}

	return resolver, nil
}

// DottedResolver 适用于使用点号分隔名称、且没有命名空间导入的语言。
// 查找顺序：外层类型、声明所在命名空间，最后按全限定名查找。
type DottedResolver struct{}

func (DottedResolver) BuildQualifiedName(parentQN, name string) string {
	if parentQN == "" || parentQN == "." {
		return name
	}
	return parentQN + "." + name
}

func (r DottedResolver) Resolve(gc *GlobalContext, scope *TypeDefinition, symbol string) []*TypeDefinition {
	for container := scope.ContainerQN; container != ""; {
		if defs := gc.Definitions(r.BuildQualifiedName(container, symbol)); len(defs) > 0 {
			return defs
		}
		outer := gc.Definitions(container)
		if len(outer) == 0 {
			break
		}
		container = outer[0].ContainerQN
	}
	if scope.Namespace != "" {
		if defs := gc.Definitions(r.BuildQualifiedName(scope.Namespace, symbol)); len(defs) > 0 {
			return defs
		}
	}
	return gc.Definitions(symbol)
}
