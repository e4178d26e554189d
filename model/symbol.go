package model

// Attribute 是附加在类型声明上的特性（注解）。
type Attribute struct {
	// Name 是简单名称，例如 "IsPolymorphicBaseClassAttribute"。
	Name string `json:"Name"`
	// QualifiedName 是源码中的原始写法，可能带限定前缀。
	QualifiedName string `json:"QualifiedName"`
}

// Symbol 是类型声明的语义标识。
//
// 符号在链接符号表时一次性构建，之后只读，可在多个 goroutine 之间共享。
type Symbol struct {
	Name          string      `json:"Name"`
	QualifiedName string      `json:"QualifiedName"`
	Namespace     string      `json:"Namespace"`
	Kind          ElementKind `json:"Kind"`
	// 没有基类或基类无法解析时 BaseType 为 nil。
	BaseType   *Symbol     `json:"-"`
	Attributes []Attribute `json:"Attributes,omitempty"`
	Location   Location    `json:"Location"`
}

// HasAttribute 判断是否附加了给定简单名称的特性。
func (s *Symbol) HasAttribute(name string) bool {
	if s == nil {
		return false
	}
	for _, a := range s.Attributes {
		if a.Name == name {
			return true
		}
	}
	return false
}

// SemanticModel 回答关于语法节点的符号查询。
//
// 实现必须支持并发调用，且不能阻塞。
type SemanticModel interface {
	// DeclaredSymbol 返回类声明所声明的符号。
	DeclaredSymbol(decl *ClassDeclaration) (*Symbol, bool)
}
