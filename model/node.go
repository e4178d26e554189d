package model

// NodeKind 是语法节点的类别，规则按类别订阅。
type NodeKind string

const (
	KindClassDeclaration NodeKind = "CLASS_DECLARATION"
	KindInvocation       NodeKind = "INVOCATION"
	KindEquals           NodeKind = "EQUALS"
	KindNotEquals        NodeKind = "NOT_EQUALS"
)

// Node 是前端产出的语法节点的只读视图。
type Node interface {
	Kind() NodeKind
	Location() Location
	// Text 是节点的源码文本。
	Text() string
}

// TypeRef 是声明基类列表中按原样书写的基类型。
type TypeRef struct {
	Text string `json:"Text"`
	// 纯标识符时 Simple 为 true，限定名或泛型写法为 false。
	Simple bool `json:"Simple"`
}

// ClassDeclaration 是类（或 record）声明。
type ClassDeclaration struct {
	Name string `json:"Name"`
	// QualifiedName 用于在符号表中定位该声明。
	QualifiedName string    `json:"QualifiedName"`
	BaseTypes     []TypeRef `json:"BaseTypes,omitempty"`
	Loc           Location  `json:"Location"`
	Source        string    `json:"-"`
}

func (c *ClassDeclaration) Kind() NodeKind     { return KindClassDeclaration }
func (c *ClassDeclaration) Location() Location { return c.Loc }
func (c *ClassDeclaration) Text() string       { return c.Source }

// ExprKind 按形态对表达式分类。
type ExprKind string

const (
	ExprStringLiteral      ExprKind = "STRING_LITERAL"
	ExprInterpolatedString ExprKind = "INTERPOLATED_STRING"
	ExprIdentifier         ExprKind = "IDENTIFIER"
	// ExprLiteral 是除字符串以外的字面量（数字、字符、布尔、null）。
	ExprLiteral ExprKind = "LITERAL"
	ExprOther   ExprKind = "OTHER"
)

// Expression 是调用参数或比较操作数。
type Expression struct {
	Kind ExprKind `json:"Kind"`
	Text string   `json:"Text"`
	Loc  Location `json:"Location"`
}

// IsLiteral 判断表达式是否为任意类型的字面量。
func (e Expression) IsLiteral() bool {
	return e.Kind == ExprStringLiteral || e.Kind == ExprLiteral
}

// Invocation 是方法调用表达式。
type Invocation struct {
	// Target 是被调用表达式的文本，例如 "this.RedirectToAction"。
	Target    string       `json:"Target"`
	Arguments []Expression `json:"Arguments,omitempty"`
	Loc       Location     `json:"Location"`
	Source    string       `json:"-"`
}

func (i *Invocation) Kind() NodeKind     { return KindInvocation }
func (i *Invocation) Location() Location { return i.Loc }
func (i *Invocation) Text() string       { return i.Source }

// Argument 返回从 0 开始计数的指定位置参数。
func (i *Invocation) Argument(pos int) (Expression, bool) {
	if pos < 0 || pos >= len(i.Arguments) {
		return Expression{}, false
	}
	return i.Arguments[pos], true
}

// Comparison 是相等 (==) 或不等 (!=) 比较表达式。
type Comparison struct {
	Equal  bool       `json:"Equal"`
	Left   Expression `json:"Left"`
	Right  Expression `json:"Right"`
	Loc    Location   `json:"Location"`
	Source string     `json:"-"`
}

func (c *Comparison) Kind() NodeKind {
	if c.Equal {
		return KindEquals
	}
	return KindNotEquals
}
func (c *Comparison) Location() Location { return c.Loc }
func (c *Comparison) Text() string       { return c.Source }

// Operands 返回比较的左右两侧。
func (c *Comparison) Operands() []Expression {
	return []Expression{c.Left, c.Right}
}
