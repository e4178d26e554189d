// Package rule 包含规则抽象、内置的 FHT 规则，以及把语法节点分发给规则的注册表。
//
// 规则声明自己观察的节点类别，每个匹配的节点都会以一个 Pass 调用一次规则。
// 规则构造后无状态，其持有的描述符、已编译模式和设置均只读，
// 同一个规则值可以并发检查多个节点。
package rule

import (
	"errors"
	"fmt"

	"github.com/CodMac/go-treesitter-fht-analyzer/model"
)

var (
	// ErrDuplicateRule 表示两个不同的规则使用了相同的描述符 id。
	ErrDuplicateRule = errors.New("duplicate rule id")
	// ErrNoKinds 表示注册规则时没有任何节点类别。
	ErrNoKinds = errors.New("rule observes no node kinds")
	// ErrRulePanic 包装规则检查节点时被恢复的 panic。
	ErrRulePanic = errors.New("rule panicked")
)

// Rule 是绑定到一个或多个节点类别的独立检查。
type Rule interface {
	Descriptor() *model.RuleDescriptor
	// Kinds 列出规则要观察的节点类别。
	Kinds() []model.NodeKind
	// 每个匹配的节点调用一次 Inspect。
	Inspect(pass *Pass) error
}

// Reporter 接收诊断，*sink.Sink 实现了该接口。
type Reporter interface {
	Report(d model.Diagnostic)
}

// Pass 把一个节点连同语义模型和报告目标交给一个规则。
type Pass struct {
	Node     model.Node
	Semantic model.SemanticModel

	reporter Reporter
	reported int
	// pending 在规则返回前暂存诊断，非缓冲模式下为 nil。
	pending  []model.Diagnostic
	buffered bool
}

// NewPass 创建直接把诊断转发给 reporter 的 Pass，供规则测试使用；注册表使用带缓冲的 Pass。
func NewPass(node model.Node, semantic model.SemanticModel, reporter Reporter) *Pass {
	return &Pass{Node: node, Semantic: semantic, reporter: reporter}
}

func newBufferedPass(node model.Node, semantic model.SemanticModel, reporter Reporter) *Pass {
	return &Pass{Node: node, Semantic: semantic, reporter: reporter, buffered: true}
}

// Report 在 loc 处报告该描述符的一条诊断。
func (p *Pass) Report(d *model.RuleDescriptor, loc model.Location, args ...string) {
	diag := model.NewDiagnostic(d, loc, args...)
	if p.buffered {
		p.pending = append(p.pending, diag)
		return
	}
	p.reporter.Report(diag)
	p.reported++
}

// flush 将缓冲的诊断转发给 reporter。
func (p *Pass) flush() {
	for _, d := range p.pending {
		p.reporter.Report(d)
		p.reported++
	}
	p.pending = nil
}

// discard 丢弃出错规则缓冲的诊断。
func (p *Pass) discard() {
	p.pending = nil
}

// Reported 返回已送达 reporter 的诊断数量。
func (p *Pass) Reported() int {
	return p.reported
}

// Fault 表示被隔离在单个节点上的规则故障。
type Fault struct {
	RuleID   string         `json:"RuleID"`
	Location model.Location `json:"Location"`
	Err      error          `json:"-"`
}

func (f Fault) Error() string {
	return fmt.Sprintf("%s: rule %s: %v", f.Location, f.RuleID, f.Err)
}

func (f Fault) Unwrap() error {
	return f.Err
}
