package rule

import (
	"github.com/CodMac/go-treesitter-fht-analyzer/model"
)

// StringLiteralRule 禁止在配置的调用点上传入非空字面量字符串或插值字符串，
// 错误键和路由名应使用 nameof 或共享常量。
type StringLiteralRule struct {
	callSites []CallSite
}

// NewStringLiteralRule 创建规则，调用点表为 nil 时使用 DefaultCallSites。
func NewStringLiteralRule(callSites []CallSite) *StringLiteralRule {
	if callSites == nil {
		callSites = DefaultCallSites()
	}
	return &StringLiteralRule{callSites: append([]CallSite(nil), callSites...)}
}

func (r *StringLiteralRule) Descriptor() *model.RuleDescriptor { return StringLiteralCheck }

func (r *StringLiteralRule) Kinds() []model.NodeKind {
	return []model.NodeKind{model.KindInvocation, model.KindEquals, model.KindNotEquals}
}

// CallSites 按匹配顺序返回调用点表。
func (r *StringLiteralRule) CallSites() []CallSite {
	return append([]CallSite(nil), r.callSites...)
}

func (r *StringLiteralRule) Inspect(pass *Pass) error {
	switch n := pass.Node.(type) {
	case *model.Invocation:
		return r.inspectInvocation(pass, n)
	case *model.Comparison:
		return r.inspectComparison(pass, n)
	}
	return nil
}

// inspectInvocation 检查第一个匹配的调用点所指定的参数。
func (r *StringLiteralRule) inspectInvocation(pass *Pass, inv *model.Invocation) error {
	for _, cs := range r.callSites {
		if !cs.Matches(inv.Target) {
			continue
		}
		arg, ok := inv.Argument(cs.Position)
		if ok && isStringViolation(arg) {
			pass.Report(StringLiteralCheck, inv.Loc, arg.Text)
		}
		return nil
	}
	return nil
}

// inspectComparison 观察带字面量操作数的 == 和 !=，目前不附加任何检查。
func (r *StringLiteralRule) inspectComparison(_ *Pass, cmp *model.Comparison) error {
	for _, operand := range cmp.Operands() {
		if !operand.IsLiteral() {
			continue
		}
	}
	return nil
}

// isStringViolation：非空的普通字面量以及所有插值字符串。无法解码的字面量跳过。
func isStringViolation(arg model.Expression) bool {
	switch arg.Kind {
	case model.ExprStringLiteral:
		v, err := DecodeStringLiteral(arg.Text)
		return err == nil && v != ""
	case model.ExprInterpolatedString:
		return true
	default:
		return false
	}
}
