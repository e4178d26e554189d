package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodMac/go-treesitter-fht-analyzer/model"
	"github.com/CodMac/go-treesitter-fht-analyzer/rule"
	"github.com/CodMac/go-treesitter-fht-analyzer/sink"
)

func str(text string) model.Expression {
	return model.Expression{Kind: model.ExprStringLiteral, Text: text}
}

func inspectNode(t *testing.T, r rule.Rule, n model.Node) []model.Diagnostic {
	t.Helper()
	s := sink.New()
	require.NoError(t, r.Inspect(rule.NewPass(n, nil, s)))
	return s.Diagnostics()
}

func TestStringLiteralRule_Invocations(t *testing.T) {
	tests := []struct {
		name    string
		inv     *model.Invocation
		wantArg string
	}{
		{"add model error literal", invocation("ModelState.AddModelError", str(`"Email"`), str(`"Required"`)), `"Email"`},
		{"redirect interpolated", invocation("RedirectToAction", model.Expression{Kind: model.ExprInterpolatedString, Text: `$"Edit{id}"`}), `$"Edit{id}"`},
		{"empty interpolated", invocation("RedirectToAction", model.Expression{Kind: model.ExprInterpolatedString, Text: `$""`}), `$""`},
		{"url action member", invocation("Url.Action", str(`"Index"`)), `"Index"`},
		{"absolute action", invocation("this.Url.AbsoluteAction", str(`@"Details"`)), `@"Details"`},
		{"qualified redirect", invocation("this.RedirectToAction", str(`"Index"`)), `"Index"`},
		{"nameof", invocation("RedirectToAction", model.Expression{Kind: model.ExprOther, Text: "nameof(Index)"}), ""},
		{"empty literal", invocation("ModelState.AddModelError", str(`""`), str(`"Required"`)), ""},
		{"identifier", invocation("RedirectToAction", model.Expression{Kind: model.ExprIdentifier, Text: "IndexAction"}), ""},
		{"unmatched target", invocation("Console.WriteLine", str(`"hello"`)), ""},
		{"no arguments", invocation("RedirectToAction"), ""},
		{"malformed literal", invocation("RedirectToAction", str(`"oops`)), ""},
		{"action is suffix only", invocation("Url.ActionLink", str(`"Index"`)), ""},
	}

	r := rule.NewStringLiteralRule(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := inspectNode(t, r, tt.inv)
			if tt.wantArg == "" {
				assert.Empty(t, diags)
				return
			}
			require.Len(t, diags, 1)
			assert.Equal(t, rule.StringLiteralCheckID, diags[0].RuleID())
			assert.Equal(t, []string{tt.wantArg}, diags[0].Args)
			assert.Equal(t, tt.inv.Loc, diags[0].Location)
			assert.Equal(t, "Prefer using nameof or string.Empty other than literal string: "+tt.wantArg, diags[0].Message())
		})
	}
}

func TestStringLiteralRule_FirstMatchWins(t *testing.T) {
	sites := []rule.CallSite{
		rule.MustCallSite(`Log$`, 0),
		rule.MustCallSite(`\.Log$`, 1),
	}
	r := rule.NewStringLiteralRule(sites)

	// 第一个调用点检查位置 0 且合法，第二个调用点不再参与匹配
	diags := inspectNode(t, r, invocation("logger.Log", model.Expression{Kind: model.ExprIdentifier, Text: "level"}, str(`"msg"`)))
	assert.Empty(t, diags)

	diags = inspectNode(t, r, invocation("logger.Log", str(`"msg"`), str(`"other"`)))
	require.Len(t, diags, 1)
	assert.Equal(t, []string{`"msg"`}, diags[0].Args)
}

func TestStringLiteralRule_PositionOutOfRange(t *testing.T) {
	r := rule.NewStringLiteralRule([]rule.CallSite{rule.MustCallSite(`Foo$`, 2)})

	assert.Empty(t, inspectNode(t, r, invocation("Foo", str(`"a"`))))
	assert.Len(t, inspectNode(t, r, invocation("Foo", str(`"a"`), str(`"b"`), str(`"c"`))), 1)
}

func TestStringLiteralRule_ComparisonReportsNothing(t *testing.T) {
	r := rule.NewStringLiteralRule(nil)
	for _, equal := range []bool{true, false} {
		cmp := &model.Comparison{
			Equal: equal,
			Left:  model.Expression{Kind: model.ExprIdentifier, Text: "status"},
			Right: str(`"active"`),
		}
		assert.Empty(t, inspectNode(t, r, cmp))
	}
	assert.ElementsMatch(t, []model.NodeKind{model.KindInvocation, model.KindEquals, model.KindNotEquals}, r.Kinds())
}

func TestStringLiteralRule_IgnoresOtherNodes(t *testing.T) {
	r := rule.NewStringLiteralRule(nil)
	assert.Empty(t, inspectNode(t, r, classDecl("OrderViewModel", "FHT.OrderViewModel", "ModelBase")))
}
