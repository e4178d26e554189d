package rule

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
)

// matchTimeout 限制单次匹配的耗时。
const matchTimeout = 100 * time.Millisecond

// CallSite 描述需要关注的调用形态：匹配调用目标文本的模式，以及要检查的参数位置（从 0 开始）。
// 模式采用 .NET 正则表达式语法。
type CallSite struct {
	Pattern  string
	Position int

	re *regexp2.Regexp
}

// NewCallSite 编译 pattern。
func NewCallSite(pattern string, position int) (CallSite, error) {
	if position < 0 {
		return CallSite{}, fmt.Errorf("call site %q: negative argument position %d", pattern, position)
	}
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return CallSite{}, fmt.Errorf("call site %q: %w", pattern, err)
	}
	re.MatchTimeout = matchTimeout
	return CallSite{Pattern: pattern, Position: position, re: re}, nil
}

// MustCallSite 用于已知合法的模式，编译失败时 panic。
func MustCallSite(pattern string, position int) CallSite {
	cs, err := NewCallSite(pattern, position)
	if err != nil {
		panic(err)
	}
	return cs
}

// Matches 判断 target 是否匹配模式，匹配出错（超时）视为不匹配。
func (c CallSite) Matches(target string) bool {
	if c.re == nil {
		return false
	}
	ok, err := c.re.MatchString(target)
	return err == nil && ok
}

// DefaultCallSites 返回 ASP.NET MVC 的调用点表，按匹配顺序排列。
func DefaultCallSites() []CallSite {
	return []CallSite{
		MustCallSite(`ModelState\.AddModelError$`, 0),
		MustCallSite(`\.AbsoluteAction$`, 0),
		MustCallSite(`\.Action$`, 0),
		MustCallSite(`RedirectToAction$`, 0),
	}
}
