package rule

// Settings 调整内置规则，零值表示使用默认值。
type Settings struct {
	NamespaceRoot   string
	MarkerAttribute string
	// CallSites 非 nil 时替换默认调用点表。
	CallSites []CallSite
	// Disabled 保存不注册的规则 id。
	Disabled []string
}

func (s Settings) disabled(id string) bool {
	for _, d := range s.Disabled {
		if d == id {
			return true
		}
	}
	return false
}

// Builtin 按注册顺序返回由 s 配置的内置规则。
func Builtin(s Settings) []Rule {
	all := []Rule{
		NewInheritanceRule(s.NamespaceRoot, s.MarkerAttribute),
		NewStringLiteralRule(s.CallSites),
	}
	out := make([]Rule, 0, len(all))
	for _, r := range all {
		if s.disabled(r.Descriptor().ID) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// BuildRegistry 将启用的内置规则注册到新的注册表中。
func BuildRegistry(s Settings, opts ...Option) (*Registry, error) {
	reg := NewRegistry(opts...)
	for _, r := range Builtin(s) {
		if err := reg.Register(r); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
