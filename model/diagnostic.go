package model

import (
	"strconv"
	"strings"
)

// Severity 由每条规则固定。
type Severity int

const (
	SeverityWarning Severity = iota + 1
	SeverityError
)

// String 返回小写的严重级别名称。
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// RuleDescriptor 是诊断的身份标识。描述符是包级变量，从不修改。
type RuleDescriptor struct {
	ID            string
	Title         string
	MessageFormat string
	Category      string
	Severity      Severity
	Description   string
}

// Diagnostic 表示一次被报告的违规。
type Diagnostic struct {
	Descriptor *RuleDescriptor
	Location   Location
	Args       []string
}

// NewDiagnostic 构建诊断，args 会被复制。
func NewDiagnostic(d *RuleDescriptor, loc Location, args ...string) Diagnostic {
	return Diagnostic{
		Descriptor: d,
		Location:   loc,
		Args:       append([]string(nil), args...),
	}
}

// RuleID 返回描述符 id。
func (d Diagnostic) RuleID() string {
	if d.Descriptor == nil {
		return ""
	}
	return d.Descriptor.ID
}

// Severity 返回描述符的严重级别。
func (d Diagnostic) Severity() Severity {
	if d.Descriptor == nil {
		return SeverityWarning
	}
	return d.Descriptor.Severity
}

// Message 将参数代入描述符的消息模板。
func (d Diagnostic) Message() string {
	if d.Descriptor == nil {
		return strings.Join(d.Args, " ")
	}
	return FormatMessage(d.Descriptor.MessageFormat, d.Args...)
}

// FormatMessage 用 args 替换位置占位符 ({0}, {1}, ...)。
// "{{" 和 "}}" 输出字面括号；没有对应参数的占位符保持原样。
func FormatMessage(format string, args ...string) string {
	var sb strings.Builder
	sb.Grow(len(format))

	for i := 0; i < len(format); i++ {
		c := format[i]
		switch {
		case c == '{' && i+1 < len(format) && format[i+1] == '{':
			sb.WriteByte('{')
			i++
		case c == '}' && i+1 < len(format) && format[i+1] == '}':
			sb.WriteByte('}')
			i++
		case c == '{':
			end := strings.IndexByte(format[i:], '}')
			if end < 0 {
				sb.WriteString(format[i:])
				return sb.String()
			}
			idx, err := strconv.Atoi(format[i+1 : i+end])
			if err != nil || idx < 0 || idx >= len(args) {
				sb.WriteString(format[i : i+end+1])
			} else {
				sb.WriteString(args[idx])
			}
			i += end
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
