package rule

import "github.com/CodMac/go-treesitter-fht-analyzer/model"

// 规则 id，已被现有的抑制配置引用，不能修改。
const (
	InheritanceCheckID   = "FHT_InheritanceCheck"
	StringLiteralCheckID = "FHT_StringLiteralCheck"
)

// InheritanceCheck 报告基类缺少标记特性的 UI 模型。
var InheritanceCheck = &model.RuleDescriptor{
	ID:            InheritanceCheckID,
	Title:         DefaultMarkerAttribute,
	MessageFormat: "Type {0}'s base class must be annotated with " + DefaultMarkerAttribute,
	Category:      "Inheritance",
	Severity:      model.SeverityError,
	Description:   "This is require for swagger generated models to work property",
}

// StringLiteralCheck 报告在错误消息和路由调用点上传入的原始文本。
var StringLiteralCheck = &model.RuleDescriptor{
	ID:            StringLiteralCheckID,
	Title:         "Prefer nameof or predefined consts/variables over string literals",
	MessageFormat: "Prefer using nameof or string.Empty other than literal string: {0}",
	Category:      "StringLiteralCheck",
	Severity:      model.SeverityError,
	Description:   "This is better",
}
