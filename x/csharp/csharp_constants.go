package csharp

// 收集器和提取器使用的语法节点类型
const (
	kindCompilationUnit     = "compilation_unit"
	kindNamespace           = "namespace_declaration"
	kindFileScopedNamespace = "file_scoped_namespace_declaration"
	kindDeclarationList     = "declaration_list"
	kindUsingDirective      = "using_directive"
	kindClass               = "class_declaration"
	kindRecord              = "record_declaration"
	kindRecordStruct        = "record_struct_declaration"
	kindStruct              = "struct_declaration"
	kindInterface           = "interface_declaration"
	kindEnum                = "enum_declaration"
	kindBaseList            = "base_list"
	kindPrimaryCtorBase     = "primary_constructor_base_type"
	kindAttributeList       = "attribute_list"
	kindAttribute           = "attribute"
	kindInvocation          = "invocation_expression"
	kindArgument            = "argument"
	kindBinary              = "binary_expression"
	kindIdentifier          = "identifier"
	kindStringLiteral       = "string_literal"
	kindVerbatimString      = "verbatim_string_literal"
	kindRawString           = "raw_string_literal"
	kindInterpolatedString  = "interpolated_string_expression"
)

// attributeSuffix 会补到未带该后缀的特性名后面。
const attributeSuffix = "Attribute"
