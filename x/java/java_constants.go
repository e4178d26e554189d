package java

const (
	kindProgram          = "program"
	kindPackage          = "package_declaration"
	kindImport           = "import_declaration"
	kindClass            = "class_declaration"
	kindRecord           = "record_declaration"
	kindInterface        = "interface_declaration"
	kindEnum             = "enum_declaration"
	kindAnnotationType   = "annotation_type_declaration"
	kindModifiers        = "modifiers"
	kindMarkerAnnotation = "marker_annotation"
	kindAnnotation       = "annotation"
	kindTypeIdentifier   = "type_identifier"
	kindMethodInvocation = "method_invocation"
	kindBinary           = "binary_expression"
	kindStringLiteral    = "string_literal"
)
