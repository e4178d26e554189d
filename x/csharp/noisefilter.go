package csharp

import "github.com/CodMac/go-treesitter-fht-analyzer/noisefilter"

// NewCSharpNoiseFilter 将框架命名空间和内置类型关键字视为噪音。
func NewCSharpNoiseFilter() *noisefilter.PrefixFilter {
	return &noisefilter.PrefixFilter{
		Prefixes: []string{"System.", "Microsoft.", "Newtonsoft.", "Swashbuckle."},
		Exact: []string{
			"object", "string", "dynamic", "bool", "byte", "char", "decimal",
			"double", "float", "int", "long", "short", "uint", "ulong", "ushort",
			"System", "Object", "Exception", "Attribute",
		},
	}
}
