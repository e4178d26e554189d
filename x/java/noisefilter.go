package java

import "github.com/CodMac/go-treesitter-fht-analyzer/noisefilter"

func NewJavaNoiseFilter() *noisefilter.PrefixFilter {
	return &noisefilter.PrefixFilter{
		Prefixes: []string{
			"java.", "javax.", "jakarta.", "sun.", "com.sun.", "lombok.",
			"org.slf4j.", "org.apache.log4j.",
		},
		Exact: []string{
			"boolean", "int", "long", "float", "double", "char", "byte", "short", "void",
			"Object", "String", "Exception", "RuntimeException", "Record", "Enum",
		},
	}
}
