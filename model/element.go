package model

import "fmt"

// ElementKind 是收集到符号表中的类型声明的种类。
type ElementKind string

const (
	Namespace ElementKind = "NAMESPACE" // 命名空间或包
	Class     ElementKind = "CLASS"
	Interface ElementKind = "INTERFACE"
	Struct    ElementKind = "STRUCT"
	Record    ElementKind = "RECORD"
	Enum      ElementKind = "ENUM"
	Unknown   ElementKind = "UNKNOWN"
)

// IsClassLike 判断该种类的类型能否作为基类。
func (k ElementKind) IsClassLike() bool {
	return k == Class || k == Record
}

// Location 描述源文件中的一段范围，行号和列号均从 1 开始。
type Location struct {
	FilePath    string `json:"FilePath"`
	StartLine   int    `json:"StartLine"`
	EndLine     int    `json:"EndLine"`
	StartColumn int    `json:"StartColumn"`
	EndColumn   int    `json:"EndColumn"`
}

// String 以 file:line:col 的形式输出位置。
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.FilePath, l.StartLine, l.StartColumn)
}

// Contains 判断 other 是否位于 l 之内。
func (l Location) Contains(other Location) bool {
	if l.FilePath != other.FilePath {
		return false
	}
	if other.StartLine < l.StartLine || other.EndLine > l.EndLine {
		return false
	}
	if other.StartLine == l.StartLine && other.StartColumn < l.StartColumn {
		return false
	}
	if other.EndLine == l.EndLine && other.EndColumn > l.EndColumn {
		return false
	}
	return true
}
