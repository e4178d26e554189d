package rule

import (
	"errors"
	"strings"
)

// ErrMalformedLiteral 表示字符串字面量没有可识别的定界符。
var ErrMalformedLiteral = errors.New("malformed string literal")

// DecodeStringLiteral 去掉字符串字面量的定界符并返回其内容。
// 支持逐字 (@"...")、原始字符串与文本块 ("""...""") 以及反引号字面量。
// 转义序列保持原样，调用方只关心内容是否为空。
func DecodeStringLiteral(text string) (string, error) {
	if s, ok := strings.CutPrefix(text, "@"); ok {
		// 逐字字面量只有一个定界符，内部的 "" 是转义的引号。
		return unquote(s)
	}
	s := text

	if strings.HasPrefix(s, "`") {
		if len(s) < 2 || !strings.HasSuffix(s, "`") {
			return "", ErrMalformedLiteral
		}
		return s[1 : len(s)-1], nil
	}

	n := len(s) - len(strings.TrimLeft(s, `"`))
	if n >= 3 {
		delim := strings.Repeat(`"`, n)
		if len(s) < 2*n || !strings.HasSuffix(s, delim) {
			return "", ErrMalformedLiteral
		}
		return s[n : len(s)-n], nil
	}
	return unquote(s)
}

func unquote(s string) (string, error) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", ErrMalformedLiteral
	}
	return s[1 : len(s)-1], nil
}
