package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodMac/go-treesitter-fht-analyzer/rule"
)

func TestDecodeStringLiteral(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{`"Email"`, "Email"},
		{`""`, ""},
		{`@"C:\dir"`, `C:\dir`},
		{`@""`, ""},
		{`@""""`, `""`},
		{`@"""abc"`, `""abc`},
		{`"""raw "quoted" text"""`, `raw "quoted" text`},
		{"`go raw`", "go raw"},
		{`"a\"b"`, `a\"b`},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := rule.DecodeStringLiteral(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeStringLiteral_Malformed(t *testing.T) {
	for _, text := range []string{``, `"`, `"open`, `close"`, `Email`, "`x", `"""open""`, `@"open`, `@`} {
		_, err := rule.DecodeStringLiteral(text)
		assert.ErrorIs(t, err, rule.ErrMalformedLiteral, text)
	}
}

func TestCallSite(t *testing.T) {
	_, err := rule.NewCallSite(`(unclosed`, 0)
	assert.Error(t, err)

	_, err = rule.NewCallSite(`Foo$`, -1)
	assert.Error(t, err)

	cs, err := rule.NewCallSite(`(?<!Url)\.Action$`, 0)
	require.NoError(t, err)
	assert.True(t, cs.Matches("Html.Action"))
	assert.False(t, cs.Matches("Url.Action"))

	var zero rule.CallSite
	assert.False(t, zero.Matches("anything"))
}

func TestDefaultCallSites(t *testing.T) {
	sites := rule.DefaultCallSites()
	require.Len(t, sites, 4)
	for _, cs := range sites {
		assert.Equal(t, 0, cs.Position)
	}
	assert.True(t, sites[0].Matches("ModelState.AddModelError"))
	assert.True(t, sites[1].Matches("Url.AbsoluteAction"))
	assert.True(t, sites[2].Matches("Url.Action"))
	assert.False(t, sites[2].Matches("Action"))
	assert.True(t, sites[3].Matches("RedirectToAction"))
}
