package noisefilter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CodMac/go-treesitter-fht-analyzer/model"
	"github.com/CodMac/go-treesitter-fht-analyzer/noisefilter"
)

func TestPrefixFilter(t *testing.T) {
	f := &noisefilter.PrefixFilter{Prefixes: []string{"System."}, Exact: []string{"object"}}

	assert.True(t, f.IsNoise("System.Exception"))
	assert.True(t, f.IsNoise("global::System.Exception"))
	assert.True(t, f.IsNoise("object"))
	assert.False(t, f.IsNoise("objectModel"))
	assert.False(t, f.IsNoise("FHT.Models.ModelBase"))
}

func TestGetNoiseFilter_Default(t *testing.T) {
	f := noisefilter.GetNoiseFilter(model.Language("cobol"))
	assert.False(t, f.IsNoise("System.Object"))
}
