package java_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodMac/go-treesitter-fht-analyzer/core"
	"github.com/CodMac/go-treesitter-fht-analyzer/model"
	"github.com/CodMac/go-treesitter-fht-analyzer/parser"
	"github.com/CodMac/go-treesitter-fht-analyzer/rule"
	"github.com/CodMac/go-treesitter-fht-analyzer/sink"
	"github.com/CodMac/go-treesitter-fht-analyzer/x/java"
)

func getTestFilePath(name string) string {
	return filepath.Join("testdata", "com", "fht", filepath.FromSlash(name))
}

var testFiles = []string{"models/ModelBase.java", "models/PolymorphicModelBase.java", "web/OrderViewModel.java"}

func collect(t *testing.T) *core.GlobalContext {
	t.Helper()

	javaParser, err := parser.NewParser(model.LangJava)
	require.NoError(t, err)
	defer javaParser.Close()

	gc := core.NewGlobalContext(java.NewJavaSymbolResolver(), java.NewJavaNoiseFilter())
	for _, name := range testFiles {
		path := getTestFilePath(name)
		tree, src, err := javaParser.ParseFile(path)
		require.NoError(t, err)

		fCtx, err := java.NewJavaCollector().CollectDefinitions(tree, path, src)
		require.NoError(t, err)
		t.Cleanup(fCtx.Close)
		gc.RegisterFileContext(fCtx)
	}
	gc.Link()
	return gc
}

func TestJavaCollector_CollectDefinitions(t *testing.T) {
	gc := collect(t)
	fCtx := gc.FileContexts[getTestFilePath("web/OrderViewModel.java")]
	require.NotNil(t, fCtx)

	t.Run("Verify Package And Imports", func(t *testing.T) {
		assert.Equal(t, "com.fht.web", fCtx.PackageName)
		require.Contains(t, fCtx.Aliases, "ModelBase")
		assert.Equal(t, "com.fht.models.ModelBase", fCtx.Aliases["ModelBase"].RawImportPath)
		assert.Contains(t, fCtx.Aliases, "List")
		require.Len(t, fCtx.Imports, 1)
		assert.True(t, fCtx.Imports[0].IsWildcard)
		assert.Equal(t, "com.fht.models", fCtx.Imports[0].RawImportPath)
	})

	t.Run("Verify Nested Definitions", func(t *testing.T) {
		tagged := gc.Definitions("com.fht.models.ModelBase.TaggedBase")
		require.Len(t, tagged, 1)
		assert.Equal(t, "com.fht.models.ModelBase", tagged[0].ContainerQN)
		assert.Equal(t, "com.fht.models", tagged[0].Namespace)
		require.Len(t, tagged[0].Attributes, 1)
		assert.Equal(t, "IsPolymorphicBaseClassAttribute", tagged[0].Attributes[0].Name)
	})

	t.Run("Verify Base Types", func(t *testing.T) {
		order, ok := gc.Symbol("com.fht.web.OrderViewModel")
		require.True(t, ok)
		require.NotNil(t, order.BaseType)
		assert.Equal(t, "com.fht.models.ModelBase", order.BaseType.QualifiedName)

		customer, ok := gc.Symbol("com.fht.web.CustomerInputModel")
		require.True(t, ok)
		require.NotNil(t, customer.BaseType)
		assert.True(t, customer.BaseType.HasAttribute(rule.DefaultMarkerAttribute))

		list, ok := gc.Symbol("com.fht.web.ListViewModel")
		require.True(t, ok)
		assert.Nil(t, list.BaseType)
	})
}

func TestJavaExtractor_Rules(t *testing.T) {
	gc := collect(t)
	reg, err := rule.BuildRegistry(rule.Settings{
		NamespaceRoot: "com.fht.",
		CallSites: []rule.CallSite{
			rule.MustCallSite(`modelState\.addModelError$`, 0),
			rule.MustCallSite(`redirectToAction$`, 0),
		},
	})
	require.NoError(t, err)

	s := sink.New()
	for _, name := range testFiles {
		fCtx := gc.FileContexts[getTestFilePath(name)]
		nodes, err := java.NewJavaExtractor().Extract(fCtx, nil)
		require.NoError(t, err)
		for _, n := range nodes {
			require.Empty(t, reg.Dispatch(n, gc.SemanticModel(), s))
		}
	}

	diags := s.Sorted()
	require.Len(t, diags, 2)

	assert.Equal(t, rule.InheritanceCheckID, diags[0].RuleID())
	assert.Equal(t, []string{"OrderViewModel"}, diags[0].Args)
	assert.Equal(t, 7, diags[0].Location.StartLine)

	assert.Equal(t, rule.StringLiteralCheckID, diags[1].RuleID())
	assert.Equal(t, []string{`"status"`}, diags[1].Args)
}

func TestJavaExtractor_Invocations(t *testing.T) {
	gc := collect(t)
	fCtx := gc.FileContexts[getTestFilePath("web/OrderViewModel.java")]

	nodes, err := java.NewJavaExtractor().Extract(fCtx, nil)
	require.NoError(t, err)

	var calls []*model.Invocation
	for _, n := range nodes {
		if inv, ok := n.(*model.Invocation); ok {
			calls = append(calls, inv)
		}
	}
	require.Len(t, calls, 4)
	assert.Equal(t, "modelState.addModelError", calls[0].Target)
	assert.Equal(t, model.ExprIdentifier, calls[2].Arguments[0].Kind)
	assert.Equal(t, "redirectToAction", calls[3].Target)
	assert.Equal(t, model.ExprOther, calls[3].Arguments[0].Kind)
}
