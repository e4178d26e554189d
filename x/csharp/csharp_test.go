package csharp_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodMac/go-treesitter-fht-analyzer/core"
	"github.com/CodMac/go-treesitter-fht-analyzer/extractor"
	"github.com/CodMac/go-treesitter-fht-analyzer/model"
	"github.com/CodMac/go-treesitter-fht-analyzer/parser"
	"github.com/CodMac/go-treesitter-fht-analyzer/rule"
	"github.com/CodMac/go-treesitter-fht-analyzer/sink"
	"github.com/CodMac/go-treesitter-fht-analyzer/x/csharp"
)

func testFile(name string) string {
	return filepath.Join("testdata", name)
}

func collect(t *testing.T, names ...string) *core.GlobalContext {
	t.Helper()

	p, err := parser.NewParser(model.LangCSharp)
	require.NoError(t, err)
	defer p.Close()

	gc := core.NewGlobalContext(csharp.NewCSharpSymbolResolver(), csharp.NewCSharpNoiseFilter())
	for _, name := range names {
		path := testFile(name)
		tree, src, err := p.ParseFile(path)
		require.NoError(t, err)

		fc, err := csharp.NewCSharpCollector().CollectDefinitions(tree, path, src)
		require.NoError(t, err)
		t.Cleanup(fc.Close)
		gc.RegisterFileContext(fc)
	}
	gc.Link()
	return gc
}

func analyze(t *testing.T, names ...string) []model.Diagnostic {
	t.Helper()

	gc := collect(t, names...)
	reg, err := rule.BuildRegistry(rule.Settings{})
	require.NoError(t, err)

	s := sink.New()
	ext := csharp.NewCSharpExtractor()
	for _, name := range names {
		fc := gc.FileContexts[testFile(name)]
		require.NotNil(t, fc)

		nodes, err := ext.Extract(fc, nil)
		require.NoError(t, err)
		for _, n := range nodes {
			require.Empty(t, reg.Dispatch(n, gc.SemanticModel(), s))
		}
	}
	return s.Sorted()
}

var allFiles = []string{"Models.cs", "SplitModelBase.cs", "Vendor.cs", "ViewModels.cs", "FileScoped.cs", "OrderController.cs"}

func TestAnalyze_EndToEnd(t *testing.T) {
	diags := analyze(t, allFiles...)

	type want struct {
		rule string
		file string
		line int
		arg  string
	}
	expected := []want{
		{rule.InheritanceCheckID, "FileScoped.cs", 5, "UserViewModel"},
		{rule.InheritanceCheckID, "FileScoped.cs", 13, "RoleInputModel"},
		{rule.StringLiteralCheckID, "OrderController.cs", 12, `"Status"`},
		{rule.StringLiteralCheckID, "OrderController.cs", 17, `"Details"`},
		{rule.StringLiteralCheckID, "OrderController.cs", 18, `@"Details"`},
		{rule.StringLiteralCheckID, "OrderController.cs", 19, `@"""abc"`},
		{rule.StringLiteralCheckID, "OrderController.cs", 20, `@""""`},
		{rule.StringLiteralCheckID, "OrderController.cs", 26, `$"Edit{id}"`},
		{rule.InheritanceCheckID, "ViewModels.cs", 9, "OrderViewModel"},
		{rule.InheritanceCheckID, "ViewModels.cs", 30, "AliasedViewModel"},
		{rule.InheritanceCheckID, "ViewModels.cs", 34, "NestedViewModel"},
		{rule.InheritanceCheckID, "ViewModels.cs", 52, "EditViewModel"},
	}

	got := make([]want, 0, len(diags))
	for _, d := range diags {
		require.Len(t, d.Args, 1)
		got = append(got, want{d.RuleID(), filepath.Base(d.Location.FilePath), d.Location.StartLine, d.Args[0]})
	}
	assert.Equal(t, expected, got)

	for _, d := range diags {
		assert.Equal(t, model.SeverityError, d.Severity())
	}
}

func TestAnalyze_Messages(t *testing.T) {
	diags := analyze(t, "Models.cs", "ViewModels.cs", "OrderController.cs")

	messages := make(map[string]bool)
	for _, d := range diags {
		messages[d.Message()] = true
	}
	assert.True(t, messages["Type OrderViewModel's base class must be annotated with IsPolymorphicBaseClassAttribute"])
	assert.True(t, messages[`Prefer using nameof or string.Empty other than literal string: $"Edit{id}"`])
}

func TestAnalyze_MarkerMissingFromPartialPart(t *testing.T) {
	// 缺少第二个部分时，SplitModelBase 没有标记特性
	diags := analyze(t, "Models.cs", "ViewModels.cs")

	var names []string
	for _, d := range diags {
		if d.RuleID() == rule.InheritanceCheckID {
			names = append(names, d.Args[0])
		}
	}
	assert.Contains(t, names, "SplitViewModel")
	assert.NotContains(t, names, "CustomerInputModel")
}

func TestCollector_Definitions(t *testing.T) {
	gc := collect(t, "Models.cs", "SplitModelBase.cs", "ViewModels.cs", "FileScoped.cs")

	fc := gc.FileContexts[testFile("ViewModels.cs")]
	require.NotNil(t, fc)
	assert.Equal(t, "FHT.Web.ViewModels", fc.PackageName)
	require.Contains(t, fc.Aliases, "BaseAlias")
	assert.Equal(t, "FHT.Models.ModelBase", fc.Aliases["BaseAlias"].RawImportPath)

	var imports []string
	for _, imp := range fc.Imports {
		imports = append(imports, imp.RawImportPath)
	}
	assert.Equal(t, []string{"System.Collections.Generic", "FHT.Models", "FHT.Models.Nested", "Vendor.Models"}, imports)

	edit := gc.Definitions("FHT.Web.ViewModels.Screens.EditViewModel")
	require.Len(t, edit, 1)
	assert.Equal(t, "FHT.Web.ViewModels.Screens", edit[0].ContainerQN)
	assert.Equal(t, "FHT.Web.ViewModels", edit[0].Namespace)
	assert.Equal(t, []string{"ModelBase"}, edit[0].BaseRefs)

	assert.True(t, gc.Has("FHT.Models.Nested.NestedModelBase"))
	assert.True(t, gc.Has("FHT.Admin.RoleInputModel"))

	iface := gc.Definitions("FHT.Models.IModelBase")
	require.Len(t, iface, 1)
	assert.Equal(t, model.Interface, iface[0].Kind)
}

func TestLink_Symbols(t *testing.T) {
	gc := collect(t, allFiles...)

	split, ok := gc.Symbol("FHT.Models.SplitModelBase")
	require.True(t, ok)
	assert.True(t, split.HasAttribute(rule.DefaultMarkerAttribute))
	assert.True(t, split.HasAttribute("SerializableAttribute"))
	assert.Equal(t, "FHT.Models", split.Namespace)

	order, ok := gc.Symbol("FHT.Web.ViewModels.OrderViewModel")
	require.True(t, ok)
	require.NotNil(t, order.BaseType)
	assert.Equal(t, "FHT.Models.ModelBase", order.BaseType.QualifiedName)

	qualified, ok := gc.Symbol("FHT.Web.ViewModels.QualifiedViewModel")
	require.True(t, ok)
	require.NotNil(t, qualified.BaseType)
	assert.Equal(t, "FHT.Models.ModelBase", qualified.BaseType.QualifiedName)

	for _, qn := range []string{
		"FHT.Web.ViewModels.ContractViewModel",
		"FHT.Web.ViewModels.UnknownViewModel",
		"FHT.Web.Controllers.OrderController",
	} {
		sym, ok := gc.Symbol(qn)
		require.True(t, ok, qn)
		assert.Nil(t, sym.BaseType, qn)
	}

	external, ok := gc.Symbol("FHT.Web.ViewModels.ExternalViewModel")
	require.True(t, ok)
	require.NotNil(t, external.BaseType)
	assert.Equal(t, "Vendor.Models", external.BaseType.Namespace)
}

func TestExtractor_Nodes(t *testing.T) {
	gc := collect(t, "OrderController.cs")
	fc := gc.FileContexts[testFile("OrderController.cs")]

	nodes, err := csharp.NewCSharpExtractor().Extract(fc, nil)
	require.NoError(t, err)

	var classes []*model.ClassDeclaration
	var calls []*model.Invocation
	var comparisons []*model.Comparison
	for _, n := range nodes {
		switch v := n.(type) {
		case *model.ClassDeclaration:
			classes = append(classes, v)
		case *model.Invocation:
			calls = append(calls, v)
		case *model.Comparison:
			comparisons = append(comparisons, v)
		}
	}

	require.Len(t, classes, 1)
	assert.Equal(t, "FHT.Web.Controllers.OrderController", classes[0].QualifiedName)
	assert.Equal(t, []model.TypeRef{{Text: "Controller", Simple: true}}, classes[0].BaseTypes)

	require.Len(t, comparisons, 2)
	assert.Equal(t, model.KindEquals, comparisons[0].Kind())
	assert.Equal(t, model.ExprStringLiteral, comparisons[0].Right.Kind)
	assert.Equal(t, model.KindNotEquals, comparisons[1].Kind())
	assert.Equal(t, model.ExprLiteral, comparisons[1].Right.Kind)

	byTarget := make(map[string][]*model.Invocation)
	for _, c := range calls {
		byTarget[c.Target] = append(byTarget[c.Target], c)
	}
	require.Len(t, byTarget["ModelState.AddModelError"], 4)
	assert.Equal(t, model.ExprOther, byTarget["ModelState.AddModelError"][1].Arguments[0].Kind)
	assert.Equal(t, model.ExprOther, byTarget["Encode"][0].Arguments[0].Kind)
	assert.Equal(t, model.ExprInterpolatedString, byTarget["RedirectToAction"][0].Arguments[0].Kind)
	assert.Contains(t, byTarget, "this.RedirectToAction")

	only, err := csharp.NewCSharpExtractor().Extract(fc, extractor.NewKindSet(model.KindNotEquals))
	require.NoError(t, err)
	require.Len(t, only, 1)
	assert.Equal(t, model.KindNotEquals, only[0].Kind())
}

func TestAttributeName(t *testing.T) {
	assert.Equal(t, "IsPolymorphicBaseClassAttribute", csharp.AttributeName("IsPolymorphicBaseClass"))
	assert.Equal(t, "IsPolymorphicBaseClassAttribute", csharp.AttributeName("FHT.IsPolymorphicBaseClassAttribute"))
	assert.Equal(t, "JsonDerivedTypeAttribute", csharp.AttributeName("global::System.Text.Json.Serialization.JsonDerivedType"))
	assert.Equal(t, "KnownTypeAttribute", csharp.AttributeName("KnownType<T>"))
}
