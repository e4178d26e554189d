package processor_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodMac/go-treesitter-fht-analyzer/model"
	"github.com/CodMac/go-treesitter-fht-analyzer/processor"
	"github.com/CodMac/go-treesitter-fht-analyzer/rule"
	_ "github.com/CodMac/go-treesitter-fht-analyzer/x/csharp"
)

func getTestFilePath(name string) string {
	return filepath.Join("..", "x", "csharp", "testdata", name)
}

func newProcessor(t *testing.T, workers int) *processor.FileProcessor {
	t.Helper()
	reg, err := rule.BuildRegistry(rule.Settings{})
	require.NoError(t, err)
	return processor.NewFileProcessor(model.LangCSharp, reg, workers, nil)
}

func TestFileProcessor_ProcessFiles_CSharp(t *testing.T) {
	files, err := processor.DiscoverFiles(filepath.Join("..", "x", "csharp", "testdata"), model.LangCSharp, nil)
	require.NoError(t, err)
	require.Len(t, files, 6)

	res, err := newProcessor(t, 4).ProcessFiles(context.Background(), files)
	require.NoError(t, err)

	assert.Equal(t, 6, res.Files)
	assert.Empty(t, res.Skipped)
	assert.Empty(t, res.Faults)
	assert.True(t, res.HasErrors())

	counts := make(map[string]int)
	for _, d := range res.Diagnostics {
		counts[d.RuleID()]++
	}
	assert.Equal(t, 6, counts[rule.InheritanceCheckID])
	assert.Equal(t, 6, counts[rule.StringLiteralCheckID])

	for i := 1; i < len(res.Diagnostics); i++ {
		prev, cur := res.Diagnostics[i-1].Location, res.Diagnostics[i].Location
		assert.True(t, prev.FilePath < cur.FilePath || (prev.FilePath == cur.FilePath && prev.StartLine <= cur.StartLine))
	}
}

func TestFileProcessor_Deterministic(t *testing.T) {
	files := []string{getTestFilePath("Models.cs"), getTestFilePath("ViewModels.cs"), getTestFilePath("OrderController.cs")}

	first, err := newProcessor(t, 1).ProcessFiles(context.Background(), files)
	require.NoError(t, err)
	second, err := newProcessor(t, 8).ProcessFiles(context.Background(), files)
	require.NoError(t, err)

	assert.Equal(t, first.Diagnostics, second.Diagnostics)
}

func TestFileProcessor_SkipsUnreadableFiles(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "Missing.cs")
	files := []string{getTestFilePath("OrderController.cs"), missing}

	res, err := newProcessor(t, 2).ProcessFiles(context.Background(), files)
	require.NoError(t, err)

	assert.Equal(t, []string{missing}, res.Skipped)
	assert.Len(t, res.Diagnostics, 6)
}

func TestFileProcessor_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := newProcessor(t, 2).ProcessFiles(ctx, []string{getTestFilePath("OrderController.cs")})
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Empty(t, res.Diagnostics)
}

func TestFileProcessor_Empty(t *testing.T) {
	res, err := newProcessor(t, 0).ProcessFiles(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, res.Files)
	assert.False(t, res.HasErrors())
}

func TestDiscoverFiles(t *testing.T) {
	root := t.TempDir()
	for _, p := range []string{"src/A.cs", "src/B.CS", "src/readme.md", "bin/Gen.cs", "obj/Debug/X.cs"} {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("class A {}"), 0o644))
	}

	files, err := processor.DiscoverFiles(root, model.LangCSharp, []string{"bin", "obj"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "src", "A.cs"),
		filepath.Join(root, "src", "B.CS"),
	}, files)

	_, err = processor.DiscoverFiles(root, model.Language("cobol"), nil)
	assert.ErrorIs(t, err, model.ErrLanguageNotRegistered)
}
