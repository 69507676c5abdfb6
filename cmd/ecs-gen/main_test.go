package main

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderAccess(t *testing.T) {
	src, err := render(accessTemplate, 3)
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "// Code generated by ecs-gen. DO NOT EDIT.")
	assert.Contains(t, out, "func And2[T1, T2 any](a1 Access[T1], a2 Access[T2]) Access[Tuple2[T1, T2]] {")
	assert.Contains(t, out, "func SetAnd3[T1, T2, T3 any](w1 Write[T1], w2 Write[T2], w3 Write[T3]) Write[Tuple3[T1, T2, T3]] {")
	assert.Contains(t, out, "return w.w1.mutates() || w.w2.mutates() || w.w3.mutates()")
	assert.NotContains(t, out, "And4")

	_, err = parser.ParseFile(token.NewFileSet(), "access_generated.go", src, parser.AllErrors)
	assert.NoError(t, err)
}

func TestRenderGroup(t *testing.T) {
	src, err := render(groupTemplate, 2)
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "type Group2[C, M, S any, T1 System[C, M, S], T2 System[C, M, S]] struct {")
	assert.Contains(t, out, "sig.observe(g.S2.Run(storage, queue, ctx))")
	assert.NotContains(t, out, "Group3")

	_, err = parser.ParseFile(token.NewFileSet(), "group_generated.go", src, parser.AllErrors)
	assert.NoError(t, err)
}

func TestRenderRejectsSmallArity(t *testing.T) {
	_, err := render(accessTemplate, 1)
	assert.Error(t, err)
}

func TestGenerateWritesFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generate(dir, 4))

	for name, want := range map[string]string{
		"access_generated.go": "func And4[",
		"group_generated.go":  "func NewGroup4[",
	} {
		src, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Contains(t, string(src), want)
	}

	assert.Error(t, generate(filepath.Join(dir, "missing", "dir"), 4))
}
