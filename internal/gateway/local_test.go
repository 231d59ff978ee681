package gateway

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRenderDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{
		"isa_1.png",
		"isa_2.png",
		"isa_12.png",
		"isa_a.png",
		"isa_3.txt",
		"sub/isa_4.png",
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	}
	return dir
}

func TestLocalLister_ListFiles(t *testing.T) {
	dir := makeRenderDir(t)
	lister := NewLocalLister()

	got, err := lister.ListFiles(context.Background(), dir, "isa_*.png")
	require.NoError(t, err)
	assert.Equal(t, []string{"isa_1.png", "isa_12.png", "isa_2.png", "isa_a.png"}, got)
}

func TestLocalLister_Extensions(t *testing.T) {
	dir := makeRenderDir(t)

	got, err := NewLocalLister(".txt").ListFiles(context.Background(), dir, "isa_*")
	require.NoError(t, err)
	assert.Equal(t, []string{"isa_3.txt"}, got)
}

func TestLocalLister_MissingDirectory(t *testing.T) {
	lister := NewLocalLister()

	_, err := lister.ListFiles(context.Background(), filepath.Join(t.TempDir(), "missing"), "*")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to access directory")
}

func TestLocalLister_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLocalLister().ListFiles(ctx, t.TempDir(), "*")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestListTemplateInstances_Local(t *testing.T) {
	dir := makeRenderDir(t)

	got, err := ListTemplateInstances(context.Background(), NewLocalLister(), dir, "isa_[1n].png")
	require.NoError(t, err)
	assert.Equal(t, []string{"isa_1.png", "isa_2.png"}, got)

	_, err = ListTemplateInstances(context.Background(), NewLocalLister(), filepath.Join(dir, "nope"), "isa_[1n].png")
	require.Error(t, err)
	assert.True(t, IsScanFailure(err))
}
