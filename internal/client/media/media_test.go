package media

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/ARPaule28/fynd-app/internal/client/models"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestResolveFile_EmptyPath(t *testing.T) {
	_, err := ResolveFile("", models.MediaKindProfileImage)
	require.ErrorIs(t, err, ErrNoMediaSelected)
}

func TestResolveFile_MissingFile(t *testing.T) {
	_, err := ResolveFile(filepath.Join(t.TempDir(), "nope.mp4"), models.MediaKindHighlightVideo)
	require.ErrorIs(t, err, ErrNoMediaSelected)
}

func TestResolveFile_Directory(t *testing.T) {
	_, err := ResolveFile(t.TempDir(), models.MediaKindProfileImage)
	require.ErrorIs(t, err, ErrNoMediaSelected)
}

func TestResolveFile_OK(t *testing.T) {
	path := writeTempFile(t, "clip.mp4", "bytes")

	ref, err := ResolveFile(path, models.MediaKindHighlightVideo)
	require.NoError(t, err)
	require.Equal(t, path, ref.Path)
	require.Equal(t, models.MediaKindHighlightVideo, ref.Kind)
}

func TestResolveFile_PermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits not enforceable here")
	}
	dir := filepath.Join(t.TempDir(), "locked")
	require.NoError(t, os.Mkdir(dir, 0o700))
	path := filepath.Join(dir, "clip.mp4")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	require.NoError(t, os.Chmod(dir, 0o000))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o700) })

	_, err := ResolveFile(path, models.MediaKindHighlightVideo)
	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestOpen(t *testing.T) {
	path := writeTempFile(t, "pic.jpg", "jpeg-bytes")

	rc, err := Open(models.MediaRef{Path: path, Kind: models.MediaKindProfileImage})
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, "jpeg-bytes", string(data))
}

func TestOpen_EmptyRef(t *testing.T) {
	_, err := Open(models.MediaRef{})
	require.ErrorIs(t, err, ErrNoMediaSelected)
}
