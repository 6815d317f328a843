package avatars_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/avatars"
	"weather-dashboard/internal/models"
)

func uploadHeader(t *testing.T, filename, contentType string, body []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="avatar"; filename=%q`, filename))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(body)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["avatar"]
	require.Len(t, files, 1)
	return files[0]
}

func TestSaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := avatars.New(dir)
	require.NoError(t, err)

	ref, err := store.Save(uploadHeader(t, "face.PNG", "image/png", []byte("png-bytes")))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "/uploads/avatar-"))
	// The extension is kept, lower-cased.
	assert.True(t, strings.HasSuffix(ref, ".png"))

	path := filepath.Join(dir, strings.TrimPrefix(ref, "/uploads/"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)

	require.NoError(t, store.Remove(ref))
	assert.NoFileExists(t, path)

	// Removing the same reference again is a no-op.
	require.NoError(t, store.Remove(ref))
}

func TestSave_RejectsNonImage(t *testing.T) {
	store, err := avatars.New(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save(uploadHeader(t, "notes.txt", "text/plain", []byte("hello")))
	assert.ErrorIs(t, err, avatars.ErrNotImage)
}

func TestSave_RejectsOversizedFile(t *testing.T) {
	store, err := avatars.New(t.TempDir())
	require.NoError(t, err)

	big := bytes.Repeat([]byte("x"), avatars.MaxFileSize+1)
	_, err = store.Save(uploadHeader(t, "huge.png", "image/png", big))
	assert.ErrorIs(t, err, avatars.ErrTooLarge)
}

func TestRemove_IgnoresUnmanagedReferences(t *testing.T) {
	store, err := avatars.New(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Remove(models.DefaultAvatar))
	assert.NoError(t, store.Remove("https://example.com/avatar.png"))
	assert.NoError(t, store.Remove(""))
}

func TestIsStored(t *testing.T) {
	assert.True(t, avatars.IsStored("/uploads/avatar-123.png"))
	assert.False(t, avatars.IsStored(models.DefaultAvatar))
	assert.False(t, avatars.IsStored("avatar-123.png"))
}
