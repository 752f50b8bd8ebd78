package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freemodule/backend/internal/pkg/apperrors"
)

// makeFileHeader builds a real *multipart.FileHeader by round-tripping a
// multipart body, so Save sees exactly what gin hands it.
func makeFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	ls, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)
	return ls
}

func TestSave_PDF(t *testing.T) {
	ls := newTestStorage(t)

	fh := makeFileHeader(t, "notes.pdf", "application/pdf", []byte("%PDF-1.4 test"))
	url, err := ls.Save(fh)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".pdf"))

	stored := filepath.Join(ls.basePath, filepath.Base(url))
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 test"), data)
}

func TestSave_NilHeader(t *testing.T) {
	ls := newTestStorage(t)

	_, err := ls.Save(nil)
	assert.ErrorIs(t, err, apperrors.ErrFileRequired)
}

func TestSave_UnsupportedType(t *testing.T) {
	ls := newTestStorage(t)

	fh := makeFileHeader(t, "avatar.png", "image/png", []byte("not a document"))
	_, err := ls.Save(fh)
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedFileType)
}

func TestSave_TooLarge(t *testing.T) {
	ls := newTestStorage(t)
	ls.maxSize = 8

	fh := makeFileHeader(t, "big.pdf", "application/pdf", []byte("more than eight bytes"))
	_, err := ls.Save(fh)
	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
}

func TestDelete(t *testing.T) {
	ls := newTestStorage(t)

	fh := makeFileHeader(t, "notes.pdf", "application/pdf", []byte("%PDF-1.4"))
	url, err := ls.Save(fh)
	require.NoError(t, err)

	require.NoError(t, ls.Delete(url))
	_, err = os.Stat(filepath.Join(ls.basePath, filepath.Base(url)))
	assert.True(t, os.IsNotExist(err))

	// Deleting again is a no-op, as is an empty URL.
	assert.NoError(t, ls.Delete(url))
	assert.NoError(t, ls.Delete(""))
}
