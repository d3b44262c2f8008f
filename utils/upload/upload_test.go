package upload_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muhammadheryan/bhrc-portal/constant"
	cerr "github.com/muhammadheryan/bhrc-portal/utils/errors"
	"github.com/muhammadheryan/bhrc-portal/utils/upload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestStore_SaveImageCreatesThumbnail(t *testing.T) {
	root := t.TempDir()
	store := upload.NewStore(root, "/uploads/", 0)

	data := pngBytes(t, 800, 600)
	stored, err := store.Save(upload.KindImage, "Rally Photo.PNG", int64(len(data)), bytes.NewReader(data))
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(stored.Filename, ".png"))
	assert.Equal(t, "/uploads/images/"+stored.Filename, stored.URL)
	assert.Equal(t, "/uploads/images/thumb_"+stored.Filename, stored.ThumbnailURL)
	assert.Equal(t, int64(len(data)), stored.Size)

	_, err = os.Stat(filepath.Join(root, "images", stored.Filename))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(root, "images", "thumb_"+stored.Filename))
	assert.NoError(t, err)
}

func TestStore_SaveDocument(t *testing.T) {
	root := t.TempDir()
	store := upload.NewStore(root, "https://cdn.example.org/uploads", 0)

	stored, err := store.Save(upload.KindDocument, "affidavit.pdf", 4, strings.NewReader("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.org/uploads/documents/"+stored.Filename, stored.URL)
	assert.Empty(t, stored.ThumbnailURL)
}

func TestStore_Rejections(t *testing.T) {
	store := upload.NewStore(t.TempDir(), "/uploads", 10)

	_, err := store.Save(upload.KindImage, "script.php", 3, strings.NewReader("<?php"))
	assert.True(t, cerr.Is(err, constant.ErrFileTypeNotAllowed))

	_, err = store.Save(upload.KindDocument, "photo.jpg", 3, strings.NewReader("abc"))
	assert.True(t, cerr.Is(err, constant.ErrFileTypeNotAllowed))

	_, err = store.Save(upload.KindDocument, "big.txt", 11, strings.NewReader(strings.Repeat("a", 11)))
	assert.True(t, cerr.Is(err, constant.ErrFileTooLarge))

	// declared size under the cap but the body is larger
	_, err = store.Save(upload.KindDocument, "liar.txt", 1, strings.NewReader(strings.Repeat("a", 50)))
	assert.True(t, cerr.Is(err, constant.ErrFileTooLarge))
}

func TestStore_Delete(t *testing.T) {
	root := t.TempDir()
	store := upload.NewStore(root, "/uploads", 0)

	stored, err := store.Save(upload.KindDocument, "notes.txt", 5, strings.NewReader("hello"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(upload.KindDocument, "../documents/"+stored.Filename))
	_, err = os.Stat(filepath.Join(root, "documents", stored.Filename))
	assert.True(t, os.IsNotExist(err))

	err = store.Delete(upload.KindDocument, stored.Filename)
	assert.True(t, cerr.Is(err, constant.ErrNotFound))
}

func TestParseKind(t *testing.T) {
	k, ok := upload.ParseKind("image")
	assert.True(t, ok)
	assert.Equal(t, upload.KindImage, k)
	_, ok = upload.ParseKind("video")
	assert.False(t, ok)
}
