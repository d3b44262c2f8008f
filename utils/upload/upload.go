// Package upload stores multipart files on the shared upload directory.
package upload

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/muhammadheryan/bhrc-portal/constant"
	"github.com/muhammadheryan/bhrc-portal/utils/errors"
)

type Kind string

const (
	KindImage    Kind = "image"
	KindDocument Kind = "document"

	DefaultMaxSize  = 5 << 20
	thumbnailWidth  = 320
	thumbnailHeight = 240
	thumbnailPrefix = "thumb_"
)

var allowedExtensions = map[Kind]map[string]bool{
	KindImage:    {".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true},
	KindDocument: {".pdf": true, ".doc": true, ".docx": true, ".txt": true, ".rtf": true},
}

var directories = map[Kind]string{
	KindImage:    "images",
	KindDocument: "documents",
}

// Stored describes a saved file.
type Stored struct {
	Filename     string
	URL          string
	ThumbnailURL string
	Size         int64
}

type Store struct {
	root    string
	baseURL string
	maxSize int64
}

func NewStore(root, baseURL string, maxSize int64) *Store {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Store{root: root, baseURL: strings.TrimRight(baseURL, "/"), maxSize: maxSize}
}

func ParseKind(s string) (Kind, bool) {
	k := Kind(s)
	_, ok := allowedExtensions[k]
	return k, ok
}

// Check validates the original name and declared size before anything touches disk.
func (s *Store) Check(kind Kind, originalName string, size int64) error {
	exts, ok := allowedExtensions[kind]
	if !ok {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if !exts[strings.ToLower(filepath.Ext(originalName))] {
		return errors.SetCustomError(constant.ErrFileTypeNotAllowed)
	}
	if size > s.maxSize {
		return errors.SetCustomError(constant.ErrFileTooLarge)
	}
	return nil
}

// Save copies src into the kind directory under a random name. Images also get a thumbnail;
// a thumbnail failure leaves ThumbnailURL empty but keeps the original.
func (s *Store) Save(kind Kind, originalName string, size int64, src io.Reader) (*Stored, error) {
	if err := s.Check(kind, originalName, size); err != nil {
		return nil, err
	}

	dir := filepath.Join(s.root, directories[kind])
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(originalName))
	full := filepath.Join(dir, name)
	dst, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}

	// one byte past the limit tells us the declared size lied
	written, err := io.Copy(dst, io.LimitReader(src, s.maxSize+1))
	closeErr := dst.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(full)
		return nil, fmt.Errorf("write file: %w", err)
	}
	if written > s.maxSize {
		_ = os.Remove(full)
		return nil, errors.SetCustomError(constant.ErrFileTooLarge)
	}

	stored := &Stored{
		Filename: name,
		URL:      s.url(kind, name),
		Size:     written,
	}
	if kind == KindImage {
		if err := s.thumbnail(full, filepath.Join(dir, thumbnailPrefix+name)); err == nil {
			stored.ThumbnailURL = s.url(kind, thumbnailPrefix+name)
		}
	}
	return stored, nil
}

func (s *Store) thumbnail(src, dst string) error {
	img, err := imaging.Open(src, imaging.AutoOrientation(true))
	if err != nil {
		return err
	}
	thumb := imaging.Fit(img, thumbnailWidth, thumbnailHeight, imaging.Lanczos)
	return imaging.Save(thumb, dst)
}

// Delete removes a stored file and its thumbnail. Names are reduced to their base so
// a caller cannot escape the kind directory.
func (s *Store) Delete(kind Kind, filename string) error {
	dirName, ok := directories[kind]
	if !ok {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	base := filepath.Base(filename)
	if base == "." || base == "/" || base == ".." {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	full := filepath.Join(s.root, dirName, base)
	if err := os.Remove(full); err != nil {
		if os.IsNotExist(err) {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		return fmt.Errorf("remove file: %w", err)
	}
	_ = os.Remove(filepath.Join(s.root, dirName, thumbnailPrefix+base))
	return nil
}

func (s *Store) url(kind Kind, name string) string {
	return s.baseURL + "/" + path.Join(directories[kind], name)
}
