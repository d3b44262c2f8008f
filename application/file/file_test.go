package file

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muhammadheryan/bhrc-portal/constant"
	activitymocks "github.com/muhammadheryan/bhrc-portal/mocks/application/activity"
	"github.com/muhammadheryan/bhrc-portal/model"
	cerr "github.com/muhammadheryan/bhrc-portal/utils/errors"
	"github.com/muhammadheryan/bhrc-portal/utils/upload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var admin = &model.Principal{UserID: 1, Role: constant.RoleAdmin}

func errType(t *testing.T, err error) constant.ErrorType {
	t.Helper()
	var ce cerr.CustomError
	require.True(t, errors.As(err, &ce), "error type = %T, want CustomError", err)
	return ce.ErrorType()
}

func TestFileApp_Upload(t *testing.T) {
	tests := []struct {
		name    string
		kind    string
		file    string
		size    int64
		wantErr constant.ErrorType
	}{
		{name: "document stored", kind: "document", file: "report.pdf", size: 11},
		{name: "unknown kind", kind: "video", file: "clip.mp4", size: 11, wantErr: constant.ErrInvalidRequest},
		{name: "extension not allowed", kind: "image", file: "shell.php", size: 11, wantErr: constant.ErrFileTypeNotAllowed},
		{name: "declared size over the cap", kind: "document", file: "big.pdf", size: 1 << 30, wantErr: constant.ErrFileTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			act := activitymocks.NewActivityApp(t)
			if tt.wantErr == constant.Successful {
				act.On("Log", mock.Anything, mock.Anything).Return().Once()
			}
			app := NewFileApp(upload.NewStore(root, "/uploads", 1024), act)

			got, err := app.Upload(context.Background(), admin, tt.kind, tt.file, tt.size, strings.NewReader("hello world"))
			if tt.wantErr != constant.Successful {
				assert.Equal(t, tt.wantErr, errType(t, err))
				return
			}
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(got.URL, "/uploads/documents/"))
			assert.Equal(t, "report.pdf", got.OriginalName)
			_, statErr := os.Stat(filepath.Join(root, "documents", got.Filename))
			assert.NoError(t, statErr)
		})
	}
}

func TestFileApp_Delete(t *testing.T) {
	root := t.TempDir()
	act := activitymocks.NewActivityApp(t)
	act.On("Log", mock.Anything, mock.Anything).Return().Twice()
	app := NewFileApp(upload.NewStore(root, "/uploads", 0), act)

	got, err := app.Upload(context.Background(), admin, "document", "notes.txt", 3, bytes.NewReader([]byte("abc")))
	require.NoError(t, err)

	require.NoError(t, app.Delete(context.Background(), admin, "document", got.Filename))
	err = app.Delete(context.Background(), admin, "document", got.Filename)
	assert.Equal(t, constant.ErrNotFound, errType(t, err))
}
