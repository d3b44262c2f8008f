package file

import (
	"context"
	"io"

	"github.com/muhammadheryan/bhrc-portal/application/activity"
	"github.com/muhammadheryan/bhrc-portal/constant"
	"github.com/muhammadheryan/bhrc-portal/model"
	"github.com/muhammadheryan/bhrc-portal/utils/errors"
	"github.com/muhammadheryan/bhrc-portal/utils/logger"
	"github.com/muhammadheryan/bhrc-portal/utils/upload"
	"go.uber.org/zap"
)

// Storage is the part of upload.Store the service needs.
type Storage interface {
	Check(kind upload.Kind, originalName string, size int64) error
	Save(kind upload.Kind, originalName string, size int64, src io.Reader) (*upload.Stored, error)
	Delete(kind upload.Kind, filename string) error
}

type FileApp interface {
	Upload(ctx context.Context, actor *model.Principal, kind, originalName string, size int64, src io.Reader) (*model.FileUploadResponse, error)
	Delete(ctx context.Context, actor *model.Principal, kind, filename string) error
}

type FileAppImpl struct {
	storage     Storage
	activityApp activity.ActivityApp
}

func NewFileApp(storage Storage, activityApp activity.ActivityApp) FileApp {
	return &FileAppImpl{storage: storage, activityApp: activityApp}
}

func parseKind(kind string) (upload.Kind, error) {
	k, ok := upload.ParseKind(kind)
	if !ok {
		return "", errors.SetCustomError(constant.ErrInvalidRequest).WithMessage("type must be image or document")
	}
	return k, nil
}

// passThrough keeps typed upload errors and hides the rest.
func passThrough(method string, err error) error {
	if _, ok := err.(errors.CustomError); ok {
		return err
	}
	logger.Error("["+method+"] err storage", zap.String("error", err.Error()))
	return errors.SetCustomError(constant.ErrInternal)
}

func (s *FileAppImpl) Upload(ctx context.Context, actor *model.Principal, kind, originalName string, size int64, src io.Reader) (*model.FileUploadResponse, error) {
	k, err := parseKind(kind)
	if err != nil {
		return nil, err
	}
	stored, err := s.storage.Save(k, originalName, size, src)
	if err != nil {
		return nil, passThrough("Upload", err)
	}

	s.activityApp.Log(ctx, model.ActivityEntry{
		ActorID:     &actor.UserID,
		Action:      constant.ActionFileUploaded,
		Description: "Uploaded " + originalName,
		Metadata:    map[string]any{"type": kind, "filename": stored.Filename, "size": stored.Size},
	})
	return &model.FileUploadResponse{
		Filename:     stored.Filename,
		OriginalName: originalName,
		URL:          stored.URL,
		ThumbnailURL: stored.ThumbnailURL,
		Size:         stored.Size,
		Type:         kind,
	}, nil
}

func (s *FileAppImpl) Delete(ctx context.Context, actor *model.Principal, kind, filename string) error {
	k, err := parseKind(kind)
	if err != nil {
		return err
	}
	if err := s.storage.Delete(k, filename); err != nil {
		return passThrough("Delete", err)
	}

	s.activityApp.Log(ctx, model.ActivityEntry{
		ActorID:     &actor.UserID,
		Action:      constant.ActionFileDeleted,
		Description: "Deleted " + filename,
		Metadata:    map[string]any{"type": kind, "filename": filename},
	})
	return nil
}
