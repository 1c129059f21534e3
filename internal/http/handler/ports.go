package handler

import (
	"context"
	"gallery/internal/core"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name GalleryService . GalleryService
type GalleryService interface {
	Register(ctx context.Context, msg core.RegisterMessage) (core.UserRecord, string, error)
	Login(ctx context.Context, msg core.AuthMessage) (core.UserRecord, string, error)
	CurrentUser(token string) (core.Identity, error)
	UploadPhoto(ctx context.Context, ident core.Identity, msg core.UploadMessage) (core.PhotoRecord, error)
	DeletePhoto(ctx context.Context, ident core.Identity, photoID string) error
	ListPhotos(ctx context.Context, query core.ListQuery) ([]core.PhotoRecord, error)
	Ping(ctx context.Context) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name FileResolver . FileResolver
type FileResolver interface {
	FilePath(name string) (string, error)
}
