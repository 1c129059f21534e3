package core

import (
	"context"
	"gallery/internal/repository"
	tokenIssuer "gallery/pkg/token"
	"io"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, user repository.User) error
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	CreatePhoto(ctx context.Context, photo repository.Photo) error
	GetPhotoByID(ctx context.Context, id string) (repository.Photo, error)
	DeletePhotoOwnedBy(ctx context.Context, photoID, ownerID string) (bool, error)
	ListPhotos(ctx context.Context, sortByName, ascending bool, search string) ([]repository.Photo, error)
	Ping(ctx context.Context) error
}

//counterfeiter:generate -o fake -fake-name TokenIssuer . TokenIssuer
type TokenIssuer interface {
	Generate(data tokenIssuer.Info) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name BlobStore . BlobStore
type BlobStore interface {
	Put(name string, content io.Reader) error
	Delete(name string) error
	URLFor(name string) string
}
