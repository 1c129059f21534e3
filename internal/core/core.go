package core

import (
	"context"
	"errors"
	"fmt"
	"gallery/internal/repository"
	tokenIssuer "gallery/pkg/token"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrUsernameTaken error = errors.New("username already taken")
var ErrInvalidCredentials error = errors.New("invalid username or password")
var ErrInvalidSession error = errors.New("session is not valid")
var ErrPhotoNotFound error = errors.New("photo not found")
var ErrNotOwner error = errors.New("photo belongs to another user")

const sessionTTL = 24 * time.Hour
const uploadTimeFormat = "2006-01-02 15:04"

// Comparing against a fixed hash keeps login failures for unknown users on
// the same code path as wrong passwords.
const unknownUserHash = "$2a$10$7PrikY/17DYiRAA6JlaGl.yo26gwhTT53ESuovxGWvWJ4HhvGI/GK"

// Gallery coordinates credentials, sessions, blob storage and the photo
// catalog behind the HTTP surface.
type Gallery struct {
	logs   *zap.SugaredLogger
	repo   Repository
	tokens TokenIssuer
	blobs  BlobStore
}

func NewGallery(logger *zap.SugaredLogger, repo Repository, tokens TokenIssuer, blobs BlobStore) *Gallery {
	return &Gallery{
		logs:   logger,
		repo:   repo,
		tokens: tokens,
		blobs:  blobs,
	}
}

// Register creates a new user and logs them straight in, returning the new
// record together with a signed session token.
func (g *Gallery) Register(ctx context.Context, msg RegisterMessage) (UserRecord, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserRecord{}, "", fmt.Errorf("hash password: %w", err)
	}

	user := repository.User{
		ID:           uuid.NewString(),
		Username:     msg.Username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := g.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return UserRecord{}, "", ErrUsernameTaken
		}
		return UserRecord{}, "", fmt.Errorf("create user: %w", err)
	}

	signed, err := g.issueSession(user)
	if err != nil {
		return UserRecord{}, "", err
	}

	g.logs.Infow("user registered", "userId", user.ID, "username", user.Username)

	return UserRecord{ID: user.ID, Username: user.Username}, signed, nil
}

// Login verifies the credentials and returns a signed session token. Unknown
// usernames and wrong passwords both come back as ErrInvalidCredentials.
func (g *Gallery) Login(ctx context.Context, msg AuthMessage) (UserRecord, string, error) {
	user, err := g.repo.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword([]byte(unknownUserHash), []byte(msg.Password))
			return UserRecord{}, "", ErrInvalidCredentials
		}
		return UserRecord{}, "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return UserRecord{}, "", ErrInvalidCredentials
	}

	signed, err := g.issueSession(user)
	if err != nil {
		return UserRecord{}, "", err
	}

	return UserRecord{ID: user.ID, Username: user.Username}, signed, nil
}

// CurrentUser resolves a session token back to the identity it was issued
// for. Any token the issuer rejects maps to ErrInvalidSession.
func (g *Gallery) CurrentUser(token string) (Identity, error) {
	claims, err := g.tokens.Validate(token)
	if err != nil {
		return Identity{}, ErrInvalidSession
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return Identity{}, ErrInvalidSession
	}

	username, _ := claims["username"].(string)

	return Identity{UserID: sub, Username: username}, nil
}

// UploadPhoto validates the file, stores its bytes and records the photo.
// When the insert fails after the blob was written, the blob is removed again
// so no orphan file survives a failed upload.
func (g *Gallery) UploadPhoto(ctx context.Context, ident Identity, msg UploadMessage) (PhotoRecord, error) {
	if msg.Content == nil {
		return PhotoRecord{}, ErrMissingFile
	}

	if msg.Name == "" || utf8.RuneCountInString(msg.Name) > MaxPhotoNameLen {
		return PhotoRecord{}, ErrInvalidName
	}

	if err := ValidateUpload(msg.Filename, msg.Size); err != nil {
		return PhotoRecord{}, err
	}

	storageName, err := NewStorageName(msg.Filename)
	if err != nil {
		return PhotoRecord{}, err
	}

	if err := g.blobs.Put(storageName, msg.Content); err != nil {
		return PhotoRecord{}, fmt.Errorf("store blob: %w", err)
	}

	photo := repository.Photo{
		ID:             uuid.NewString(),
		OwnerUserID:    ident.UserID,
		Name:           msg.Name,
		UploadDatetime: time.Now().UTC(),
		StoredFilename: storageName,
	}

	if err := g.repo.CreatePhoto(ctx, photo); err != nil {
		if delErr := g.blobs.Delete(storageName); delErr != nil {
			g.logs.Errorw("failed to remove blob after insert failure",
				"error", delErr,
				"storedFilename", storageName)
		}
		return PhotoRecord{}, fmt.Errorf("record photo: %w", err)
	}

	g.logs.Infow("photo uploaded",
		"photoId", photo.ID,
		"userId", ident.UserID,
		"storedFilename", storageName)

	return g.photoToRecord(photo), nil
}

// DeletePhoto removes the caller's photo. The row disappears first; blob
// removal afterwards is best-effort and only logged when it fails.
func (g *Gallery) DeletePhoto(ctx context.Context, ident Identity, photoID string) error {
	photo, err := g.repo.GetPhotoByID(ctx, photoID)
	if err != nil {
		if errors.Is(err, repository.ErrPhotoNotFound) {
			return ErrPhotoNotFound
		}
		return fmt.Errorf("get photo by id: %w", err)
	}

	if photo.OwnerUserID != ident.UserID {
		return ErrNotOwner
	}

	deleted, err := g.repo.DeletePhotoOwnedBy(ctx, photoID, ident.UserID)
	if err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	if !deleted {
		// a concurrent delete got there first
		return ErrPhotoNotFound
	}

	if err := g.blobs.Delete(photo.StoredFilename); err != nil {
		g.logs.Errorw("failed to remove blob for deleted photo",
			"error", err,
			"photoId", photoID,
			"storedFilename", photo.StoredFilename)
	}

	return nil
}

// ListPhotos returns the shared gallery ordered by the requested sort key,
// newest first by default.
func (g *Gallery) ListPhotos(ctx context.Context, query ListQuery) ([]PhotoRecord, error) {
	sortByName := query.Sort == "name"
	ascending := query.Order == "asc"

	photos, err := g.repo.ListPhotos(ctx, sortByName, ascending, query.Search)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}

	records := make([]PhotoRecord, len(photos))
	for i, photo := range photos {
		records[i] = g.photoToRecord(photo)
	}

	return records, nil
}

func (g *Gallery) Ping(ctx context.Context) error {
	if err := g.repo.Ping(ctx); err != nil {
		return fmt.Errorf("ping repository: %w", err)
	}

	return nil
}

func (g *Gallery) issueSession(user repository.User) (string, error) {
	info := tokenIssuer.Info{
		Username:   user.Username,
		Subject:    user.ID,
		Expiration: sessionTTL,
	}

	token := g.tokens.Generate(info)
	signed, err := g.tokens.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

func (g *Gallery) photoToRecord(photo repository.Photo) PhotoRecord {
	return PhotoRecord{
		ID:             photo.ID,
		Name:           photo.Name,
		UploadDatetime: photo.UploadDatetime.Format(uploadTimeFormat),
		ImageURL:       g.blobs.URLFor(photo.StoredFilename),
		OwnerUserID:    photo.OwnerUserID,
	}
}
