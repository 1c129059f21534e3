package repository

import (
	"context"
	"errors"
	"fmt"
	"gallery/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrDuplicateUsername error = errors.New("username already taken")
var ErrPhotoNotFound error = errors.New("photo not found")

type GalleryRepository struct {
	db Storage
}

func NewGalleryRepository(db Storage) *GalleryRepository {
	return &GalleryRepository{
		db: db,
	}
}

func (r *GalleryRepository) Migrate() error {
	err := r.db.MigrateTable(&User{}, &Photo{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *GalleryRepository) CreateUser(ctx context.Context, user User) error {
	err := r.db.InsertRecord(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrDuplicateUsername
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *GalleryRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *GalleryRepository) CreatePhoto(ctx context.Context, photo Photo) error {
	err := r.db.InsertRecord(ctx, &photo)
	if err != nil {
		return fmt.Errorf("insert photo: %w", err)
	}

	return nil
}

func (r *GalleryRepository) GetPhotoByID(ctx context.Context, id string) (Photo, error) {
	var photo Photo

	err := r.db.GetOneBy(ctx, "id", id, &photo)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Photo{}, ErrPhotoNotFound
		}
		return Photo{}, fmt.Errorf("get photo by id: %w", err)
	}

	return photo, nil
}

// DeletePhotoOwnedBy removes the photo only when it still belongs to ownerID.
// The ownership check and the delete run as a single statement so concurrent
// deletes cannot race between check and act.
func (r *GalleryRepository) DeletePhotoOwnedBy(ctx context.Context, photoID, ownerID string) (bool, error) {
	affected, err := r.db.DeleteBy(ctx, &Photo{}, "id = ? AND owner_user_id = ?", photoID, ownerID)
	if err != nil {
		return false, fmt.Errorf("delete photo: %w", err)
	}

	return affected > 0, nil
}

// ListPhotos returns every photo sorted by name or upload time. Ties on the
// primary column always break by id descending to keep the order stable.
func (r *GalleryRepository) ListPhotos(ctx context.Context, sortByName, ascending bool, search string) ([]Photo, error) {
	column := "upload_datetime"
	if sortByName {
		column = "name"
	}

	direction := "DESC"
	if ascending {
		direction = "ASC"
	}

	order := fmt.Sprintf("%s %s, id DESC", column, direction)

	query := ""
	args := []any{}
	if search != "" {
		query = "name ILIKE ?"
		args = append(args, "%"+search+"%")
	}

	photos := []Photo{}
	err := r.db.FindOrdered(ctx, &photos, order, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}

	return photos, nil
}

func (r *GalleryRepository) Ping(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return fmt.Errorf("ping storage: %w", err)
	}

	return nil
}
