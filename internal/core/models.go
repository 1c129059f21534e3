package core

import "io"

type UserRecord struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Identity is the authenticated principal extracted from a session token.
type Identity struct {
	UserID   string
	Username string
}

type RegisterMessage struct {
	Username string
	Password string
}

type AuthMessage struct {
	Username string
	Password string
}

type UploadMessage struct {
	Name     string
	Filename string
	Size     int64
	Content  io.Reader
}

type ListQuery struct {
	Sort   string
	Order  string
	Search string
}

type PhotoRecord struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	UploadDatetime string `json:"upload_datetime"`
	ImageURL       string `json:"image_url"`
	OwnerUserID    string `json:"owner_user_id"`
}
