package repository

import "time"

type User struct {
	ID           string    `gorm:"primaryKey;autoIncrement:false"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

type Photo struct {
	ID             string    `gorm:"primaryKey;autoIncrement:false"`
	OwnerUserID    string    `gorm:"size:36;not null;index"`
	Name           string    `gorm:"type:varchar(40);not null"`
	UploadDatetime time.Time `gorm:"not null;index"`
	StoredFilename string    `gorm:"type:varchar(255);uniqueIndex;not null"`
}
