package domain

import (
	"time"

	"github.com/google/uuid"
)

// Базовые идентификаторы
type UserID = uuid.UUID
type FileID = uuid.UUID

// Пользователь
type User struct {
	ID        UserID    `json:"id"`
	Email     string    `json:"email"`
	PassHash  []byte    `json:"-"` // никогда не отдаём наружу
	CreatedAt time.Time `json:"created_at"`
}

// Тип файла — закрытое перечисление
type FileType string

const (
	TypeFolder FileType = "folder"
	TypeFile   FileType = "file"
	TypeImage  FileType = "image"
)

func ValidFileType(s string) bool {
	switch FileType(s) {
	case TypeFolder, TypeFile, TypeImage:
		return true
	}
	return false
}

// Метаданные файла (контент лежит в BlobStorage)
type File struct {
	ID      FileID   `json:"id"`
	OwnerID UserID   `json:"user_id"`
	Name    string   `json:"name"`
	Type    FileType `json:"type"`
	Public  bool     `json:"is_public"`

	// nil — корень дерева (сентинел "0" на проводе)
	ParentID *FileID `json:"parent_id"`

	// Где лежит контент; пусто для папок
	StorageKey string `json:"-"`

	CreatedAt time.Time `json:"created"`
}

// RootParent — значение parentId "нет родителя" во внешнем API.
const RootParent = "0"

// Ширины миниатюр; вариант лежит по ключу "<storageKey>_<width>".
var ThumbnailWidths = []int{100, 250, 500}

// ThumbnailEligible — политика: миниатюры строим только для изображений.
func ThumbnailEligible(t FileType) bool { return t == TypeImage }

func ValidThumbnailWidth(w int) bool {
	for _, tw := range ThumbnailWidths {
		if tw == w {
			return true
		}
	}
	return false
}
