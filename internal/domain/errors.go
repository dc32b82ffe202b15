package domain

import "errors"

// Бизнес-ошибки (маппятся на HTTP коды в transport/web/v1)
var (
	ErrUnauth     = errors.New("unauthorized") // 401, детали наружу не утекают
	ErrNotFound   = errors.New("not_found")    // 404 (в т.ч. чужие файлы — не раскрываем существование)
	ErrUnexpected = errors.New("unexpected")   // 500
)

// ValidationError несёт точный текст ответа API (контракт фиксирован).
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

var (
	ErrMissingEmail    = ValidationError("Missing email")
	ErrMissingPassword = ValidationError("Missing password")
	ErrEmailTaken      = ValidationError("Already exist")

	ErrMissingName     = ValidationError("Missing name")
	ErrMissingType     = ValidationError("Missing type")
	ErrMissingData     = ValidationError("Missing data")
	ErrParentNotFound  = ValidationError("Parent not found")
	ErrParentNotFolder = ValidationError("Parent is not a folder")

	// структурно валидный запрос, но у папки нет контента
	ErrFolderNoContent = ValidationError("A folder doesn't have content")
)
