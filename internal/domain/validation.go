package domain

// Входной payload загрузки (как пришёл с провода)
type UploadInput struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Data     string `json:"data"` // base64
	IsPublic bool   `json:"isPublic"`
	ParentID string `json:"parentId"`
}

// Нормализованный результат валидации
type UploadData struct {
	Name     string
	Type     FileType
	Data     string
	IsPublic bool
}

// ValidateUpload проверяет payload в фиксированном порядке:
// name -> type -> data. Порядок — часть контракта ответа.
func ValidateUpload(in UploadInput) (UploadData, error) {
	if in.Name == "" {
		return UploadData{}, ErrMissingName
	}
	if !ValidFileType(in.Type) {
		return UploadData{}, ErrMissingType
	}
	if FileType(in.Type) != TypeFolder && in.Data == "" {
		return UploadData{}, ErrMissingData
	}
	return UploadData{
		Name:     in.Name,
		Type:     FileType(in.Type),
		Data:     in.Data, // для папок игнорируется
		IsPublic: in.IsPublic,
	}, nil
}
