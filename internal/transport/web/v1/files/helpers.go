package files

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/EgorLis/file-vault/internal/domain"
)

// Внешнее представление файла; parentId наружу всегда строка,
// "0" — корневой сентинел.
type fileOut struct {
	ID       domain.FileID `json:"id"`
	UserID   domain.UserID `json:"userId"`
	Name     string        `json:"name"`
	Type     string        `json:"type"`
	IsPublic bool          `json:"isPublic"`
	ParentID string        `json:"parentId"`
}

func fileJSON(f domain.File) fileOut {
	out := fileOut{
		ID:       f.ID,
		UserID:   f.OwnerID,
		Name:     f.Name,
		Type:     string(f.Type),
		IsPublic: f.Public,
		ParentID: domain.RootParent,
	}
	if f.ParentID != nil {
		out.ParentID = f.ParentID.String()
	}
	return out
}

// rootParent — входящий parentId означает "корень"?
func rootParent(s string) bool {
	return s == "" || s == domain.RootParent
}

// pathID достаёт uuid из path-параметра {id}; ok=false на мусор.
func pathID(r *http.Request) (domain.FileID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
