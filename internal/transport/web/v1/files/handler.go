package files

import (
	"log"

	"github.com/EgorLis/file-vault/internal/domain"
)

type Handler struct {
	Log     *log.Logger
	Files   domain.FilesRepo
	Storage domain.BlobStorage
	Queue   domain.JobQueue
}
