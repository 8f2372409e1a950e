// internal/app/features/uploads/handler.go
package uploads

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/sbassa/tutorhub/internal/app/system/apierrors"
	"github.com/sbassa/tutorhub/internal/app/system/filestore"
)

// maxUploadMemory bounds how much of a multipart body is buffered in memory
// before spilling to temp files.
const maxUploadMemory = 32 << 20

// Handler handles PDF upload and download.
type Handler struct {
	Files *filestore.Store
	Log   *zap.Logger
}

func NewHandler(files *filestore.Store, logger *zap.Logger) *Handler {
	return &Handler{Files: files, Log: logger}
}

// uploadResponse is the JSON body returned after a successful upload.
type uploadResponse struct {
	FileID   string `json:"file_id"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// ServeUpload handles POST /api/upload. Expects a multipart form with a
// "file" part; only .pdf filenames are accepted.
func (h *Handler) ServeUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		apierrors.BadRequest(w, r, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		apierrors.BadRequest(w, r, "Missing file field")
		return
	}
	defer file.Close()

	saved, err := h.Files.Save(header.Filename, file)
	if err != nil {
		if errors.Is(err, filestore.ErrUnsupportedFileType) {
			apierrors.BadRequest(w, r, "Only PDF files are allowed")
			return
		}
		h.Log.Error("save upload", zap.String("filename", header.Filename), zap.Error(err))
		apierrors.Internal(w, r, "Failed to store file")
		return
	}

	render.JSON(w, r, uploadResponse{
		FileID:   saved.ID,
		Filename: header.Filename,
		URL:      "/api/files/" + saved.StorageName,
	})
}

// ServeFile handles GET /api/files/{filename}. Streams a stored file back,
// 404 when the name is unknown or reaches outside the uploads directory.
func (h *Handler) ServeFile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "filename")

	path, err := h.Files.FullPath(name)
	if err != nil {
		apierrors.NotFound(w, r, "File not found")
		return
	}
	http.ServeFile(w, r, path)
}
