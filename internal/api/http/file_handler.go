package http

import (
	"fmt"
	"io"
	"net/http"
	"path"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"truckrental-backend/internal/domain"
	"truckrental-backend/internal/service"
	"truckrental-backend/internal/storage"
)

// FileHandler persists uploaded truck images and documents and serves the
// stored files back.
type FileHandler struct {
	trucks      service.TruckService
	files       storage.FileStorage
	maxFileSize int64 // bytes
}

func NewFileHandler(trucks service.TruckService, files storage.FileStorage, maxFileSizeMB int64) *FileHandler {
	if maxFileSizeMB <= 0 {
		maxFileSizeMB = 10
	}
	return &FileHandler{
		trucks:      trucks,
		files:       files,
		maxFileSize: maxFileSizeMB << 20,
	}
}

var imageContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

// UploadImage accepts a multipart form with a "file" part and optional
// caption, display_order and is_primary fields.
func (h *FileHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	truckID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		badRequest(w, "invalid truck id")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)
	file, header, err := r.FormFile("file")
	if err != nil {
		badRequest(w, "missing file")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	ext, ok := imageContentTypes[contentType]
	if !ok {
		badRequest(w, "unsupported image type")
		return
	}

	img := &domain.TruckImage{
		TruckID:  truckID,
		FileName: header.Filename,
		MimeType: contentType,
		FileSize: header.Size,
		Caption:  r.FormValue("caption"),
	}
	if raw := r.FormValue("display_order"); raw != "" {
		img.DisplayOrder, _ = strconv.Atoi(raw)
	}
	img.IsPrimary = r.FormValue("is_primary") == "true"

	key := path.Join("images", truckID.String(), fmt.Sprintf("%d%s", time.Now().UnixNano(), ext))
	url, err := h.files.Save(r.Context(), key, contentType, file)
	if err != nil {
		writeError(w, err)
		return
	}
	img.URL = url

	if err := h.trucks.AddImage(r.Context(), actorFrom(r), img); err != nil {
		// Don't leave the stored file orphaned.
		_ = h.files.Delete(r.Context(), key)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, img)
}

// UploadDocument accepts a multipart form with a "file" part plus
// document_type and optional expiry_date, document_number and notes fields.
func (h *FileHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	truckID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		badRequest(w, "invalid truck id")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)
	file, header, err := r.FormFile("file")
	if err != nil {
		badRequest(w, "missing file")
		return
	}
	defer file.Close()

	docType := domain.DocumentType(r.FormValue("document_type"))
	if docType == "" {
		badRequest(w, "document_type is required")
		return
	}

	doc := &domain.TruckDocument{
		TruckID:        truckID,
		DocumentType:   docType,
		FileName:       header.Filename,
		MimeType:       header.Header.Get("Content-Type"),
		FileSize:       header.Size,
		DocumentNumber: r.FormValue("document_number"),
		Notes:          r.FormValue("notes"),
	}
	if raw := r.FormValue("expiry_date"); raw != "" {
		expiry, err := time.Parse(dateLayout, raw)
		if err != nil {
			badRequest(w, "invalid expiry_date")
			return
		}
		doc.ExpiryDate = &expiry
	}

	key := path.Join("documents", truckID.String(), fmt.Sprintf("%d%s", time.Now().UnixNano(), filepath.Ext(header.Filename)))
	url, err := h.files.Save(r.Context(), key, doc.MimeType, file)
	if err != nil {
		writeError(w, err)
		return
	}
	doc.URL = url

	if err := h.trucks.AddDocument(r.Context(), actorFrom(r), doc); err != nil {
		_ = h.files.Delete(r.Context(), key)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

// Download streams a stored file back to the client.
func (h *FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	if key == "" {
		badRequest(w, "missing file key")
		return
	}

	file, err := h.files.Open(r.Context(), key)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "file not found"})
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch filepath.Ext(key) {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".gif":
		contentType = "image/gif"
	case ".pdf":
		contentType = "application/pdf"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	io.Copy(w, file)
}
