package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"artbot/internal/domain"
	"artbot/internal/export"
)

type exportRequest struct {
	Images []domain.GeneratedImage `json:"images"`
}

// Export bundles the posted images and their metadata manifest into the
// downloadable archive.
func (a *App) Export(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if len(req.Images) == 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "no images to export")
		return
	}

	data, exported, err := export.BuildArchive(req.Images, a.Log, nil)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyArchive) {
			a.error(w, http.StatusBadRequest, "bad_request", "no exportable images")
			return
		}
		a.Log.Error().Err(err).Msg("export archive failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to build archive")
		return
	}
	a.Metrics.ImagesExported.Add(float64(exported))

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.ArchiveName+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}

type downloadRequest struct {
	Image domain.GeneratedImage `json:"image"`
}

// Download serves a single image as a PNG attachment.
func (a *App) Download(w http.ResponseWriter, r *http.Request) {
	var req downloadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	data, name, err := export.ImagePNG(req.Image)
	if err != nil {
		a.Log.Warn().Err(err).Msg("single image download failed")
		a.error(w, http.StatusBadRequest, "bad_request", "image could not be converted")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}
