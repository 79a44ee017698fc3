package http

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// objectPathParam returns the object path under service.ObjectsRoute,
// unescaped exactly once. The router matches on the decoded path, so its
// wildcard value cannot be unescaped again without corrupting keys with "%".
func objectPathParam(r *http.Request) (string, error) {
	escaped, ok := strings.CutPrefix(r.URL.EscapedPath(), service.ObjectsRoute)
	if !ok {
		return "", models.ErrInvalidObjectPath
	}
	return url.PathUnescape(escaped)
}

func (h *Handler) putObject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	objectPath, err := objectPathParam(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.putObject").Msg("malformed object path")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	receipt, err := h.services.BlobService.PutObject(r.Context(), objectPath, r.Body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.putObject").Str("path", objectPath).Msg("error storing object")
		status, message := responseFromError(err)
		utils.WriteError(w, message, status)
		return
	}

	_, _ = utils.WriteJSON(w, receipt, http.StatusCreated)
}

func (h *Handler) getDownloadURL(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.DownloadURLRequest
	if err := utils.DecodeJSON(r.Body, &req); err != nil {
		log.Err(err).Str("func", "*Handler.getDownloadURL").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	link, err := h.services.BlobService.GetDownloadURL(r.Context(), req.Path)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getDownloadURL").Str("path", req.Path).Msg("error signing download URL")
		status, message := responseFromError(err)
		utils.WriteError(w, message, status)
		return
	}

	_, _ = utils.WriteJSON(w, link, http.StatusOK)
}

// getObject serves an object to whoever holds a valid signed URL.
func (h *Handler) getObject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	objectPath, err := objectPathParam(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getObject").Msg("malformed object path")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	query := r.URL.Query()
	expiresUnix, err := strconv.ParseInt(query.Get(service.QueryExpires), 10, 64)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getObject").Msg("malformed expiry")
		utils.WriteError(w, app.MsgInvalidSignature, http.StatusForbidden)
		return
	}

	object, info, err := h.services.BlobService.OpenSignedObject(
		r.Context(), objectPath, time.Unix(expiresUnix, 0).UTC(), query.Get(service.QuerySignature),
	)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getObject").Str("path", objectPath).Msg("error opening object")
		status, message := responseFromError(err)
		utils.WriteError(w, message, status)
		return
	}
	defer object.Close()

	w.Header().Set("Content-Type", info.ContentType)
	w.Header().Set("ETag", strconv.Quote(info.ETag))
	w.Header().Set("Cache-Control", "private, max-age=60")

	http.ServeContent(w, r, "", info.ModTime, object)
}
