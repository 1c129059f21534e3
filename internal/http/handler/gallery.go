package handler

import (
	"encoding/json"
	"errors"
	"gallery/internal/core"
	"gallery/internal/http/handler/middleware"
	"gallery/internal/http/payload"
	"net/http"
	"os"

	"go.uber.org/zap"
)

var (
	Register    = "POST /auth/register"
	Login       = "POST /auth/login"
	Logout      = "POST /auth/logout"
	Me          = "GET /auth/me"
	ListPhotos  = "GET /photos"
	UploadPhoto = "POST /photos"
	DeletePhoto = "DELETE /photos/{id}"
	ServeUpload = "GET /uploads/{filename}"
	Health      = "GET /health"
)

// multipartMemoryLimit caps how much of a multipart body is buffered in
// memory before spilling to disk.
const multipartMemoryLimit = 32 << 20

type GalleryHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	gallery          GalleryService
	files            FileResolver
}

func NewGalleryHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, galleryService GalleryService, files FileResolver) *GalleryHandler {
	return &GalleryHandler{
		logs:             logger,
		requestValidator: requestValidator,
		gallery:          galleryService,
		files:            files,
	}
}

func (h *GalleryHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var regPayload payload.RegisterRequest
	err := h.requestValidator.DecodeJSONPayload(r, &regPayload)
	if err == nil {
		err = regPayload.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Registration failed",
			Error:   "username must be 3-50 characters and password at least 6",
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	user, token, err := h.gallery.Register(r.Context(), regPayload.ToMessage())
	if err != nil {
		resp := Response{Message: "Registration failed"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUsernameTaken) {
			httpCode = http.StatusConflict
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("registration failed",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	setSessionCookie(w, token)
	h.respond(w, user, http.StatusCreated, requestId)
}

func (h *GalleryHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var loginPayload payload.LoginRequest
	err := h.requestValidator.DecodeJSONPayload(r, &loginPayload)
	if err == nil {
		err = loginPayload.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Login failed",
			Error:   "username and password are required",
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	user, token, err := h.gallery.Login(r.Context(), loginPayload.ToMessage())
	if err != nil {
		resp := Response{Message: "Login failed"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrInvalidCredentials) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("login failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	setSessionCookie(w, token)
	h.respond(w, user, http.StatusOK, requestId)
}

func (h *GalleryHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	clearSessionCookie(w)
	h.respond(w, Response{Message: "Logged out"}, http.StatusOK, requestId)
}

func (h *GalleryHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	ident, err := h.currentIdentity(r)
	if err != nil {
		h.respond(w, map[string]any{"authenticated": false}, http.StatusOK, requestId)
		return
	}

	h.respond(w, map[string]any{
		"authenticated": true,
		"id":            ident.UserID,
		"username":      ident.Username,
	}, http.StatusOK, requestId)
}

func (h *GalleryHandler) HandleListPhotos(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	listPayload := payload.ListRequest{
		Sort:   r.URL.Query().Get("sort"),
		Order:  r.URL.Query().Get("order"),
		Search: r.URL.Query().Get("search"),
	}
	if err := listPayload.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Could not list photos",
			Error:   "sort must be name|date and order asc|desc",
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to validate request payload",
			"error", err,
			"handler", ListPhotos,
			"request_id", requestId)
		return
	}

	photos, err := h.gallery.ListPhotos(r.Context(), listPayload.ToQuery())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not list photos",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to list photos",
			"error", err,
			"handler", ListPhotos,
			"request_id", requestId)
		return
	}

	h.respond(w, photos, http.StatusOK, requestId)
}

func (h *GalleryHandler) HandleUploadPhoto(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	ident, err := h.currentIdentity(r)
	if err != nil {
		h.respondUnauthenticated(w, UploadPhoto, requestId)
		return
	}

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		httpCode := http.StatusBadRequest
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			httpCode = http.StatusRequestEntityTooLarge
		}
		h.respond(w, Response{
			Message: "Upload failed",
			Error:   "invalid multipart form",
		}, httpCode, requestId)
		h.logs.Errorw("failed to parse multipart form",
			"error", err,
			"handler", UploadPhoto,
			"request_id", requestId)
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		h.respond(w, Response{
			Message: "Upload failed",
			Error:   "a photo file is required",
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("missing photo file in form",
			"error", err,
			"handler", UploadPhoto,
			"request_id", requestId)
		return
	}
	defer file.Close()

	uploadPayload := payload.UploadRequest{
		Name:     r.FormValue("name"),
		Filename: header.Filename,
		Size:     header.Size,
	}
	if err := uploadPayload.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Upload failed",
			Error:   "name is required and may be at most 40 characters",
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to validate request payload",
			"error", err,
			"handler", UploadPhoto,
			"request_id", requestId)
		return
	}

	msg := uploadPayload.ToMessage()
	msg.Content = file

	photo, err := h.gallery.UploadPhoto(r.Context(), ident, msg)
	if err != nil {
		resp := Response{Message: "Upload failed"}
		httpCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, core.ErrUnsupportedType), errors.Is(err, core.ErrMissingFile),
			errors.Is(err, core.ErrInvalidName):
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		case errors.Is(err, core.ErrFileTooLarge):
			httpCode = http.StatusRequestEntityTooLarge
			resp.Error = err.Error()
		default:
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("upload failed",
			"error", err,
			"handler", UploadPhoto,
			"request_id", requestId)
		return
	}

	h.respond(w, photo, http.StatusCreated, requestId)
}

func (h *GalleryHandler) HandleDeletePhoto(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	ident, err := h.currentIdentity(r)
	if err != nil {
		h.respondUnauthenticated(w, DeletePhoto, requestId)
		return
	}

	photoID := r.PathValue("id")

	err = h.gallery.DeletePhoto(r.Context(), ident, photoID)
	if err != nil {
		resp := Response{Message: "Delete failed"}
		httpCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, core.ErrPhotoNotFound):
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		case errors.Is(err, core.ErrNotOwner):
			httpCode = http.StatusForbidden
			resp.Error = err.Error()
		default:
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("delete failed",
			"error", err,
			"handler", DeletePhoto,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Message: "Photo deleted"}, http.StatusOK, requestId)
}

func (h *GalleryHandler) HandleServeUpload(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	filename := r.PathValue("filename")

	path, err := h.files.FilePath(filename)
	if err != nil {
		h.respond(w, Response{
			Message: "File not found",
		}, http.StatusNotFound, requestId)
		h.logs.Errorw("refused upload path",
			"error", err,
			"filename", filename,
			"handler", ServeUpload,
			"request_id", requestId)
		return
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		h.respond(w, Response{
			Message: "File not found",
		}, http.StatusNotFound, requestId)
		return
	}

	http.ServeFile(w, r, path)
}

func (h *GalleryHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if err := h.gallery.Ping(r.Context()); err != nil {
		h.respond(w, map[string]string{"status": "error"}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("health probe failed",
			"error", err,
			"handler", Health,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]string{"status": "ok"}, http.StatusOK, requestId)
}

func (h *GalleryHandler) respondUnauthenticated(w http.ResponseWriter, handlerName, requestId string) {
	h.respond(w, Response{
		Message: "Authentication required",
	}, http.StatusUnauthorized, requestId)
	h.logs.Infow("request without valid session",
		"handler", handlerName,
		"request_id", requestId)
}

func (h *GalleryHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx == nil {
		return ""
	}
	return reqIdCtx.(string)
}
