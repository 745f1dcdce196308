package page

import (
	"io/fs"
	"net/http"

	"go.uber.org/zap"
)

const indexFile = "index.html"

// PageHandler serves the storefront page and its assets from files.
type PageHandler struct {
	files  fs.FS
	static http.Handler
}

// New expects files to hold index.html and a static/ directory.
func New(files fs.FS) *PageHandler {
	return &PageHandler{
		files:  files,
		static: http.FileServer(http.FS(files)),
	}
}

func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	data, err := fs.ReadFile(h.files, indexFile)
	if err != nil {
		zap.L().Error("can't read index page", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Static serves files under /static/. The request path is used as is, so the
// route must be mounted at /static/*.
func (h *PageHandler) Static(w http.ResponseWriter, r *http.Request) {
	h.static.ServeHTTP(w, r)
}
