package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/ariel-frischer/keepachangelog/internal/changelog"
)

// Handler serves the endpoints of one changelog Document.
type Handler struct {
	doc            *Document
	showUnreleased bool
	logger         *log.Logger
}

// NewHandler returns a Handler for doc. showUnreleased includes the sections
// without release information in the dictionary endpoint.
func NewHandler(doc *Document, showUnreleased bool, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{doc: doc, showUnreleased: showUnreleased, logger: logger}
}

// Register mounts the changelog endpoints under path on r, serving the file
// at changelogPath. The file is parsed on every request.
func Register(r chi.Router, path, changelogPath string) {
	NewHandler(NewDocument(changelogPath, false), false, nil).Mount(r, path)
}

// Mount registers the endpoints under path on r.
func (h *Handler) Mount(r chi.Router, path string) {
	path = "/" + strings.Trim(path, "/")
	r.Get(path, h.serveDict)
	r.Get(path+".md", h.serveMarkdown)
	r.Get(path+".html", h.serveHTML)
	r.Get(path+"/{version}", h.serveVersion)
}

func (h *Handler) serveDict(w http.ResponseWriter, r *http.Request) {
	c, ok := h.load(w)
	if !ok {
		return
	}
	if c == nil {
		writeJSON(w, http.StatusOK, map[string]any{})
		return
	}
	showUnreleased := h.showUnreleased || queryBool(r, "show_unreleased")
	writeJSON(w, http.StatusOK, c.ToDict(showUnreleased, queryBool(r, "raw")))
}

func (h *Handler) serveVersion(w http.ResponseWriter, r *http.Request) {
	c, ok := h.load(w)
	if !ok {
		return
	}
	version := chi.URLParam(r, "version")
	if c == nil {
		writeError(w, http.StatusNotFound, "changelog not found")
		return
	}

	dict, err := c.ChangeDict(version, queryBool(r, "raw"))
	var notFound *changelog.VersionNotFoundError
	if errors.As(err, &notFound) {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error":     "version not found: " + version,
			"available": notFound.AvailableVersions,
		})
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dict)
}

func (h *Handler) serveMarkdown(w http.ResponseWriter, r *http.Request) {
	c, ok := h.load(w)
	if !ok {
		return
	}
	if c == nil {
		http.Error(w, "changelog not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	if err := c.RenderMarkdown(w, queryBool(r, "raw")); err != nil {
		h.logger.Warn("writing response", "err", err)
	}
}

func (h *Handler) serveHTML(w http.ResponseWriter, r *http.Request) {
	c, ok := h.load(w)
	if !ok {
		return
	}
	if c == nil {
		http.Error(w, "changelog not found", http.StatusNotFound)
		return
	}
	html, err := c.HTMLString(queryBool(r, "raw"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(html)); err != nil {
		h.logger.Warn("writing response", "err", err)
	}
}

// load fetches the document, answering 500 itself when it cannot be read.
func (h *Handler) load(w http.ResponseWriter) (*changelog.Changelog, bool) {
	c, err := h.doc.Get()
	if err != nil {
		h.logger.Error("loading changelog", "path", h.doc.Path(), "err", err)
		writeError(w, http.StatusInternalServerError, "cannot read changelog")
		return nil, false
	}
	return c, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func queryBool(r *http.Request, name string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(name))
	return err == nil && v
}
