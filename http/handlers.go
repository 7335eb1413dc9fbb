package http

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/byteserve/byteserve/ranges"
)

// Handler serves files from a root directory with single-range
// partial-content support. Range resolution outcomes map to status
// codes here: full body for absent, unsupported or empty ranges, 206
// for a resolved range, 416 when the sole requested range is
// unsatisfiable.
type Handler struct {
	root    http.Dir
	verbose bool
}

func NewHandler(root string, verbose bool) *Handler {
	return &Handler{
		root:    http.Dir(root),
		verbose: verbose,
	}
}

func (h *Handler) Serve(addr string) error {
	h.logAlways("starting http server on %s", addr)
	mux := http.NewServeMux()
	h.RegisterHandlers(mux)
	return http.ListenAndServe(addr, mux)
}

func (h *Handler) RegisterHandlers(mux *http.ServeMux) {
	/*
		GET  /healthz
		GET  /files/<path>
		HEAD /files/<path>
	*/
	mux.HandleFunc("/healthz", h.healthz)
	mux.HandleFunc("/files/", h.serveFile)
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

func (h *Handler) serveFile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/files/")
	h.log("serving %q", name)

	// http.Dir refuses paths that escape the root; anything else that
	// fails to open is reported as not found.
	f, err := h.root.Open(filepath.FromSlash(name))
	if err != nil {
		h.log("cannot open file %q: %v", name, err)
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	d, err := f.Stat()
	if err != nil {
		h.log("cannot stat file %q: %v", name, err)
		httpError(w, fmt.Errorf("unable to stat file: %w", err))
		return
	}
	if d.IsDir() {
		http.NotFound(w, r)
		return
	}

	size := d.Size()
	w.Header().Set("Accept-Ranges", "bytes")
	w.Header().Set("Last-Modified", d.ModTime().UTC().Format(http.TimeFormat))
	w.Header().Set("Content-Type", h.contentType(name))

	res := ranges.ResolveHeader(r.Header["Range"], size)
	h.log("range outcome for %q: %s", name, res.Outcome)

	switch res.Outcome {
	case ranges.RangeUnsatisfiable:
		w.Header().Set("Content-Range", ranges.ContentRangeUnsatisfied(size))
		w.WriteHeader(http.StatusRequestedRangeNotSatisfiable)
		return
	case ranges.RangeResolved:
		h.serveRange(w, r, f, res.Range, size)
		return
	}

	// NoRangeRequested, Unsupported and RangeEmpty all fall back to
	// the full content.
	w.Header().Set("Content-Length", strconv.FormatInt(size, 10))
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		if _, err := io.Copy(w, f); err != nil {
			h.log("error copying file %q: %v", name, err)
		}
	}
}

func (h *Handler) serveRange(w http.ResponseWriter, r *http.Request, f http.File, br ranges.ByteRange, size int64) {
	if _, err := f.Seek(br.Start, io.SeekStart); err != nil {
		h.log("unable to seek to %d: %v", br.Start, err)
		httpError(w, fmt.Errorf("unable to seek in file: %w", err))
		return
	}
	w.Header().Set("Content-Range", br.ContentRange(size))
	w.Header().Set("Content-Length", strconv.FormatInt(br.Length(), 10))
	w.WriteHeader(http.StatusPartialContent)
	if r.Method != http.MethodHead {
		if _, err := io.CopyN(w, f, br.Length()); err != nil {
			h.log("error copying range %d-%d: %v", br.Start, br.End, err)
		}
	}
}

func (h *Handler) log(msg string, args ...interface{}) {
	if h.verbose {
		log.Infof(msg, args...)
	}
}

func (h *Handler) logAlways(msg string, args ...interface{}) {
	log.Infof(msg, args...)
}

func httpError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "text/plain")
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
