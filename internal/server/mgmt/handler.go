// Package mgmt exposes the content store over a small HTTP management API:
//
//	GET    /cs/<name>   fetch a packet (query: prefix=1, rightmost=1)
//	PUT    /cs/<name>   cache the request body under <name>
//	DELETE /cs/<name>   drop the packet stored under <name>
//	GET    /stats       store counters
//	GET    /health      liveness probe
package mgmt

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/DOCTOR-ANR/NDN-microservices/internal/cs"
	"github.com/DOCTOR-ANR/NDN-microservices/internal/ndn/name"
)

// Handler routes management requests to the content store.
type Handler struct {
	store *cs.Store
	mux   *http.ServeMux
}

// NewHandler builds the management handler for the given store.
func NewHandler(store *cs.Store) *Handler {
	h := &Handler{store: store, mux: http.NewServeMux()}
	h.mux.HandleFunc("/cs/", h.handleEntry)
	h.mux.HandleFunc("/stats", h.handleStats)
	h.mux.HandleFunc("/health", h.handleHealth)
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// entryJSON is the wire form of a cached packet. Data is base64 per
// encoding/json's []byte convention.
type entryJSON struct {
	Name      string    `json:"name"`
	Data      []byte    `json:"data"`
	CreatedAt time.Time `json:"created_at"`
}

type errorJSON struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) handleEntry(w http.ResponseWriter, r *http.Request) {
	uri := strings.TrimPrefix(r.URL.Path, "/cs")
	n, err := name.Parse(uri)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorJSON{Error: err.Error()})
		return
	}

	switch r.Method {
	case http.MethodGet:
		prefix := r.URL.Query().Get("prefix") == "1"
		rightmost := r.URL.Query().Get("rightmost") == "1"
		e, ok := h.store.Lookup(n, prefix, rightmost)
		if !ok {
			writeJSON(w, http.StatusNotFound, errorJSON{Error: "no matching entry"})
			return
		}
		writeJSON(w, http.StatusOK, entryJSON{
			Name:      e.Name.String(),
			Data:      e.Data,
			CreatedAt: e.CreatedAt,
		})

	case http.MethodPut:
		data, err := io.ReadAll(r.Body)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorJSON{Error: err.Error()})
			return
		}
		h.store.Insert(cs.Entry{Name: n, Data: data})
		w.WriteHeader(http.StatusNoContent)

	case http.MethodDelete:
		h.store.Remove(n)
		w.WriteHeader(http.StatusNoContent)

	default:
		w.Header().Set("Allow", "GET, PUT, DELETE")
		writeJSON(w, http.StatusMethodNotAllowed, errorJSON{Error: "method not allowed"})
	}
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	hits, misses := h.store.Stats()
	writeJSON(w, http.StatusOK, map[string]any{
		"packets": h.store.Len(),
		"nodes":   h.store.NodeCount(),
		"hits":    hits,
		"misses":  misses,
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok","service":"csd"}`))
}
