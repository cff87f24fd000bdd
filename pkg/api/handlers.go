package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/segmentio/ksuid"

	"github.com/netfossil/nrbf/pkg/records"
	"github.com/netfossil/nrbf/pkg/storage"
)

// Server holds the API server state
type Server struct {
	streams IStreamStore
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new API server
func NewServer(streams IStreamStore, config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		streams: streams,
		config:  config,
		metrics: metrics,
	}
}

// handleHealth reports service liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHealthCheck(true)
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleUpload stores an uploaded stream. The stream must decode
// cleanly before it is persisted; a malformed stream is rejected with
// the decoder's diagnostic.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit := s.config.MaxStreamBytes
	if limit <= 0 {
		limit = 16 << 20
	}
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		s.metrics.RecordDecode("upload", false, 0, time.Since(start))
		sendError(w, "Failed to read request body: "+err.Error(), http.StatusRequestEntityTooLarge)
		return
	}
	if len(data) == 0 {
		s.metrics.RecordDecode("upload", false, 0, time.Since(start))
		sendError(w, "Empty request body", http.StatusBadRequest)
		return
	}

	_, graph, err := records.Decode(data)
	if err != nil {
		s.metrics.RecordDecode("upload", false, 0, time.Since(start))
		sendError(w, "Stream does not decode: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	id, err := s.streams.Put(data)
	if err != nil {
		s.metrics.RecordDecode("upload", false, 0, time.Since(start))
		if errors.Is(err, storage.ErrTooLarge) {
			sendError(w, err.Error(), http.StatusRequestEntityTooLarge)
			return
		}
		sendError(w, "Failed to store stream", http.StatusInternalServerError)
		return
	}

	s.metrics.RecordDecode("upload", true, len(graph.Records), time.Since(start))
	sendSuccess(w, UploadResponse{
		ID:         id.String(),
		Bytes:      len(data),
		Records:    len(graph.Records),
		Objects:    len(graph.Objects),
		Unresolved: len(graph.Unresolved()),
	})
}

// handleListStreams lists stored stream ids.
func (s *Server) handleListStreams(w http.ResponseWriter, r *http.Request) {
	ids, err := s.streams.List()
	if err != nil {
		sendError(w, "Failed to list streams", http.StatusInternalServerError)
		return
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	sendSuccess(w, map[string]interface{}{"streams": out})
}

// handleGetGraph decodes a stored stream and returns its full record
// graph.
func (s *Server) handleGetGraph(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	data, ok := s.loadStream(w, r)
	if !ok {
		return
	}

	header, graph, err := records.Decode(data)
	if err != nil {
		s.metrics.RecordDecode("graph", false, 0, time.Since(start))
		sendError(w, "Stored stream no longer decodes: "+err.Error(), http.StatusInternalServerError)
		return
	}

	s.metrics.RecordDecode("graph", true, len(graph.Records), time.Since(start))
	sendSuccess(w, graphView(header, graph))
}

// handleGetObject returns one object from a stored stream by its
// declared object id.
func (s *Server) handleGetObject(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	objectID, err := strconv.ParseInt(chi.URLParam(r, "objectID"), 10, 32)
	if err != nil {
		sendError(w, "Invalid object id", http.StatusBadRequest)
		return
	}

	data, ok := s.loadStream(w, r)
	if !ok {
		return
	}

	_, graph, err := records.Decode(data)
	if err != nil {
		s.metrics.RecordDecode("object", false, 0, time.Since(start))
		sendError(w, "Stored stream no longer decodes: "+err.Error(), http.StatusInternalServerError)
		return
	}

	rec, found := graph.Lookup(int32(objectID))
	if !found {
		s.metrics.RecordDecode("object", false, 0, time.Since(start))
		sendError(w, "No object with that id", http.StatusNotFound)
		return
	}

	s.metrics.RecordDecode("object", true, len(graph.Records), time.Since(start))
	sendSuccess(w, recordView(rec))
}

// handleDeleteStream removes a stored stream.
func (s *Server) handleDeleteStream(w http.ResponseWriter, r *http.Request) {
	id, err := ksuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, "Invalid stream id", http.StatusBadRequest)
		return
	}
	if err := s.streams.Delete(id); err != nil {
		sendError(w, "Failed to delete stream", http.StatusInternalServerError)
		return
	}
	sendSuccess(w, map[string]string{"deleted": id.String()})
}

// loadStream fetches the stream named by the id URL parameter, writing
// the error response itself on failure.
func (s *Server) loadStream(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	id, err := ksuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, "Invalid stream id", http.StatusBadRequest)
		return nil, false
	}
	data, err := s.streams.Get(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			sendError(w, "Stream not found", http.StatusNotFound)
			return nil, false
		}
		sendError(w, "Failed to read stream", http.StatusInternalServerError)
		return nil, false
	}
	return data, true
}

// startMetricsUpdater periodically refreshes store gauges.
func (s *Server) startMetricsUpdater() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		ids, err := s.streams.List()
		if err != nil {
			continue
		}
		s.metrics.UpdateStoreStats(len(ids))
	}
}
