package main

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"pokeroster/internal/catalog"
)

type memoryStore struct {
	mu   sync.RWMutex
	docs map[string]catalog.Document
}

func newMemoryStore() *memoryStore {
	ms := &memoryStore{docs: make(map[string]catalog.Document)}
	for _, e := range fixtures {
		ms.put(catalog.DocumentFromEntry(e))
	}
	return ms
}

func (ms *memoryStore) put(d catalog.Document) {
	ms.mu.Lock()
	ms.docs[strings.ToLower(d.Name)] = d
	ms.mu.Unlock()
}

// get resolves key as a name first, then as a numeric id.
func (ms *memoryStore) get(key string) (catalog.Document, bool) {
	key = strings.ToLower(key)
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	if d, ok := ms.docs[key]; ok {
		return d, true
	}
	id, err := strconv.Atoi(key)
	if err != nil {
		return catalog.Document{}, false
	}
	for _, d := range ms.docs {
		if d.ID == id {
			return d, true
		}
	}
	return catalog.Document{}, false
}

func newHandler(ms *memoryStore, log *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v2/pokemon/{name}", func(w http.ResponseWriter, r *http.Request) {
		d, ok := ms.get(r.PathValue("name"))
		if !ok {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(d)
	})

	mux.HandleFunc("POST /api/v2/pokemon", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var d catalog.Document
		if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if d.ID <= 0 || strings.TrimSpace(d.Name) == "" {
			http.Error(w, "id and name are required", http.StatusBadRequest)
			return
		}
		ms.put(d)
		log.Info("stored document", zap.String("name", d.Name), zap.Int("id", d.ID))
		w.WriteHeader(http.StatusCreated)
	})

	return accessLog(mux, log)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(b)
	s.bytes += n
	return n, err
}

func accessLog(next http.Handler, log *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Int("status", rec.status),
			zap.Int("bytes", rec.bytes),
			zap.Duration("duration", time.Since(start)))
	})
}
