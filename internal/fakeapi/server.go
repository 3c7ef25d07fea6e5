package fakeapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"mixget/internal/domain"
)

// Product is one animation the fake service knows about.
type Product struct {
	ID          string
	Description string
	Type        string
	GMSHash     map[string]any
}

type job struct {
	product   string
	remaining int
	failed    bool
	key       string
}

// Server holds the fake service state. Exported fields must be set before
// Handler is called.
type Server struct {
	APIKey         string
	Character      domain.Character
	PollsUntilDone int
	FailProducts   map[string]bool

	mu        sync.Mutex
	products  []Product
	job       *job
	jobs      int
	exports   []domain.ExportPayload
	downloads map[string][]byte
	hits      map[string]int
}

// New returns a server for ch that accepts apiKey.
func New(ch domain.Character, apiKey string) *Server {
	return &Server{
		APIKey:       apiKey,
		Character:    ch,
		FailProducts: make(map[string]bool),
		downloads:    make(map[string][]byte),
		hits:         make(map[string]int),
	}
}

// AddProduct registers products in search order.
func (s *Server) AddProduct(ps ...Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range ps {
		if p.Type == "" {
			p.Type = "Motion"
		}
		if p.GMSHash == nil {
			p.GMSHash = DefaultGMSHash()
		}
		s.products = append(s.products, p)
	}
}

// Exports returns every export payload received, in order.
func (s *Server) Exports() []domain.ExportPayload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.ExportPayload(nil), s.exports...)
}

// Hits returns how often a route name was served ("primary", "search",
// "product", "export", "monitor", "download").
func (s *Server) Hits(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[route]
}

// Content is the body served for a completed export of product.
func Content(product string) []byte { return []byte("FBX:" + product) }

// Handler returns the service router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(s.requireKey)
		r.Get("/characters/primary", s.primary)
		r.Get("/products", s.search)
		r.Get("/products/{id}", s.product)
		r.Post("/animations/export", s.export)
		r.Get("/characters/{id}/monitor", s.monitor)
	})
	r.Get("/downloads/{key}", s.download)
	return r
}

func (s *Server) requireKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.APIKey != "" && r.Header.Get("X-Api-Key") != s.APIKey {
			writeError(w, http.StatusUnauthorized, "invalid api key")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) hit(route string) {
	s.mu.Lock()
	s.hits[route]++
	s.mu.Unlock()
}

func (s *Server) primary(w http.ResponseWriter, r *http.Request) {
	s.hit("primary")
	writeJSON(w, http.StatusOK, s.Character)
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	s.hit("search")
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit <= 0 {
		limit = 96
	}
	page, _ := strconv.Atoi(q.Get("page"))
	if page <= 0 {
		page = 1
	}
	needle := strings.ToLower(q.Get("query"))

	s.mu.Lock()
	var matches []domain.CatalogEntry
	for _, p := range s.products {
		if needle == "" || strings.Contains(strings.ToLower(p.Description), needle) {
			matches = append(matches, domain.CatalogEntry{ID: domain.AnimationID(p.ID), Description: p.Description})
		}
	}
	s.mu.Unlock()

	numPages := (len(matches) + limit - 1) / limit
	start := (page - 1) * limit
	end := start + limit
	if start > len(matches) {
		start = len(matches)
	}
	if end > len(matches) {
		end = len(matches)
	}
	writeJSON(w, http.StatusOK, domain.SearchPage{
		Results: append([]domain.CatalogEntry{}, matches[start:end]...),
		Pagination: domain.Pagination{
			Page:       page,
			Limit:      limit,
			NumPages:   numPages,
			NumResults: len(matches),
		},
	})
}

func (s *Server) product(w http.ResponseWriter, r *http.Request) {
	s.hit("product")
	id := chi.URLParam(r, "id")
	if r.URL.Query().Get("character_id") != s.Character.ID.String() {
		writeError(w, http.StatusBadRequest, "unknown character_id")
		return
	}
	p, ok := s.lookup(id)
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":          p.ID,
		"description": p.Description,
		"type":        p.Type,
		"details":     map[string]any{"gms_hash": p.GMSHash},
	})
}

func (s *Server) export(w http.ResponseWriter, r *http.Request) {
	s.hit("export")
	var payload domain.ExportPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if payload.CharacterID != s.Character.ID {
		writeError(w, http.StatusBadRequest, "unknown character_id")
		return
	}

	s.mu.Lock()
	s.exports = append(s.exports, payload)
	s.jobs++
	s.job = &job{
		product:   payload.ProductName,
		remaining: s.PollsUntilDone,
		failed:    s.FailProducts[payload.ProductName],
		key:       fmt.Sprintf("job-%d", s.jobs),
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "processing"})
}

func (s *Server) monitor(w http.ResponseWriter, r *http.Request) {
	s.hit("monitor")
	if domain.CharacterID(chi.URLParam(r, "id")) != s.Character.ID {
		writeError(w, http.StatusNotFound, "character not found")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.job == nil:
		writeJSON(w, http.StatusOK, domain.MonitorStatus{Status: "not_started"})
	case s.job.remaining > 0:
		s.job.remaining--
		writeJSON(w, http.StatusOK, domain.MonitorStatus{Status: "processing"})
	case s.job.failed:
		writeJSON(w, http.StatusOK, domain.MonitorStatus{Status: domain.JobStatusFailed, Message: "retargeting failed"})
	default:
		s.downloads[s.job.key] = Content(s.job.product)
		writeJSON(w, http.StatusOK, domain.MonitorStatus{
			Status:    domain.JobStatusCompleted,
			JobResult: "http://" + r.Host + "/downloads/" + s.job.key,
		})
	}
}

func (s *Server) download(w http.ResponseWriter, r *http.Request) {
	s.hit("download")
	s.mu.Lock()
	b, ok := s.downloads[chi.URLParam(r, "key")]
	s.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	_, _ = w.Write(b)
}

func (s *Server) lookup(id string) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// DefaultGMSHash is a detail-endpoint style bundle: float trim bounds,
// parameter records ending in numbers, a non-zero overdrive.
func DefaultGMSHash() map[string]any {
	return map[string]any{
		"model-id":  1001,
		"mirror":    false,
		"trim":      []any{0.0, 100.0},
		"overdrive": 0.5,
		"params": []any{
			[]any{"Posture", 50},
			[]any{"Arm Space", 42.7},
			[]any{"Overdrive", 0},
		},
		"arm-space": 0,
		"inplace":   false,
	}
}

// SampleProducts is the catalog served by cmd/mockapi.
func SampleProducts() []Product {
	names := []string{"Walking", "Running", "Jumping", "Idle", "Sword And Shield Slash", "Zombie Walk", "Hip Hop Dancing"}
	out := make([]Product, 0, len(names))
	for i, n := range names {
		out = append(out, Product{ID: fmt.Sprintf("anim-%03d", i+1), Description: n})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
