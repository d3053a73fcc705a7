package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Yesho700/url-shortner/internal/domain"
	"github.com/Yesho700/url-shortner/internal/service"
)

// Handler holds the HTTP handlers for the URL shortener
type Handler struct {
	shortener service.URLShortener
	serverURL string
}

// NewHandler creates a new HTTP handler
func NewHandler(shortener service.URLShortener, serverURL string) *Handler {
	return &Handler{
		shortener: shortener,
		serverURL: serverURL,
	}
}

// Shorten handles POST /shorten
func (h *Handler) Shorten(w http.ResponseWriter, r *http.Request) {
	var req domain.ShortenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Invalid JSON in shorten request: %v", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if req.LongURL == "" {
		log.Printf("[ERROR] Empty longUrl in shorten request")
		http.Error(w, "longUrl is required", http.StatusBadRequest)
		return
	}

	result, err := h.shortener.Shorten(r.Context(), req.LongURL)
	if err != nil {
		log.Printf("[ERROR] Failed to shorten '%s': %v", req.LongURL, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	response := domain.ShortenResponse{
		Message:  "Short URL Already Exists",
		ShortURL: result.ShortCode,
	}
	status := http.StatusOK
	if result.Created {
		response.Message = "Short URL Created Successfully"
		status = http.StatusCreated
	}

	writeJSON(w, status, response)
}

// Redirect handles GET /{code} - redirects to the original URL
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	shortCode := r.PathValue("code")
	if shortCode == "" {
		http.NotFound(w, r)
		return
	}

	longURL, err := h.shortener.Resolve(r.Context(), shortCode)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "No URL Found", http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] Failed to resolve code '%s': %v", shortCode, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, longURL, http.StatusFound)
}

// ClicksForLongURL handles GET /clicks/long/{longUrl}
func (h *Handler) ClicksForLongURL(w http.ResponseWriter, r *http.Request) {
	longURL := r.PathValue("longUrl")

	clicks, err := h.shortener.ClicksForLongURL(r.Context(), longURL)
	if err != nil {
		h.writeClicksError(w, longURL, err)
		return
	}

	writeJSON(w, http.StatusOK, domain.ClicksResponse{
		StatusCode:  http.StatusOK,
		LongURL:     longURL,
		TotalClicks: clicks,
	})
}

// ClicksForShortCode handles GET /clicks/short/{shortCode}
func (h *Handler) ClicksForShortCode(w http.ResponseWriter, r *http.Request) {
	shortCode := r.PathValue("shortCode")

	clicks, err := h.shortener.ClicksForShortCode(r.Context(), shortCode)
	if err != nil {
		h.writeClicksError(w, shortCode, err)
		return
	}

	writeJSON(w, http.StatusOK, domain.ClicksResponse{
		StatusCode:  http.StatusOK,
		ShortCode:   shortCode,
		TotalClicks: clicks,
	})
}

// TotalClicks handles GET /clicks/total
func (h *Handler) TotalClicks(w http.ResponseWriter, r *http.Request) {
	total, err := h.shortener.TotalClicks(r.Context())
	if err != nil {
		log.Printf("[ERROR] Failed to get total clicks: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, domain.ClicksResponse{
		StatusCode:  http.StatusOK,
		TotalClicks: total,
	})
}

// Health handles GET /healthz
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeClicksError(w http.ResponseWriter, subject string, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		http.Error(w, "URL Not found", http.StatusNotFound)
		return
	}
	log.Printf("[ERROR] Failed to get clicks for '%s': %v", subject, err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
