package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Yesho700/url-shortner/internal/domain"
	"github.com/Yesho700/url-shortner/internal/service"
	svcmocks "github.com/Yesho700/url-shortner/internal/service/mocks"
)

func TestShortenHandler_Created(t *testing.T) {
	svc := &svcmocks.URLShortener{}
	svc.On("Shorten", mock.Anything, "https://example.com").
		Return(&service.ShortenResult{ShortCode: "abc12345", Created: true}, nil)

	handler := NewHandler(svc, "http://localhost:8080")

	req := httptest.NewRequest(http.MethodPost, "/shorten",
		strings.NewReader(`{"longUrl": "https://example.com"}`))
	rec := httptest.NewRecorder()

	handler.Shorten(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp domain.ShortenResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Short URL Created Successfully", resp.Message)
	assert.Equal(t, "abc12345", resp.ShortURL)
}

func TestShortenHandler_AlreadyExists(t *testing.T) {
	svc := &svcmocks.URLShortener{}
	svc.On("Shorten", mock.Anything, "https://example.com").
		Return(&service.ShortenResult{ShortCode: "abc12345", Created: false}, nil)

	handler := NewHandler(svc, "http://localhost:8080")

	req := httptest.NewRequest(http.MethodPost, "/shorten",
		strings.NewReader(`{"longUrl": "https://example.com"}`))
	rec := httptest.NewRecorder()

	handler.Shorten(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.ShortenResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Short URL Already Exists", resp.Message)
}

func TestShortenHandler_InvalidJSON(t *testing.T) {
	svc := &svcmocks.URLShortener{}
	handler := NewHandler(svc, "http://localhost:8080")

	req := httptest.NewRequest(http.MethodPost, "/shorten", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	handler.Shorten(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Shorten", mock.Anything, mock.Anything)
}

func TestShortenHandler_MissingLongURL(t *testing.T) {
	svc := &svcmocks.URLShortener{}
	handler := NewHandler(svc, "http://localhost:8080")

	req := httptest.NewRequest(http.MethodPost, "/shorten", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	handler.Shorten(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "longUrl is required")
}

func TestShortenHandler_ServiceError(t *testing.T) {
	svc := &svcmocks.URLShortener{}
	svc.On("Shorten", mock.Anything, "https://example.com").
		Return(nil, errors.New("database is locked"))

	handler := NewHandler(svc, "http://localhost:8080")

	req := httptest.NewRequest(http.MethodPost, "/shorten",
		strings.NewReader(`{"longUrl": "https://example.com"}`))
	rec := httptest.NewRecorder()

	handler.Shorten(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRedirectHandler_Found(t *testing.T) {
	svc := &svcmocks.URLShortener{}
	svc.On("Resolve", mock.Anything, "abc12345").
		Return("https://example.com", nil)

	handler := NewHandler(svc, "http://localhost:8080")

	req := httptest.NewRequest(http.MethodGet, "/abc12345", nil)
	req.SetPathValue("code", "abc12345")
	rec := httptest.NewRecorder()

	handler.Redirect(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://example.com", rec.Header().Get("Location"))
}

func TestRedirectHandler_NotFound(t *testing.T) {
	svc := &svcmocks.URLShortener{}
	svc.On("Resolve", mock.Anything, "doesnotexist").
		Return("", domain.ErrNotFound)

	handler := NewHandler(svc, "http://localhost:8080")

	req := httptest.NewRequest(http.MethodGet, "/doesnotexist", nil)
	req.SetPathValue("code", "doesnotexist")
	rec := httptest.NewRecorder()

	handler.Redirect(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No URL Found")
}

func TestRedirectHandler_ServiceError(t *testing.T) {
	svc := &svcmocks.URLShortener{}
	svc.On("Resolve", mock.Anything, "abc12345").
		Return("", errors.New("connection refused"))

	handler := NewHandler(svc, "http://localhost:8080")

	req := httptest.NewRequest(http.MethodGet, "/abc12345", nil)
	req.SetPathValue("code", "abc12345")
	rec := httptest.NewRecorder()

	handler.Redirect(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestClicksForLongURLHandler(t *testing.T) {
	svc := &svcmocks.URLShortener{}
	svc.On("ClicksForLongURL", mock.Anything, "https://example.com").
		Return(int64(7), nil)

	handler := NewHandler(svc, "http://localhost:8080")

	req := httptest.NewRequest(http.MethodGet, "/clicks/long/https://example.com", nil)
	req.SetPathValue("longUrl", "https://example.com")
	rec := httptest.NewRecorder()

	handler.ClicksForLongURL(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.ClicksResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(7), resp.TotalClicks)
	assert.Equal(t, "https://example.com", resp.LongURL)
}

func TestClicksForShortCodeHandler(t *testing.T) {
	svc := &svcmocks.URLShortener{}
	svc.On("ClicksForShortCode", mock.Anything, "abc12345").
		Return(int64(3), nil)

	handler := NewHandler(svc, "http://localhost:8080")

	req := httptest.NewRequest(http.MethodGet, "/clicks/short/abc12345", nil)
	req.SetPathValue("shortCode", "abc12345")
	rec := httptest.NewRecorder()

	handler.ClicksForShortCode(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.ClicksResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(3), resp.TotalClicks)
	assert.Equal(t, "abc12345", resp.ShortCode)
}

func TestClicksHandler_NotFound(t *testing.T) {
	svc := &svcmocks.URLShortener{}
	svc.On("ClicksForShortCode", mock.Anything, "doesnotexist").
		Return(int64(0), domain.ErrNotFound)

	handler := NewHandler(svc, "http://localhost:8080")

	req := httptest.NewRequest(http.MethodGet, "/clicks/short/doesnotexist", nil)
	req.SetPathValue("shortCode", "doesnotexist")
	rec := httptest.NewRecorder()

	handler.ClicksForShortCode(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTotalClicksHandler(t *testing.T) {
	svc := &svcmocks.URLShortener{}
	svc.On("TotalClicks", mock.Anything).Return(int64(42), nil)

	handler := NewHandler(svc, "http://localhost:8080")

	req := httptest.NewRequest(http.MethodGet, "/clicks/total", nil)
	rec := httptest.NewRecorder()

	handler.TotalClicks(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.ClicksResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(42), resp.TotalClicks)
}

func TestHealthHandler(t *testing.T) {
	handler := NewHandler(&svcmocks.URLShortener{}, "http://localhost:8080")

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	handler.Health(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
