package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc-dev/link-registry/internal/model"
	"github.com/avc-dev/link-registry/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeUsecase позволяет задавать поведение каждой операции в тесте
type fakeUsecase struct {
	createLink      func(in usecase.CreateLinkInput) (model.LinkView, error)
	getLink         func(code string) (model.LinkView, error)
	resolveRedirect func(code string) (string, error)
	registerVisit   func(code string) error
	listLinks       func(pageRaw, pageSizeRaw string) ([]model.LinkView, error)
	deleteLink      func(code string) error
	exportCSV       func() (string, error)
	ping            func() error
}

func (f *fakeUsecase) CreateLink(_ context.Context, in usecase.CreateLinkInput) (model.LinkView, error) {
	return f.createLink(in)
}

func (f *fakeUsecase) GetLink(_ context.Context, code string) (model.LinkView, error) {
	return f.getLink(code)
}

func (f *fakeUsecase) ResolveRedirect(_ context.Context, code string) (string, error) {
	return f.resolveRedirect(code)
}

func (f *fakeUsecase) RegisterVisit(_ context.Context, code string) error {
	return f.registerVisit(code)
}

func (f *fakeUsecase) ListLinks(_ context.Context, pageRaw, pageSizeRaw string) ([]model.LinkView, error) {
	return f.listLinks(pageRaw, pageSizeRaw)
}

func (f *fakeUsecase) DeleteLink(_ context.Context, code string) error {
	return f.deleteLink(code)
}

func (f *fakeUsecase) ExportCSV(_ context.Context) (string, error) {
	return f.exportCSV()
}

func (f *fakeUsecase) Ping(_ context.Context) error {
	return f.ping()
}

// newTestRouter собирает роутер с теми же маршрутами, что и приложение
func newTestRouter(uc LinkUsecase) *chi.Mux {
	h := New(uc, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/ping", h.Ping)
	r.Route("/api/links", func(r chi.Router) {
		r.Post("/", h.CreateLink)
		r.Get("/", h.ListLinks)
		r.Post("/export/csv", h.ExportCSV)
		r.Get("/{code}", h.GetLink)
		r.Post("/{code}/visit", h.RegisterVisit)
		r.Delete("/{code}", h.DeleteLink)
	})
	r.Get("/{code}", h.Redirect)

	return r
}

func doRequest(t *testing.T, router http.Handler, method, target, body string) *http.Response {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w.Result()
}

func TestRedirect(t *testing.T) {
	uc := &fakeUsecase{
		resolveRedirect: func(code string) (string, error) {
			if code == "mycode" {
				return "https://example.com/target", nil
			}
			return "", usecase.ErrLinkNotFound
		},
	}
	router := newTestRouter(uc)

	resp := doRequest(t, router, http.MethodGet, "/mycode", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMovedPermanently, resp.StatusCode)
	assert.Equal(t, "https://example.com/target", resp.Header.Get("Location"))

	resp = doRequest(t, router, http.MethodGet, "/missing", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetLink(t *testing.T) {
	view := model.LinkView{
		Link: model.Link{
			ID:          1,
			Code:        "mycode",
			OriginalURL: "https://example.com",
			AccessCount: 7,
		},
		ShortURL: "http://sho.rt/mycode",
	}

	uc := &fakeUsecase{
		getLink: func(code string) (model.LinkView, error) {
			if code == "mycode" {
				return view, nil
			}
			return model.LinkView{}, usecase.ErrLinkNotFound
		},
	}
	router := newTestRouter(uc)

	resp := doRequest(t, router, http.MethodGet, "/api/links/mycode", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var got model.LinkView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, view.Code, got.Code)
	assert.Equal(t, view.ShortURL, got.ShortURL)
	assert.Equal(t, view.AccessCount, got.AccessCount)

	resp = doRequest(t, router, http.MethodGet, "/api/links/missing", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRegisterVisit(t *testing.T) {
	uc := &fakeUsecase{
		registerVisit: func(code string) error {
			if code == "mycode" {
				return nil
			}
			return usecase.ErrLinkNotFound
		},
	}
	router := newTestRouter(uc)

	resp := doRequest(t, router, http.MethodPost, "/api/links/mycode/visit", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var ack VisitResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ack))
	assert.True(t, ack.Success)

	resp = doRequest(t, router, http.MethodPost, "/api/links/missing/visit", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListLinks(t *testing.T) {
	uc := &fakeUsecase{
		listLinks: func(pageRaw, pageSizeRaw string) ([]model.LinkView, error) {
			assert.Equal(t, "2", pageRaw)
			assert.Equal(t, "20", pageSizeRaw)
			return []model.LinkView{
				{Link: model.Link{Code: "abc123"}, ShortURL: "http://sho.rt/abc123"},
			}, nil
		},
	}
	router := newTestRouter(uc)

	resp := doRequest(t, router, http.MethodGet, "/api/links?page=2&pageSize=20", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got []model.LinkView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "abc123", got[0].Code)
}

func TestListLinks_InvalidParams(t *testing.T) {
	uc := &fakeUsecase{
		listLinks: func(pageRaw, pageSizeRaw string) ([]model.LinkView, error) {
			return nil, &usecase.ValidationError{Fields: []usecase.FieldError{
				{Field: "page", Message: "must be an integer >= 1"},
			}}
		},
	}
	router := newTestRouter(uc)

	resp := doRequest(t, router, http.MethodGet, "/api/links?page=abc", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "validation failed", body.Error)
	require.Len(t, body.Fields, 1)
	assert.Equal(t, "page", body.Fields[0].Field)
}

func TestDeleteLink(t *testing.T) {
	uc := &fakeUsecase{
		deleteLink: func(code string) error {
			if code == "mycode" {
				return nil
			}
			return usecase.ErrLinkNotFound
		},
	}
	router := newTestRouter(uc)

	resp := doRequest(t, router, http.MethodDelete, "/api/links/mycode", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doRequest(t, router, http.MethodDelete, "/api/links/missing", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestExportCSV(t *testing.T) {
	uc := &fakeUsecase{
		exportCSV: func() (string, error) {
			return "http://sho.rt/report.csv", nil
		},
	}
	router := newTestRouter(uc)

	resp := doRequest(t, router, http.MethodPost, "/api/links/export/csv", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body ExportResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "http://sho.rt/report.csv", body.CSVURL)
}

func TestExportCSV_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "Empty registry",
			err:        usecase.ErrNothingToExport,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Storage failure",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUsecase{
				exportCSV: func() (string, error) { return "", tt.err },
			}
			router := newTestRouter(uc)

			resp := doRequest(t, router, http.MethodPost, "/api/links/export/csv", "")
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestPing(t *testing.T) {
	uc := &fakeUsecase{ping: func() error { return nil }}
	router := newTestRouter(uc)

	resp := doRequest(t, router, http.MethodGet, "/ping", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	uc.ping = func() error { return errors.New("down") }

	resp = doRequest(t, router, http.MethodGet, "/ping", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
