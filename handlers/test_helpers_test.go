package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"nko_site_go/config"
	"nko_site_go/middleware"
	"nko_site_go/models"
	"nko_site_go/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://nko.example"

// stubSender answers every lead with a fixed result and records what it got
type stubSender struct {
	resp *models.LeadResponse
	err  error

	// When set, Send signals entered and waits for release
	entered chan struct{}
	release chan struct{}

	mu    sync.Mutex
	calls []models.LeadSubmission
}

func (s *stubSender) Send(ctx context.Context, lead models.LeadSubmission) (*models.LeadResponse, error) {
	s.mu.Lock()
	s.calls = append(s.calls, lead)
	s.mu.Unlock()

	if s.entered != nil {
		s.entered <- struct{}{}
		<-s.release
	}
	return s.resp, s.err
}

func (s *stubSender) Calls() []models.LeadSubmission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.LeadSubmission(nil), s.calls...)
}

func successSender() *stubSender {
	id := int64(1)
	return &stubSender{resp: &models.LeadResponse{Success: true, LeadID: &id}}
}

func testConfig() *config.Config {
	return &config.Config{
		AppURL:      testBaseURL,
		Environment: "test",
		VisitorTTL:  time.Hour,
	}
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("config", testConfig())
	return e, c, rec
}

func formBody(values url.Values) io.Reader {
	return strings.NewReader(values.Encode())
}

func leadForm(name, phone, email string) url.Values {
	return url.Values{"name": {name}, "phone": {phone}, "email": {email}}
}

// newFormContext builds a form POST for an existing visitor of store
func newFormContext(t *testing.T, path string, values url.Values, visitor *services.Visitor) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	_, c, rec := setupEcho(http.MethodPost, path, formBody(values))
	c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if visitor != nil {
		c.Request().AddCookie(&http.Cookie{Name: middleware.VisitorCookieName, Value: visitor.ID})
	}
	return c, rec
}

// serve runs h behind the visitor middleware
func serve(t *testing.T, c echo.Context, store *services.VisitorStore, h echo.HandlerFunc) error {
	t.Helper()
	return middleware.Visitor(store, testConfig())(h)(c)
}

func newVisitor(t *testing.T, store *services.VisitorStore) *services.Visitor {
	t.Helper()
	v, created := store.GetOrCreate("")
	require.True(t, created)
	return v
}
