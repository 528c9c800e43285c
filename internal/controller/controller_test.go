package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"photo-portfolio-be/internal/entity"
	"photo-portfolio-be/internal/repository/contract"
	"photo-portfolio-be/internal/repository/implementation"
	"photo-portfolio-be/internal/service"
	"photo-portfolio-be/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type fakeNotifier struct {
	calls int
	err   error
}

func (f *fakeNotifier) SendScheduleRequest(clientName, email, preferredDate, notes string) error {
	f.calls++
	return f.err
}

type testEnv struct {
	app           *fiber.App
	photographers contract.PhotographerRepository
	contacts      contract.ContactMessageRepository
	schedules     contract.ScheduleRequestRepository
	shots         contract.ShotRepository
	notifier      *fakeNotifier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.EnsureSchema(db))

	photographers := implementation.NewPhotographerRepository(db)
	shots := implementation.NewShotRepository(db)
	contacts := implementation.NewContactMessageRepository(db)
	schedules := implementation.NewScheduleRequestRepository(db)
	notifier := &fakeNotifier{}

	app := fiber.New(fiber.Config{
		Views: html.New("../../views", ".html"),
	})
	NewPortfolioController(service.NewPortfolioService(photographers, shots)).RegisterRoutes(app)
	NewInquiryController(service.NewInquiryService(contacts, schedules, notifier, nopLogger{})).RegisterRoutes(app)

	return &testEnv{
		app:           app,
		photographers: photographers,
		contacts:      contacts,
		schedules:     schedules,
		shots:         shots,
		notifier:      notifier,
	}
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestSubmitContactSuccessRedirectsWithFlash(t *testing.T) {
	env := newTestEnv(t)

	form := url.Values{}
	form.Set("name", "Ann")
	form.Set("email", "a@x.com")
	form.Set("message", "Hi")
	resp := postForm(t, env.app, "/contact", form)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	location := resp.Header.Get("Location")
	assert.Contains(t, location, "category=success")

	count, err := env.contacts.Count(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSubmitContactValidationFailureRedirectsWithoutPersisting(t *testing.T) {
	env := newTestEnv(t)

	form := url.Values{}
	form.Set("name", "")
	form.Set("email", "a@x.com")
	form.Set("message", "Hi")
	resp := postForm(t, env.app, "/contact", form)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	location := resp.Header.Get("Location")
	assert.Contains(t, location, "category=danger")

	count, err := env.contacts.Count(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestSubmitScheduleRedirectsAndPersists(t *testing.T) {
	env := newTestEnv(t)

	form := url.Values{}
	form.Set("client_name", "Bob")
	form.Set("email", "b@x.com")
	form.Set("preferred_date", "next friday")
	resp := postForm(t, env.app, "/schedule", form)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Location"), "category=success")

	count, err := env.schedules.Count(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, 1, env.notifier.calls)
}

func TestSubmitScheduleNotifierFailureFlashesSoftFailure(t *testing.T) {
	env := newTestEnv(t)
	env.notifier.err = errors.New("smtp: connection refused")

	form := url.Values{}
	form.Set("client_name", "Bob")
	form.Set("email", "b@x.com")
	resp := postForm(t, env.app, "/schedule", form)

	// Still a redirect: the record is committed, only the flash changes.
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	location := resp.Header.Get("Location")
	assert.Contains(t, location, "category=warning")
	assert.Contains(t, location, "notification+failed")

	count, err := env.schedules.Count(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSubmitScheduleEmailSendsPlainTextOutcome(t *testing.T) {
	env := newTestEnv(t)

	form := url.Values{}
	form.Set("client_name", "Bob")
	form.Set("email", "b@x.com")
	resp := postForm(t, env.app, "/schedule/email", form)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "Request sent via Email!", string(body))
	assert.Equal(t, 1, env.notifier.calls)

	count, err := env.schedules.Count(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSubmitScheduleEmailReportsSoftFailure(t *testing.T) {
	env := newTestEnv(t)
	env.notifier.err = errors.New("smtp: auth failed")

	form := url.Values{}
	form.Set("client_name", "Bob")
	form.Set("email", "b@x.com")
	resp := postForm(t, env.app, "/schedule/email", form)

	// Saved but not sent: still a 2xx, with a distinct message.
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "notification failed")

	count, err := env.schedules.Count(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSubmitScheduleEmailValidationFailure(t *testing.T) {
	env := newTestEnv(t)

	form := url.Values{}
	form.Set("client_name", "")
	form.Set("email", "b@x.com")
	resp := postForm(t, env.app, "/schedule/email", form)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, env.notifier.calls)

	count, err := env.schedules.Count(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestListShotsReturnsDescendingJSON(t *testing.T) {
	env := newTestEnv(t)
	ctx := t.Context()

	base := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		shot := entity.Shot{
			Title:     fmt.Sprintf("shot %d", i+1),
			Filename:  fmt.Sprintf("shot_%d.jpg", i+1),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, env.shots.Create(ctx, &shot))
	}

	req := httptest.NewRequest(http.MethodGet, "/api/shots", nil)
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var shots []struct {
		Id       int64  `json:"id"`
		Title    string `json:"title"`
		Filename string `json:"filename"`
		Caption  string `json:"caption"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&shots))
	require.Len(t, shots, 3)
	assert.Equal(t, "shot 3", shots[0].Title)
	assert.Equal(t, "shot 2", shots[1].Title)
	assert.Equal(t, "shot 1", shots[2].Title)
}

func TestHomeRendersFlashFromQueryParams(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/?category=success&status=hello", nil)
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "flash-success")
	assert.Contains(t, string(body), "hello")
}

func TestHomeRendersPlaceholderWhenUnseeded(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Photo Portfolio")
	assert.Contains(t, string(body), "Profile coming soon.")
	// No flash markup without query params.
	assert.NotContains(t, string(body), "class=\"flash")
}

func TestHomeRendersPhotographerProfile(t *testing.T) {
	env := newTestEnv(t)

	p := entity.Photographer{Name: "Jane Doe", Bio: "Weddings and portraits.", CreatedAt: time.Now().UTC()}
	require.NoError(t, env.photographers.Create(t.Context(), &p))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Jane Doe")
	assert.Contains(t, string(body), "Weddings and portraits.")
}
