package config

import (
	migration "Food-Waste-Tracker/cmd/database/migrate"
	"Food-Waste-Tracker/entities"
	"Food-Waste-Tracker/internal/api/presenters"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2025, time.November, 3, 10, 0, 0, 0, time.UTC)

type fakeS3 struct {
	uploads map[string]string
}

func (f *fakeS3) UploadFile(_ context.Context, objectKey string, body io.Reader, _ string) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	f.uploads[objectKey] = string(data)
	return objectKey, nil
}

func (f *fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://example.invalid/" + objectKey
}

type testApp struct {
	app *fiber.App
	db  *gorm.DB
}

func newTestApp(t *testing.T, deps Dependencies) *testApp {
	t.Helper()

	db, err := OpenSQLite(filepath.Join(t.TempDir(), "fridge.db"))
	require.NoError(t, err)
	require.NoError(t, migration.Migrate(db))

	if deps.Now == nil {
		deps.Now = func() time.Time { return fixedNow }
	}
	return &testApp{app: BuildApp(db, deps), db: db}
}

func (a *testApp) do(t *testing.T, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, string(body)
}

func (a *testApp) insert(t *testing.T, name, expiry string) int64 {
	t.Helper()
	item := entities.FoodItem{Name: name, ExpiryDate: expiry}
	require.NoError(t, a.db.Create(&item).Error)
	return item.ID
}

func (a *testApp) count(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, a.db.Model(&entities.FoodItem{}).Count(&n).Error)
	return n
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func formRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return req
}

func decode(t *testing.T, body string, data interface{}) presenters.Response {
	t.Helper()
	var envelope struct {
		presenters.Response
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &envelope), body)
	if data != nil {
		require.NoError(t, json.Unmarshal(envelope.Data, data), body)
	}
	return envelope.Response
}

func TestPing(t *testing.T) {
	a := newTestApp(t, Dependencies{})

	resp, body := a.do(t, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "pong")
}

func TestAddFoodItemAPI(t *testing.T) {
	a := newTestApp(t, Dependencies{})

	resp, body := a.do(t, jsonRequest(http.MethodPost, "/api/v1/food-items",
		`{"name":"Milk","category":"Dairy","quantity":"1L","location":"Fridge","expiry_date":"2025-11-10"}`))
	require.Equal(t, http.StatusCreated, resp.StatusCode, body)

	var item struct {
		ID       int64  `json:"id"`
		Name     string `json:"name"`
		DaysLeft *int   `json:"days_left"`
		Status   string `json:"status"`
	}
	res := decode(t, body, &item)
	assert.True(t, res.Status)
	assert.NotZero(t, item.ID)
	assert.Equal(t, "Milk", item.Name)
	require.NotNil(t, item.DaysLeft)
	assert.Equal(t, 7, *item.DaysLeft)
	assert.Equal(t, "Normal", item.Status)
	assert.Equal(t, int64(1), a.count(t))
}

func TestAddFoodItemAPIRejectsInvalidInput(t *testing.T) {
	a := newTestApp(t, Dependencies{})

	bodies := []string{
		`{"category":"Dairy","expiry_date":"2025-11-10"}`,
		`{"name":"   ","expiry_date":"2025-11-10"}`,
		`{"name":"Milk","category":"Candy","expiry_date":"2025-11-10"}`,
		`{"name":"Milk","expiry_date":"tomorrow"}`,
		`{"name":`,
	}
	for _, payload := range bodies {
		resp, body := a.do(t, jsonRequest(http.MethodPost, "/api/v1/food-items", payload))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, payload)
		assert.False(t, decode(t, body, nil).Status)
	}

	assert.Zero(t, a.count(t))
}

func TestGetFoodItemsAPIOrdersForDisplay(t *testing.T) {
	a := newTestApp(t, Dependencies{})
	a.insert(t, "Mystery", "bad")
	a.insert(t, "Apples", "2025-11-05")
	a.insert(t, "Yogurt", "2025-11-01")

	resp, body := a.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/food-items", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode, body)

	var data struct {
		Items []struct {
			Name     string `json:"name"`
			DaysLeft *int   `json:"days_left"`
			Status   string `json:"status"`
		} `json:"items"`
		Total int `json:"total"`
	}
	decode(t, body, &data)

	require.Len(t, data.Items, 3)
	assert.Equal(t, 3, data.Total)
	assert.Equal(t, "Yogurt", data.Items[0].Name)
	assert.Equal(t, -2, *data.Items[0].DaysLeft)
	assert.Equal(t, "Apples", data.Items[1].Name)
	assert.Equal(t, 2, *data.Items[1].DaysLeft)
	assert.Equal(t, "Mystery", data.Items[2].Name)
	assert.Nil(t, data.Items[2].DaysLeft)
	assert.Equal(t, "Unknown", data.Items[2].Status)
	assert.Contains(t, body, `"days_left":null`)
}

func TestDashboardAPI(t *testing.T) {
	a := newTestApp(t, Dependencies{})
	a.insert(t, "Old bread", "2025-10-31")
	a.insert(t, "Cheese", "2025-11-06")
	a.insert(t, "Rice", "2026-06-01")

	resp, body := a.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/food-items/dashboard", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode, body)

	var data struct {
		Today        string            `json:"today"`
		Expired      []json.RawMessage `json:"expired"`
		ExpiringSoon []json.RawMessage `json:"expiring_soon"`
		All          []json.RawMessage `json:"all"`
		Stats        map[string]int    `json:"stats"`
	}
	decode(t, body, &data)

	assert.Equal(t, "2025-11-03", data.Today)
	assert.Len(t, data.Expired, 1)
	assert.Len(t, data.ExpiringSoon, 1)
	assert.Len(t, data.All, 3)
	assert.Equal(t, 1, data.Stats["normal_items"])
}

func TestDeleteFoodItemAPI(t *testing.T) {
	a := newTestApp(t, Dependencies{})
	id := a.insert(t, "Milk", "2025-11-10")

	resp, _ := a.do(t, httptest.NewRequest(http.MethodDelete, "/api/v1/food-items/4242", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(1), a.count(t))

	resp, _ = a.do(t, httptest.NewRequest(http.MethodDelete, "/api/v1/food-items/abc", nil))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = a.do(t, httptest.NewRequest(http.MethodDelete, "/api/v1/food-items/"+strconv.FormatInt(id, 10), nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Zero(t, a.count(t))
}

func TestExportAPI(t *testing.T) {
	disabled := newTestApp(t, Dependencies{})
	resp, _ := disabled.do(t, httptest.NewRequest(http.MethodPost, "/api/v1/food-items/export", nil))
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	s3 := &fakeS3{uploads: map[string]string{}}
	enabled := newTestApp(t, Dependencies{S3: s3})
	enabled.insert(t, "Milk", "2025-11-04")

	resp, body := enabled.do(t, httptest.NewRequest(http.MethodPost, "/api/v1/food-items/export", nil))
	require.Equal(t, http.StatusCreated, resp.StatusCode, body)

	var data struct {
		ObjectKey string `json:"object_key"`
		URL       string `json:"url"`
		Items     int    `json:"items"`
	}
	decode(t, body, &data)
	assert.Equal(t, 1, data.Items)
	assert.Equal(t, "https://example.invalid/"+data.ObjectKey, data.URL)
	require.Contains(t, s3.uploads, data.ObjectKey)
	assert.Contains(t, s3.uploads[data.ObjectKey], "Milk,,,,2025-11-04,1,ExpiringSoon")
}

func TestIndexPage(t *testing.T) {
	a := newTestApp(t, Dependencies{})

	resp, body := a.do(t, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")
	assert.Contains(t, body, "No items yet. Add something above!")
	assert.Contains(t, body, "No items to manage yet.")
	assert.Contains(t, body, `min="2025-11-03"`)

	a.insert(t, "Old bread", "2025-10-31")
	a.insert(t, "Rice", "2026-06-01")

	_, body = a.do(t, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, body, "Expired Items")
	assert.Contains(t, body, "No items about to expire. Nice job!")
	assert.Contains(t, body, "All Items (sorted by expiry date)")
	assert.Contains(t, body, `class="status-Expired"`)
	assert.Contains(t, body, "ID 1 - Old bread")
}

func TestAddFoodItemForm(t *testing.T) {
	a := newTestApp(t, Dependencies{})

	resp, body := a.do(t, formRequest("/items", url.Values{
		"name":        {""},
		"category":    {"Dairy"},
		"location":    {"Fridge"},
		"expiry_date": {"2025-11-10"},
	}))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "Food name is required.")
	assert.Zero(t, a.count(t))

	resp, _ = a.do(t, formRequest("/items", url.Values{
		"name":        {"Milk"},
		"category":    {"Dairy"},
		"quantity":    {"1L"},
		"location":    {"Fridge"},
		"expiry_date": {"2025-11-10"},
	}))
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/?added=Milk&expires=2025-11-10", resp.Header.Get(fiber.HeaderLocation))
	assert.Equal(t, int64(1), a.count(t))

	_, body = a.do(t, httptest.NewRequest(http.MethodGet, "/?added=Milk&expires=2025-11-10", nil))
	assert.Contains(t, body, "Added Milk (expires 2025-11-10)")
}

func TestDeleteFoodItemForm(t *testing.T) {
	a := newTestApp(t, Dependencies{})
	id := a.insert(t, "Milk", "2025-11-10")

	resp, _ := a.do(t, formRequest("/items/delete", url.Values{"id": {strconv.FormatInt(id, 10)}}))
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Zero(t, a.count(t))

	resp, _ = a.do(t, formRequest("/items/delete", url.Values{"id": {"999"}}))
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp, _ = a.do(t, formRequest("/items/delete", url.Values{"id": {"nope"}}))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestClockUsesConfiguredTimezone(t *testing.T) {
	now, location, err := Clock("UTC")
	require.NoError(t, err)
	assert.Equal(t, "UTC", location.String())
	assert.Equal(t, time.UTC, now().Location())

	jakarta, _, err := Clock("Asia/Jakarta")
	require.NoError(t, err)
	assert.Equal(t, "Asia/Jakarta", jakarta().Location().String())

	local, _, err := Clock("Local")
	require.NoError(t, err)
	assert.Equal(t, time.Local, local().Location())

	_, _, err = Clock("Nowhere/Atlantis")
	assert.Error(t, err)
}
