// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pdiddy/calckit/internal/prefs"
	"github.com/pdiddy/calckit/pkg/types"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	store, err := prefs.Open(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cfg := types.Config{}.WithDefaults("")
	srv := New(cfg, store, zap.NewNop())
	srv.now = func() time.Time { return time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC) }
	return srv
}

func do(t *testing.T, srv *Server, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	var out map[string]any
	if strings.HasPrefix(strings.TrimSpace(w.Body.String()), "{") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func TestHealthCheck(t *testing.T) {
	w, body := do(t, testServer(t), "GET", "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestCORSHeaders(t *testing.T) {
	srv := testServer(t)
	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestListUnits(t *testing.T) {
	w, _ := do(t, testServer(t), "GET", "/api/units", "")
	require.Equal(t, http.StatusOK, w.Code)

	var out []unitSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Len(t, out, 13)
	assert.Equal(t, "degree", out[0].Base)
}

func TestUnitTable(t *testing.T) {
	w, body := do(t, testServer(t), "GET", "/api/units/temperature", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "kelvin", body["base"])

	w, _ = do(t, testServer(t), "GET", "/api/units/colour", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestConvert(t *testing.T) {
	srv := testServer(t)

	w, body := do(t, srv, "GET", "/api/convert?category=temperature&value=100&from=celsius&to=fahrenheit", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.InDelta(t, 212, body["result"], 1e-9)
	assert.Equal(t, "212", body["formatted"])

	w, body = do(t, srv, "GET", "/api/convert?category=length&value=abc&from=meter&to=foot", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body["error"], "not a number")

	w, _ = do(t, srv, "GET", "/api/convert?category=length&value=1&from=meter&to=furlong", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPair(t *testing.T) {
	srv := testServer(t)

	w, body := do(t, srv, "POST", "/api/pair", `{"category":"mass","left_unit":"kilogram","right_unit":"gram","side":"right","input":"2500"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2.5", body["left"])
	assert.Equal(t, "2500", body["right"])
	assert.Equal(t, true, body["valid"])

	w, body = do(t, srv, "POST", "/api/pair", `{"category":"mass","left_unit":"kilogram","right_unit":"gram","input":"x"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", body["right"])
	assert.Equal(t, false, body["valid"])

	w, _ = do(t, srv, "POST", "/api/pair", `{"category":"mass","left_unit":"kilogram","right_unit":"gram","side":"top"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalcEndpoints(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
		key  string
		want any
	}{
		{"age defaults to today", "/api/calc/age", `{"birth":"2026-10-14"}`, "years", 0.0},
		{"age with date", "/api/calc/age", `{"birth":"1990-05-15","on":"2026-10-14"}`, "years", 36.0},
		{"date diff", "/api/calc/date", `{"from":"2026-01-01","to":"2026-01-31"}`, "total_days", 30.0},
		{"date add", "/api/calc/date-add", `{"start":"2024-01-31","months":1}`, "date", "2024-02-29"},
		{"bmi", "/api/calc/bmi", `{"height_cm":180,"weight_kg":81}`, "category", "Overweight"},
		{"bmi imperial", "/api/calc/bmi", `{"imperial":true,"feet":5,"inches":11,"pounds":160}`, "bmi", 22.3},
		{"bmr", "/api/calc/bmr", `{"sex":"male","weight_kg":80,"height_cm":180,"age_years":30}`, "bmr", 1780.0},
		{"loan", "/api/calc/loan", `{"principal":1200,"rate":0,"months":12}`, "monthly_payment", 100.0},
		{"percentage", "/api/calc/percentage", `{"op":"of","a":10,"b":250}`, "result", 25.0},
		{"subnet", "/api/subnet", `{"address":"192.168.1.10","mask":"255.255.255.0"}`, "broadcast", "192.168.1.255"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := do(t, testServer(t), "POST", tt.path, tt.body)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			if f, ok := tt.want.(float64); ok {
				assert.InDelta(t, f, body[tt.key], 1e-9)
				return
			}
			assert.Equal(t, tt.want, body[tt.key])
		})
	}
}

func TestCalories(t *testing.T) {
	w, body := do(t, testServer(t), "POST", "/api/calc/calories",
		`{"sex":"male","weight_kg":80,"height_cm":180,"age_years":30,"activity":"moderate"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.InDelta(t, 2759, body["tdee"], 1e-9)
	assert.Len(t, body["goals"], 6)
}

func TestTrigEndpoint(t *testing.T) {
	srv := testServer(t)
	w, body := do(t, srv, "POST", "/api/calc/trig", `{"func":"sin","value":30}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.InDelta(t, 0.5, body["result"], 1e-12)

	w, _ = do(t, srv, "POST", "/api/calc/trig", `{"func":"tan","value":90,"unit":"degree"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalcValidationErrors(t *testing.T) {
	srv := testServer(t)
	for _, tc := range []struct{ path, body string }{
		{"/api/calc/age", `{"birth":"2030-01-01"}`},
		{"/api/calc/age", `{"birth":"14/10/2026"}`},
		{"/api/calc/bmi", `{"height_cm":0,"weight_kg":70}`},
		{"/api/calc/loan", `{"principal":1000,"rate":5,"months":0}`},
		{"/api/calc/loan", `{"principal":1000,"rate":5,"months":1099511627776}`},
		{"/api/calc/percentage", `{"op":"what","a":1,"b":0}`},
		{"/api/subnet", `{"address":"10.0.0.1","mask":"255.0.255.0"}`},
		{"/api/calc/bmr", `not json`},
	} {
		w, body := do(t, srv, "POST", tc.path, tc.body)
		assert.Equal(t, http.StatusBadRequest, w.Code, tc.path+" "+tc.body)
		assert.NotEmpty(t, body["error"])
	}
}

func TestText(t *testing.T) {
	srv := testServer(t)

	w, body := do(t, srv, "POST", "/api/text", `{"text":"hello world","mode":"title"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hello World", body["result"])
	stats := body["stats"].(map[string]any)
	assert.InDelta(t, 2, stats["words"], 0)

	w, body = do(t, srv, "POST", "/api/text", `{"text":"abc","reverse":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cba", body["result"])

	w, _ = do(t, srv, "POST", "/api/text", `{"text":"abc","mode":"shout"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTheme(t *testing.T) {
	srv := testServer(t)

	w, body := do(t, srv, "GET", "/api/theme", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "light", body["theme"])

	w, body = do(t, srv, "POST", "/api/theme/toggle", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dark", body["theme"])

	w, body = do(t, srv, "GET", "/api/theme", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dark", body["theme"])

	w, body = do(t, srv, "PUT", "/api/theme", `{"theme":"light"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "light", body["theme"])

	w, _ = do(t, srv, "PUT", "/api/theme", `{"theme":"sepia"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStartStopsOnCancel(t *testing.T) {
	srv := testServer(t)
	srv.cfg.Server.Addr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestWriteJSONEncodingFailure(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	srv := testServer(t)
	srv.logger = zap.New(core)

	w := httptest.NewRecorder()
	srv.writeJSON(w, http.StatusOK, map[string]float64{"result": math.NaN()})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, w.Body.String())
	require.Equal(t, 1, logs.FilterMessage("encoding response").Len())
}

func TestQR(t *testing.T) {
	srv := testServer(t)

	w, _ := do(t, srv, "POST", "/api/qr", `{"text":"https://example.com","level":"Q","size":128}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "\x89PNG"))

	w, body := do(t, srv, "POST", "/api/qr", `{"text":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body["error"], "no text")
}
