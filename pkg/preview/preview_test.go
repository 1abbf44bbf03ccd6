package preview

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vango-dev/styled/pkg/showcase"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	reg := prometheus.NewRegistry()
	return New(showcase.New(), Config{
		Title:      "Test gallery",
		Metrics:    true,
		Registerer: reg,
		Gatherer:   reg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestGallery(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"<title>Test gallery</title>", `id="playground-output"`, "/ws"} {
		if !strings.Contains(body, want) {
			t.Errorf("gallery missing %q", want)
		}
	}
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("healthz = %d %s", rec.Code, rec.Body.String())
	}
}

func TestRenderEndpoint(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		target string
		body   string
		status int
		want   string
	}{
		{"json body", "/render/Text", `{"text": "hi", "color": "red"}`, http.StatusOK, `<span style="color: red">hi</span>`},
		{"yaml body", "/render/View", "p: 8\n", http.StatusOK, `<div style="padding: 8px"></div>`},
		{"empty body", "/render/View", "", http.StatusOK, `<div></div>`},
		{"unknown component", "/render/Nope", `{}`, http.StatusNotFound, `"code":"E121"`},
		{"list body", "/render/View", `[1, 2]`, http.StatusBadRequest, `"code":"E120"`},
		{"explicit style", "/render/View", `{"style": {"padding": 20}, "margin": 5}`, http.StatusOK, `<div style="margin: 5px; padding: 20px"></div>`},
		{"shadow offset", "/render/View", `{"shadowColor": "#000", "shadowOffset": {"width": 1, "height": 2}, "shadowRadius": 3}`, http.StatusOK, `box-shadow: 1px 2px 3px #000`},
		{"string handler", "/render/Text", `{"onclick": "alert(1)", "onPress": "alert(2)", "text": "hi"}`, http.StatusOK, `<span>hi</span>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, tt.target, tt.body)
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
			if got := strings.TrimSpace(rec.Body.String()); !strings.Contains(got, tt.want) {
				t.Errorf("body = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStyleEndpoint(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodPost, "/style/View", `{"px": 4, "margin": 2, "bogus": true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Component string         `json:"component"`
		Style     map[string]any `json:"style"`
		CSS       string         `json:"css"`
		Report    struct {
			Dropped []string `json:"dropped"`
		} `json:"report"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Component != "View" {
		t.Errorf("component = %q", resp.Component)
	}
	if resp.Style["paddingHorizontal"] != float64(4) || resp.Style["margin"] != float64(2) {
		t.Errorf("style = %v", resp.Style)
	}
	if resp.CSS != "margin: 2px; padding-left: 4px; padding-right: 4px" {
		t.Errorf("css = %q", resp.CSS)
	}
	if len(resp.Report.Dropped) != 1 || resp.Report.Dropped[0] != "bogus" {
		t.Errorf("dropped = %v", resp.Report.Dropped)
	}
}

func TestComponentPage(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/components/Text?text=hello&fontSize=12", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if want := `<span style="font-size: 12px">hello</span>`; !strings.Contains(rec.Body.String(), want) {
		t.Errorf("page missing %q:\n%s", want, rec.Body.String())
	}
}

func TestComponentPageDropsStringHandlers(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/components/Text?onclick=alert(document.cookie)&text=hi", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := rec.Body.String(); strings.Contains(body, "alert(document.cookie)") {
		t.Errorf("page reflects handler source:\n%s", body)
	}
}

func TestQueryValue(t *testing.T) {
	tests := []struct {
		raw  string
		want any
	}{
		{"12", 12},
		{"1.5", 1.5},
		{"true", true},
		{"red", "red"},
		{"#fff", "#fff"},
		{"a: b", "a: b"},
	}
	for _, tt := range tests {
		if got := queryValue(tt.raw); got != tt.want {
			t.Errorf("queryValue(%q) = %#v, want %#v", tt.raw, got, tt.want)
		}
	}
}

func TestMetrics(t *testing.T) {
	s := newTestServer(t)
	do(t, s, http.MethodPost, "/render/View", `{"bogus": 1}`)
	do(t, s, http.MethodPost, "/render/View", `{"padding": 1}`)
	do(t, s, http.MethodPost, "/render/Nope", `{}`)

	if got := testutil.ToFloat64(s.metrics.renders.WithLabelValues("View", "success")); got != 2 {
		t.Errorf("View successes = %v, want 2", got)
	}
	if got := testutil.ToFloat64(s.metrics.renders.WithLabelValues(unknownComponent, "error")); got != 1 {
		t.Errorf("unknown errors = %v, want 1", got)
	}
	if got := testutil.ToFloat64(s.metrics.droppedProps.WithLabelValues("View")); got != 1 {
		t.Errorf("dropped = %v, want 1", got)
	}

	rec := do(t, s, http.MethodGet, "/metrics", "")
	if !strings.Contains(rec.Body.String(), "styled_render_duration_seconds") {
		t.Error("/metrics missing render duration histogram")
	}
}

func TestMetricsUnknownNamesShareSeries(t *testing.T) {
	s := newTestServer(t)
	for _, name := range []string{"a1", "a2", "a3", "a4"} {
		do(t, s, http.MethodPost, "/render/"+name, `{}`)
	}

	if got := testutil.CollectAndCount(s.metrics.renders); got != 1 {
		t.Errorf("renders_total series = %d, want 1", got)
	}
	if got := testutil.CollectAndCount(s.metrics.duration); got != 1 {
		t.Errorf("render_duration_seconds series = %d, want 1", got)
	}
	if got := testutil.ToFloat64(s.metrics.renders.WithLabelValues(unknownComponent, "error")); got != 4 {
		t.Errorf("unknown errors = %v, want 4", got)
	}
}

func TestMetricsDisabled(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := New(showcase.New(), Config{Registerer: reg, Gatherer: reg, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	if rec := do(t, s, http.MethodGet, "/metrics", ""); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func exchange(t *testing.T, conn *websocket.Conn, frame string) liveMessage {
	t.Helper()
	if err := conn.WriteMessage(websocket.TextMessage, []byte(frame)); err != nil {
		t.Fatal(err)
	}
	var msg liveMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatal(err)
	}
	return msg
}

func TestLiveRender(t *testing.T) {
	s := newTestServer(t)
	ts := httptest.NewServer(s)
	defer ts.Close()
	conn := dial(t, ts)

	msg := exchange(t, conn, `{"component": "View", "props": {"p": 4, "zzz": 1}}`)
	if msg.Type != messageRender || msg.HTML != `<div style="padding: 4px"></div>` {
		t.Errorf("render = %+v", msg)
	}
	if len(msg.Dropped) != 1 || msg.Dropped[0] != "zzz" {
		t.Errorf("dropped = %v", msg.Dropped)
	}
	if got := testutil.ToFloat64(s.metrics.wsConnections); got != 1 {
		t.Errorf("ws_connections = %v, want 1", got)
	}

	tests := []struct {
		frame string
		code  string
	}{
		{`not json`, "E141"},
		{`{"props": {}}`, "E141"},
		{`{"component": "Nope"}`, "E121"},
		{`{"component": "View", "props": [1]}`, "E141"},
	}
	for _, tt := range tests {
		msg := exchange(t, conn, tt.frame)
		if msg.Type != messageError || msg.Code != tt.code {
			t.Errorf("%s: got %+v, want code %s", tt.frame, msg, tt.code)
		}
	}
}

func TestLiveRenderNestedStyle(t *testing.T) {
	ts := httptest.NewServer(newTestServer(t))
	defer ts.Close()
	conn := dial(t, ts)

	msg := exchange(t, conn, `{"component": "View", "props": {"style": {"padding": 20}, "margin": 5}}`)
	if msg.Type != messageRender || msg.CSS != "margin: 5px; padding: 20px" {
		t.Errorf("render = %+v", msg)
	}

	msg = exchange(t, conn, `{"component": "View", "props": null}`)
	if msg.Type != messageRender || msg.HTML != "<div></div>" {
		t.Errorf("null props = %+v", msg)
	}
}

func TestSetRegistryBroadcastsReload(t *testing.T) {
	s := newTestServer(t)
	ts := httptest.NewServer(s)
	defer ts.Close()
	conn := dial(t, ts)

	// One round trip guarantees the client is registered.
	exchange(t, conn, `{"component": "Text"}`)
	if s.ClientCount() != 1 {
		t.Fatalf("ClientCount() = %d", s.ClientCount())
	}

	next := showcase.New()
	s.SetRegistry(next)
	if s.Registry() != next {
		t.Error("registry not swapped")
	}

	var msg liveMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatal(err)
	}
	if msg.Type != messageReload {
		t.Errorf("message = %+v, want reload", msg)
	}
}

func TestCheckOrigin(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		host    string
		origin  string
		want    bool
	}{
		{"no origin", nil, "localhost:4100", "", true},
		{"same host", nil, "localhost:4100", "http://localhost:4100", true},
		{"other host", nil, "localhost:4100", "http://evil.test", false},
		{"listed", []string{"https://docs.example.com/"}, "localhost:4100", "https://docs.example.com", true},
		{"not listed", []string{"https://docs.example.com"}, "localhost:4100", "http://localhost:4100", false},
		{"wildcard", []string{"*"}, "localhost:4100", "http://anything.test", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/ws", nil)
			r.Host = tt.host
			if tt.origin != "" {
				r.Header.Set("Origin", tt.origin)
			}
			if got := checkOrigin(tt.allowed)(r); got != tt.want {
				t.Errorf("checkOrigin() = %v, want %v", got, tt.want)
			}
		})
	}
}

const watchedConfig = `preview:
  host: localhost
  port: 4100
components:
  Heading:
    base: Text
    aliasPreset: text
    examples:
      - name: big
        props:
          size: 32
          text: Hello
`

func TestWatcherReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styled.yaml")
	if err := os.WriteFile(path, []byte(watchedConfig), 0644); err != nil {
		t.Fatal(err)
	}

	s := newTestServer(t)
	w := NewWatcher(s, WatcherConfig{Path: path, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})

	w.Reload()
	if _, err := s.Registry().Lookup("Heading"); err != nil {
		t.Fatalf("Heading not loaded: %v", err)
	}
	rec := do(t, s, http.MethodPost, "/render/Heading", `{"size": 20, "text": "x"}`)
	if want := `<span style="font-size: 20px">x</span>`; rec.Body.String() != want {
		t.Errorf("render = %q, want %q", rec.Body.String(), want)
	}

	// A broken config keeps the last good registry.
	before := s.Registry()
	if err := os.WriteFile(path, []byte("components:\n  Bad:\n    base: Nope\n"), 0644); err != nil {
		t.Fatal(err)
	}
	w.Reload()
	if s.Registry() != before {
		t.Error("registry replaced by an invalid config")
	}
}

func TestWatcherDetectsChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styled.yaml")
	if err := os.WriteFile(path, []byte("preview:\n  host: localhost\n  port: 4100\n"), 0644); err != nil {
		t.Fatal(err)
	}

	s := newTestServer(t)
	w := NewWatcher(s, WatcherConfig{Path: path, Interval: 10 * time.Millisecond, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	initial := s.Registry()
	time.Sleep(30 * time.Millisecond)
	if err := os.WriteFile(path, []byte(watchedConfig), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for s.Registry() == initial && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	cancel()
	<-done

	if _, err := s.Registry().Lookup("Heading"); err != nil {
		t.Errorf("watcher did not reload: %v", err)
	}
}
