package server

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/wardrobe"
	"github.com/agentstation/wardrobe/pkg/catalogs"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type testServer struct {
	srv      *Server
	http     *httptest.Server
	wardrobe wardrobe.Wardrobe
	store    string
}

func newTestServer(t *testing.T, cfg Config) *testServer {
	t.Helper()

	logger := zerolog.Nop()
	store := filepath.Join(t.TempDir(), "wardrobe.json")
	w, err := wardrobe.New(wardrobe.WithStorePath(store), wardrobe.WithLogger(&logger))
	require.NoError(t, err)

	srv, err := New(w, &logger, cfg)
	require.NoError(t, err)
	srv.Start()

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		ts.Close()
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	})

	return &testServer{srv: srv, http: ts, wardrobe: w, store: store}
}

func (ts *testServer) do(t *testing.T, method, path, body string) (*http.Response, envelope) {
	t.Helper()
	req, err := http.NewRequest(method, ts.http.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func (ts *testServer) seed(t *testing.T) {
	t.Helper()
	for _, item := range []*catalogs.Item{
		catalogs.NewItem("Red shirt", "top", "red", "comfy", "bold", "casual"),
		catalogs.NewItem("Red jeans", "bottom", "red", "tight", "bold", "casual"),
		catalogs.NewItem("Navy blazer", "jacket", "navy", "tight", "calm", "business casual"),
		catalogs.NewItem("Red beret", "accessory", "red", "comfy", "bold", "casual"),
	} {
		require.NoError(t, ts.wardrobe.Add(item))
	}
}

type itemList struct {
	Items []catalogs.Record `json:"items"`
	Count int               `json:"count"`
}

func TestNewRequiresWardrobe(t *testing.T) {
	_, err := New(nil, nil, DefaultConfig())
	assert.Error(t, err)
}

func TestNewDoesNotBlockBeforeStart(t *testing.T) {
	logger := zerolog.Nop()
	w, err := wardrobe.New(wardrobe.WithLogger(&logger))
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		srv, err := New(w, &logger, DefaultConfig())
		assert.NoError(t, err)
		assert.Equal(t, 2, srv.Broker().SubscriberCount())
		require.NoError(t, w.Add(catalogs.NewItem("Grey hoodie", "top", "grey", "baggy", "lazy", "casual")))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("New deadlocked before Start")
	}
}

func TestConfigAddr(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "localhost:8080", cfg.Addr())

	cfg.Host, cfg.Port = "::1", 9000
	assert.Equal(t, "[::1]:9000", cfg.Addr())
}

func TestItemsAPI(t *testing.T) {
	ts := newTestServer(t, DefaultConfig())

	resp, env := ts.do(t, http.MethodPost, "/api/v1/items",
		`{"id":"Red shirt","type":"top","colour":"red","fit":"comfy","mood":"bold","dressCode":"casual"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created catalogs.Record
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "Red shirt", created.ID)

	resp, env = ts.do(t, http.MethodGet, "/api/v1/items", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list itemList
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 1, list.Count)

	resp, env = ts.do(t, http.MethodDelete, "/api/v1/items/Red%20shirt", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"id":"Red shirt","removed":1}`, string(env.Data))

	resp, env = ts.do(t, http.MethodDelete, "/api/v1/items/Red%20shirt", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
	assert.Empty(t, ts.wardrobe.Items())
}

func TestAddItemRejectsBadInput(t *testing.T) {
	ts := newTestServer(t, DefaultConfig())

	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"malformed", `{"id":`},
		{"unknown field", `{"id":"x","type":"top","colour":"red","fit":"comfy","mood":"bold","dressCode":"casual","size":"M"}`},
		{"bad fit", `{"id":"x","type":"top","colour":"red","fit":"snug","mood":"bold","dressCode":"casual"}`},
		{"bad type", `{"id":"x","type":"hat","colour":"red","fit":"comfy","mood":"bold","dressCode":"casual"}`},
		{"missing mood", `{"id":"x","type":"top","colour":"red","fit":"comfy","dressCode":"casual"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, env := ts.do(t, http.MethodPost, "/api/v1/items", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			require.NotNil(t, env.Error)
			assert.Equal(t, "BAD_REQUEST", env.Error.Code)
		})
	}
	assert.Empty(t, ts.wardrobe.Items())
}

func TestListItemsFilters(t *testing.T) {
	ts := newTestServer(t, DefaultConfig())
	ts.seed(t)

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"Red shirt", "Red jeans", "Navy blazer", "Red beret"}},
		{"?category=TOP", []string{"Red shirt"}},
		{"?colour=red&fit=comfy", []string{"Red shirt", "Red beret"}},
		{"?dressCode=business%20casual", []string{"Navy blazer"}},
		{"?colour=Red", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			_, env := ts.do(t, http.MethodGet, "/api/v1/items"+tt.query, "")
			var list itemList
			require.NoError(t, json.Unmarshal(env.Data, &list))

			ids := make([]string, 0, len(list.Items))
			for _, r := range list.Items {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.want, ids)
			assert.Equal(t, len(tt.want), list.Count)
		})
	}
}

func TestFilterItems(t *testing.T) {
	ts := newTestServer(t, DefaultConfig())
	ts.seed(t)

	_, env := ts.do(t, http.MethodGet, "/api/v1/items/filter?by=mood&value=bold&category=b", "")
	var list itemList
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Red jeans", list.Items[0].ID)

	_, env = ts.do(t, http.MethodGet, "/api/v1/items/filter?by=anything&value=business%20casual", "")
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Navy blazer", list.Items[0].ID)

	resp, env := ts.do(t, http.MethodGet, "/api/v1/items/filter?by=colour&value=red&category=shoes", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "BAD_REQUEST", env.Error.Code)
}

func TestOutfitAndCounts(t *testing.T) {
	ts := newTestServer(t, DefaultConfig())
	ts.seed(t)

	_, env := ts.do(t, http.MethodGet, "/api/v1/outfits?colour=red&mood=bold&dressCode=casual", "")
	var outfit catalogs.OutfitRecord
	require.NoError(t, json.Unmarshal(env.Data, &outfit))
	require.Len(t, outfit.Tops, 1)
	require.Len(t, outfit.Bottoms, 1)
	assert.Empty(t, outfit.Jackets)
	require.Len(t, outfit.Accessories, 1)
	assert.Equal(t, "Red beret", outfit.Accessories[0].ID)

	_, env = ts.do(t, http.MethodGet, "/api/v1/counts", "")
	assert.JSONEq(t, `{
		"categories": {"tops": 1, "bottoms": 1, "jackets": 1, "accessories": 1},
		"uncategorized": 0,
		"total": 4
	}`, string(env.Data))
}

func TestResponseCacheInvalidatedOnChange(t *testing.T) {
	ts := newTestServer(t, DefaultConfig())
	ts.seed(t)

	resp, _ := ts.do(t, http.MethodGet, "/api/v1/items?colour=red", "")
	assert.Equal(t, "MISS", resp.Header.Get("X-Cache"))
	resp, _ = ts.do(t, http.MethodGet, "/api/v1/items?colour=red", "")
	assert.Equal(t, "HIT", resp.Header.Get("X-Cache"))

	_, err := ts.wardrobe.Remove("Red jeans")
	require.NoError(t, err)

	resp, env := ts.do(t, http.MethodGet, "/api/v1/items?colour=red", "")
	assert.Equal(t, "MISS", resp.Header.Get("X-Cache"))
	var list itemList
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 2, list.Count)
}

// changingWardrobe adds an item while the first Items call is in progress,
// as a concurrent request would.
type changingWardrobe struct {
	wardrobe.Wardrobe
	once sync.Once
}

func (w *changingWardrobe) Items() []*catalogs.Item {
	items := w.Wardrobe.Items()
	w.once.Do(func() {
		_ = w.Wardrobe.Add(catalogs.NewItem("Late coat", "jacket", "grey", "baggy", "calm", "casual"))
	})
	return items
}

func TestResponseCacheSkipsResultComputedAcrossChange(t *testing.T) {
	logger := zerolog.Nop()
	inner, err := wardrobe.New(wardrobe.WithLogger(&logger))
	require.NoError(t, err)

	srv, err := New(&changingWardrobe{Wardrobe: inner}, &logger, DefaultConfig())
	require.NoError(t, err)
	srv.Start()
	hs := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		hs.Close()
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	})
	ts := &testServer{srv: srv, http: hs, wardrobe: inner}

	resp, env := ts.do(t, http.MethodGet, "/api/v1/items", "")
	assert.Equal(t, "MISS", resp.Header.Get("X-Cache"))
	var list itemList
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 0, list.Count)

	resp, env = ts.do(t, http.MethodGet, "/api/v1/items", "")
	assert.Equal(t, "MISS", resp.Header.Get("X-Cache"), "stale result must not be cached")
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 1, list.Count)
}

func TestCacheDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CacheTTL = 0
	ts := newTestServer(t, cfg)

	assert.Nil(t, ts.srv.Cache())
	resp, _ := ts.do(t, http.MethodGet, "/api/v1/items", "")
	assert.Empty(t, resp.Header.Get("X-Cache"))
}

func TestSaveAndLoad(t *testing.T) {
	ts := newTestServer(t, DefaultConfig())
	ts.seed(t)

	resp, env := ts.do(t, http.MethodPost, "/api/v1/save", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"path":`+jsonString(ts.store)+`,"items":4}`, string(env.Data))
	assert.FileExists(t, ts.store)

	_, err := ts.wardrobe.Remove("Red shirt")
	require.NoError(t, err)
	require.Len(t, ts.wardrobe.Items(), 3)

	resp, env = ts.do(t, http.MethodPost, "/api/v1/load", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"path":`+jsonString(ts.store)+`,"items":4}`, string(env.Data))
	assert.Len(t, ts.wardrobe.Items(), 4)
}

func TestLoadMalformedStore(t *testing.T) {
	ts := newTestServer(t, DefaultConfig())
	ts.seed(t)
	require.NoError(t, os.WriteFile(ts.store, []byte(`{"tops":[]}`), 0o644))

	resp, env := ts.do(t, http.MethodPost, "/api/v1/load", "")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "UNPROCESSABLE_ENTITY", env.Error.Code)
	assert.Len(t, ts.wardrobe.Items(), 4)
}

func TestHealthAndReady(t *testing.T) {
	ts := newTestServer(t, DefaultConfig())

	for _, path := range []string{"/health", "/api/v1/health"} {
		resp, env := ts.do(t, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(env.Data), `"healthy"`)
	}

	resp, env := ts.do(t, http.MethodGet, "/api/v1/ready", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"ready"`)
}

func TestUnknownRouteAndMethod(t *testing.T) {
	ts := newTestServer(t, DefaultConfig())

	resp, env := ts.do(t, http.MethodGet, "/api/v1/shoes", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)

	resp, env = ts.do(t, http.MethodPut, "/api/v1/counts", "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, "METHOD_NOT_ALLOWED", env.Error.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t, DefaultConfig())
	ts.seed(t)
	ts.do(t, http.MethodGet, "/api/v1/counts", "")

	resp, err := http.Get(ts.http.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body strings.Builder
	sc := bufio.NewScanner(resp.Body)
	for sc.Scan() {
		body.WriteString(sc.Text())
		body.WriteString("\n")
	}
	out := body.String()
	assert.Contains(t, out, `wardrobe_items{category="top"} 1`)
	assert.Contains(t, out, `wardrobe_http_requests_total{method="GET",route="/api/v1/counts",status="200"} 1`)
	assert.Contains(t, out, `wardrobe_events_published_total{type="item.added"} 4`)
}

func TestMetricsDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MetricsEnabled = false
	ts := newTestServer(t, cfg)

	assert.Nil(t, ts.srv.Metrics())
	resp, _ := ts.do(t, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCORSEnabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CORSEnabled = true
	cfg.CORSOrigins = []string{"https://closet.example"}
	ts := newTestServer(t, cfg)

	req, err := http.NewRequest(http.MethodGet, ts.http.URL+"/api/v1/items", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://closet.example")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "https://closet.example", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestWebSocketReceivesChanges(t *testing.T) {
	ts := newTestServer(t, DefaultConfig())

	url := "ws" + strings.TrimPrefix(ts.http.URL, "http") + "/api/v1/events/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))

	var msg struct {
		Type string          `json:"type"`
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, "client.connected", msg.Type)

	require.NoError(t, ts.wardrobe.Add(catalogs.NewItem("Silk scarf", "accessory", "red", "comfy", "bold", "cocktail")))

	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "item.added", msg.Type)
	var rec catalogs.Record
	require.NoError(t, json.Unmarshal(msg.Data, &rec))
	assert.Equal(t, "Silk scarf", rec.ID)
}

func TestSSEReceivesChanges(t *testing.T) {
	ts := newTestServer(t, DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.http.URL+"/api/v1/events/stream", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	r := bufio.NewReader(resp.Body)
	line, err := r.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "event: connected\n", line)

	require.Eventually(t, func() bool {
		return ts.srv.sseBroadcaster.ClientCount() == 1
	}, 2*time.Second, 5*time.Millisecond)

	require.NoError(t, ts.wardrobe.Add(catalogs.NewItem("Grey hoodie", "top", "grey", "baggy", "lazy", "casual")))

	for {
		line, err = r.ReadString('\n')
		require.NoError(t, err)
		if strings.HasPrefix(line, "event: item.") {
			break
		}
	}
	assert.Equal(t, "event: item.added\n", line)
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
