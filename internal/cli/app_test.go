package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/tradein/pkg/domain"
	"github.com/aretw0/tradein/pkg/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, opts Options) *App {
	t.Helper()
	if opts.EnvFile == "" {
		opts.EnvFile = filepath.Join(t.TempDir(), "missing.env")
	}
	app, err := NewApp(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app
}

const fullValuation = "1\nc\n2\nc\n1\nc\n1\nc\n3\nc\n1\nc\n1\nc\na\n"

func TestNewApp_DemoCatalog(t *testing.T) {
	app := newTestApp(t, Options{})

	consoles := app.Service.Consoles(context.Background(), domain.PlatformPlaystation, 0)
	require.Len(t, consoles, 2)
	assert.Equal(t, "ps5", consoles[0].ID)
	assert.Equal(t, domain.Units(400), consoles[0].BasePrice)

	assert.Len(t, app.Service.Consoles(context.Background(), domain.PlatformNintendo, 0), 2)
	assert.Nil(t, app.Catalogs)
}

func TestNewApp_RejectsBadEncryptionKey(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "tradein.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("encryption_key: short\n"), 0o644))

	_, err := NewApp(Options{ConfigPath: cfg, EnvFile: filepath.Join(t.TempDir(), "x.env")})
	assert.ErrorContains(t, err, "encryption_key")
}

func TestRunValue_Text(t *testing.T) {
	app := newTestApp(t, Options{})
	var out bytes.Buffer

	result, err := RunValue(context.Background(), app, ValueOptions{
		Shopper: "alice",
		In:      strings.NewReader(fullValuation),
		Out:     &out,
	})
	require.NoError(t, err)
	assert.True(t, result.Active)
	assert.Equal(t, domain.Units(420), result.FinalValue)
	assert.Contains(t, out.String(), "PlayStation 5")

	var printed bytes.Buffer
	require.NoError(t, PrintResult(&printed, result, "€", false))
	assert.Equal(t, ">>> Trade-in added: PlayStation 5: €420.00\n", printed.String())
}

func TestRunValue_JSON(t *testing.T) {
	app := newTestApp(t, Options{})
	var out bytes.Buffer

	result, err := RunValue(context.Background(), app, ValueOptions{
		JSON: true,
		In:   strings.NewReader("\"q\"\n"),
		Out:  &out,
	})
	require.NoError(t, err)
	assert.False(t, result.Active)

	first := strings.SplitN(out.String(), "\n", 2)[0]
	assert.True(t, json.Valid([]byte(first)), first)

	var printed bytes.Buffer
	require.NoError(t, PrintResult(&printed, result, "€", true))
	assert.Contains(t, printed.String(), `"isTradeInActive":false`)
}

func TestRunValue_EndOfInputDiscards(t *testing.T) {
	app := newTestApp(t, Options{})

	result, err := RunValue(context.Background(), app, ValueOptions{
		Shopper: "bob",
		In:      strings.NewReader("1\n"),
		Out:     &bytes.Buffer{},
	})
	require.NoError(t, err)
	assert.False(t, result.Active)
}

func TestNewApp_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	app := newTestApp(t, Options{RedisAddr: mr.Addr()})

	_, err := RunValue(context.Background(), app, ValueOptions{
		Shopper: "carol",
		In:      strings.NewReader(fullValuation),
		Out:     &bytes.Buffer{},
	})
	require.NoError(t, err)

	state, err := app.Service.TradeIn(context.Background(), "carol")
	require.NoError(t, err)
	assert.Equal(t, domain.Units(420), state.FinalValue)

	keys := mr.Keys()
	assert.NotEmpty(t, keys)
	for _, k := range keys {
		assert.True(t, strings.HasPrefix(k, "tradein:"), k)
	}
	assert.Contains(t, keys, "tradein:result:carol")
	assert.Contains(t, keys, "tradein:session:index")
}

func TestNewApp_RedisLockKeys(t *testing.T) {
	mr := miniredis.RunT(t)
	app := newTestApp(t, Options{RedisAddr: mr.Addr()})
	ctx := context.Background()

	view, err := app.Service.Open(ctx, "erin")
	require.NoError(t, err)

	// Another replica holds the session lock.
	require.NoError(t, mr.Set("tradein:lock:"+view.SessionID, "other-replica"))
	short, cancel := context.WithTimeout(ctx, 300*time.Millisecond)
	defer cancel()
	_, err = app.Service.ChoosePlatform(short, view.SessionID, domain.PlatformXbox)
	assert.ErrorIs(t, err, context.DeadlineExceeded, "the update waits on the held lock")

	mr.Del("tradein:lock:" + view.SessionID)
	view, err = app.Service.ChoosePlatform(ctx, view.SessionID, domain.PlatformXbox)
	require.NoError(t, err)
	assert.Equal(t, domain.PlatformXbox, view.Platform)
	assert.False(t, mr.Exists("tradein:lock:"+view.SessionID), "the lock is released after the update")
}

func TestNewApp_RedisCartKey(t *testing.T) {
	mr := miniredis.RunT(t)
	app := newTestApp(t, Options{RedisAddr: mr.Addr()})

	_, err := app.Service.AddToCart(context.Background(), "frank", "ps5", product.Selection{})
	require.NoError(t, err)
	assert.True(t, mr.Exists("tradein:cart:frank"))
}

func TestNewHTTPHandler_Metrics(t *testing.T) {
	app := newTestApp(t, Options{})
	h := NewHTTPHandler(app, true)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sessions", strings.NewReader(`{"shopper":"dave"}`)))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `tradein_sessions_opened_total{platform="playstation"} 1`)
}

func TestNewApp_EncryptedSessions(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "tradein.yaml")
	key := strings.Repeat("ab", 32)
	require.NoError(t, os.WriteFile(cfg, []byte("encryption_key: "+key+"\n"), 0o644))

	app := newTestApp(t, Options{ConfigPath: cfg})
	result, err := RunValue(context.Background(), app, ValueOptions{
		Shopper: "erin",
		In:      strings.NewReader(fullValuation),
		Out:     &bytes.Buffer{},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Units(420), result.FinalValue)
}

func TestNewApp_FallbackCatalog(t *testing.T) {
	dir := t.TempDir()
	fb := filepath.Join(dir, "fallback.yaml")
	require.NoError(t, os.WriteFile(fb, []byte(shortCatalog), 0o644))
	cfg := filepath.Join(dir, "tradein.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("fallback_catalog: "+fb+"\n"), 0o644))

	app := newTestApp(t, Options{ConfigPath: cfg})
	c, source := app.Service.Catalog(context.Background(), "ps5")
	assert.Equal(t, domain.CatalogSourceDefault, source)
	require.Len(t, c, 1)
	assert.Equal(t, "q1", c[0].ID)

	cfgBad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(cfgBad, []byte("fallback_catalog: "+filepath.Join(dir, "nope.yaml")+"\n"), 0o644))
	_, err := NewApp(Options{ConfigPath: cfgBad, EnvFile: filepath.Join(dir, "x.env")})
	assert.ErrorContains(t, err, "fallback catalog")
}
