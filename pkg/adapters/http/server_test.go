package http

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/tradein"
	"github.com/aretw0/tradein/pkg/adapters/memory"
	"github.com/aretw0/tradein/pkg/domain"
	"github.com/aretw0/tradein/pkg/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ps5 = domain.Product{
	ID:         "ps5",
	Slug:       "playstation-5",
	Name:       "PlayStation 5",
	Platform:   domain.PlatformPlaystation,
	OfferPrice: domain.Units(400),
	Images:     []string{"/img/ps5.png"},
	Memories:   []domain.PricedOption{{Name: "1TB", Price: domain.Units(50)}},
}

func newTestService(t *testing.T) *tradein.Service {
	t.Helper()
	src := memory.NewSource([]domain.Product{ps5}, nil)
	svc, err := tradein.New(
		tradein.WithConsoleSource(src),
		tradein.WithProductSource(src),
		tradein.WithCatalogSource(src),
		tradein.WithShipping(domain.Units(10)),
	)
	require.NoError(t, err)
	return svc
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func ptr(s string) *string { return &s }

func decodeView(t *testing.T, w *httptest.ResponseRecorder) domain.View {
	t.Helper()
	var v domain.View
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v), w.Body.String())
	return v
}

// valuate drives one session to the summary over HTTP and returns its id.
func valuate(t *testing.T, h http.Handler, shopper string) string {
	t.Helper()
	w := do(t, h, "POST", "/sessions", OpenSessionJSONRequestBody{Shopper: shopper})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decodeView(t, w).SessionID
	require.NotEmpty(t, id)

	w = do(t, h, "POST", "/sessions/"+id+"/console", SelectConsoleJSONRequestBody{ConsoleId: ptr("ps5")})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.True(t, decodeView(t, w).CanContinue)
	require.Equal(t, http.StatusOK, do(t, h, "POST", "/sessions/"+id+"/advance", nil).Code)

	for _, v := range []string{"good", "si_perfetta", "si_completi", "due", "1tb", "si_scatola"} {
		w = do(t, h, "POST", "/sessions/"+id+"/answer", AnswerQuestionJSONRequestBody{Value: v})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		w = do(t, h, "POST", "/sessions/"+id+"/advance", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}
	view := decodeView(t, w)
	require.Equal(t, domain.PhaseSummary, view.Phase)
	require.NotNil(t, view.Offer)
	return id
}

func TestServer_HealthAndInfo(t *testing.T) {
	h := NewHandler(newTestService(t))

	w := do(t, h, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = do(t, h, "GET", "/info", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var info map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&info))
	assert.Equal(t, strings.TrimSpace(tradein.Version), info["version"])
	assert.Equal(t, "1.0.0", info["api_version"])
}

func TestServer_OpenAPISpec(t *testing.T) {
	doc, err := GetSwagger()
	require.NoError(t, err)
	assert.NotNil(t, doc.Paths.Find("/sessions/{id}/commit"))

	w := do(t, NewHandler(newTestService(t)), "GET", "/openapi.yaml", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"operationId":"commitSession"`)
}

func TestServer_FullValuation(t *testing.T) {
	h := NewHandler(newTestService(t))
	id := valuate(t, h, "alice")

	w := do(t, h, "POST", "/sessions/"+id+"/commit", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var state domain.TradeInState
	require.NoError(t, json.NewDecoder(w.Body).Decode(&state))
	assert.True(t, state.Active)
	assert.Equal(t, domain.Units(420), state.FinalValue)

	w = do(t, h, "GET", "/shoppers/alice/tradein", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"tradeInFinalValue":420`)

	// The session is gone once committed.
	assert.Equal(t, http.StatusNotFound, do(t, h, "GET", "/sessions/"+id, nil).Code)

	assert.Equal(t, http.StatusNoContent, do(t, h, "DELETE", "/shoppers/alice/tradein", nil).Code)
	w = do(t, h, "GET", "/shoppers/alice/tradein", nil)
	assert.Contains(t, w.Body.String(), `"isTradeInActive":false`)
}

func TestServer_ErrorMapping(t *testing.T) {
	h := NewHandler(newTestService(t))

	w := do(t, h, "GET", "/sessions/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)

	w = do(t, h, "POST", "/sessions", OpenSessionJSONRequestBody{Shopper: "bob"})
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeView(t, w).SessionID

	assert.Equal(t, http.StatusConflict, do(t, h, "POST", "/sessions/"+id+"/commit", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, "POST", "/sessions/"+id+"/platform", ChoosePlatformJSONRequestBody{Platform: "sega"}).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, "POST", "/sessions/"+id+"/console", SelectConsoleJSONRequestBody{ConsoleId: ptr("nope")}).Code)
	assert.Equal(t, http.StatusUnprocessableEntity, do(t, h, "POST", "/sessions/"+id+"/answer", AnswerQuestionJSONRequestBody{Value: "good"}).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, "POST", "/sessions", OpenSessionJSONRequestBody{}).Code)

	req := httptest.NewRequest("POST", "/sessions/"+id+"/platform", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	w = do(t, h, "GET", "/consoles?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "parameter limit")
}

func TestServer_CancelDiscardsSession(t *testing.T) {
	h := NewHandler(newTestService(t))
	w := do(t, h, "POST", "/sessions", OpenSessionJSONRequestBody{Shopper: "carol"})
	id := decodeView(t, w).SessionID

	assert.Equal(t, http.StatusNoContent, do(t, h, "POST", "/sessions/"+id+"/cancel", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, "GET", "/sessions/"+id, nil).Code)
	// Cancelling twice is harmless.
	assert.Equal(t, http.StatusNoContent, do(t, h, "POST", "/sessions/"+id+"/cancel", nil).Code)
}

func TestServer_Consoles(t *testing.T) {
	h := NewHandler(newTestService(t))

	w := do(t, h, "GET", "/consoles?platform=playstation&limit=5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var consoles []domain.Console
	require.NoError(t, json.NewDecoder(w.Body).Decode(&consoles))
	require.Len(t, consoles, 1)
	assert.Equal(t, "ps5", consoles[0].ID)

	w = do(t, h, "GET", "/consoles?platform=xbox", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestServer_CartAndPayment(t *testing.T) {
	svc := newTestService(t)
	h := NewHandler(svc)
	id := valuate(t, h, "dave")
	require.Equal(t, http.StatusOK, do(t, h, "POST", "/sessions/"+id+"/commit", nil).Code)

	w := do(t, h, "GET", "/products/playstation-5/quote?shopper=dave&memory=1TB", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var quote product.Quote
	require.NoError(t, json.NewDecoder(w.Body).Decode(&quote))
	assert.Equal(t, domain.Units(450), quote.Configured)
	assert.Equal(t, domain.Units(30), quote.AfterTradeIn)

	w = do(t, h, "POST", "/shoppers/dave/cart", CartLineRequest{ProductId: "ps5"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp CartResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Lines, 1)
	require.NotNil(t, resp.Lines[0].TradeIn)
	assert.Equal(t, "PlayStation 5", resp.Lines[0].TradeIn.ProductName)

	require.Equal(t, http.StatusOK, do(t, h, "POST", "/shoppers/dave/cart/ps5/increase", nil).Code)

	w = do(t, h, "GET", "/shoppers/dave/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = CartResponse{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.NotNil(t, resp.Totals)
	assert.Equal(t, 2, resp.Totals.Items)
	assert.Equal(t, domain.Units(800), resp.Totals.Subtotal)
	assert.Equal(t, domain.Units(810), resp.Totals.Total)

	assert.Equal(t, http.StatusNotFound, do(t, h, "DELETE", "/shoppers/dave/cart/xbox", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, "POST", "/shoppers/dave/cart", CartLineRequest{}).Code)

	assert.Equal(t, http.StatusNoContent, do(t, h, "POST", "/shoppers/dave/payment/success", nil).Code)
	w = do(t, h, "GET", "/shoppers/dave/cart", nil)
	assert.Contains(t, w.Body.String(), `"lines":[]`)
	state, err := svc.TradeIn(context.Background(), "dave")
	require.NoError(t, err)
	assert.False(t, state.Active)
}

func TestServer_CORSAndMetrics(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("tradein_sessions_opened_total 1\n"))
	})
	h := NewHandler(newTestService(t), WithMetricsHandler(metrics))

	w := do(t, h, "OPTIONS", "/sessions", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = do(t, h, "GET", "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "tradein_sessions_opened_total")
}

func TestSubscribeEvents_StreamsPublishedState(t *testing.T) {
	svc := newTestService(t)
	h := NewHandler(svc)
	srv := httptest.NewServer(h)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "GET", srv.URL+"/events?shopper=erin", nil)
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	next := func() string {
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			if strings.HasPrefix(line, "data: ") {
				return strings.TrimSpace(strings.TrimPrefix(line, "data: "))
			}
		}
	}

	assert.Equal(t, "connected", next())
	assert.Contains(t, next(), `"isTradeInActive":false`)

	id := valuate(t, h, "erin")
	require.Equal(t, http.StatusOK, do(t, h, "POST", "/sessions/"+id+"/commit", nil).Code)

	// Opening the session cleared the state first; the commit follows.
	for {
		data := next()
		if strings.Contains(data, `"isTradeInActive":true`) {
			assert.Contains(t, data, `"tradeInFinalValue":420`)
			break
		}
	}
}

func TestSubscribeEvents_RequiresShopper(t *testing.T) {
	w := do(t, NewHandler(newTestService(t)), "GET", "/events", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
