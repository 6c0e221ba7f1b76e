package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	authdomain "github.com/aladdin-code/addvocate-meeting-summeriser/internal/auth/domain"
	authrepo "github.com/aladdin-code/addvocate-meeting-summeriser/internal/auth/repository"
	authusecase "github.com/aladdin-code/addvocate-meeting-summeriser/internal/auth/usecase"
	exchangedomain "github.com/aladdin-code/addvocate-meeting-summeriser/internal/exchange/domain"
	exchangerepo "github.com/aladdin-code/addvocate-meeting-summeriser/internal/exchange/repository"
	exchangeusecase "github.com/aladdin-code/addvocate-meeting-summeriser/internal/exchange/usecase"
	summarydomain "github.com/aladdin-code/addvocate-meeting-summeriser/internal/summary/domain"
	summaryrepo "github.com/aladdin-code/addvocate-meeting-summeriser/internal/summary/repository"
	"github.com/aladdin-code/addvocate-meeting-summeriser/internal/testutil"
	"github.com/aladdin-code/addvocate-meeting-summeriser/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedOracle struct{ reply string }

func (o fixedOracle) GenerateSummaryJSON(context.Context, string) (string, error) {
	return o.reply, nil
}

func (o fixedOracle) Provider() string { return "fixed" }

const oracleReply = `{
	"Overview": {"Purpose": "Launch planning", "KeyTopics": ["timeline"], "Conclusions": "Freeze on the 20th"},
	"Notes": [{"Theme": "QA", "Details": "Regression suite first"}],
	"ActionItems": [{"Name": "Screenshots", "Responsibility": "Marcus"}],
	"FollowUpEmail": {"To": "team@example.com", "Body": "Draft"}
}`

type client struct {
	t      *testing.T
	engine *gin.Engine
	token  string
}

func (c *client) do(method, path, body string) *httptest.ResponseRecorder {
	c.t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	c.engine.ServeHTTP(w, req)
	return w
}

func (c *client) decode(w *httptest.ResponseRecorder, v any) {
	c.t.Helper()
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func newServer(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	db := testutil.NewSQLiteDB(t,
		&authdomain.User{}, &authdomain.RefreshToken{},
		&exchangedomain.Exchange{}, &exchangedomain.Message{},
		&summarydomain.Summary{})

	cfg := &config.Config{
		GinMode:                gin.TestMode,
		JWTSecret:              "test-secret",
		JWTAccessExpiry:        time.Minute,
		JWTRefreshExpiry:       time.Hour,
		AIProvider:             "ollama",
		OllamaBaseURL:          "http://localhost:11434",
		AITimeout:              time.Second,
		AIMaxConcurrency:       2,
		PaginationDefaultLimit: 10,
		PaginationMaxLimit:     50,
		SettingsAdminEmails:    []string{"ops@example.com"},
	}
	authUc := authusecase.NewAuthUsecase(authrepo.NewUserRepository(db), cfg)
	exchangeUc := exchangeusecase.NewExchangeUsecase(exchangerepo.NewGormExchangeRepository(db), nil)

	h := NewHandler(cfg, nil, authUc, exchangeUc, summaryrepo.NewGormSummaryRepository(db), fixedOracle{reply: oracleReply})
	return h.Engine()
}

func signedIn(t *testing.T, engine *gin.Engine, email string) *client {
	c := &client{t: t, engine: engine}
	w := c.do(http.MethodPost, "/api/auth/signup", `{"email":"`+email+`","password":"secret1","name":"Tester"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var tokens struct {
		AccessToken string `json:"access_token"`
	}
	c.decode(w, &tokens)
	c.token = tokens.AccessToken
	return c
}

func TestSummaryLifecycleOverHTTP(t *testing.T) {
	engine := newServer(t)
	c := signedIn(t, engine, "ada@example.com")

	w := c.do(http.MethodPost, "/api/exchanges", `{"title":"Launch sync","content":[
		{"words":[{"text":"When "},{"text":"do we ship?"}],"speaker":"Sarah","speaker_id":0},
		{"words":[{"text":"May."}],"speaker":"Marcus","speaker_id":1}]}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var exchange struct {
		ID string `json:"id"`
	}
	c.decode(w, &exchange)

	w = c.do(http.MethodPost, "/api/summaries/"+exchange.ID+"/generate", "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created summarydomain.View
	c.decode(w, &created)
	assert.Equal(t, "Launch planning", created.Overview.Purpose)

	w = c.do(http.MethodPost, "/api/summaries/"+exchange.ID+"/generate", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = c.do(http.MethodPost, "/api/summaries/missing/generate", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = c.do(http.MethodPut, "/api/summaries/"+created.ID, `{"FollowUpEmail":{"Body":"Final"},"Notes":[]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated summarydomain.View
	c.decode(w, &updated)
	assert.Equal(t, "Final", updated.FollowUpEmail.Body)
	assert.Equal(t, "team@example.com", updated.FollowUpEmail.To)
	assert.Equal(t, created.Notes, updated.Notes)
	assert.Equal(t, created.Overview, updated.Overview)
	assert.Equal(t, created.ActionItems, updated.ActionItems)

	w = c.do(http.MethodGet, "/api/summaries", "")
	require.Equal(t, http.StatusOK, w.Code)
	var listed []summarydomain.View
	c.decode(w, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, "Final", listed[0].FollowUpEmail.Body)

	w = c.do(http.MethodGet, "/api/exchanges/"+exchange.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var detail struct {
		Messages  []exchangedomain.Message `json:"messages"`
		Summaries []summarydomain.View     `json:"summaries"`
	}
	c.decode(w, &detail)
	require.Len(t, detail.Messages, 2)
	assert.Equal(t, "When do we ship?", detail.Messages[0].Text)
	require.Len(t, detail.Summaries, 1)
	assert.Equal(t, created.ID, detail.Summaries[0].ID)
}

func TestSummariesAreScopedToTheCaller(t *testing.T) {
	engine := newServer(t)
	owner := signedIn(t, engine, "owner@example.com")
	other := signedIn(t, engine, "other@example.com")

	w := owner.do(http.MethodPost, "/api/exchanges", `{"title":"Private","content":[{"words":[{"text":"hi"}],"speaker":"A"}]}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var exchange struct {
		ID string `json:"id"`
	}
	owner.decode(w, &exchange)

	w = owner.do(http.MethodPost, "/api/summaries/"+exchange.ID+"/generate", "")
	require.Equal(t, http.StatusCreated, w.Code)
	var created summarydomain.View
	owner.decode(w, &created)

	w = other.do(http.MethodPut, "/api/summaries/"+created.ID, `{"Overview":{"Purpose":"hijack"}}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = other.do(http.MethodGet, "/api/exchanges/"+exchange.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var detail struct {
		Summaries []summarydomain.View `json:"summaries"`
	}
	other.decode(w, &detail)
	assert.Empty(t, detail.Summaries)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	c := &client{t: t, engine: newServer(t)}
	for _, path := range []string{"/api/exchanges", "/api/summaries", "/api/settings/ai"} {
		assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, path, "").Code, path)
	}
	assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/health", "").Code)
	assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/metrics", "").Code)
}

func TestAISettings(t *testing.T) {
	c := signedIn(t, newServer(t), "ops@example.com")

	w := c.do(http.MethodPut, "/api/settings/ai", `{"model":"llama3.1"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = c.do(http.MethodGet, "/api/settings/ai", "")
	require.Equal(t, http.StatusOK, w.Code)
	var settings map[string]string
	c.decode(w, &settings)
	assert.Equal(t, "fixed", settings["provider"])
	assert.Equal(t, "llama3.1", settings["model"])
	assert.Equal(t, "http://localhost:11434", settings["ollama_base_url"])

	w = c.do(http.MethodPut, "/api/settings/ai", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = c.do(http.MethodPut, "/api/settings/ai", `{"ollama_base_url":"not a url"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAISettings_ChangesRequireAdmin(t *testing.T) {
	engine := newServer(t)
	admin := signedIn(t, engine, "ops@example.com")
	user := signedIn(t, engine, "guest@example.com")

	w := user.do(http.MethodPut, "/api/settings/ai", `{"ollama_base_url":"http://attacker.example:11434"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = user.do(http.MethodPost, "/api/settings/ai/test", `{"ollama_base_url":"http://169.254.169.254"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = user.do(http.MethodGet, "/api/settings/ai", "")
	require.Equal(t, http.StatusOK, w.Code)
	var settings map[string]string
	user.decode(w, &settings)
	assert.Equal(t, "http://localhost:11434", settings["ollama_base_url"])

	w = admin.do(http.MethodPut, "/api/settings/ai", `{"model":"llama3.1"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}
