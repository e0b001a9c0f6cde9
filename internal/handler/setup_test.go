package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/prn-tf/hunter-codex/internal/auth"
	"github.com/prn-tf/hunter-codex/internal/cache/memory"
	"github.com/prn-tf/hunter-codex/internal/domain"
	"github.com/prn-tf/hunter-codex/internal/repository"
	"github.com/prn-tf/hunter-codex/internal/repository/cached"
	"github.com/prn-tf/hunter-codex/internal/service"
)

// memUserRepo is an in-memory UserRepository backing handler tests.
type memUserRepo struct {
	users map[string]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (m *memUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, ok := m.users[user.Username]; ok {
		return repository.ErrDuplicate
	}
	m.users[user.Username] = user
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := m.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (m *memUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := m.users[username]
	return ok, nil
}

// memItemRepo is an in-memory ItemRepository backing handler tests.
type memItemRepo struct {
	items map[string]*domain.Item
	order []string
}

func newMemItemRepo() *memItemRepo {
	return &memItemRepo{items: make(map[string]*domain.Item)}
}

func (m *memItemRepo) Create(_ context.Context, item *domain.Item) error {
	m.items[item.ID] = item
	m.order = append(m.order, item.ID)
	return nil
}

func (m *memItemRepo) GetByID(_ context.Context, id string) (*domain.Item, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return item, nil
}

func (m *memItemRepo) List(_ context.Context) ([]*domain.Item, error) {
	items := make([]*domain.Item, 0, len(m.order))
	for _, id := range m.order {
		items = append(items, m.items[id])
	}
	return items, nil
}

func (m *memItemRepo) Update(_ context.Context, id string, patch domain.ItemPatch) (*domain.Item, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	patch.Apply(item)
	return item, nil
}

func (m *memItemRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.items, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// testServer wires the full API surface over in-memory repositories with the
// caching decorator in the item path, mirroring production wiring.
type testServer struct {
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := zerolog.Nop()

	itemCache := memory.NewCache()
	t.Cleanup(itemCache.Stop)

	cachedItems := cached.NewItemRepository(newMemItemRepo(), itemCache, time.Hour, logger)

	tokens := auth.NewTokenManager([]byte("test-secret"), time.Hour)
	authService := service.NewAuthService(newMemUserRepo(), tokens, logger)
	itemService := service.NewItemService(cachedItems, logger)

	router := NewRouter(RouterConfig{
		AuthHandler:    NewAuthHandler(authService, logger),
		ItemHandler:    NewItemHandler(itemService, logger),
		AuthMiddleware: auth.Middleware(tokens, logger),
		Logger:         logger,
	})

	return &testServer{handler: router}
}

// do performs a request against the test server with an optional JSON body
// and bearer token.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
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
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

// register creates a user and returns a login token for it.
func (ts *testServer) register(t *testing.T, username, password string) string {
	t.Helper()

	rec := ts.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = ts.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

// decodeBody unmarshals a recorded response body into v.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}
