package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"item-api/internal/item"
	"item-api/internal/item/repository/sqlstore"
	"item-api/internal/item/usecase"
	pkgErrors "item-api/pkg/errors"
	"item-api/pkg/log"
	"item-api/pkg/sqldb"
)

type errorBody struct {
	Error   string              `json:"error"`
	Details map[string][]string `json:"details"`
}

type itemBody struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	CreatedAt string `json:"createdAt"`
}

type stubUseCase struct {
	err   error
	items []item.Item
}

func (s stubUseCase) Create(ctx context.Context, in item.CreateItemInput) error { return s.err }
func (s stubUseCase) List(ctx context.Context) ([]item.Item, error)            { return s.items, s.err }

func newRouter(uc item.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api"), New(log.NewNop(), uc))
	return r
}

func newSQLiteRouter(t *testing.T) *gin.Engine {
	t.Helper()

	url := "sqlite://" + filepath.Join(t.TempDir(), "items.db")
	db, err := sqldb.Open(context.Background(), sqldb.Config{URL: url, MaxOpenConns: 5})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, sqldb.Migrate(db, url))

	l := log.NewNop()
	return newRouter(usecase.New(sqlstore.New(db, l), l))
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func listItems(t *testing.T, r http.Handler) []itemBody {
	t.Helper()

	w := do(r, http.MethodGet, "/api/items", "")
	require.Equal(t, http.StatusOK, w.Code)

	var items []itemBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	return items
}

func TestListEmpty(t *testing.T) {
	r := newSQLiteRouter(t)

	w := do(r, http.MethodGet, "/api/items", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCreateThenList(t *testing.T) {
	r := newSQLiteRouter(t)

	before := time.Now().UTC().Add(-time.Second)
	w := do(r, http.MethodPost, "/api/items", `{"name":"Test Item","quantity":42}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, w.Body.String())

	items := listItems(t, r)
	require.Len(t, items, 1)
	assert.Equal(t, "Test Item", items[0].Name)
	assert.Equal(t, 42, items[0].Quantity)
	assert.Positive(t, items[0].ID)

	created, err := time.Parse(time.RFC3339Nano, items[0].CreatedAt)
	require.NoError(t, err, "createdAt must be RFC 3339")
	assert.True(t, created.After(before), "createdAt %s is older than the request", created)
}

func TestCreateNegativeQuantity(t *testing.T) {
	r := newSQLiteRouter(t)

	w := do(r, http.MethodPost, "/api/items", `{"name":"Test","quantity":-1}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "validation_error", body.Error)
	assert.Equal(t, []string{"Quantity must be 0 or greater"}, body.Details["quantity"])
	assert.NotContains(t, body.Details, "name")

	assert.Empty(t, listItems(t, r))
}

func TestCreateEmptyName(t *testing.T) {
	r := newSQLiteRouter(t)

	w := do(r, http.MethodPost, "/api/items", `{"name":"","quantity":5}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "validation_error", body.Error)
	assert.Equal(t, []string{"Name cannot be empty"}, body.Details["name"])

	assert.Empty(t, listItems(t, r))
}

func TestCreateReportsEveryViolation(t *testing.T) {
	r := newSQLiteRouter(t)

	w := do(r, http.MethodPost, "/api/items", `{"name":"","quantity":-3}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Details, 2)
	assert.Contains(t, body.Details, "name")
	assert.Contains(t, body.Details, "quantity")
}

func TestCreateZeroQuantityAndWhitespaceName(t *testing.T) {
	r := newSQLiteRouter(t)

	w := do(r, http.MethodPost, "/api/items", `{"name":" ","quantity":0}`)
	require.Equal(t, http.StatusCreated, w.Code)

	items := listItems(t, r)
	require.Len(t, items, 1)
	assert.Equal(t, " ", items[0].Name)
	assert.Zero(t, items[0].Quantity)
}

func TestCreateMalformedBody(t *testing.T) {
	r := newSQLiteRouter(t)

	for _, body := range []string{`{"name":`, `{"name":"x","quantity":"many"}`, `not json`} {
		w := do(r, http.MethodPost, "/api/items", body)
		require.Equal(t, http.StatusBadRequest, w.Code, body)

		var resp errorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "validation_error", resp.Error)
		assert.Equal(t, []string{"Request body must be valid JSON"}, resp.Details["body"])
	}

	assert.Empty(t, listItems(t, r))
}

func TestListNewestFirst(t *testing.T) {
	r := newSQLiteRouter(t)

	for _, name := range []string{"A", "B", "C"} {
		w := do(r, http.MethodPost, "/api/items", `{"name":"`+name+`","quantity":1}`)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	items := listItems(t, r)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"C", "B", "A"}, []string{items[0].Name, items[1].Name, items[2].Name})
}

func TestListStorageFailure(t *testing.T) {
	cause := pkgErrors.NewStorageError("ListItems", errors.New("no such table: items"))
	r := newRouter(stubUseCase{err: cause})

	w := do(r, http.MethodGet, "/api/items", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "internal_server_error", body.Error)
	assert.Equal(t, []string{"Failed to fetch items"}, body.Details["server"])
	assert.NotContains(t, w.Body.String(), "no such table")
}

func TestCreateStorageFailure(t *testing.T) {
	r := newRouter(stubUseCase{err: errors.New("database is locked")})

	w := do(r, http.MethodPost, "/api/items", `{"name":"x","quantity":1}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "internal_server_error", body.Error)
	assert.Equal(t, []string{"Failed to create item"}, body.Details["server"])
	assert.NotContains(t, w.Body.String(), "locked")
}

func TestItemRespRoundTrip(t *testing.T) {
	created := time.Date(2024, 5, 1, 15, 30, 0, 987654321, time.UTC)
	resp := newItemResp(item.Item{ID: 7, Name: "Widget", Quantity: 3, CreatedAt: created})

	b, err := json.Marshal(resp)
	require.NoError(t, err)

	var got itemBody
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "Widget", got.Name)
	assert.Equal(t, 3, got.Quantity)

	parsed, err := time.Parse(time.RFC3339, got.CreatedAt)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(created))

	var back itemResp
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, time.Time(back.CreatedAt).Equal(created))
}
