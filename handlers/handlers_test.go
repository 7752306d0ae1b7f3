package handlers

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/tracking_backend/fixtures"
	"github.com/mmdatafocus/tracking_backend/models"
	"github.com/mmdatafocus/tracking_backend/store"
	"github.com/mmdatafocus/tracking_backend/tracking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, count int) (*gin.Engine, *tracking.Service) {
	t.Helper()
	svc := tracking.NewService(store.New(), fixtures.NewGenerator(11, fixtures.DefaultBaseDate), 500)
	if count > 0 {
		_, err := svc.Regenerate(context.Background(), count)
		require.NoError(t, err)
	}
	r := gin.New()
	RegisterRoutes(r, svc, nil)
	return r, svc
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestRoot(t *testing.T) {
	r, _ := newTestRouter(t, 0)
	w := do(r, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, welcomeMessage, decode[MessageResponse](t, w).Message)
}

func TestSearch_EmptyPinList(t *testing.T) {
	r, _ := newTestRouter(t, 5)
	w := do(r, http.MethodPost, "/search?page=1&size=10", `{"piece_pins": []}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"results": [], "total": 0}`, w.Body.String())
}

func TestSearch_UnknownPin(t *testing.T) {
	r, _ := newTestRouter(t, 5)
	w := do(r, http.MethodPost, "/search", `{"piece_pins": ["unknown-pin"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"results": [{}], "total": 1}`, w.Body.String())
}

func TestSearch_FoundRecordUsesDisplayNames(t *testing.T) {
	r, svc := newTestRouter(t, 5)
	pin := svc.Keys(context.Background())[1]

	w := do(r, http.MethodPost, "/search", `{"piece_pins": ["`+pin+`"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	res := decode[struct {
		Results []map[string]string `json:"results"`
		Total   int                 `json:"total"`
	}](t, w)
	require.Len(t, res.Results, 1)
	assert.Equal(t, pin, res.Results[0]["Piece Pin"])
	assert.Len(t, res.Results[0], len(models.FieldNames))
}

func TestSearch_PaginationQuery(t *testing.T) {
	r, svc := newTestRouter(t, 12)
	pins := svc.Keys(context.Background())
	body, err := json.Marshal(SearchRequest{PiecePins: pins})
	require.NoError(t, err)

	w := do(r, http.MethodPost, "/search?page=2&size=5", string(body))
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[SearchResponse](t, w)
	assert.Equal(t, 12, res.Total)
	require.Len(t, res.Results, 5)
	assert.Equal(t, pins[5], res.Results[0].PiecePin)

	w = do(r, http.MethodPost, "/search", string(body))
	res = decode[SearchResponse](t, w)
	assert.Len(t, res.Results, tracking.DefaultSize)
}

func TestSearch_InvalidRequests(t *testing.T) {
	r, _ := newTestRouter(t, 5)

	w := do(r, http.MethodPost, "/search", `{}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "required", decode[ErrorResponse](t, w).Fields["piece_pins"])

	w = do(r, http.MethodPost, "/search?page=abc", `{"piece_pins": []}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "int", decode[ErrorResponse](t, w).Fields["page"])

	w = do(r, http.MethodPost, "/search", `{"piece_pins": "not-a-list"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "type", decode[ErrorResponse](t, w).Fields["piece_pins"])

	w = do(r, http.MethodPost, "/search", `{`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, decode[ErrorResponse](t, w).Fields, "body")
}

func TestGetData(t *testing.T) {
	r, svc := newTestRouter(t, 0)

	w := do(r, http.MethodGet, "/get_data", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, noDataMessage, decode[MessageResponse](t, w).Message)

	_, err := svc.Regenerate(context.Background(), 3)
	require.NoError(t, err)
	w = do(r, http.MethodGet, "/get_data", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, svc.Keys(context.Background()), decode[KeysResponse](t, w).PiecePins)
}

func TestGenerateData(t *testing.T) {
	r, svc := newTestRouter(t, 5)

	w := do(r, http.MethodPost, "/generate_data?count=7", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Generated 7 data entries", decode[MessageResponse](t, w).Message)
	assert.Equal(t, 7, svc.Store.Len())

	w = do(r, http.MethodPost, "/generate_data", "")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "required", decode[ErrorResponse](t, w).Fields["count"])

	w = do(r, http.MethodPost, "/generate_data?count=seven", "")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(r, http.MethodPost, "/generate_data?count=501", "")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	res := decode[ErrorResponse](t, w)
	assert.Equal(t, tracking.ErrCountOutOfRange.Error(), res.Error)
	require.NotNil(t, res.Max)
	assert.Equal(t, 500, *res.Max)
	assert.Equal(t, 7, svc.Store.Len())
}

func TestExportCSV_SelectedColumns(t *testing.T) {
	r, svc := newTestRouter(t, 5)
	keys := svc.Keys(context.Background())
	body, err := json.Marshal(ExportRequest{
		PiecePins: []string{keys[0], keys[2]},
		Columns:   []string{"Piece Pin", "Origin City"},
	})
	require.NoError(t, err)

	w := do(r, http.MethodPost, "/export_csv", string(body))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "attachment; filename=data_store.csv", w.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/csv"))

	rows, err := csv.NewReader(bytes.NewReader(w.Body.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Piece Pin", "Origin City"}, rows[0])
	for i, pin := range []string{keys[0], keys[2]} {
		rec, ok := svc.Store.Lookup(pin)
		require.True(t, ok)
		assert.Equal(t, []string{rec.PiecePin, rec.OriginCity}, rows[i+1])
	}
}

func TestExportCSV_DefaultColumns(t *testing.T) {
	r, svc := newTestRouter(t, 3)
	keys := svc.Keys(context.Background())

	w := do(r, http.MethodPost, "/export_csv", `{"piece_pins": ["`+keys[0]+`", "nope"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	rows, err := csv.NewReader(bytes.NewReader(w.Body.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, models.FieldNames, rows[0])
	assert.Equal(t, keys[0], rows[1][0])
	assert.Equal(t, make([]string, len(models.FieldNames)), rows[2])
}

func TestExportCSV_EmptyStore(t *testing.T) {
	r, _ := newTestRouter(t, 0)
	w := do(r, http.MethodPost, "/export_csv", `{"piece_pins": ["a"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestExportCSV_MissingPins(t *testing.T) {
	r, _ := newTestRouter(t, 3)
	w := do(r, http.MethodPost, "/export_csv", `{"columns": ["Piece Pin"]}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestExportStoreCSV(t *testing.T) {
	r, svc := newTestRouter(t, 4)
	w := do(r, http.MethodGet, "/export_csv?columns=Piece%20Pin,Route", "")
	require.Equal(t, http.StatusOK, w.Code)
	rows, err := csv.NewReader(bytes.NewReader(w.Body.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"Piece Pin", "Route"}, rows[0])
	for i, k := range svc.Keys(context.Background()) {
		assert.Equal(t, k, rows[i+1][0])
	}
}

func TestExportXLSX(t *testing.T) {
	r, svc := newTestRouter(t, 2)
	keys := svc.Keys(context.Background())
	body, err := json.Marshal(ExportRequest{PiecePins: keys, Columns: []string{"Piece Pin"}})
	require.NoError(t, err)

	w := do(r, http.MethodPost, "/export_xlsx", string(body))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "attachment; filename=data_store.xlsx", w.Header().Get("Content-Disposition"))

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Piece Pin"}, {keys[0]}, {keys[1]}}, rows)
}
