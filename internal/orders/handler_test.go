package orders

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (chi.Router, *memoryRepo) {
	t.Helper()
	repo := newMemoryRepo()
	svc := NewService(repo, &stubIssuer{})
	handler := NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)
	r := chi.NewRouter()
	handler.MountRoutes(r)
	return r, repo
}

func doJSON(t *testing.T, r chi.Router, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	r.ServeHTTP(res, req)
	return res
}

func TestCreateAndShowRoundTrip(t *testing.T) {
	r, _ := newTestRouter(t)

	res := doJSON(t, r, http.MethodPost, "/pos", validCreateInput())
	require.Equal(t, http.StatusOK, res.Code)

	var created PurchaseOrder
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	require.Equal(t, "INR", created.Currency)
	require.Equal(t, DocTypePO, created.DocType)

	res = doJSON(t, r, http.MethodGet, "/pos/"+created.ID, nil)
	require.Equal(t, http.StatusOK, res.Code)

	var fetched PurchaseOrder
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &fetched))
	require.Equal(t, created.ID, fetched.ID)
	require.Equal(t, created.PONumber, fetched.PONumber)
}

func TestCreateMissingRequiredFieldReturns422(t *testing.T) {
	r, _ := newTestRouter(t)

	input := validCreateInput()
	input.PONumber = ""
	res := doJSON(t, r, http.MethodPost, "/pos", input)
	require.Equal(t, http.StatusUnprocessableEntity, res.Code)
	require.Contains(t, res.Body.String(), "PONumber")
}

func TestCreateMalformedBodyReturns422(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/pos", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	r.ServeHTTP(res, req)
	require.Equal(t, http.StatusUnprocessableEntity, res.Code)
}

func TestShowUnknownIDReturns404(t *testing.T) {
	r, _ := newTestRouter(t)

	res := doJSON(t, r, http.MethodGet, "/pos/missing", nil)
	require.Equal(t, http.StatusNotFound, res.Code)
	require.Contains(t, res.Header().Get("Content-Type"), "application/json")
}

func TestDeleteRespondsWithMessage(t *testing.T) {
	r, _ := newTestRouter(t)

	res := doJSON(t, r, http.MethodPost, "/pos", validCreateInput())
	require.Equal(t, http.StatusOK, res.Code)
	var created PurchaseOrder
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &created))

	res = doJSON(t, r, http.MethodDelete, "/pos/"+created.ID, nil)
	require.Equal(t, http.StatusOK, res.Code)
	require.JSONEq(t, `{"message":"PO deleted successfully"}`, res.Body.String())

	res = doJSON(t, r, http.MethodGet, "/pos/"+created.ID, nil)
	require.Equal(t, http.StatusNotFound, res.Code)
}

func TestDuplicateIssuesNewNumber(t *testing.T) {
	r, _ := newTestRouter(t)

	res := doJSON(t, r, http.MethodPost, "/pos", validCreateInput())
	require.Equal(t, http.StatusOK, res.Code)
	var created PurchaseOrder
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &created))

	res = doJSON(t, r, http.MethodPost, "/pos/"+created.ID+"/duplicate", nil)
	require.Equal(t, http.StatusOK, res.Code)

	var dup PurchaseOrder
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &dup))
	require.NotEqual(t, created.ID, dup.ID)
	require.NotEqual(t, created.PONumber, dup.PONumber)
	require.Equal(t, created.Supplier.Company, dup.Supplier.Company)
}

func TestBuyerInfoServesCompanyProfile(t *testing.T) {
	r, _ := newTestRouter(t)

	res := doJSON(t, r, http.MethodGet, "/buyer-info", nil)
	require.Equal(t, http.StatusOK, res.Code)

	var body struct {
		Company      string   `json:"company"`
		AddressLines []string `json:"address_lines"`
		GSTIN        string   `json:"gstin"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	require.Equal(t, "Newline Apparel", body.Company)
	require.NotEmpty(t, body.AddressLines)
	require.NotEmpty(t, body.GSTIN)
}
