package catalog_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duartefontes/pedidozap/internal/catalog"
)

func newTestCatalogServer(t *testing.T, products []catalog.Product) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(catalog.File{Products: products})
	}))
}

func TestFetch(t *testing.T) {
	products := []catalog.Product{
		{ID: "1", Name: "Frango Assado", UnitPrice: 45},
		{ID: "2", Name: "Farofa", UnitPrice: 15},
	}

	srv := newTestCatalogServer(t, products)
	defer srv.Close()

	client := catalog.NewClient(srv.URL)
	result, err := client.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Frango Assado", result[0].Name)
	assert.Equal(t, 15.0, result[1].UnitPrice)
}

func TestFetch_EmptyCatalogRejected(t *testing.T) {
	srv := newTestCatalogServer(t, nil)
	defer srv.Close()

	client := catalog.NewClient(srv.URL)
	_, err := client.Fetch(context.Background())

	assert.ErrorContains(t, err, "no products")
}

func TestFetch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := catalog.NewClient(srv.URL)
	_, err := client.Fetch(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestFetch_TrailingContentRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"products":[{"id":"1","name":"Farofa","unitPrice":15}]}{"extra":true}`))
	}))
	defer srv.Close()

	client := catalog.NewClient(srv.URL)
	_, err := client.Fetch(context.Background())

	assert.ErrorContains(t, err, "trailing JSON content")
}
