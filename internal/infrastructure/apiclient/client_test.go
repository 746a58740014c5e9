package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bytebasket/internal/core/apperror"
	"bytebasket/internal/domain/inventory"
)

func staticToken(tok string) TokenSource {
	return func(context.Context) string { return tok }
}

func TestBearerTokenInjection(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"data":[],"pagination":{}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken("tok-1"))
	_, _, err := c.ListItems(context.Background(), inventory.DefaultFilters())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", gotAuth)

	anon := New(srv.URL, nil)
	_, _, err = anon.ListItems(context.Background(), inventory.DefaultFilters())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestListItemsQueryEncoding(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.RawQuery
		w.Write([]byte(`{"data":[{"_id":"i1","item_name":"Rice"}],"pagination":{"currentPage":2,"totalPages":9,"totalItems":170,"itemsPerPage":20}}`))
	}))
	defer srv.Close()

	f := inventory.DefaultFilters()
	f.Search = "rice"
	f.Category = "dry-goods"
	f.LowStock = true
	f.Page = 2

	c := New(srv.URL, nil)
	items, pag, err := c.ListItems(context.Background(), f)
	require.NoError(t, err)

	q, err := url.ParseQuery(got)
	require.NoError(t, err)
	assert.Equal(t, "rice", q.Get("search"))
	assert.Equal(t, "dry-goods", q.Get("category"))
	assert.Equal(t, "true", q.Get("low_stock"))
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "20", q.Get("limit"))
	assert.Equal(t, "-date_added", q.Get("sort"))

	require.Len(t, items, 1)
	assert.Equal(t, "Rice", items[0].ItemName)
	assert.Equal(t, 9, pag.TotalPages)
}

func TestUpstreamErrorCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"Item with this barcode already exists"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.CreateItem(context.Background(), inventory.ItemInput{ItemName: "Rice", Category: "dry-goods"})
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeUpstream, appErr.Code)
	assert.Equal(t, "Item with this barcode already exists", appErr.Message)
	assert.Equal(t, http.StatusConflict, appErr.HTTPStatus)
}

func TestUpstreamErrorFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	err := c.DeleteItem(context.Background(), "i1")
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "HTTP error! status: 500", appErr.Message)
}

func Test401MapsToUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Not authorized"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.Me(context.Background())
	assert.True(t, apperror.IsUnauthorized(err))
}

func TestConnectionError(t *testing.T) {
	c := New("http://127.0.0.1:1", nil) // nothing listens here
	_, _, err := c.ListItems(context.Background(), inventory.DefaultFilters())
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeConnection, appErr.Code)
}
