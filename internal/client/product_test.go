package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Juanelc4734k/checkout-service/internal/client"
	"github.com/Juanelc4734k/checkout-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductClient_GetProduct(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodGet, r.Method)
			require.Equal(t, "/products/10", r.URL.Path)
			w.Write([]byte(`{"id":10,"name":"keyboard","price":"25.50","stock":4}`))
		}))
		defer srv.Close()

		c := client.NewProductClient(srv.Client(), srv.URL)

		product, err := c.GetProduct(context.Background(), 10)
		require.NoError(t, err)

		assert.Equal(t, int64(10), product.ID)
		assert.Equal(t, "keyboard", product.Name)
		assert.Equal(t, "25.5", product.Price.String())
		assert.Equal(t, 4, product.Stock)
	})

	t.Run("not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		c := client.NewProductClient(srv.Client(), srv.URL)

		_, err := c.GetProduct(context.Background(), 99)
		assert.ErrorIs(t, err, entities.ErrProductNotFound)
	})

	t.Run("unexpected status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		c := client.NewProductClient(srv.Client(), srv.URL)

		_, err := c.GetProduct(context.Background(), 10)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, entities.ErrProductNotFound)
	})
}

func TestProductClient_UpdateStock(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotBody map[string]int

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPut, r.Method)
			require.Equal(t, "/products/10", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		c := client.NewProductClient(srv.Client(), srv.URL)

		require.NoError(t, c.UpdateStock(context.Background(), 10, 2))
		assert.Equal(t, 2, gotBody["stock"])
	})

	t.Run("unexpected status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := client.NewProductClient(srv.Client(), srv.URL)

		assert.Error(t, c.UpdateStock(context.Background(), 10, 2))
	})
}
