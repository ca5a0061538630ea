package zotero_test

import (
	"context"
	"net/http"
	"testing"

	"shelf-gateway/core/zotero"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectionFixture(key, name string) map[string]any {
	return map[string]any{
		"key": key,
		"data": map[string]any{
			"key":  key,
			"name": name,
		},
	}
}

func TestCollections_SortedByName(t *testing.T) {
	client := newTestClient(t, zotero.Config{},
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/users/12345/collections/top" {
				http.NotFound(w, r)
				return
			}
			assert.Equal(t, "200", r.URL.Query().Get("limit"))
			writeJSON(w, []map[string]any{
				collectionFixture("COLL0003", "Sci-Fi"),
				collectionFixture("COLL0001", "biographies"),
				collectionFixture("COLL0002", "Cooking"),
			})
		}))

	cols, err := client.Collections(context.Background())
	require.NoError(t, err)

	require.Len(t, cols, 3)
	assert.Equal(t, "biographies", cols[0].Name)
	assert.Equal(t, "Cooking", cols[1].Name)
	assert.Equal(t, "Sci-Fi", cols[2].Name)
}

func TestCollection_Metadata(t *testing.T) {
	client := newTestClient(t, zotero.Config{},
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/users/12345/collections/ROOT0001" {
				http.NotFound(w, r)
				return
			}
			writeJSON(w, collectionFixture("ROOT0001", "Bookshelf"))
		}))

	col, err := client.Collection(context.Background(), "ROOT0001")
	require.NoError(t, err)
	assert.Equal(t, zotero.Collection{Key: "ROOT0001", Name: "Bookshelf"}, col)

	_, err = client.Collection(context.Background(), "nope")
	assert.ErrorIs(t, err, zotero.ErrInvalidKey)
}

func TestSubCollections(t *testing.T) {
	client := newTestClient(t, zotero.Config{},
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/users/12345/collections/ROOT0001/collections" {
				http.NotFound(w, r)
				return
			}
			writeJSON(w, []map[string]any{
				collectionFixture("SUBC0002", "Zoology"),
				collectionFixture("SUBC0001", "Astronomy"),
			})
		}))

	cols, err := client.SubCollections(context.Background(), "ROOT0001")
	require.NoError(t, err)

	require.Len(t, cols, 2)
	assert.Equal(t, "Astronomy", cols[0].Name)
	assert.Equal(t, "Zoology", cols[1].Name)
}

func TestCollectionItemCount(t *testing.T) {
	t.Run("UsesTotalHeader", func(t *testing.T) {
		client := newTestClient(t, zotero.Config{},
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "1", r.URL.Query().Get("limit"))
				w.Header().Set("Total-Results", "42")
				writeJSON(w, []map[string]any{bookFixture("BOOK0001", "Probe")})
			}))

		n, err := client.CollectionItemCount(context.Background(), "COLL0001")
		require.NoError(t, err)
		assert.Equal(t, 42, n)
	})

	t.Run("MissingTotalFallsBackToPageLength", func(t *testing.T) {
		client := newTestClient(t, zotero.Config{},
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				// No Total-Results header: unknown is not zero.
				writeJSON(w, []map[string]any{bookFixture("BOOK0001", "Probe")})
			}))

		n, err := client.CollectionItemCount(context.Background(), "COLL0001")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("EmptyCollection", func(t *testing.T) {
		client := newTestClient(t, zotero.Config{},
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Total-Results", "0")
				writeJSON(w, []any{})
			}))

		n, err := client.CollectionItemCount(context.Background(), "COLL0001")
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})
}
