package bundle_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"shelf-gateway/core/zotero"
	"shelf-gateway/core/zotero/mocks"
	"shelf-gateway/feature/bundle"
	"shelf-gateway/feature/bundle/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(client *mocks.Client) *fiber.App {
	h := bundle.NewHandler(bundle.NewService(client, zap.NewNop()))
	app := fiber.New()
	h.RegisterRoutes(app)
	return app
}

func TestHandleItemBundle(t *testing.T) {
	client := new(mocks.Client)
	client.On("Item", mock.Anything, "ITEM0001").Return(zotero.Item{
		Key:  "ITEM0001",
		Data: map[string]any{"itemType": "book", "title": "Dune"},
	}, nil)
	client.On("Attachments", mock.Anything, "ITEM0001").Return([]zotero.Attachment{
		{Key: "ATTA0001", Title: "Book Cover (Web)", ResolvedURL: "https://cdn.example.com/dune.jpg"},
	}, nil)
	client.On("Notes", mock.Anything, "ITEM0001").Return([]zotero.Note{}, nil)

	app := newTestApp(client)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/items/ITEM0001", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var b models.Bundle
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&b))
	assert.Equal(t, "ITEM0001", b.Item.Key)
	assert.Equal(t, "https://cdn.example.com/dune.jpg", b.Item.CoverURL)
	require.Len(t, b.Attachments, 1)
	assert.Empty(t, b.RelatedItems)
}

func TestHandleItemBundle_InvalidKey(t *testing.T) {
	app := newTestApp(new(mocks.Client))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/items/nope", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["error"], "invalid item key")
}

func TestHandleItemBundle_NotFound(t *testing.T) {
	client := new(mocks.Client)
	notFound := &zotero.RemoteError{StatusCode: 404, URL: "https://api/x"}
	client.On("Item", mock.Anything, "MISSING1").Return(zotero.Item{}, notFound)
	client.On("Attachments", mock.Anything, "MISSING1").Return([]zotero.Attachment{}, nil)
	client.On("Notes", mock.Anything, "MISSING1").Return([]zotero.Note{}, nil)

	app := newTestApp(client)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/items/MISSING1", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
