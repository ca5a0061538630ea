package bundle_test

import (
	"context"
	"testing"

	"shelf-gateway/core/zotero"
	"shelf-gateway/core/zotero/mocks"
	"shelf-gateway/feature/bundle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFetch(t *testing.T) {
	client := new(mocks.Client)
	client.On("Item", mock.Anything, "ITEM0001").Return(zotero.Item{
		Key: "ITEM0001",
		Data: map[string]any{
			"itemType": "book",
			"title":    "Dune",
			"date":     "1965-08-01",
			"relations": map[string]any{
				"dc:relation": "http://zotero.org/users/12345/items/RELA0001",
			},
		},
	}, nil)
	client.On("Attachments", mock.Anything, "ITEM0001").Return([]zotero.Attachment{
		{Key: "ATTA0001", Title: "Book Cover (Web)", ResolvedURL: "https://cdn.example.com/dune.jpg"},
		{Key: "ATTA0002", ContentType: "application/pdf", Filename: "dune.pdf"},
	}, nil)
	client.On("Notes", mock.Anything, "ITEM0001").Return([]zotero.Note{
		{Key: "NOTE0001", Content: "<p>Reading notes</p>"},
	}, nil)
	client.On("ItemsByKeys", mock.Anything, []string{"RELA0001"}).Return([]zotero.Item{
		{Key: "RELA0001", Data: map[string]any{"itemType": "book", "title": "Dune Messiah"}},
	}, nil)

	svc := bundle.NewService(client, zap.NewNop())

	b, err := svc.Fetch(context.Background(), "ITEM0001")
	require.NoError(t, err)

	assert.Equal(t, "ITEM0001", b.Item.Key)
	assert.Equal(t, "Dune", b.Item.Title)
	assert.Equal(t, 1965, b.Item.Year)
	assert.Equal(t, "https://cdn.example.com/dune.jpg", b.Item.CoverURL)
	assert.Len(t, b.Item.Attachments, 2)

	require.Len(t, b.Attachments, 2)
	assert.Equal(t, "ATTA0001", b.Attachments[0].Key)
	require.Len(t, b.Notes, 1)
	assert.Equal(t, "NOTE0001", b.Notes[0].Key)

	require.Len(t, b.RelatedItems, 1)
	assert.Equal(t, "RELA0001", b.RelatedItems[0].Key)
	assert.Equal(t, "Dune Messiah", b.RelatedItems[0].Title)

	client.AssertExpectations(t)
}

func TestFetch_NoRelationsSkipsLookup(t *testing.T) {
	client := new(mocks.Client)
	client.On("Item", mock.Anything, "ITEM0001").Return(zotero.Item{
		Key:  "ITEM0001",
		Data: map[string]any{"itemType": "book", "title": "Solaris"},
	}, nil)
	client.On("Attachments", mock.Anything, "ITEM0001").Return([]zotero.Attachment{}, nil)
	client.On("Notes", mock.Anything, "ITEM0001").Return([]zotero.Note{}, nil)

	svc := bundle.NewService(client, zap.NewNop())

	b, err := svc.Fetch(context.Background(), "ITEM0001")
	require.NoError(t, err)

	assert.NotNil(t, b.RelatedItems)
	assert.Empty(t, b.RelatedItems)
	client.AssertNotCalled(t, "ItemsByKeys", mock.Anything, mock.Anything)
}

func TestFetch_InvalidKey(t *testing.T) {
	client := new(mocks.Client)
	svc := bundle.NewService(client, zap.NewNop())

	_, err := svc.Fetch(context.Background(), "not-a-key")
	assert.ErrorIs(t, err, zotero.ErrInvalidKey)
	client.AssertNotCalled(t, "Item", mock.Anything, mock.Anything)
}

func TestFetch_ChildFailureFailsBundle(t *testing.T) {
	client := new(mocks.Client)
	client.On("Item", mock.Anything, "ITEM0001").Return(zotero.Item{
		Key:  "ITEM0001",
		Data: map[string]any{"itemType": "book", "title": "Dune"},
	}, nil)
	client.On("Attachments", mock.Anything, "ITEM0001").
		Return(nil, &zotero.RemoteError{StatusCode: 500, URL: "https://api/x"})
	client.On("Notes", mock.Anything, "ITEM0001").Return([]zotero.Note{}, nil)

	svc := bundle.NewService(client, zap.NewNop())

	b, err := svc.Fetch(context.Background(), "ITEM0001")
	assert.Nil(t, b)

	var remote *zotero.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, 500, remote.StatusCode)
}

func TestFetch_RelatedFailureDegrades(t *testing.T) {
	client := new(mocks.Client)
	client.On("Item", mock.Anything, "ITEM0001").Return(zotero.Item{
		Key: "ITEM0001",
		Data: map[string]any{
			"itemType": "book",
			"title":    "Dune",
			"relations": map[string]any{
				"dc:relation": []any{
					"http://zotero.org/users/12345/items/RELA0001",
					"http://zotero.org/users/12345/items/RELA0002",
				},
			},
		},
	}, nil)
	client.On("Attachments", mock.Anything, "ITEM0001").Return([]zotero.Attachment{}, nil)
	client.On("Notes", mock.Anything, "ITEM0001").Return([]zotero.Note{}, nil)
	client.On("ItemsByKeys", mock.Anything, []string{"RELA0001", "RELA0002"}).
		Return(nil, &zotero.RemoteError{StatusCode: 500, URL: "https://api/x"})

	svc := bundle.NewService(client, zap.NewNop())

	b, err := svc.Fetch(context.Background(), "ITEM0001")
	require.NoError(t, err)
	assert.Empty(t, b.RelatedItems)
	client.AssertExpectations(t)
}
