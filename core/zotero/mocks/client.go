package mocks

import (
	"context"

	"shelf-gateway/core/zotero"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of zotero.Client
type Client struct {
	mock.Mock
}

func (m *Client) TopItems(ctx context.Context, target int) ([]zotero.Item, error) {
	args := m.Called(ctx, target)
	if items, ok := args.Get(0).([]zotero.Item); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) CollectionItems(ctx context.Context, collectionKey string, target int) ([]zotero.Item, error) {
	args := m.Called(ctx, collectionKey, target)
	if items, ok := args.Get(0).([]zotero.Item); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Item(ctx context.Context, key string) (zotero.Item, error) {
	args := m.Called(ctx, key)
	if it, ok := args.Get(0).(zotero.Item); ok {
		return it, args.Error(1)
	}
	return zotero.Item{}, args.Error(1)
}

func (m *Client) ItemsByKeys(ctx context.Context, keys []string) ([]zotero.Item, error) {
	args := m.Called(ctx, keys)
	if items, ok := args.Get(0).([]zotero.Item); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Collections(ctx context.Context) ([]zotero.Collection, error) {
	args := m.Called(ctx)
	if cols, ok := args.Get(0).([]zotero.Collection); ok {
		return cols, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Collection(ctx context.Context, key string) (zotero.Collection, error) {
	args := m.Called(ctx, key)
	if col, ok := args.Get(0).(zotero.Collection); ok {
		return col, args.Error(1)
	}
	return zotero.Collection{}, args.Error(1)
}

func (m *Client) SubCollections(ctx context.Context, key string) ([]zotero.Collection, error) {
	args := m.Called(ctx, key)
	if cols, ok := args.Get(0).([]zotero.Collection); ok {
		return cols, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) CollectionItemCount(ctx context.Context, key string) (int, error) {
	args := m.Called(ctx, key)
	return args.Int(0), args.Error(1)
}

func (m *Client) Attachments(ctx context.Context, itemKey string) ([]zotero.Attachment, error) {
	args := m.Called(ctx, itemKey)
	if attachments, ok := args.Get(0).([]zotero.Attachment); ok {
		return attachments, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Notes(ctx context.Context, itemKey string) ([]zotero.Note, error) {
	args := m.Called(ctx, itemKey)
	if notes, ok := args.Get(0).([]zotero.Note); ok {
		return notes, args.Error(1)
	}
	return nil, args.Error(1)
}
