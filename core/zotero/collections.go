package zotero

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// maxCollections caps top-level and sub-collection listings. The shelf never
// paginates collections; a library with more than 200 is out of scope.
const maxCollections = 200

// collectionRecord is the raw wire shape of a collection.
type collectionRecord struct {
	Key  string `json:"key"`
	Data struct {
		Key  string `json:"key"`
		Name string `json:"name"`
	} `json:"data"`
}

func (r collectionRecord) toCollection() Collection {
	key := r.Key
	if key == "" {
		key = r.Data.Key
	}
	return Collection{Key: key, Name: r.Data.Name}
}

// Collections lists up to 200 top-level collections, sorted by name.
func (c *client) Collections(ctx context.Context) ([]Collection, error) {
	return c.listCollections(ctx, "collections/top")
}

// SubCollections lists a collection's direct children, sorted by name.
// Deeper nesting is not recursed.
func (c *client) SubCollections(ctx context.Context, key string) ([]Collection, error) {
	if !IsItemKey(key) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return c.listCollections(ctx, "collections/"+key+"/collections")
}

func (c *client) listCollections(ctx context.Context, resource string) ([]Collection, error) {
	query := url.Values{}
	query.Set("limit", fmt.Sprintf("%d", maxCollections))

	body, _, err := c.get(ctx, resource, query)
	if err != nil {
		return nil, err
	}

	var records []collectionRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", resource, err)
	}

	collections := make([]Collection, 0, len(records))
	for _, r := range records {
		collections = append(collections, r.toCollection())
	}
	sort.SliceStable(collections, func(i, j int) bool {
		return strings.ToLower(collections[i].Name) < strings.ToLower(collections[j].Name)
	})
	return collections, nil
}

// Collection fetches one collection's metadata.
func (c *client) Collection(ctx context.Context, key string) (Collection, error) {
	if !IsItemKey(key) {
		return Collection{}, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	body, _, err := c.get(ctx, "collections/"+key, nil)
	if err != nil {
		return Collection{}, err
	}

	var record collectionRecord
	if err := json.Unmarshal(body, &record); err != nil {
		return Collection{}, fmt.Errorf("decode collection %s: %w", key, err)
	}
	return record.toCollection(), nil
}

// CollectionItemCount probes how many top-level items a collection holds.
// It requests a single record and reads the total-count header; when the
// server does not report a total, the length of the returned page is used.
func (c *client) CollectionItemCount(ctx context.Context, key string) (int, error) {
	if !IsItemKey(key) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	query := url.Values{}
	query.Set("limit", "1")

	body, total, err := c.get(ctx, "collections/"+key+"/items/top", query)
	if err != nil {
		return 0, err
	}
	if total >= 0 {
		return total, nil
	}

	var page []json.RawMessage
	if err := json.Unmarshal(body, &page); err != nil {
		return 0, fmt.Errorf("decode probe for collection %s: %w", key, err)
	}
	return len(page), nil
}
