package zotero

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// TopItems lists top-level bibliographic items for the whole library.
func (c *client) TopItems(ctx context.Context, target int) ([]Item, error) {
	return c.paginate(ctx, "items/top", target)
}

// CollectionItems lists top-level items belonging to one collection.
func (c *client) CollectionItems(ctx context.Context, collectionKey string, target int) ([]Item, error) {
	if !IsItemKey(collectionKey) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKey, collectionKey)
	}
	return c.paginate(ctx, "collections/"+collectionKey+"/items/top", target)
}

// paginate walks a listing resource page by page until target items are
// collected, a short page signals the end of the data, or the running record
// count reaches the server-reported total. Attachment and note records are
// filtered out and duplicate keys are dropped; the result is truncated to
// exactly target.
func (c *client) paginate(ctx context.Context, resource string, target int) ([]Item, error) {
	items := []Item{}
	if target <= 0 {
		return items, nil
	}

	seen := make(map[string]struct{}, target)
	start := 0
	total := -1

	for len(items) < target {
		limit := c.pageSize
		if rem := target - len(items); rem < limit {
			limit = rem
		}

		query := url.Values{}
		query.Set("limit", strconv.Itoa(limit))
		query.Set("start", strconv.Itoa(start))
		query.Set("sort", "title")
		query.Set("direction", "asc")

		body, pageTotal, err := c.get(ctx, resource, query)
		if err != nil {
			return nil, err
		}
		if pageTotal >= 0 {
			total = pageTotal
		}

		var page []Item
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("decode %s page: %w", resource, err)
		}

		for _, it := range page {
			switch it.ItemType() {
			case "attachment", "note":
				continue
			}
			if _, dup := seen[it.Key]; dup {
				continue
			}
			seen[it.Key] = struct{}{}
			items = append(items, it)
		}

		// Advance by what the server actually sent, not by the requested
		// page size, so short pages cannot drift the offset.
		start += len(page)
		if len(page) < limit {
			break
		}
		if total >= 0 && start >= total {
			break
		}
	}

	if len(items) > target {
		items = items[:target]
	}
	return items, nil
}

// Item fetches a single item's detail record.
func (c *client) Item(ctx context.Context, key string) (Item, error) {
	if !IsItemKey(key) {
		return Item{}, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	body, _, err := c.get(ctx, "items/"+key, nil)
	if err != nil {
		return Item{}, err
	}

	var it Item
	if err := json.Unmarshal(body, &it); err != nil {
		return Item{}, fmt.Errorf("decode item %s: %w", key, err)
	}
	return it, nil
}

// ItemsByKeys fetches several items in one batched request.
func (c *client) ItemsByKeys(ctx context.Context, keys []string) ([]Item, error) {
	if len(keys) == 0 {
		return []Item{}, nil
	}
	for _, key := range keys {
		if !IsItemKey(key) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	}

	query := url.Values{}
	query.Set("itemKey", strings.Join(keys, ","))
	query.Set("limit", strconv.Itoa(len(keys)))

	body, _, err := c.get(ctx, "items", query)
	if err != nil {
		return nil, err
	}

	var items []Item
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("decode batched items: %w", err)
	}
	return items, nil
}
