package library

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"shelf-gateway/core/cache"
	"shelf-gateway/core/zotero"
	"shelf-gateway/feature/covers"
	"shelf-gateway/feature/library/models"

	"go.uber.org/zap"
)

// DefaultLimit is the listing size used when the caller does not ask for a
// specific count.
const DefaultLimit = 100

// Service handles library listing and enrichment.
type Service struct {
	client zotero.Client
	cfg    zotero.Config
	logger *zap.Logger
	cache  *cache.Store
}

// NewService creates a new library service.
func NewService(client zotero.Client, cfg zotero.Config, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		cfg:    cfg,
		logger: logger,
		cache:  cache.New(time.Duration(cfg.CacheTTLSeconds) * time.Second),
	}
}

// ListItems fetches top-level items, optionally enriched with attachments
// and covers. Identical concurrent requests collapse into one upstream
// pass; refresh bypasses a previously cached listing.
func (s *Service) ListItems(ctx context.Context, limit int, withCovers, refresh bool) ([]models.LibraryItem, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	key := fmt.Sprintf("items:%d:%t", limit, withCovers)
	if refresh {
		s.cache.Invalidate(key)
	}

	v, err := s.cache.GetOrBuild(key, func() (any, error) {
		items, err := s.FetchTopLevelItems(ctx, limit)
		if err != nil {
			return nil, err
		}
		if !withCovers {
			return items, nil
		}
		return s.AttachCoverImages(ctx, items)
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.LibraryItem), nil
}

// FetchTopLevelItems lists and normalizes the library's top-level items in
// title order. A rooted configuration expands to the root collection plus
// every direct sub-collection, fetched concurrently and deduplicated by
// item key.
func (s *Service) FetchTopLevelItems(ctx context.Context, limit int) ([]models.LibraryItem, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	raw, err := s.topLevelRaw(ctx, limit)
	if err != nil {
		return nil, err
	}

	items := make([]models.LibraryItem, 0, len(raw))
	for _, it := range raw {
		items = append(items, models.FromItem(it))
	}
	return items, nil
}

func (s *Service) topLevelRaw(ctx context.Context, limit int) ([]zotero.Item, error) {
	if s.cfg.Collection == "" {
		return s.client.TopItems(ctx, limit)
	}

	keys := []string{s.cfg.Collection}
	if subs, err := s.client.SubCollections(ctx, s.cfg.Collection); err != nil {
		s.logger.Warn("Sub-collection listing failed, fetching root only",
			zap.String("collection", s.cfg.Collection), zap.Error(err))
	} else {
		for _, c := range filterAllowed(subs, s.cfg.AllowList()) {
			keys = append(keys, c.Key)
		}
	}

	// One listing per collection, issued concurrently. Result slots keep
	// the collection order so the union below is deterministic.
	results := make([][]zotero.Item, len(keys))
	errs := make([]error, len(keys))
	var wg sync.WaitGroup
	for i, key := range keys {
		wg.Add(1)
		go func(i int, key string) {
			defer wg.Done()
			results[i], errs[i] = s.client.CollectionItems(ctx, key, limit)
		}(i, key)
	}
	wg.Wait()

	// Without the root listing there is nothing worth serving.
	if errs[0] != nil {
		return nil, errs[0]
	}

	seen := make(map[string]bool)
	var union []zotero.Item
	for i, page := range results {
		if errs[i] != nil {
			s.logger.Warn("Collection listing failed, skipping",
				zap.String("collection", keys[i]), zap.Error(errs[i]))
			continue
		}
		for _, it := range page {
			if seen[it.Key] {
				continue
			}
			seen[it.Key] = true
			union = append(union, it)
		}
	}

	// Merging collections loses the server's title order; restore it.
	sort.SliceStable(union, func(i, j int) bool {
		return strings.ToLower(union[i].Title()) < strings.ToLower(union[j].Title())
	})
	if len(union) > limit {
		union = union[:limit]
	}
	return union, nil
}

// AttachCoverImages enriches items with their attachments and a resolved
// cover. Work is partitioned into fixed-size chunks so at most
// cfg.Concurrency children lookups run at once; the next chunk starts only
// when the whole current one has resolved. Output order equals input
// order, and per-item failures degrade to an item without a cover.
func (s *Service) AttachCoverImages(ctx context.Context, items []models.LibraryItem) ([]models.LibraryItem, error) {
	out := make([]models.LibraryItem, len(items))
	copy(out, items)

	chunk := s.cfg.Concurrency
	if chunk < 1 {
		chunk = 1
	}
	for lo := 0; lo < len(out); lo += chunk {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		hi := lo + chunk
		if hi > len(out) {
			hi = len(out)
		}

		var wg sync.WaitGroup
		for i := lo; i < hi; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				s.enrich(ctx, &out[i])
			}(i)
		}
		wg.Wait()
	}
	return out, nil
}

// enrich fills one item's attachments and cover in place.
func (s *Service) enrich(ctx context.Context, item *models.LibraryItem) {
	atts, err := s.client.Attachments(ctx, item.Key)
	if err != nil {
		s.logger.Warn("Attachment fetch failed",
			zap.String("item", item.Key), zap.Error(err))
		return
	}
	item.Attachments = atts

	notes, err := s.client.Notes(ctx, item.Key)
	if err != nil {
		// Attachments alone can still carry the cover.
		s.logger.Warn("Note fetch failed",
			zap.String("item", item.Key), zap.Error(err))
		notes = nil
	}

	res := covers.Resolve(atts, notes)
	item.CoverURL = res.URL
	for _, miss := range res.Misses {
		s.logger.Warn("Flagged cover note yielded no image",
			zap.String("item", item.Key), zap.String("note", miss.NoteKey))
	}
}

// Collections resolves the collection listing the gateway serves. With no
// root configured it lists the library's top-level collections. With a
// root it returns the root first, then its direct sub-collections;
// metadata failures degrade to a partial listing instead of failing the
// whole view.
func (s *Service) Collections(ctx context.Context) ([]zotero.Collection, error) {
	allow := s.cfg.AllowList()

	if s.cfg.Collection == "" {
		cols, err := s.client.Collections(ctx)
		if err != nil {
			return nil, err
		}
		return filterAllowed(cols, allow), nil
	}

	root := zotero.Collection{Key: s.cfg.Collection}
	if meta, err := s.client.Collection(ctx, s.cfg.Collection); err != nil {
		s.logger.Warn("Root collection metadata fetch failed",
			zap.String("collection", s.cfg.Collection), zap.Error(err))
	} else {
		root = meta
	}

	subs, err := s.client.SubCollections(ctx, s.cfg.Collection)
	if err != nil {
		s.logger.Warn("Sub-collection listing failed, serving root only",
			zap.String("collection", s.cfg.Collection), zap.Error(err))
		return []zotero.Collection{root}, nil
	}

	out := []zotero.Collection{root}
	out = append(out, filterAllowed(subs, allow)...)
	return out, nil
}

// FindFirstNonEmptyCollection probes collections in listing order, root
// first, and returns the key of the first one that actually contains
// items. When every probe comes back empty the first collection's key is
// returned; an empty listing returns "".
func (s *Service) FindFirstNonEmptyCollection(ctx context.Context, cols []zotero.Collection) (string, error) {
	if len(cols) == 0 {
		return "", nil
	}

	for _, col := range cols {
		count, err := s.client.CollectionItemCount(ctx, col.Key)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			s.logger.Warn("Item count probe failed",
				zap.String("collection", col.Key), zap.Error(err))
			continue
		}
		if count > 0 {
			return col.Key, nil
		}
	}
	return cols[0].Key, nil
}

// filterAllowed keeps only collections on the allow-list. An empty list
// allows everything.
func filterAllowed(cols []zotero.Collection, allow []string) []zotero.Collection {
	if len(allow) == 0 {
		return cols
	}
	allowed := make(map[string]bool, len(allow))
	for _, k := range allow {
		allowed[k] = true
	}
	out := make([]zotero.Collection, 0, len(cols))
	for _, c := range cols {
		if allowed[c.Key] {
			out = append(out, c)
		}
	}
	return out
}
