package bundle

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"shelf-gateway/core/zotero"
	"shelf-gateway/feature/bundle/models"
	"shelf-gateway/feature/covers"

	libmodels "shelf-gateway/feature/library/models"
)

// Service assembles detail bundles from the upstream library.
type Service struct {
	client zotero.Client
	logger *zap.Logger
}

// NewService creates a new bundle service.
func NewService(client zotero.Client, logger *zap.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// Fetch assembles the detail bundle for one item.
//
// The item record, its attachments and its notes are fetched concurrently;
// any failure among the three fails the whole bundle. Related items are
// then looked up in a single batched request, but only when the item
// actually references other items. A failed related lookup degrades to an
// empty list rather than failing an otherwise complete bundle.
func (s *Service) Fetch(ctx context.Context, key string) (*models.Bundle, error) {
	if !zotero.IsItemKey(key) {
		return nil, fmt.Errorf("%w: %q", zotero.ErrInvalidKey, key)
	}

	var (
		item  zotero.Item
		atts  []zotero.Attachment
		notes []zotero.Note
	)

	// 1. Fetch the item record and both child listings in parallel.
	g, ctxGroup := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		item, err = s.client.Item(ctxGroup, key)
		if err != nil {
			return fmt.Errorf("fetching item %s: %w", key, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		atts, err = s.client.Attachments(ctxGroup, key)
		if err != nil {
			return fmt.Errorf("fetching attachments of %s: %w", key, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		notes, err = s.client.Notes(ctxGroup, key)
		if err != nil {
			return fmt.Errorf("fetching notes of %s: %w", key, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// 2. One batched lookup for related items, skipped entirely when the
	// record references nothing.
	related := []libmodels.LibraryItem{}
	if keys := item.RelatedKeys(); len(keys) > 0 {
		raw, err := s.client.ItemsByKeys(ctx, keys)
		if err != nil {
			s.logger.Warn("Related item lookup failed",
				zap.String("item", key),
				zap.Int("related", len(keys)),
				zap.Error(err))
		} else {
			for _, r := range raw {
				related = append(related, libmodels.FromItem(r))
			}
		}
	}

	// 3. Normalize the record and resolve its cover for the detail view.
	detail := libmodels.FromItem(item)
	detail.Attachments = atts
	detail.CoverURL = covers.Resolve(atts, notes).URL

	return &models.Bundle{
		Item:         detail,
		Attachments:  atts,
		Notes:        notes,
		RelatedItems: related,
	}, nil
}
