package covers

import (
	"context"
	"sync"
	"time"

	"shelf-gateway/core/zotero"
	"shelf-gateway/feature/covers/models"
	libmodels "shelf-gateway/feature/library/models"

	"go.uber.org/zap"
)

// Lister supplies the library listing the audit walks. The library feature
// implements it.
type Lister interface {
	FetchTopLevelItems(ctx context.Context, limit int) ([]libmodels.LibraryItem, error)
}

// Service audits cover coverage across the library.
type Service struct {
	client zotero.Client
	lister Lister
	cfg    zotero.Config
	logger *zap.Logger
}

// NewService creates a new covers service.
func NewService(client zotero.Client, lister Lister, cfg zotero.Config, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		lister: lister,
		cfg:    cfg,
		logger: logger,
	}
}

// Audit resolves a cover for every listed item and reports the per-item
// outcome plus aggregate counts. Per-item fetch failures degrade to an
// error entry for that item; only the listing itself is fatal.
func (s *Service) Audit(ctx context.Context, limit int) (*models.Report, error) {
	items, err := s.lister.FetchTopLevelItems(ctx, limit)
	if err != nil {
		return nil, err
	}

	statuses := make([]models.ItemStatus, len(items))

	chunk := s.cfg.Concurrency
	if chunk < 1 {
		chunk = 1
	}
	for lo := 0; lo < len(items); lo += chunk {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		hi := lo + chunk
		if hi > len(items) {
			hi = len(items)
		}

		var wg sync.WaitGroup
		for i := lo; i < hi; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				statuses[i] = s.auditItem(ctx, items[i])
			}(i)
		}
		wg.Wait()
	}

	report := &models.Report{
		Total:       len(items),
		BySource:    map[string]int{},
		Items:       statuses,
		GeneratedAt: time.Now().UTC(),
	}
	for _, st := range statuses {
		if st.CoverURL != "" {
			report.Covered++
			report.BySource[st.Source]++
		} else {
			report.Missing++
		}
	}
	return report, nil
}

func (s *Service) auditItem(ctx context.Context, it libmodels.LibraryItem) models.ItemStatus {
	status := models.ItemStatus{Key: it.Key, Title: it.Title}

	atts, err := s.client.Attachments(ctx, it.Key)
	if err != nil {
		s.logger.Warn("Attachment listing failed during cover audit",
			zap.String("item", it.Key), zap.Error(err))
		status.Error = err.Error()
		return status
	}
	notes, err := s.client.Notes(ctx, it.Key)
	if err != nil {
		// Attachments alone can still resolve a cover.
		s.logger.Warn("Note listing failed during cover audit",
			zap.String("item", it.Key), zap.Error(err))
		notes = nil
	}

	res := Resolve(atts, notes)
	status.CoverURL = res.URL
	if res.URL != "" {
		status.Source = string(res.Source)
	}
	for _, miss := range res.Misses {
		status.FlaggedNotes = append(status.FlaggedNotes, miss.NoteKey)
	}
	return status
}
