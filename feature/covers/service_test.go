package covers_test

import (
	"context"
	"errors"
	"testing"

	"shelf-gateway/core/zotero"
	"shelf-gateway/core/zotero/mocks"
	"shelf-gateway/feature/covers"
	libmodels "shelf-gateway/feature/library/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLister struct {
	items    []libmodels.LibraryItem
	err      error
	gotLimit int
}

func (f *fakeLister) FetchTopLevelItems(ctx context.Context, limit int) ([]libmodels.LibraryItem, error) {
	f.gotLimit = limit
	return f.items, f.err
}

func TestAudit(t *testing.T) {
	lister := &fakeLister{items: []libmodels.LibraryItem{
		{Key: "ITEM0001", Title: "Dune"},
		{Key: "ITEM0002", Title: "Hyperion"},
		{Key: "ITEM0003", Title: "Solaris"},
	}}

	client := new(mocks.Client)
	// Curated cover.
	client.On("Attachments", mock.Anything, "ITEM0001").Return([]zotero.Attachment{
		{Key: "ATTA0001", Title: "Book Cover (Web)", ResolvedURL: "https://cdn.example.com/dune.jpg"},
	}, nil)
	client.On("Notes", mock.Anything, "ITEM0001").Return([]zotero.Note{}, nil)
	// Flagged note that yields nothing.
	client.On("Attachments", mock.Anything, "ITEM0002").Return([]zotero.Attachment{}, nil)
	client.On("Notes", mock.Anything, "ITEM0002").Return([]zotero.Note{
		{Key: "NOTE0002", Content: "<p>Book Cover (b64)</p>"},
	}, nil)
	// Attachment listing fails outright.
	client.On("Attachments", mock.Anything, "ITEM0003").
		Return(nil, &zotero.RemoteError{StatusCode: 500, URL: "https://api/x"})

	svc := covers.NewService(client, lister, zotero.Config{Concurrency: 2}, zap.NewNop())

	report, err := svc.Audit(context.Background(), 50)
	require.NoError(t, err)
	assert.Equal(t, 50, lister.gotLimit)

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 1, report.Covered)
	assert.Equal(t, 2, report.Missing)
	assert.Equal(t, map[string]int{"named_attachment": 1}, report.BySource)
	assert.False(t, report.GeneratedAt.IsZero())

	require.Len(t, report.Items, 3)
	assert.Equal(t, "ITEM0001", report.Items[0].Key)
	assert.Equal(t, "https://cdn.example.com/dune.jpg", report.Items[0].CoverURL)
	assert.Equal(t, "named_attachment", report.Items[0].Source)

	assert.Empty(t, report.Items[1].CoverURL)
	assert.Equal(t, []string{"NOTE0002"}, report.Items[1].FlaggedNotes)

	assert.Empty(t, report.Items[2].CoverURL)
	assert.NotEmpty(t, report.Items[2].Error)

	client.AssertExpectations(t)
}

func TestAudit_ListingErrorIsFatal(t *testing.T) {
	boom := errors.New("listing failed")
	svc := covers.NewService(new(mocks.Client), &fakeLister{err: boom}, zotero.Config{}, zap.NewNop())

	_, err := svc.Audit(context.Background(), 10)
	assert.ErrorIs(t, err, boom)
}

func TestAudit_NoteErrorDegrades(t *testing.T) {
	lister := &fakeLister{items: []libmodels.LibraryItem{{Key: "ITEM0001", Title: "Dune"}}}

	client := new(mocks.Client)
	client.On("Attachments", mock.Anything, "ITEM0001").Return([]zotero.Attachment{
		{Key: "ATTA0001", ContentType: "image/jpeg", ResolvedURL: "https://files.example.com/scan.jpg"},
	}, nil)
	client.On("Notes", mock.Anything, "ITEM0001").
		Return(nil, &zotero.RemoteError{StatusCode: 500, URL: "https://api/x"})

	svc := covers.NewService(client, lister, zotero.Config{Concurrency: 1}, zap.NewNop())

	report, err := svc.Audit(context.Background(), 0)
	require.NoError(t, err)

	// The attachment-only path still resolved a cover.
	require.Len(t, report.Items, 1)
	assert.Equal(t, "https://files.example.com/scan.jpg", report.Items[0].CoverURL)
	assert.Empty(t, report.Items[0].Error)
	assert.Equal(t, 1, report.Covered)
}
