package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes/internal/async"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/mock"
	"github.com/MKhiriev/go-notes/models"
)

var errStore = errors.New("store failure")

func newTestNoteSvc(t *testing.T) (NoteService, *mock.MockNoteRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockNoteRepository(ctrl)
	return NewNoteService(repo, logger.Nop()), repo
}

func idPtr(id int64) *int64 {
	return &id
}

// ── pass-through ─────────────────────────────────────────────────────────────

func TestNoteService_FindAll_ReturnsStoreStream(t *testing.T) {
	svc, repo := newTestNoteSvc(t)
	ctx := context.Background()

	notes := []models.Note{
		{ID: idPtr(1), Title: "a", Content: "1"},
		{ID: idPtr(2), Title: "b", Content: "2"},
	}
	repo.EXPECT().FindAll(gomock.Any()).Return(async.FromSlice(notes...))

	got, ok, err := svc.FindAll(ctx).Collect(ctx).Await(ctx)

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, notes, got)
}

func TestNoteService_FindByID(t *testing.T) {
	svc, repo := newTestNoteSvc(t)
	ctx := context.Background()

	note := models.Note{ID: idPtr(1), Title: "Test Note", Content: "This is a test note"}
	repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(async.Just(note))
	repo.EXPECT().FindByID(gomock.Any(), int64(999)).Return(async.Empty[models.Note]())

	got, ok, err := svc.FindByID(ctx, 1).Await(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, note, got)

	_, ok, err = svc.FindByID(ctx, 999).Await(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNoteService_Save_PassesNoteUnchanged(t *testing.T) {
	svc, repo := newTestNoteSvc(t)
	ctx := context.Background()

	in := models.Note{ID: idPtr(5), Title: "t", Content: "c"}
	repo.EXPECT().Save(gomock.Any(), in).Return(async.Just(in))

	got, ok, err := svc.Save(ctx, in).Await(ctx)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, in, got)
}

func TestNoteService_DeleteByID(t *testing.T) {
	svc, repo := newTestNoteSvc(t)
	ctx := context.Background()

	repo.EXPECT().DeleteByID(gomock.Any(), int64(1)).Return(async.Empty[struct{}]())

	_, ok, err := svc.DeleteByID(ctx, 1).Await(ctx)

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNoteService_PropagatesStoreError(t *testing.T) {
	svc, repo := newTestNoteSvc(t)
	ctx := context.Background()

	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(async.Fail[models.Note](errStore))

	_, _, err := svc.Save(ctx, models.Note{}).Await(ctx)

	assert.ErrorIs(t, err, errStore)
}

// ── identity rule ────────────────────────────────────────────────────────────

func TestNoteService_Create_DiscardsClientID(t *testing.T) {
	svc, repo := newTestNoteSvc(t)
	ctx := context.Background()

	repo.EXPECT().
		Save(gomock.Any(), models.Note{Title: "t", Content: "c"}).
		Return(async.Just(models.Note{ID: idPtr(1), Title: "t", Content: "c"}))

	got, ok, err := svc.Create(ctx, models.Note{ID: idPtr(77), Title: "t", Content: "c"}).Await(ctx)

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(1), got.IDValue())
}

func TestNoteService_Update_UsesPathID(t *testing.T) {
	svc, repo := newTestNoteSvc(t)
	ctx := context.Background()

	want := models.Note{ID: idPtr(3), Title: "t", Content: "c"}
	repo.EXPECT().Save(gomock.Any(), want).Return(async.Just(want))

	got, ok, err := svc.Update(ctx, 3, models.Note{ID: idPtr(100), Title: "t", Content: "c"}).Await(ctx)

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

// ── logging wrapper ──────────────────────────────────────────────────────────

func newLoggedSvc(t *testing.T) (NoteService, *mock.MockNoteRepository, *bytes.Buffer, context.Context) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockNoteRepository(ctrl)

	var buf bytes.Buffer
	l := zerolog.New(&buf).Level(zerolog.DebugLevel)
	ctx := l.WithContext(context.Background())

	svc := NewNoteLoggingService().Wrap(NewNoteService(repo, logger.Nop()))
	return svc, repo, &buf, ctx
}

func TestNoteLoggingService_PassesResultsThrough(t *testing.T) {
	svc, repo, buf, ctx := newLoggedSvc(t)

	note := models.Note{ID: idPtr(1), Title: "t", Content: "c"}
	repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(async.Just(note))

	got, ok, err := svc.FindByID(ctx, 1).Await(ctx)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, note, got)
	assert.Contains(t, buf.String(), "NoteService.FindByID")
}

func TestNoteLoggingService_LogsErrors(t *testing.T) {
	svc, repo, buf, ctx := newLoggedSvc(t)

	repo.EXPECT().DeleteByID(gomock.Any(), int64(2)).Return(async.Fail[struct{}](errStore))

	_, _, err := svc.DeleteByID(ctx, 2).Await(ctx)

	assert.ErrorIs(t, err, errStore)
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), "store failure")
}

func TestNoteLoggingService_FindAllCountsEmitted(t *testing.T) {
	svc, repo, buf, ctx := newLoggedSvc(t)

	repo.EXPECT().FindAll(gomock.Any()).Return(async.FromSlice(
		models.Note{ID: idPtr(1)},
		models.Note{ID: idPtr(2)},
	))

	got, _, err := svc.FindAll(ctx).Collect(ctx).Await(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Contains(t, buf.String(), `"emitted":2`)
}

func TestNoteLoggingService_FindAllPropagatesError(t *testing.T) {
	svc, repo, _, ctx := newLoggedSvc(t)

	repo.EXPECT().FindAll(gomock.Any()).Return(async.FailStream[models.Note](errStore))

	_, _, err := svc.FindAll(ctx).Collect(ctx).Await(ctx)

	assert.ErrorIs(t, err, errStore)
}

func TestNoteLoggingService_CreateAndUpdateKeepIdentityRule(t *testing.T) {
	svc, repo, _, ctx := newLoggedSvc(t)

	repo.EXPECT().Save(gomock.Any(), models.Note{Title: "new"}).Return(async.Just(models.Note{ID: idPtr(1), Title: "new"}))
	repo.EXPECT().Save(gomock.Any(), models.Note{ID: idPtr(9), Title: "upd"}).Return(async.Just(models.Note{ID: idPtr(9), Title: "upd"}))

	created, _, err := svc.Create(ctx, models.Note{ID: idPtr(5), Title: "new"}).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.IDValue())

	updated, _, err := svc.Update(ctx, 9, models.Note{Title: "upd"}).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(9), updated.IDValue())
}
