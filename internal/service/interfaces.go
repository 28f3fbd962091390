package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-notes/internal/async"
	"github.com/MKhiriev/go-notes/models"
)

// NoteService mediates between the transport and the note store. It owns the
// identity rule for writes: creating always lets the store assign the id,
// updating always uses the id from the request path.
type NoteService interface {
	FindAll(ctx context.Context) *async.Stream[models.Note]
	FindByID(ctx context.Context, id int64) *async.Future[models.Note]
	Save(ctx context.Context, note models.Note) *async.Future[models.Note]
	DeleteByID(ctx context.Context, id int64) *async.Future[struct{}]

	// Create discards any client supplied id before saving.
	Create(ctx context.Context, note models.Note) *async.Future[models.Note]
	// Update saves note under id, inserting it when no such note exists.
	Update(ctx context.Context, id int64, note models.Note) *async.Future[models.Note]
}

type AppInfoService interface {
	GetAPIInfo(ctx context.Context) models.APIInfo
}
