package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/models"
)

const traceIDHeader = "X-Trace-ID"

type httpNotesAdapter struct {
	client   *utils.HTTPClient
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPNotesAdapter returns a [NotesAdapter] for the server at
// cfg.HTTPAddress. A missing scheme defaults to http. Every request is bounded
// by cfg.RequestTimeout.
func NewHTTPNotesAdapter(cfg config.ClientAdapter, logger *logger.Logger) (NotesAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpNotesAdapter{
		client:   client,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpNotesAdapter) List(ctx context.Context) ([]models.Note, error) {
	notes := make([]models.Note, 0)

	resp, err := h.request(ctx).
		SetResult(&notes).
		Get("/notes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return notes, nil
}

func (h *httpNotesAdapter) Get(ctx context.Context, id int64) (models.Note, error) {
	var note models.Note

	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&note).
		Get("/notes/{id}")
	if err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (h *httpNotesAdapter) Create(ctx context.Context, note models.Note) (models.Note, error) {
	var created models.Note

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(note.WithoutID()).
		SetResult(&created).
		Post("/notes")
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return created, nil
}

func (h *httpNotesAdapter) Update(ctx context.Context, id int64, note models.Note) (models.Note, error) {
	var updated models.Note

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(note.WithID(id)).
		SetResult(&updated).
		Put("/notes/{id}")
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return updated, nil
}

func (h *httpNotesAdapter) Delete(ctx context.Context, id int64) error {
	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/notes/{id}")
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpNotesAdapter) APIInfo(ctx context.Context) (models.APIInfo, error) {
	var info models.APIInfo

	resp, err := h.request(ctx).
		SetResult(&info).
		Get("/api-info")
	if err != nil {
		return models.APIInfo{}, fmt.Errorf("api info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.APIInfo{}, err
	}

	return info, nil
}

// request starts a request tagged with a fresh trace id, so client and server
// log lines for one call can be matched.
func (h *httpNotesAdapter) request(ctx context.Context) *resty.Request {
	traceID := h.traceIDs.Generate()
	h.logger.Debug().Str("trace_id", traceID).Msg("notes api request")

	return h.client.R().
		SetContext(ctx).
		SetHeader(traceIDHeader, traceID)
}
