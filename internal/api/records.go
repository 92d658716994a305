package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avydrenko/shortdash/internal/entity"
)

// recordInput is the only mutable part of a record on the wire.
type recordInput struct {
	OriginalURL string `json:"originalURL"`
}

// RecordsClient wraps the five record operations. All of them are implicitly
// scoped to the authenticated user's records; no user id is ever passed.
type RecordsClient struct {
	client *Client
}

func NewRecordsClient(client *Client) *RecordsClient {
	return &RecordsClient{client: client}
}

// GetAll returns the full ordered collection for the session.
func (r *RecordsClient) GetAll(ctx context.Context) ([]entity.Record, error) {
	const op = "api.RecordsClient.GetAll"

	var records []entity.Record
	if err := r.client.do(ctx, http.MethodGet, "/api/records", nil, &records, classifyStatus); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return records, nil
}

// GetByID returns one record.
func (r *RecordsClient) GetByID(ctx context.Context, id string) (*entity.Record, error) {
	const op = "api.RecordsClient.GetByID"

	var record entity.Record
	if err := r.client.do(ctx, http.MethodGet, "/api/records/"+id, nil, &record, classifyStatus); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &record, nil
}

// Create asks the server to validate, shorten and persist originalURL. The
// returned record carries the server-assigned id, short token and timestamps.
func (r *RecordsClient) Create(ctx context.Context, originalURL string) (*entity.Record, error) {
	const op = "api.RecordsClient.Create"

	var record entity.Record
	in := recordInput{OriginalURL: originalURL}
	if err := r.client.do(ctx, http.MethodPost, "/api/records", in, &record, classifyStatus); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &record, nil
}

// Update replaces originalURL for the given record and returns the updated record.
func (r *RecordsClient) Update(ctx context.Context, id, originalURL string) (*entity.Record, error) {
	const op = "api.RecordsClient.Update"

	var record entity.Record
	in := recordInput{OriginalURL: originalURL}
	if err := r.client.do(ctx, http.MethodPatch, "/api/records/"+id, in, &record, classifyStatus); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &record, nil
}

// Delete removes the record and returns the deleted record's identity.
func (r *RecordsClient) Delete(ctx context.Context, id string) (*entity.Record, error) {
	const op = "api.RecordsClient.Delete"

	var record entity.Record
	if err := r.client.do(ctx, http.MethodDelete, "/api/records/"+id, nil, &record, classifyStatus); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &record, nil
}
