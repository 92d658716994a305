// Package usecase provides testify mocks for the use case interfaces.
package usecase

import (
	"context"

	"github.com/avydrenko/shortdash/internal/entity"
	"github.com/stretchr/testify/mock"
)

// MockRecordsClient is a mock of the records client used by the dashboard.
type MockRecordsClient struct {
	mock.Mock
}

func NewMockRecordsClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRecordsClient {
	m := &MockRecordsClient{}
	m.Mock.Test(t)
	return m
}

func (m *MockRecordsClient) GetAll(ctx context.Context) ([]entity.Record, error) {
	args := m.Called(ctx)

	var records []entity.Record
	if args.Get(0) != nil {
		records = args.Get(0).([]entity.Record)
	}
	return records, args.Error(1)
}

func (m *MockRecordsClient) GetByID(ctx context.Context, id string) (*entity.Record, error) {
	args := m.Called(ctx, id)

	var record *entity.Record
	if args.Get(0) != nil {
		record = args.Get(0).(*entity.Record)
	}
	return record, args.Error(1)
}

func (m *MockRecordsClient) Create(ctx context.Context, originalURL string) (*entity.Record, error) {
	args := m.Called(ctx, originalURL)

	var record *entity.Record
	if args.Get(0) != nil {
		record = args.Get(0).(*entity.Record)
	}
	return record, args.Error(1)
}

func (m *MockRecordsClient) Update(ctx context.Context, id, originalURL string) (*entity.Record, error) {
	args := m.Called(ctx, id, originalURL)

	var record *entity.Record
	if args.Get(0) != nil {
		record = args.Get(0).(*entity.Record)
	}
	return record, args.Error(1)
}

func (m *MockRecordsClient) Delete(ctx context.Context, id string) (*entity.Record, error) {
	args := m.Called(ctx, id)

	var record *entity.Record
	if args.Get(0) != nil {
		record = args.Get(0).(*entity.Record)
	}
	return record, args.Error(1)
}
