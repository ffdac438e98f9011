package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockMediaStore mocks media.Store.
type MockMediaStore struct {
	mock.Mock
}

func (m *MockMediaStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	args := m.Called(ctx, key, contentType, body)
	return args.String(0), args.Error(1)
}

func (m *MockMediaStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockMediaStore) ObjectKey(url string) (string, bool) {
	args := m.Called(url)
	return args.String(0), args.Bool(1)
}
