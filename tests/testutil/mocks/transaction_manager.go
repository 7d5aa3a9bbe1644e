package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a mock implementation of repository.TransactionManager
// WithTransaction executes the given function directly without a real transaction
type MockTransactionManager struct {
	mock.Mock
}

func NewMockTransactionManager(t *testing.T) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, mock.Anything)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(ctx)
}
