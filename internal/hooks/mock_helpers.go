package hooks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockLintHelper is a mock implementation of LintHelper for testing.
type MockLintHelper struct {
	mock.Mock
}

// Diagnostics is a mock implementation of LintHelper.Diagnostics.
func (m *MockLintHelper) Diagnostics(ctx context.Context, dir string, filePath string) []string {
	args := m.Called(ctx, dir, filePath)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}
