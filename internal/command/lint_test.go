package command

import (
	"context"
	"fmt"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewLintRunner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := NewMockRunner(ctrl)
	got := NewLintRunner(mockRunner)

	require.NotNil(t, got)
}

func TestLintRunner_ESLint(t *testing.T) {
	tests := []struct {
		name        string
		filePath    string
		setupMock   func(*MockRunner)
		want        string
		wantErr     bool
		errContains string
	}{
		{
			name:     "clean file returns no diagnostics",
			filePath: "src/app.ts",
			setupMock: func(m *MockRunner) {
				m.EXPECT().
					RunInDir(gomock.Any(), "/project", "npx", "eslint", "src/app.ts").
					Return("", "", nil)
			},
			want: "",
		},
		{
			name:     "non-zero exit returns stdout diagnostics",
			filePath: "src/app.ts",
			setupMock: func(m *MockRunner) {
				m.EXPECT().
					RunInDir(gomock.Any(), "/project", "npx", "eslint", "src/app.ts").
					Return("src/app.ts\n  3:7  error  'x' is assigned a value but never used", "", &exec.ExitError{})
			},
			want: "src/app.ts\n  3:7  error  'x' is assigned a value but never used",
		},
		{
			name:     "non-zero exit falls back to stderr",
			filePath: "src/app.ts",
			setupMock: func(m *MockRunner) {
				m.EXPECT().
					RunInDir(gomock.Any(), "/project", "npx", "eslint", "src/app.ts").
					Return("", "Oops! Something went wrong!", &exec.ExitError{})
			},
			want: "Oops! Something went wrong!",
		},
		{
			name:     "non-zero exit without output is an error",
			filePath: "src/app.ts",
			setupMock: func(m *MockRunner) {
				m.EXPECT().
					RunInDir(gomock.Any(), "/project", "npx", "eslint", "src/app.ts").
					Return("", "", &exec.ExitError{})
			},
			wantErr:     true,
			errContains: "produced no output",
		},
		{
			name:     "tool that cannot start is an error",
			filePath: "src/app.ts",
			setupMock: func(m *MockRunner) {
				m.EXPECT().
					RunInDir(gomock.Any(), "/project", "npx", "eslint", "src/app.ts").
					Return("", "", fmt.Errorf("exec: \"npx\": %w", exec.ErrNotFound))
			},
			wantErr:     true,
			errContains: "failed to run eslint",
		},
		{
			name:        "empty file path is rejected",
			filePath:    "",
			setupMock:   func(m *MockRunner) {},
			wantErr:     true,
			errContains: "file path cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRunner := NewMockRunner(ctrl)
			tt.setupMock(mockRunner)

			got, err := NewLintRunner(mockRunner).ESLint(context.Background(), "/project", tt.filePath)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLintRunner_TypeCheck(t *testing.T) {
	tests := []struct {
		name        string
		setupMock   func(*MockRunner)
		want        string
		wantErr     bool
		errContains string
	}{
		{
			name: "clean project returns no diagnostics",
			setupMock: func(m *MockRunner) {
				m.EXPECT().
					RunInDir(gomock.Any(), "/project", "npx", "tsc", "--noEmit", "--skipLibCheck").
					Return("", "", nil)
			},
			want: "",
		},
		{
			name: "prefers stderr diagnostics",
			setupMock: func(m *MockRunner) {
				m.EXPECT().
					RunInDir(gomock.Any(), "/project", "npx", "tsc", "--noEmit", "--skipLibCheck").
					Return("stdout text", "error TS2322", &exec.ExitError{})
			},
			want: "error TS2322",
		},
		{
			name: "falls back to stdout diagnostics",
			setupMock: func(m *MockRunner) {
				m.EXPECT().
					RunInDir(gomock.Any(), "/project", "npx", "tsc", "--noEmit", "--skipLibCheck").
					Return("src/a.ts(1,7): error TS2322", "", &exec.ExitError{})
			},
			want: "src/a.ts(1,7): error TS2322",
		},
		{
			name: "runner failure is an error",
			setupMock: func(m *MockRunner) {
				m.EXPECT().
					RunInDir(gomock.Any(), "/project", "npx", "tsc", "--noEmit", "--skipLibCheck").
					Return("", "", fmt.Errorf("fork/exec: permission denied"))
			},
			wantErr:     true,
			errContains: "failed to run tsc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRunner := NewMockRunner(ctrl)
			tt.setupMock(mockRunner)

			got, err := NewLintRunner(mockRunner).TypeCheck(context.Background(), "/project")

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLintRunner_ExpiredContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mockRunner := NewMockRunner(ctrl)
	mockRunner.EXPECT().
		RunInDir(gomock.Any(), "/project", "npx", "tsc", "--noEmit", "--skipLibCheck").
		Return("partial", "", &exec.ExitError{})

	got, err := NewLintRunner(mockRunner).TypeCheck(ctx, "/project")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, got)
}
