package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
	"go.uber.org/mock/gomock"

	"kadry/internal/app/cli"
	"kadry/internal/app/telemetry"
	"kadry/internal/config/logger"
)

// mockLifecycle implements fx.Lifecycle for testing
type mockLifecycle struct {
	onAppend func(fx.Hook)
}

func (m *mockLifecycle) Append(hook fx.Hook) {
	if m.onAppend != nil {
		m.onAppend(hook)
	}
}

func Test_NewApp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCLI := cli.NewMockCLI(ctrl)
	mockReporter := telemetry.NewMockReporter(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)

	application := NewApp(mockCLI, mockReporter, mockLogger)

	assert.NotNil(t, application)
	assert.Equal(t, mockCLI, application.cli)
	assert.Equal(t, mockReporter, application.reporter)
	assert.Equal(t, mockLogger, application.log)
	assert.NotNil(t, application.done)
	assert.NotNil(t, application.exit)
}

func Test_execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCLI := cli.NewMockCLI(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)

	app := &App{
		cli: mockCLI,
		log: mockLogger,
	}

	tests := []struct {
		name     string
		before   func()
		expected int
	}{
		{
			name: "Success",
			before: func() {
				mockCLI.EXPECT().Execute().Return(0, nil)
			},
			expected: 0,
		},
		{
			name: "Failure",
			before: func() {
				mockCLI.EXPECT().Execute().Return(1, errors.New("article not found"))
				mockLogger.EXPECT().Debug().Return(nil)
			},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.before()

			assert.Equal(t, tt.expected, app.execute())
		})
	}
}

func Test_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCLI := cli.NewMockCLI(ctrl)
	mockReporter := telemetry.NewMockReporter(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)

	exitCode := -1

	app := NewApp(mockCLI, mockReporter, mockLogger)
	app.exit = func(code int) { exitCode = code }

	gomock.InOrder(
		mockCLI.EXPECT().Execute().Return(1, errors.New("feed unavailable")),
		mockReporter.EXPECT().Flush(),
	)
	mockLogger.EXPECT().Debug().Return(nil)

	app.Run()

	assert.Equal(t, 1, exitCode)

	select {
	case <-app.done:
	default:
		t.Fatal("done channel is not closed")
	}
}

func Test_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCLI := cli.NewMockCLI(ctrl)
	mockReporter := telemetry.NewMockReporter(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)

	exited := make(chan int, 1)

	app := NewApp(mockCLI, mockReporter, mockLogger)
	app.exit = func(code int) { exited <- code }

	mockCLI.EXPECT().Execute().Return(0, nil)
	mockReporter.EXPECT().Flush()

	var hook fx.Hook

	lc := &mockLifecycle{onAppend: func(h fx.Hook) { hook = h }}
	Register(lc, app)

	assert.NotNil(t, hook.OnStart)
	assert.NotNil(t, hook.OnStop)

	assert.NoError(t, hook.OnStart(context.Background()))
	assert.Equal(t, 0, <-exited)
	assert.NoError(t, hook.OnStop(context.Background()))
}

func Test_Register_StopTimeout(t *testing.T) {
	app := &App{done: make(chan struct{})}

	var hook fx.Hook

	Register(&mockLifecycle{onAppend: func(h fx.Hook) { hook = h }}, app)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, hook.OnStop(ctx), context.Canceled)
}

func Test_Module(t *testing.T) {
	assert.NotNil(t, Module)
}
