package common_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/greenhouse-go/internal/application/common"
)

type pingQuery struct{ Value string }

type pingHandler struct{ calls int }

func (h *pingHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	h.calls++
	q := request.(*pingQuery)
	if q.Value == "" {
		return nil, errors.New("empty ping")
	}
	return "pong:" + q.Value, nil
}

type recordingLogger struct {
	messages []string
}

func (l *recordingLogger) Log(level, message string, metadata map[string]interface{}) {
	l.messages = append(l.messages, level+" "+message)
}

func TestMediator_SendRoutesByType(t *testing.T) {
	// Arrange
	m := common.NewMediator()
	h := &pingHandler{}
	require.NoError(t, common.RegisterHandler[*pingQuery](m, h))

	// Act
	resp, err := m.Send(context.Background(), &pingQuery{Value: "a"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "pong:a", resp)
	assert.Equal(t, 1, h.calls)
}

func TestMediator_RejectsDuplicateAndUnknown(t *testing.T) {
	m := common.NewMediator()
	require.NoError(t, common.RegisterHandler[*pingQuery](m, &pingHandler{}))

	assert.Error(t, common.RegisterHandler[*pingQuery](m, &pingHandler{}))

	_, err := m.Send(context.Background(), "not registered")
	assert.Error(t, err)
	_, err = m.Send(context.Background(), nil)
	assert.Error(t, err)
}

func TestMediator_MiddlewareOrder(t *testing.T) {
	// Arrange
	m := common.NewMediator()
	require.NoError(t, common.RegisterHandler[*pingQuery](m, &pingHandler{}))
	var trace []string
	tag := func(name string) common.Middleware {
		return func(ctx context.Context, r common.Request, next common.HandlerFunc) (common.Response, error) {
			trace = append(trace, name+">")
			resp, err := next(ctx, r)
			trace = append(trace, "<"+name)
			return resp, err
		}
	}
	m.Use(tag("outer"))
	m.Use(tag("inner"))

	// Act
	_, err := m.Send(context.Background(), &pingQuery{Value: "x"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"outer>", "inner>", "<inner", "<outer"}, trace)
}

func TestLoggingMiddleware_UsesContextLogger(t *testing.T) {
	// Arrange
	m := common.NewMediator()
	require.NoError(t, common.RegisterHandler[*pingQuery](m, &pingHandler{}))
	m.Use(common.LoggingMiddleware())
	logger := &recordingLogger{}
	ctx := common.WithLogger(context.Background(), logger)

	// Act
	_, okErr := m.Send(ctx, &pingQuery{Value: "x"})
	_, failErr := m.Send(ctx, &pingQuery{})

	// Assert
	require.NoError(t, okErr)
	require.Error(t, failErr)
	assert.Equal(t, []string{"DEBUG request handled", "ERROR request failed"}, logger.messages)
}

func TestLoggerFromContext_FallsBackToNoOp(t *testing.T) {
	logger := common.LoggerFromContext(context.Background())

	require.NotNil(t, logger)
	assert.NotPanics(t, func() { logger.Log(common.LevelInfo, "ignored", nil) })
}
