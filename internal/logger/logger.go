package logger

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"
)

type ctxKey string

const (
	LoggerKey      ctxKey = "logger"
	OperationIDKey ctxKey = "operation_id"
)

var globalLogger = zerolog.Nop()

// InitWithWriter inicializa o logger global escrevendo em out
func InitWithWriter(out io.Writer, level string, jsonFormat bool, service string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	output := out
	if !jsonFormat {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	globalLogger = zerolog.New(output).
		Level(lvl).
		With().
		Timestamp().
		Str("service", service).
		Logger()
}

// Global retorna o logger global
func Global() *zerolog.Logger {
	return &globalLogger
}

// Get retorna logger do contexto ou global
func Get(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return &globalLogger
	}
	if l, ok := ctx.Value(LoggerKey).(*zerolog.Logger); ok {
		return l
	}
	return &globalLogger
}

// WithOperationID adiciona um ID de operação ao contexto para rastreamento
func WithOperationID(ctx context.Context, operationID string) context.Context {
	existingLogger := Get(ctx)
	l := existingLogger.With().Str("operation_id", operationID).Logger()
	ctx = context.WithValue(ctx, OperationIDKey, operationID)
	ctx = context.WithValue(ctx, LoggerKey, &l)
	return ctx
}

// GetOperationID extrai operation_id do contexto
func GetOperationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(OperationIDKey).(string); ok {
		return id
	}
	return ""
}
