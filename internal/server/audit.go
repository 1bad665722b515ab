package server

import (
	"context"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/returnsportal/internal/repository"
)

// AuditSink persists a batch of audit records.
type AuditSink interface {
	WriteBatch(ctx context.Context, batch []repository.AuditLogPayload) error
}

// LogSink writes audit records to the logger.
type LogSink struct {
	logger *zap.Logger
}

func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) WriteBatch(_ context.Context, batch []repository.AuditLogPayload) error {
	for _, entry := range batch {
		s.logger.Info("audit",
			zap.Time("timestamp", entry.Timestamp),
			zap.String("handler", entry.Handler),
			zap.String("action", entry.Action),
			zap.String("method", entry.Method),
			zap.String("path", entry.Path),
			zap.Int("status_code", entry.StatusCode),
			zap.String("return_id", entry.ReturnID),
			zap.String("actor", entry.Actor),
		)
	}
	return nil
}
