package registration

import (
	"context"
	"log/slog"

	"github.com/trijoshh/attendance-backend-go/internal/domain/registration"
)

// LogSender writes verification codes to the application log instead of
// delivering mail. Useful for local setups without an outbound mailer.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, email, code string) error {
	s.logger.Info("verification code issued", "email", email, "code", code)
	return nil
}

var _ registration.CodeSender = (*LogSender)(nil)
