// internal/app/report_service.go
package app

import (
	"context"
	"fmt"

	"minibot/internal/domain/report"
	domainTelegram "minibot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// DefaultReportText is what the placeholder collector reports.
const DefaultReportText = "Your collected information."

// ReportRunner runs the standard "collect and send" flow.
type ReportRunner interface {
	RunStandard(ctx context.Context) error
}

// ReportService sends collected information to the configured recipient.
type ReportService struct {
	telegramClient domainTelegram.Client
	collect        report.Collector
	userID         string
	logger         logrus.FieldLogger
}

func NewReportService(
	tc domainTelegram.Client,
	collect report.Collector,
	userID string, // Default recipient, the configured USER_ID
	logger logrus.FieldLogger,
) *ReportService {
	if collect == nil {
		collect = PlaceholderCollector
	}
	return &ReportService{
		telegramClient: tc,
		collect:        collect,
		userID:         userID,
		logger:         logger,
	}
}

// PlaceholderCollector is used when the embedding program supplies no collector.
func PlaceholderCollector(context.Context) (string, error) {
	return DefaultReportText, nil
}

// FieldsCollector adapts a function returning a key-value table into a
// Collector. The table is rendered with aligned columns below header.
func FieldsCollector(header string, collect func(ctx context.Context) (report.Fields, error)) report.Collector {
	return func(ctx context.Context) (string, error) {
		fields, err := collect(ctx)
		if err != nil {
			return "", err
		}
		body, err := fields.Render()
		if err != nil {
			return "", err
		}
		if header != "" {
			body = header + "\n" + body
		}
		return body, nil
	}
}

// RunStandard collects the report text and sends it to the default recipient.
func (s *ReportService) RunStandard(ctx context.Context) error {
	text, err := s.collect(ctx)
	if err != nil {
		return fmt.Errorf("failed to collect information: %w", err)
	}

	if err := s.telegramClient.SendMessage(ctx, text, domainTelegram.WithRecipient(s.userID)); err != nil {
		return fmt.Errorf("failed to send collected information: %w", err)
	}
	s.logger.WithField("chat_id", s.userID).Debug("Collected information sent")
	return nil
}

// SendTest sends text to the default recipient.
func (s *ReportService) SendTest(ctx context.Context, text string) error {
	if err := s.telegramClient.SendMessage(ctx, text); err != nil {
		return fmt.Errorf("failed to send test message: %w", err)
	}
	return nil
}

