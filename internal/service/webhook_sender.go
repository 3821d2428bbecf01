package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"wasteCollect/internal/config"
	"wasteCollect/internal/domain"
	"wasteCollect/pkg/e"
)

// EventSource blocks up to timeout for the next event and returns
// e.ErrQueueEmpty when none arrived.
type EventSource interface {
	Dequeue(ctx context.Context, timeout time.Duration) (domain.CollectionEvent, error)
}

// WebhookSender drains collection events and POSTs each one to the configured
// webhook URL.
type WebhookSender struct {
	logger     *slog.Logger
	cfg        config.WebhookConfig
	queue      EventSource
	http       *http.Client
	maxRetries int
	backoff    time.Duration
}

func NewWebhookSender(logger *slog.Logger, cfg config.WebhookConfig, q EventSource) *WebhookSender {
	return &WebhookSender{
		logger:     logger,
		cfg:        cfg,
		queue:      q,
		http:       &http.Client{Timeout: 5 * time.Second},
		maxRetries: 3,
		backoff:    time.Second,
	}
}

func (s *WebhookSender) Run(ctx context.Context) {
	if s.cfg.Disabled {
		s.logger.Info("webhookSender disabled")
		return
	}
	s.logger.Info("webhookSender STARTED", slog.String("url", s.cfg.URL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("webhookSender STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		event, err := s.queue.Dequeue(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) || ctx.Err() != nil {
				continue
			}
			s.logger.Error("dequeue failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		s.logger.Info("sending webhook",
			slog.String("type", string(event.Type)),
			slog.String("collection_id", event.CollectionID.String()),
		)
		if err := s.Deliver(ctx, event); err != nil {
			s.logger.Error("webhook dropped", slog.String("collection_id", event.CollectionID.String()), slog.Any("error", err))
		}
	}
}

// Deliver POSTs one event, retrying with linear backoff on transport errors
// and non-2xx answers.
func (s *WebhookSender) Deliver(ctx context.Context, event domain.CollectionEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	var reason string
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("create webhook request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Event-Type", string(event.Type))

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return nil
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason = "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}

		s.logger.Warn("webhook failed",
			slog.Int("attempt", attempt),
			slog.String("url", s.cfg.URL),
			slog.String("reason", reason),
		)

		if attempt < s.maxRetries {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * s.backoff):
			}
		}
	}
	return fmt.Errorf("webhook failed after %d attempts: %s", s.maxRetries, reason)
}
