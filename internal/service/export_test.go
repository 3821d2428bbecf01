package service

import "time"

// SetBackoff shortens the retry delay for tests.
func (s *WebhookSender) SetBackoff(d time.Duration) { s.backoff = d }
