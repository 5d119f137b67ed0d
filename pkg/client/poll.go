package client

import (
	"context"
	"time"

	"github.com/jwalitptl/carehub-api/internal/model"
)

const (
	DefaultPollInterval = 30 * time.Second
	// SearchDebounce is the quiet period before a typed search is sent.
	SearchDebounce = 400 * time.Millisecond
)

// PollNotifications fetches notifications now and then every interval,
// bypassing the cache each time, until ctx ends.
func (c *Client) PollNotifications(ctx context.Context, interval time.Duration, fn func([]*model.Notification, error)) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		c.cache.InvalidatePrefix(KeyNotifications)
		list, err := c.Notifications(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		fn(list, err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// PatientSearch turns keystrokes into patient queries, sending only the
// term that stays unchanged for the debounce delay. Each search restarts at
// page 1.
type PatientSearch struct {
	debouncer *Debouncer[string]
}

func (c *Client) NewPatientSearch(ctx context.Context, base model.PatientFilters, delay time.Duration, onResult func(model.PaginatedResponse[*model.Patient], error)) *PatientSearch {
	if delay <= 0 {
		delay = SearchDebounce
	}
	return &PatientSearch{
		debouncer: NewDebouncer(delay, func(term string) {
			filters := base
			filters.Search = term
			filters.Page = 1
			onResult(c.Patients(ctx, filters))
		}),
	}
}

func (s *PatientSearch) Type(term string) {
	s.debouncer.Push(term)
}

func (s *PatientSearch) Stop() {
	s.debouncer.Stop()
}
