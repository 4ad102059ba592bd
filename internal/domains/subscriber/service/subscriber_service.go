package service

import (
	"context"
	"fmt"

	"blogsite-backend/internal/domains/subscriber"
	"blogsite-backend/pkg/metrics"
)

type subscriberService struct {
	repo subscriber.Repository
}

func NewSubscriberService(repo subscriber.Repository) subscriber.Service {
	return &subscriberService{repo: repo}
}

// Subscribe upserts the record for email: first-time emails get a fresh row,
// unsubscribed ones are reactivated, active ones come back unchanged. Email
// format is the handler's responsibility; by the time we get here the address
// is syntactically valid.
func (s *subscriberService) Subscribe(ctx context.Context, email string) (*subscriber.Subscriber, error) {
	sub, err := s.repo.Upsert(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("subscribe: %w", err)
	}

	metrics.SubscriberEventsTotal.WithLabelValues("subscribe").Inc()
	return sub, nil
}

func (s *subscriberService) Unsubscribe(ctx context.Context, email string) error {
	if err := s.repo.Unsubscribe(ctx, email); err != nil {
		return fmt.Errorf("unsubscribe: %w", err)
	}

	metrics.SubscriberEventsTotal.WithLabelValues("unsubscribe").Inc()
	return nil
}

func (s *subscriberService) ListActive(ctx context.Context) ([]subscriber.Subscriber, error) {
	subs, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active: %w", err)
	}
	return subs, nil
}
