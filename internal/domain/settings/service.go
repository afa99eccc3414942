package settings

import "context"

type Service interface {
	Current(ctx context.Context) Settings
}

type service struct {
	snapshot Settings
}

func NewService(snapshot Settings) Service {
	return &service{snapshot: snapshot}
}

func (s *service) Current(_ context.Context) Settings {
	return s.snapshot
}
