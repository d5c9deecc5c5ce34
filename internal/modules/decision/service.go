package decision

import (
	"context"
	"strings"

	"github.com/davidromera/decisiones-backend/internal/modules/auth"
)

// Service defines decision business logic: authorization against the
// caller's session and input validation ahead of the repository.
type Service interface {
	ListForCaller(ctx context.Context, sess auth.Session) ([]*Decision, error)
	CreateForCaller(ctx context.Context, sess auth.Session, req CreateDecisionRequest) (*Decision, error)
	DeleteForCaller(ctx context.Context, sess auth.Session, id string) (int64, error)
	EditTextForCaller(ctx context.Context, id, text string) (*Decision, error)
	EditOutcomeForCaller(ctx context.Context, id, outcome string, success *bool) (int64, error)
	EditSuccessForCaller(ctx context.Context, id string, success bool) (*Decision, error)
}

// CreateDecisionRequest holds the data for recording a decision. Category
// and owner are never taken from the request; they come from the session.
type CreateDecisionRequest struct {
	Text    string  `json:"text"`
	Outcome *string `json:"outcome"`
	Success *bool   `json:"success"`
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListForCaller(ctx context.Context, sess auth.Session) ([]*Decision, error) {
	if sess.Category == "" {
		return nil, ErrUnauthenticated
	}
	return s.repo.List(ctx, sess.Category)
}

func (s *service) CreateForCaller(ctx context.Context, sess auth.Session, req CreateDecisionRequest) (*Decision, error) {
	if sess.Category == "" {
		return nil, ErrUnauthenticated
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrInvalidInput
	}

	d := &Decision{
		Text:     text,
		Outcome:  req.Outcome,
		Success:  req.Success,
		Category: sess.Category,
		Owner:    sess.Username,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *service) DeleteForCaller(ctx context.Context, sess auth.Session, id string) (int64, error) {
	if sess.Category == "" {
		return 0, ErrUnauthenticated
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) EditTextForCaller(ctx context.Context, id, text string) (*Decision, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrInvalidInput
	}
	d, err := s.repo.EditText(ctx, id, text)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrNotFound
	}
	return d, nil
}

func (s *service) EditOutcomeForCaller(ctx context.Context, id, outcome string, success *bool) (int64, error) {
	if strings.TrimSpace(outcome) == "" {
		return 0, ErrInvalidInput
	}
	n, err := s.repo.EditOutcome(ctx, id, outcome, success)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrNotFound
	}
	return n, nil
}

func (s *service) EditSuccessForCaller(ctx context.Context, id string, success bool) (*Decision, error) {
	d, err := s.repo.EditSuccess(ctx, id, success)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrNotFound
	}
	return d, nil
}
