package decision

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/davidromera/decisiones-backend/internal/modules/auth"
)

var (
	adminSession  = auth.Session{Username: "Robert_Fripp", Category: "admin"}
	normalSession = auth.Session{Username: "Robert_Wyatt", Category: "normal"}
	noSession     = auth.Session{}
)

// failingRepo simulates an unreachable backend.
type failingRepo struct{}

func (failingRepo) List(ctx context.Context, category string) ([]*Decision, error) {
	return nil, storeErr("list", context.DeadlineExceeded)
}
func (failingRepo) Create(ctx context.Context, d *Decision) error {
	return storeErr("create", context.DeadlineExceeded)
}
func (failingRepo) Delete(ctx context.Context, id string) (int64, error) {
	return 0, storeErr("delete", context.DeadlineExceeded)
}
func (failingRepo) EditText(ctx context.Context, id, text string) (*Decision, error) {
	return nil, storeErr("edit text", context.DeadlineExceeded)
}
func (failingRepo) EditOutcome(ctx context.Context, id, outcome string, success *bool) (int64, error) {
	return 0, storeErr("edit outcome", context.DeadlineExceeded)
}
func (failingRepo) EditSuccess(ctx context.Context, id string, success bool) (*Decision, error) {
	return nil, storeErr("edit success", context.DeadlineExceeded)
}

func TestService_ListRequiresCategory(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	_, err := svc.ListForCaller(context.Background(), noSession)
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestService_ListScopedToSessionCategory(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.CreateForCaller(ctx, adminSession, CreateDecisionRequest{Text: "admin thing"})
	require.NoError(t, err)
	_, err = svc.CreateForCaller(ctx, normalSession, CreateDecisionRequest{Text: "normal thing"})
	require.NoError(t, err)

	decisions, err := svc.ListForCaller(ctx, adminSession)
	require.NoError(t, err)
	require.Len(t, decisions, 1)
	require.Equal(t, "admin thing", decisions[0].Text)
	require.Equal(t, "admin", decisions[0].Category)
}

func TestService_CreateTrimsText(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	d, err := svc.CreateForCaller(context.Background(), normalSession, CreateDecisionRequest{Text: "  buy milk  "})
	require.NoError(t, err)
	require.Equal(t, "buy milk", d.Text)
	require.NotEqual(t, uuid.Nil, d.ID)
}

func TestService_CreateRejectsEmptyText(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	for _, text := range []string{"", "   "} {
		_, err := svc.CreateForCaller(ctx, normalSession, CreateDecisionRequest{Text: text})
		require.ErrorIs(t, err, ErrInvalidInput)
	}

	// nothing was persisted
	decisions, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Empty(t, decisions)
}

func TestService_CreateTakesCategoryAndOwnerFromSession(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	d, err := svc.CreateForCaller(context.Background(), normalSession, CreateDecisionRequest{Text: "mine"})
	require.NoError(t, err)
	require.Equal(t, "normal", d.Category)
	require.Equal(t, "Robert_Wyatt", d.Owner)
}

func TestService_CreateRequiresCategory(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	_, err := svc.CreateForCaller(context.Background(), noSession, CreateDecisionRequest{Text: "orphan"})
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestService_DeleteRequiresCategory(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	_, err := svc.DeleteForCaller(context.Background(), noSession, uuid.NewString())
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestService_DeleteMissingReturnsZero(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	n, err := svc.DeleteForCaller(context.Background(), normalSession, uuid.NewString())
	require.NoError(t, err)
	require.EqualValues(t, 0, n)
}

func TestService_EditTextValidation(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	_, err := svc.EditTextForCaller(ctx, uuid.NewString(), "   ")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.EditTextForCaller(ctx, uuid.NewString(), "valid text")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_EditTextTrims(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	d, err := svc.CreateForCaller(ctx, normalSession, CreateDecisionRequest{Text: "before"})
	require.NoError(t, err)

	updated, err := svc.EditTextForCaller(ctx, d.ID.String(), "  after  ")
	require.NoError(t, err)
	require.Equal(t, "after", updated.Text)
}

func TestService_EditOutcomeValidation(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	_, err := svc.EditOutcomeForCaller(ctx, uuid.NewString(), "", nil)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.EditOutcomeForCaller(ctx, uuid.NewString(), "fine", nil)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_EditOutcomeReturnsCount(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	d, err := svc.CreateForCaller(ctx, normalSession, CreateDecisionRequest{Text: "decided"})
	require.NoError(t, err)

	n, err := svc.EditOutcomeForCaller(ctx, d.ID.String(), "went fine", boolPtr(true))
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestService_EditSuccessNotFound(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	_, err := svc.EditSuccessForCaller(context.Background(), uuid.NewString(), true)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_EditSuccessRepeatIsNoOpSuccess(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	d, err := svc.CreateForCaller(ctx, normalSession, CreateDecisionRequest{Text: "flag", Success: boolPtr(false)})
	require.NoError(t, err)

	first, err := svc.EditSuccessForCaller(ctx, d.ID.String(), true)
	require.NoError(t, err)
	require.True(t, *first.Success)

	// setting the same value again still succeeds: a matched record counts
	// as modified, so a repeat is a no-op success rather than not-found
	second, err := svc.EditSuccessForCaller(ctx, d.ID.String(), true)
	require.NoError(t, err)
	require.True(t, *second.Success)
}

func TestService_StoreFailurePropagates(t *testing.T) {
	svc := NewService(failingRepo{})
	ctx := context.Background()

	_, err := svc.ListForCaller(ctx, normalSession)
	require.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = svc.CreateForCaller(ctx, normalSession, CreateDecisionRequest{Text: "doomed"})
	require.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = svc.EditSuccessForCaller(ctx, uuid.NewString(), true)
	require.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestService_RoundTrip(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	d, err := svc.CreateForCaller(ctx, normalSession, CreateDecisionRequest{Text: "first draft"})
	require.NoError(t, err)

	_, err = svc.EditTextForCaller(ctx, d.ID.String(), "final text")
	require.NoError(t, err)

	_, err = svc.EditSuccessForCaller(ctx, d.ID.String(), true)
	require.NoError(t, err)

	decisions, err := svc.ListForCaller(ctx, normalSession)
	require.NoError(t, err)
	require.Len(t, decisions, 1)
	require.Equal(t, "final text", decisions[0].Text)
	require.NotNil(t, decisions[0].Success)
	require.True(t, *decisions[0].Success)
}
