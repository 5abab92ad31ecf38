package resettokens

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peerprep/user-service/internal/common"
)

type fakeRepo struct {
	byUser map[string]*Token

	getErr    error
	createErr error
	deleteErr error

	creates int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byUser: make(map[string]*Token)}
}

func (f *fakeRepo) Create(ctx context.Context, userID, value string) (*Token, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.creates++
	token := &Token{ID: "t-" + userID, UserID: userID, Token: value}
	f.byUser[userID] = token
	return token, nil
}

func (f *fakeRepo) GetByUserID(ctx context.Context, userID string) (*Token, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	token, ok := f.byUser[userID]
	if !ok {
		return nil, common.ErrNotFound
	}
	return token, nil
}

func (f *fakeRepo) GetByUserIDAndValue(ctx context.Context, userID, value string) (*Token, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	token, ok := f.byUser[userID]
	if !ok || token.Token != value {
		return nil, common.ErrNotFound
	}
	return token, nil
}

func (f *fakeRepo) Delete(ctx context.Context, userID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.byUser, userID)
	return nil
}

func TestIssue_CreatesWhenAbsent(t *testing.T) {
	repo := newFakeRepo()
	m := NewManager(repo)

	token, err := m.Issue(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", token.UserID)
	assert.Len(t, token.Token, 64)
	assert.Equal(t, 1, repo.creates)
}

func TestIssue_IdempotentWhileOutstanding(t *testing.T) {
	repo := newFakeRepo()
	m := NewManager(repo)

	first, err := m.Issue(context.Background(), "u-1")
	require.NoError(t, err)

	second, err := m.Issue(context.Background(), "u-1")
	require.NoError(t, err)

	assert.Equal(t, first.Token, second.Token)
	assert.Equal(t, 1, repo.creates)
}

func TestIssue_LookupFault(t *testing.T) {
	repo := newFakeRepo()
	repo.getErr = errors.New("db down")
	m := NewManager(repo)

	_, err := m.Issue(context.Background(), "u-1")
	assert.ErrorIs(t, err, common.ErrRepository)
}

func TestIssue_CreateFault(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = errors.New("db down")
	m := NewManager(repo)

	_, err := m.Issue(context.Background(), "u-1")
	assert.ErrorIs(t, err, common.ErrRepository)
}

func TestFindByUserAndValue_CollapsesAbsenceAndWrongValue(t *testing.T) {
	repo := newFakeRepo()
	m := NewManager(repo)

	// no token at all
	_, err := m.FindByUserAndValue(context.Background(), "u-1", "whatever")
	assert.ErrorIs(t, err, common.ErrNotFound)

	// token exists, wrong value
	_, err = m.Issue(context.Background(), "u-1")
	require.NoError(t, err)
	_, wrongErr := m.FindByUserAndValue(context.Background(), "u-1", "wrong")
	assert.ErrorIs(t, wrongErr, common.ErrNotFound)
}

func TestRevoke(t *testing.T) {
	repo := newFakeRepo()
	m := NewManager(repo)

	token, err := m.Issue(context.Background(), "u-1")
	require.NoError(t, err)

	require.NoError(t, m.Revoke(context.Background(), "u-1"))

	_, err = m.FindByUserAndValue(context.Background(), "u-1", token.Token)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestRevoke_Fault(t *testing.T) {
	repo := newFakeRepo()
	repo.deleteErr = errors.New("db down")
	m := NewManager(repo)

	assert.ErrorIs(t, m.Revoke(context.Background(), "u-1"), common.ErrRepository)
}
