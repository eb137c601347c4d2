package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawkit-dev/lawkit-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestNewStore_CreatesDatabaseFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "state.db"), store.Path())
	_, err = os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestNewStore_MigrationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	// Reopening the same directory must not rerun applied migrations.
	second, err := NewStore(dir)
	require.NoError(t, err)
	assert.NoError(t, second.Close())
}

func TestStore_PolicyStateRoundtrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.LoadPolicyState(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	state := domain.NewPolicyState()
	state.ServiceInfo.ServiceName = "멋진앱"
	state.SelectedItems = []string{"account_signup", "payment_subscription"}
	state.DetailInputs["account_signup"] = domain.DetailInput{
		Purpose:         "회원 관리",
		Items:           []string{"이메일"},
		RetentionPeriod: domain.RetentionWithdrawal,
	}
	state.CurrentStep = domain.StepDetail
	state.CompletionRate = 76

	require.NoError(t, store.SavePolicyState(ctx, state))

	loaded, err := store.LoadPolicyState(ctx)
	require.NoError(t, err)
	assert.Equal(t, "멋진앱", loaded.ServiceInfo.ServiceName)
	assert.Equal(t, state.SelectedItems, loaded.SelectedItems)
	assert.Equal(t, state.DetailInputs["account_signup"], loaded.DetailInputs["account_signup"])
	assert.Equal(t, domain.StepDetail, loaded.CurrentStep)
	assert.Equal(t, 76, loaded.CompletionRate)
}

func TestStore_SaveReplacesExistingState(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	state := domain.NewPolicyState()
	state.ServiceInfo.ServiceName = "첫번째"
	require.NoError(t, store.SavePolicyState(ctx, state))

	state.ServiceInfo.ServiceName = "두번째"
	require.NoError(t, store.SavePolicyState(ctx, state))

	loaded, err := store.LoadPolicyState(ctx)
	require.NoError(t, err)
	assert.Equal(t, "두번째", loaded.ServiceInfo.ServiceName)
}

func TestStore_TermsStateRoundtrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.LoadTermsState(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	state := domain.NewTermsState()
	state.ServiceInfo.ServiceName = "멋진앱"
	state.SelectedFeatures = []string{"basic", "paid_service"}
	state.FeatureInputs["paid_service"] = domain.TermsFeatureInput{
		Enabled: true,
		Details: domain.TermsFeatureDetails{RefundPolicy: "7일 이내 환불"},
	}

	require.NoError(t, store.SaveTermsState(ctx, state))

	loaded, err := store.LoadTermsState(ctx)
	require.NoError(t, err)
	assert.Equal(t, state.SelectedFeatures, loaded.SelectedFeatures)
	assert.Equal(t, state.FeatureInputs["paid_service"], loaded.FeatureInputs["paid_service"])
}

func TestStore_StatesAreIndependent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SavePolicyState(ctx, domain.NewPolicyState()))
	require.NoError(t, store.SaveTermsState(ctx, domain.NewTermsState()))

	// Resetting one document type leaves the other intact.
	require.NoError(t, store.Reset(ctx, domain.DocTypePolicy))

	_, err := store.LoadPolicyState(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = store.LoadTermsState(ctx)
	assert.NoError(t, err)
}

func TestStore_ResetMissingStateIsNoop(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.Reset(context.Background(), domain.DocTypePolicy))
}
