package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawkit-dev/lawkit-cli/internal/adapters/driven/storage/memory"
	"github.com/lawkit-dev/lawkit-cli/internal/core/domain"
	"github.com/lawkit-dev/lawkit-cli/internal/core/ports/driven"
)

// fakeRemote is a scripted remote generator.
type fakeRemote struct {
	doc   *domain.GeneratedDocument
	err   error
	calls int
}

func (f *fakeRemote) GeneratePolicy(_ context.Context, _ driven.PolicyGenerationRequest) (*domain.GeneratedDocument, error) {
	f.calls++
	return f.doc, f.err
}

func newPolicyService(t *testing.T) (*PolicyService, *memory.StateStore) {
	t.Helper()
	store := memory.NewStateStore()
	svc, err := NewPolicyService(context.Background(), store, nil)
	require.NoError(t, err)
	svc.now = func() time.Time { return assemblyNow }
	return svc, store
}

func TestNewPolicyService_FreshState(t *testing.T) {
	svc, _ := newPolicyService(t)

	state := svc.State()
	assert.Equal(t, domain.StepServiceInfo, state.CurrentStep)
	assert.Empty(t, state.SelectedItems)
}

func TestNewPolicyService_RestoresPersistedState(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStateStore()

	first, err := NewPolicyService(ctx, store, nil)
	require.NoError(t, err)
	require.NoError(t, first.SetServiceInfo(ctx, domain.ServiceInfoPatch{
		ServiceName: strPtr("멋진앱"),
	}))
	require.NoError(t, first.ToggleItem(ctx, "account_signup"))

	second, err := NewPolicyService(ctx, store, nil)
	require.NoError(t, err)
	assert.Equal(t, "멋진앱", second.State().ServiceInfo.ServiceName)
	assert.True(t, second.State().IsSelected("account_signup"))
}

func TestPolicyService_ToggleItem_SeedsDefaults(t *testing.T) {
	svc, _ := newPolicyService(t)
	ctx := context.Background()

	require.NoError(t, svc.ToggleItem(ctx, "account_signup"))

	in, ok := svc.State().DetailInputs["account_signup"]
	require.True(t, ok)
	assert.NotEmpty(t, in.Purpose)
	assert.NotEmpty(t, in.RetentionPeriod)
}

func TestPolicyService_ToggleItem_KeepsDetailOnDeselect(t *testing.T) {
	svc, _ := newPolicyService(t)
	ctx := context.Background()

	require.NoError(t, svc.ToggleItem(ctx, "account_signup"))
	require.NoError(t, svc.SetDetail(ctx, "account_signup", domain.DetailInputPatch{
		Purpose: strPtr("커스텀 목적"),
	}))

	require.NoError(t, svc.ToggleItem(ctx, "account_signup"))
	assert.False(t, svc.State().IsSelected("account_signup"))

	// Re-selecting restores the earlier input instead of reseeding.
	require.NoError(t, svc.ToggleItem(ctx, "account_signup"))
	assert.Equal(t, "커스텀 목적", svc.State().DetailInputs["account_signup"].Purpose)
}

func TestPolicyService_ApplyDefaults_Idempotent(t *testing.T) {
	svc, _ := newPolicyService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetServiceInfo(ctx, domain.ServiceInfoPatch{
		ServiceType: typePtr(domain.ServiceTypeSaaS),
	}))
	require.NoError(t, svc.ApplyDefaults(ctx))
	first := append([]string(nil), svc.State().SelectedItems...)
	assert.NotEmpty(t, first)

	require.NoError(t, svc.ApplyDefaults(ctx))
	assert.Equal(t, first, svc.State().SelectedItems)
}

func TestPolicyService_SaveRecomputesCompletion(t *testing.T) {
	svc, _ := newPolicyService(t)
	ctx := context.Background()

	assert.Equal(t, 0, svc.State().CompletionRate)

	require.NoError(t, svc.SetServiceInfo(ctx, domain.ServiceInfoPatch{
		ServiceName:  strPtr("멋진앱"),
		CompanyName:  strPtr("주식회사 멋진"),
		ContactEmail: strPtr("contact@example.com"),
	}))
	assert.Equal(t, 20, svc.State().CompletionRate)

	require.NoError(t, svc.ToggleItem(ctx, "account_signup"))
	assert.Greater(t, svc.State().CompletionRate, 20)
}

func TestPolicyService_OutsourcingLifecycle(t *testing.T) {
	svc, _ := newPolicyService(t)
	ctx := context.Background()

	id, err := svc.AddOutsourcing(ctx, "account_signup", domain.OutsourcingEntry{
		CompanyName: "AWS", Task: "인프라 운영",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	in := svc.State().DetailInputs["account_signup"]
	assert.True(t, in.HasOutsourcing)
	require.Len(t, in.OutsourcingList, 1)

	require.NoError(t, svc.RemoveOutsourcing(ctx, "account_signup", id))
	assert.Empty(t, svc.State().DetailInputs["account_signup"].OutsourcingList)
}

func TestPolicyService_SetOverseasInfo_MarksTransfer(t *testing.T) {
	svc, _ := newPolicyService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetOverseasInfo(ctx, "account_signup", domain.OverseasTransfer{
		Country: "미국", Trustee: "AWS",
	}))

	in := svc.State().DetailInputs["account_signup"]
	assert.True(t, in.HasOverseasTransfer)
	require.NotNil(t, in.OverseasInfo)
	assert.Equal(t, "미국", in.OverseasInfo.Country)
}

func TestPolicyService_Generate_LocalWithoutRemote(t *testing.T) {
	svc, _ := newPolicyService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetServiceInfo(ctx, domain.ServiceInfoPatch{
		ServiceName: strPtr("멋진앱"),
	}))
	require.NoError(t, svc.ToggleItem(ctx, "account_signup"))

	doc, err := svc.Generate(ctx)
	require.NoError(t, err)
	assert.Equal(t, "멋진앱 개인정보처리방침", doc.Title)
	assert.Same(t, doc, svc.State().Document)
}

func TestPolicyService_Generate_RemoteSuccess(t *testing.T) {
	remoteDoc := &domain.GeneratedDocument{Title: "원격 생성 문서", Version: 3}
	remote := &fakeRemote{doc: remoteDoc}

	store := memory.NewStateStore()
	svc, err := NewPolicyService(context.Background(), store, remote)
	require.NoError(t, err)

	doc, err := svc.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, remote.calls)
	assert.Same(t, remoteDoc, doc)
	assert.Same(t, remoteDoc, svc.State().Document)
}

func TestPolicyService_Generate_RemoteFailureFallsBackLocally(t *testing.T) {
	remote := &fakeRemote{err: errors.New("server unreachable")}

	store := memory.NewStateStore()
	svc, err := NewPolicyService(context.Background(), store, remote)
	require.NoError(t, err)
	svc.now = func() time.Time { return assemblyNow }

	require.NoError(t, svc.SetServiceInfo(context.Background(), domain.ServiceInfoPatch{
		ServiceName: strPtr("멋진앱"),
	}))

	doc, genErr := svc.Generate(context.Background())
	require.NoError(t, genErr)
	assert.Equal(t, 1, remote.calls)
	assert.Equal(t, "멋진앱 개인정보처리방침", doc.Title)
}

func TestPolicyService_UpdateSection(t *testing.T) {
	svc, _ := newPolicyService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.UpdateSection(ctx, "purpose", "내용"), domain.ErrNoDocument)

	require.NoError(t, svc.ToggleItem(ctx, "account_signup"))
	_, err := svc.Generate(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateSection(ctx, "purpose", "수정된 목적 조항"))
	doc := svc.State().Document
	assert.Equal(t, "수정된 목적 조항", doc.Section("purpose").Content)
	assert.Contains(t, doc.Content, "수정된 목적 조항")

	// Unknown section ids are ignored.
	require.NoError(t, svc.UpdateSection(ctx, "no_such_section", "x"))
}

func TestPolicyService_Reset(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStateStore()
	svc, err := NewPolicyService(ctx, store, nil)
	require.NoError(t, err)

	require.NoError(t, svc.ToggleItem(ctx, "account_signup"))
	require.NoError(t, svc.Reset(ctx))

	assert.Empty(t, svc.State().SelectedItems)

	// The persisted copy is gone as well.
	_, err = store.LoadPolicyState(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func strPtr(s string) *string { return &s }

func typePtr(st domain.ServiceType) *domain.ServiceType { return &st }
