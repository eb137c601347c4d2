package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawkit-dev/lawkit-cli/internal/adapters/driven/export"
	"github.com/lawkit-dev/lawkit-cli/internal/adapters/driven/storage/memory"
	"github.com/lawkit-dev/lawkit-cli/internal/core/services"
)

// setupCLITest wires real services over an in-memory store and
// returns a cleanup that restores the previous wiring.
func setupCLITest(t *testing.T) func() {
	t.Helper()

	store := memory.NewStateStore()
	policy, err := services.NewPolicyService(context.Background(), store, nil)
	require.NoError(t, err)
	terms, err := services.NewTermsService(context.Background(), store)
	require.NoError(t, err)
	exp := services.NewExportService(policy, terms, export.NewRenderer(), nil, nil)

	oldPolicy, oldTerms, oldExport := policyService, termsService, exportService
	policyService = policy
	termsService = terms
	exportService = exp

	// Flag state persists between executions in the same process.
	for _, sub := range policyCmd.Commands() {
		resetFlags(sub)
	}
	for _, sub := range termsCmd.Commands() {
		resetFlags(sub)
	}
	policyItemsAdvanced = false
	policySelectAll = false
	policyDeselectAll = false
	entryRemoveID = ""
	outsourcingCompany = ""
	thirdPartyRecipient = ""
	thirdPartyItems = ""
	overseasCountry = ""
	overseasClear = false
	policyGenerateShow = false
	policyExportFormat = "text"
	policyExportDir = "."
	featureEnabled = false
	featureDisabled = false
	termsGenerateShow = false
	termsExportFormat = "text"
	termsExportDir = "."

	return func() {
		policyService = oldPolicy
		termsService = oldTerms
		exportService = oldExport
	}
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		f.Changed = false
	})
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestPolicyCmd_Use(t *testing.T) {
	assert.Equal(t, "policy", policyCmd.Use)
}

func TestPolicyStatusCmd_EmptyState(t *testing.T) {
	cleanup := setupCLITest(t)
	defer cleanup()

	out, err := runCommand(t, "policy", "status")

	assert.NoError(t, err)
	assert.Contains(t, out, "Completion: 0%")
	assert.Contains(t, out, "No processing items selected")
}

func TestPolicySetCmd_UpdatesServiceInfo(t *testing.T) {
	cleanup := setupCLITest(t)
	defer cleanup()

	out, err := runCommand(t, "policy", "set",
		"--service-name", "멋진앱",
		"--company", "주식회사 멋진",
		"--type", "saas",
		"--email", "contact@example.com")

	assert.NoError(t, err)
	assert.Contains(t, out, "completion 20%")
	assert.Equal(t, "멋진앱", policyService.State().ServiceInfo.ServiceName)
}

func TestPolicySetCmd_RejectsInvalidType(t *testing.T) {
	cleanup := setupCLITest(t)
	defer cleanup()

	_, err := runCommand(t, "policy", "set", "--type", "bank")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid service type")
}

func TestPolicySetCmd_RequiresAtLeastOneFlag(t *testing.T) {
	cleanup := setupCLITest(t)
	defer cleanup()

	_, err := runCommand(t, "policy", "set")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no fields given")
}

func TestPolicySelectCmd(t *testing.T) {
	cleanup := setupCLITest(t)
	defer cleanup()

	out, err := runCommand(t, "policy", "select", "account_signup", "support_inquiry")

	assert.NoError(t, err)
	assert.Contains(t, out, "2 item(s) selected")
	assert.True(t, policyService.State().IsSelected("account_signup"))

	// Selecting again is a no-op, not a toggle off.
	_, err = runCommand(t, "policy", "select", "account_signup")
	assert.NoError(t, err)
	assert.True(t, policyService.State().IsSelected("account_signup"))
}

func TestPolicySelectCmd_UnknownItem(t *testing.T) {
	cleanup := setupCLITest(t)
	defer cleanup()

	_, err := runCommand(t, "policy", "select", "no_such_item")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown item")
}

func TestPolicyDeselectCmd(t *testing.T) {
	cleanup := setupCLITest(t)
	defer cleanup()

	_, err := runCommand(t, "policy", "select", "account_signup")
	require.NoError(t, err)

	out, err := runCommand(t, "policy", "deselect", "account_signup")

	assert.NoError(t, err)
	assert.Contains(t, out, "0 item(s) selected")
	assert.False(t, policyService.State().IsSelected("account_signup"))
}

func TestPolicySelectCmd_All(t *testing.T) {
	cleanup := setupCLITest(t)
	defer cleanup()

	out, err := runCommand(t, "policy", "select", "--all")

	assert.NoError(t, err)
	assert.Contains(t, out, "11 item(s) selected")
	assert.True(t, policyService.State().IsSelected("account_signup"))
	assert.True(t, policyService.State().IsSelected("analytics_cookie"))
	// Advanced items stay out of scope in basic mode.
	assert.False(t, policyService.State().IsSelected("location_gps"))

	out, err = runCommand(t, "policy", "deselect", "--all")
	assert.NoError(t, err)
	assert.Contains(t, out, "0 item(s) selected")
}

func TestPolicySelectCmd_RequiresArgsOrAll(t *testing.T) {
	cleanup := setupCLITest(t)
	defer cleanup()

	_, err := runCommand(t, "policy", "select")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "--all")
}

func TestPolicyItemsCmd_MarksSelection(t *testing.T) {
	cleanup := setupCLITest(t)
	defer cleanup()

	_, err := runCommand(t, "policy", "select", "account_signup")
	require.NoError(t, err)

	out, err := runCommand(t, "policy", "items")

	assert.NoError(t, err)
	assert.Contains(t, out, "[*] account_signup")
	assert.NotContains(t, out, "Advanced:")

	out, err = runCommand(t, "policy", "items", "--advanced")
	assert.NoError(t, err)
	assert.Contains(t, out, "Advanced:")
}

func TestPolicyDetailCmd_SetsAndShows(t *testing.T) {
	cleanup := setupCLITest(t)
	defer cleanup()

	out, err := runCommand(t, "policy", "detail", "account_signup",
		"--purpose", "회원 식별",
		"--items", "이메일,비밀번호",
		"--retention", "withdrawal")

	assert.NoError(t, err)
	assert.Contains(t, out, "Purpose:   회원 식별")
	assert.Contains(t, out, "이메일, 비밀번호")
	assert.Contains(t, out, "회원탈퇴 시까지")
}

func TestPolicyOutsourcingCmd_AddAndRemove(t *testing.T) {
	cleanup := setupCLITest(t)
	defer cleanup()

	out, err := runCommand(t, "policy", "outsourcing", "account_signup",
		"--company", "AWS", "--task", "인프라 운영")
	require.NoError(t, err)
	assert.Contains(t, out, "Added outsourcing entry")

	detail := policyService.State().DetailInputs["account_signup"]
	require.Len(t, detail.OutsourcingList, 1)
	entryID := detail.OutsourcingList[0].ID

	out, err = runCommand(t, "policy", "outsourcing", "account_signup", "--remove", entryID)
	assert.NoError(t, err)
	assert.Contains(t, out, "Removed outsourcing entry")
	assert.Empty(t, policyService.State().DetailInputs["account_signup"].OutsourcingList)
}

func TestPolicyThirdPartyCmd_AddWithItems(t *testing.T) {
	cleanup := setupCLITest(t)
	defer cleanup()

	out, err := runCommand(t, "policy", "third-party", "payment_onetime",
		"--recipient", "PG사", "--purpose", "결제 처리",
		"--items", "카드번호, 유효기간", "--retention", "5년")
	require.NoError(t, err)
	assert.Contains(t, out, "Added third-party entry")

	detail := policyService.State().DetailInputs["payment_onetime"]
	require.Len(t, detail.ThirdPartyList, 1)
	entry := detail.ThirdPartyList[0]
	assert.Equal(t, "PG사", entry.Recipient)
	assert.Equal(t, "카드번호, 유효기간", entry.Items)
	assert.Equal(t, "5년", entry.RetentionPeriod)
	assert.True(t, detail.HasThirdParty)

	out, err = runCommand(t, "policy", "third-party", "payment_onetime", "--remove", entry.ID)
	assert.NoError(t, err)
	assert.Contains(t, out, "Removed third-party entry")
	assert.Empty(t, policyService.State().DetailInputs["payment_onetime"].ThirdPartyList)
}

func TestPolicyOverseasCmd_RequiresCountry(t *testing.T) {
	cleanup := setupCLITest(t)
	defer cleanup()

	_, err := runCommand(t, "policy", "overseas", "account_signup")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "--country is required")
}

func TestPolicyGenerateAndShow(t *testing.T) {
	cleanup := setupCLITest(t)
	defer cleanup()

	_, err := runCommand(t, "policy", "set", "--service-name", "멋진앱")
	require.NoError(t, err)
	_, err = runCommand(t, "policy", "select", "account_signup")
	require.NoError(t, err)

	out, err := runCommand(t, "policy", "generate")
	assert.NoError(t, err)
	assert.Contains(t, out, `Generated "멋진앱 개인정보처리방침"`)

	out, err = runCommand(t, "policy", "show")
	assert.NoError(t, err)
	assert.Contains(t, out, "제1조 (개인정보의 처리 목적)")

	out, err = runCommand(t, "policy", "show", "purpose")
	assert.NoError(t, err)
	assert.Contains(t, out, "제1조 (개인정보의 처리 목적)")

	_, err = runCommand(t, "policy", "show", "no_such_section")
	assert.Error(t, err)
}

func TestPolicyShowCmd_WithoutDocument(t *testing.T) {
	cleanup := setupCLITest(t)
	defer cleanup()

	_, err := runCommand(t, "policy", "show")

	assert.Error(t, err)
}

func TestPolicyEditCmd(t *testing.T) {
	cleanup := setupCLITest(t)
	defer cleanup()

	_, err := runCommand(t, "policy", "select", "account_signup")
	require.NoError(t, err)
	_, err = runCommand(t, "policy", "generate")
	require.NoError(t, err)

	out, err := runCommand(t, "policy", "edit", "purpose", "--content", "<p>수정된 조항</p>")
	assert.NoError(t, err)
	assert.Contains(t, out, "Section purpose updated")

	doc := policyService.State().Document
	assert.Equal(t, "<p>수정된 조항</p>", doc.Section("purpose").Content)
}

func TestPolicyExportCmd_Text(t *testing.T) {
	cleanup := setupCLITest(t)
	defer cleanup()

	_, err := runCommand(t, "policy", "set", "--service-name", "멋진앱")
	require.NoError(t, err)
	_, err = runCommand(t, "policy", "select", "account_signup")
	require.NoError(t, err)
	_, err = runCommand(t, "policy", "generate")
	require.NoError(t, err)

	dir := t.TempDir()
	out, err := runCommand(t, "policy", "export", "--format", "text", "--dir", dir)

	assert.NoError(t, err)
	path := filepath.Join(dir, "멋진앱_개인정보처리방침.txt")
	assert.Contains(t, out, path)
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}

func TestPolicyExportCmd_InvalidFormat(t *testing.T) {
	cleanup := setupCLITest(t)
	defer cleanup()

	_, err := runCommand(t, "policy", "export", "--format", "docx")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestPolicyResetCmd(t *testing.T) {
	cleanup := setupCLITest(t)
	defer cleanup()

	_, err := runCommand(t, "policy", "select", "account_signup")
	require.NoError(t, err)

	out, err := runCommand(t, "policy", "reset")

	assert.NoError(t, err)
	assert.Contains(t, out, "Privacy wizard state reset")
	assert.Empty(t, policyService.State().SelectedItems)
}

func TestPolicyCmd_WithoutService(t *testing.T) {
	oldPolicy := policyService
	policyService = nil
	defer func() { policyService = oldPolicy }()

	_, err := runCommand(t, "policy", "status")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "policy service not configured")
}
