package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lawkit-dev/lawkit-cli/internal/adapters/driven/export"
	"github.com/lawkit-dev/lawkit-cli/internal/catalog"
	"github.com/lawkit-dev/lawkit-cli/internal/core/domain"
	"github.com/lawkit-dev/lawkit-cli/internal/core/ports/driving"
)

var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Build a privacy policy (개인정보처리방침)",
}

var policyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the wizard state and completion rate",
	Args:  cobra.NoArgs,
	RunE:  runPolicyStatus,
}

var policySetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set service information fields",
	Args:  cobra.NoArgs,
	RunE:  runPolicySet,
}

var policyItemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List the processing item catalog",
	Args:  cobra.NoArgs,
	RunE:  runPolicyItems,
}

var policySelectCmd = &cobra.Command{
	Use:   "select [item-id]...",
	Short: "Select processing items",
	Args:  cobra.ArbitraryArgs,
	RunE:  runPolicySelect,
}

var policyDeselectCmd = &cobra.Command{
	Use:   "deselect [item-id]...",
	Short: "Deselect processing items (entered details are kept)",
	Args:  cobra.ArbitraryArgs,
	RunE:  runPolicyDeselect,
}

var policyDefaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Select the recommended items for the service type",
	Args:  cobra.NoArgs,
	RunE:  runPolicyDefaults,
}

var policyDetailCmd = &cobra.Command{
	Use:   "detail <item-id>",
	Short: "Show or edit the collection details of an item",
	Args:  cobra.ExactArgs(1),
	RunE:  runPolicyDetail,
}

var policyOutsourcingCmd = &cobra.Command{
	Use:   "outsourcing <item-id>",
	Short: "Add or remove outsourcing entries for an item",
	Args:  cobra.ExactArgs(1),
	RunE:  runPolicyOutsourcing,
}

var policyThirdPartyCmd = &cobra.Command{
	Use:   "third-party <item-id>",
	Short: "Add or remove third-party provision entries for an item",
	Args:  cobra.ExactArgs(1),
	RunE:  runPolicyThirdParty,
}

var policyOverseasCmd = &cobra.Command{
	Use:   "overseas <item-id>",
	Short: "Set the overseas transfer record for an item",
	Args:  cobra.ExactArgs(1),
	RunE:  runPolicyOverseas,
}

var policyGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the privacy policy",
	Args:  cobra.NoArgs,
	RunE:  runPolicyGenerate,
}

var policyShowCmd = &cobra.Command{
	Use:   "show [section-id]",
	Short: "Print the generated document, or one section",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPolicyShow,
}

var policyEditCmd = &cobra.Command{
	Use:   "edit <section-id>",
	Short: "Replace the content of a generated section",
	Args:  cobra.ExactArgs(1),
	RunE:  runPolicyEdit,
}

var policyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the generated policy",
	Args:  cobra.NoArgs,
	RunE:  runPolicyExport,
}

var policyResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard all privacy wizard state",
	Args:  cobra.NoArgs,
	RunE:  runPolicyReset,
}

// policy set flags
var (
	policySetServiceName    string
	policySetCompanyName    string
	policySetServiceType    string
	policySetEmail          string
	policySetPhone          string
	policySetOfficerName    string
	policySetOfficerContact string
)

// policy items flags
var policyItemsAdvanced bool

// policy select / deselect flags
var (
	policySelectAll   bool
	policyDeselectAll bool
)

// policy detail flags
var (
	detailPurpose         string
	detailItems           []string
	detailCustomItems     string
	detailRetention       string
	detailCustomRetention string
)

// policy outsourcing / third-party flags
var (
	entryRemoveID       string
	outsourcingCompany  string
	outsourcingTask     string
	outsourcingCountry  string
	thirdPartyRecipient string
	thirdPartyPurpose   string
	thirdPartyItems     string
	thirdPartyRetention string
)

// policy overseas flags
var (
	overseasCountry string
	overseasDate    string
	overseasMethod  string
	overseasTrustee string
	overseasContact string
	overseasClear   bool
)

// policy generate flags
var policyGenerateShow bool

// policy edit flags
var policyEditContent string

// policy export flags
var (
	policyExportFormat string
	policyExportDir    string
)

func init() {
	policySetCmd.Flags().StringVar(&policySetServiceName, "service-name", "", "service name")
	policySetCmd.Flags().StringVar(&policySetCompanyName, "company", "", "company name")
	policySetCmd.Flags().StringVar(&policySetServiceType, "type", "", "service type (saas, commerce, community, app, offline)")
	policySetCmd.Flags().StringVar(&policySetEmail, "email", "", "contact email")
	policySetCmd.Flags().StringVar(&policySetPhone, "phone", "", "contact phone")
	policySetCmd.Flags().StringVar(&policySetOfficerName, "officer-name", "", "privacy officer name")
	policySetCmd.Flags().StringVar(&policySetOfficerContact, "officer-contact", "", "privacy officer contact")

	policyItemsCmd.Flags().BoolVar(&policyItemsAdvanced, "advanced", false, "include advanced items")

	policySelectCmd.Flags().BoolVar(&policySelectAll, "all", false, "select every visible item")
	policyDeselectCmd.Flags().BoolVar(&policyDeselectAll, "all", false, "deselect every selected item")

	policyDetailCmd.Flags().StringVar(&detailPurpose, "purpose", "", "collection purpose")
	policyDetailCmd.Flags().StringSliceVar(&detailItems, "items", nil, "collected items (comma-separated)")
	policyDetailCmd.Flags().StringVar(&detailCustomItems, "custom-items", "", "free-text collected items")
	policyDetailCmd.Flags().StringVar(&detailRetention, "retention", "", "retention period (withdrawal, 1year, 3years, 5years, custom)")
	policyDetailCmd.Flags().StringVar(&detailCustomRetention, "custom-retention", "", "free-text retention period")

	policyOutsourcingCmd.Flags().StringVar(&entryRemoveID, "remove", "", "entry id to remove")
	policyOutsourcingCmd.Flags().StringVar(&outsourcingCompany, "company", "", "outsourcing company")
	policyOutsourcingCmd.Flags().StringVar(&outsourcingTask, "task", "", "outsourced task")
	policyOutsourcingCmd.Flags().StringVar(&outsourcingCountry, "country", "", "country (overseas outsourcing)")

	policyThirdPartyCmd.Flags().StringVar(&entryRemoveID, "remove", "", "entry id to remove")
	policyThirdPartyCmd.Flags().StringVar(&thirdPartyRecipient, "recipient", "", "receiving party")
	policyThirdPartyCmd.Flags().StringVar(&thirdPartyPurpose, "purpose", "", "purpose of provision")
	policyThirdPartyCmd.Flags().StringVar(&thirdPartyItems, "items", "", "provided items")
	policyThirdPartyCmd.Flags().StringVar(&thirdPartyRetention, "retention", "", "recipient retention period")

	policyOverseasCmd.Flags().StringVar(&overseasCountry, "country", "", "destination country")
	policyOverseasCmd.Flags().StringVar(&overseasDate, "date", "", "transfer date and method of notice")
	policyOverseasCmd.Flags().StringVar(&overseasMethod, "method", "", "transfer method")
	policyOverseasCmd.Flags().StringVar(&overseasTrustee, "trustee", "", "receiving entity")
	policyOverseasCmd.Flags().StringVar(&overseasContact, "contact", "", "receiving entity contact")
	policyOverseasCmd.Flags().BoolVar(&overseasClear, "clear", false, "remove the overseas transfer record")

	policyGenerateCmd.Flags().BoolVar(&policyGenerateShow, "show", false, "print the document after generating")

	policyEditCmd.Flags().StringVar(&policyEditContent, "content", "", "replacement HTML content")
	_ = policyEditCmd.MarkFlagRequired("content")

	policyExportCmd.Flags().StringVar(&policyExportFormat, "format", "text", "export format (text, html, pdf, clipboard)")
	policyExportCmd.Flags().StringVar(&policyExportDir, "dir", ".", "output directory")

	policyCmd.AddCommand(policyStatusCmd)
	policyCmd.AddCommand(policySetCmd)
	policyCmd.AddCommand(policyItemsCmd)
	policyCmd.AddCommand(policySelectCmd)
	policyCmd.AddCommand(policyDeselectCmd)
	policyCmd.AddCommand(policyDefaultsCmd)
	policyCmd.AddCommand(policyDetailCmd)
	policyCmd.AddCommand(policyOutsourcingCmd)
	policyCmd.AddCommand(policyThirdPartyCmd)
	policyCmd.AddCommand(policyOverseasCmd)
	policyCmd.AddCommand(policyGenerateCmd)
	policyCmd.AddCommand(policyShowCmd)
	policyCmd.AddCommand(policyEditCmd)
	policyCmd.AddCommand(policyExportCmd)
	policyCmd.AddCommand(policyResetCmd)
	rootCmd.AddCommand(policyCmd)
}

func runPolicyStatus(cmd *cobra.Command, args []string) error {
	if policyService == nil {
		return errors.New("policy service not configured")
	}

	state := policyService.State()
	info := state.ServiceInfo

	cmd.Printf("Step:       %s\n", state.CurrentStep)
	cmd.Printf("Completion: %d%%\n", state.CompletionRate)
	cmd.Println()
	cmd.Printf("Service:    %s\n", orUnset(info.ServiceName))
	cmd.Printf("Company:    %s\n", orUnset(info.CompanyName))
	cmd.Printf("Type:       %s\n", orUnset(string(info.ServiceType)))
	cmd.Printf("Email:      %s\n", orUnset(info.ContactEmail))
	if info.ContactPhone != "" {
		cmd.Printf("Phone:      %s\n", info.ContactPhone)
	}
	if info.PrivacyOfficerName != "" {
		cmd.Printf("Officer:    %s (%s)\n", info.PrivacyOfficerName, orUnset(info.PrivacyOfficerContact))
	}
	cmd.Println()

	if len(state.SelectedItems) == 0 {
		cmd.Println("No processing items selected")
		return nil
	}
	cmd.Printf("Selected items (%d):\n", len(state.SelectedItems))
	for _, id := range state.SelectedItems {
		cmd.Printf("  %s  %s\n", id, catalog.ItemName(id))
	}
	if state.Document != nil {
		cmd.Println()
		cmd.Printf("Document generated at %s\n", state.Document.GeneratedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func runPolicySet(cmd *cobra.Command, args []string) error {
	if policyService == nil {
		return errors.New("policy service not configured")
	}

	patch := domain.ServiceInfoPatch{}
	changed := false
	if cmd.Flags().Changed("service-name") {
		patch.ServiceName = &policySetServiceName
		changed = true
	}
	if cmd.Flags().Changed("company") {
		patch.CompanyName = &policySetCompanyName
		changed = true
	}
	if cmd.Flags().Changed("type") {
		st := domain.ServiceType(policySetServiceType)
		if !st.IsValid() {
			return errors.New("invalid service type: " + policySetServiceType)
		}
		patch.ServiceType = &st
		changed = true
	}
	if cmd.Flags().Changed("email") {
		patch.ContactEmail = &policySetEmail
		changed = true
	}
	if cmd.Flags().Changed("phone") {
		patch.ContactPhone = &policySetPhone
		changed = true
	}
	if cmd.Flags().Changed("officer-name") {
		patch.PrivacyOfficerName = &policySetOfficerName
		changed = true
	}
	if cmd.Flags().Changed("officer-contact") {
		patch.PrivacyOfficerContact = &policySetOfficerContact
		changed = true
	}
	if !changed {
		return errors.New("no fields given, see --help for available flags")
	}

	if err := policyService.SetServiceInfo(context.Background(), patch); err != nil {
		return err
	}
	cmd.Printf("Service information updated (completion %d%%)\n", policyService.State().CompletionRate)
	return nil
}

func runPolicyItems(cmd *cobra.Command, args []string) error {
	if policyService == nil {
		return errors.New("policy service not configured")
	}

	state := policyService.State()
	printGroup := func(title string, items []catalog.ProcessingItem) {
		cmd.Printf("%s:\n", title)
		for _, item := range items {
			mark := " "
			if state.IsSelected(item.ID) {
				mark = "*"
			}
			cmd.Printf("  [%s] %-22s %s\n", mark, item.ID, item.Name)
		}
	}

	printGroup("Basic", catalog.ItemsByCategory(catalog.CategoryBasic))
	if policyItemsAdvanced || state.IsAdvancedMode {
		cmd.Println()
		printGroup("Advanced", catalog.ItemsByCategory(catalog.CategoryAdvanced))
	}
	return nil
}

func runPolicySelect(cmd *cobra.Command, args []string) error {
	if policyService == nil {
		return errors.New("policy service not configured")
	}

	ids := args
	if policySelectAll {
		for _, item := range visibleItems(policyService.State()) {
			ids = append(ids, item.ID)
		}
	}
	if len(ids) == 0 {
		return errors.New("item ids or --all required")
	}

	ctx := context.Background()
	for _, id := range ids {
		if _, ok := catalog.Item(id); !ok {
			return errors.New("unknown item: " + id)
		}
		if policyService.State().IsSelected(id) {
			continue
		}
		if err := policyService.ToggleItem(ctx, id); err != nil {
			return err
		}
	}
	cmd.Printf("%d item(s) selected (completion %d%%)\n",
		len(policyService.State().SelectedItems), policyService.State().CompletionRate)
	return nil
}

// visibleItems returns the catalog items shown in the current mode.
func visibleItems(state *domain.PolicyState) []catalog.ProcessingItem {
	items := catalog.ItemsByCategory(catalog.CategoryBasic)
	if state.IsAdvancedMode {
		items = append(items, catalog.ItemsByCategory(catalog.CategoryAdvanced)...)
	}
	return items
}

func runPolicyDeselect(cmd *cobra.Command, args []string) error {
	if policyService == nil {
		return errors.New("policy service not configured")
	}

	ids := args
	if policyDeselectAll {
		ids = append([]string(nil), policyService.State().SelectedItems...)
	}
	if len(ids) == 0 {
		return errors.New("item ids or --all required")
	}

	ctx := context.Background()
	for _, id := range ids {
		if !policyService.State().IsSelected(id) {
			continue
		}
		if err := policyService.ToggleItem(ctx, id); err != nil {
			return err
		}
	}
	cmd.Printf("%d item(s) selected (completion %d%%)\n",
		len(policyService.State().SelectedItems), policyService.State().CompletionRate)
	return nil
}

func runPolicyDefaults(cmd *cobra.Command, args []string) error {
	if policyService == nil {
		return errors.New("policy service not configured")
	}

	if err := policyService.ApplyDefaults(context.Background()); err != nil {
		return err
	}
	state := policyService.State()
	cmd.Printf("Recommended items for %q selected:\n", state.ServiceInfo.ServiceType)
	for _, id := range state.SelectedItems {
		cmd.Printf("  %s  %s\n", id, catalog.ItemName(id))
	}
	return nil
}

func runPolicyDetail(cmd *cobra.Command, args []string) error {
	if policyService == nil {
		return errors.New("policy service not configured")
	}

	itemID := args[0]
	if _, ok := catalog.Item(itemID); !ok {
		return errors.New("unknown item: " + itemID)
	}

	patch := domain.DetailInputPatch{}
	changed := false
	if cmd.Flags().Changed("purpose") {
		patch.Purpose = &detailPurpose
		changed = true
	}
	if cmd.Flags().Changed("items") {
		patch.Items = &detailItems
		changed = true
	}
	if cmd.Flags().Changed("custom-items") {
		patch.CustomItems = &detailCustomItems
		changed = true
	}
	if cmd.Flags().Changed("retention") {
		r := domain.RetentionPeriod(detailRetention)
		patch.RetentionPeriod = &r
		changed = true
	}
	if cmd.Flags().Changed("custom-retention") {
		patch.CustomRetention = &detailCustomRetention
		changed = true
	}

	if changed {
		if err := policyService.SetDetail(context.Background(), itemID, patch); err != nil {
			return err
		}
	}

	detail, ok := policyService.State().DetailInputs[itemID]
	if !ok {
		cmd.Printf("No details entered for %s\n", itemID)
		return nil
	}
	cmd.Printf("%s (%s)\n", catalog.ItemName(itemID), itemID)
	cmd.Printf("  Purpose:   %s\n", orUnset(detail.Purpose))
	if len(detail.Items) > 0 {
		cmd.Printf("  Items:     %s\n", strings.Join(detail.Items, ", "))
	} else {
		cmd.Printf("  Items:     %s\n", orUnset(detail.CustomItems))
	}
	cmd.Printf("  Retention: %s\n", catalog.RetentionLabel(detail.RetentionPeriod, detail.CustomRetention))
	if detail.HasOutsourcing {
		for _, e := range detail.OutsourcingList {
			cmd.Printf("  Outsourcing: %s  %s / %s\n", e.ID, e.CompanyName, e.Task)
		}
	}
	if detail.HasThirdParty {
		for _, e := range detail.ThirdPartyList {
			cmd.Printf("  Third party: %s  %s / %s\n", e.ID, e.Recipient, e.Purpose)
		}
	}
	if detail.HasOverseasTransfer && detail.OverseasInfo != nil {
		cmd.Printf("  Overseas:  %s / %s\n", detail.OverseasInfo.Country, detail.OverseasInfo.Trustee)
	}
	return nil
}

func runPolicyOutsourcing(cmd *cobra.Command, args []string) error {
	if policyService == nil {
		return errors.New("policy service not configured")
	}

	itemID := args[0]
	ctx := context.Background()
	if entryRemoveID != "" {
		if err := policyService.RemoveOutsourcing(ctx, itemID, entryRemoveID); err != nil {
			return err
		}
		cmd.Printf("Removed outsourcing entry %s\n", entryRemoveID)
		return nil
	}
	if outsourcingCompany == "" {
		return errors.New("either --company or --remove is required")
	}

	id, err := policyService.AddOutsourcing(ctx, itemID, domain.OutsourcingEntry{
		CompanyName: outsourcingCompany,
		Task:        outsourcingTask,
		Country:     outsourcingCountry,
	})
	if err != nil {
		return err
	}
	cmd.Printf("Added outsourcing entry %s\n", id)
	return nil
}

func runPolicyThirdParty(cmd *cobra.Command, args []string) error {
	if policyService == nil {
		return errors.New("policy service not configured")
	}

	itemID := args[0]
	ctx := context.Background()
	if entryRemoveID != "" {
		if err := policyService.RemoveThirdParty(ctx, itemID, entryRemoveID); err != nil {
			return err
		}
		cmd.Printf("Removed third-party entry %s\n", entryRemoveID)
		return nil
	}
	if thirdPartyRecipient == "" {
		return errors.New("either --recipient or --remove is required")
	}

	id, err := policyService.AddThirdParty(ctx, itemID, domain.ThirdPartyEntry{
		Recipient:       thirdPartyRecipient,
		Purpose:         thirdPartyPurpose,
		Items:           thirdPartyItems,
		RetentionPeriod: thirdPartyRetention,
	})
	if err != nil {
		return err
	}
	cmd.Printf("Added third-party entry %s\n", id)
	return nil
}

func runPolicyOverseas(cmd *cobra.Command, args []string) error {
	if policyService == nil {
		return errors.New("policy service not configured")
	}

	itemID := args[0]
	ctx := context.Background()
	if overseasClear {
		enabled := false
		patch := domain.DetailInputPatch{HasOverseasTransfer: &enabled}
		if err := policyService.SetDetail(ctx, itemID, patch); err != nil {
			return err
		}
		cmd.Println("Overseas transfer record removed")
		return nil
	}
	if overseasCountry == "" {
		return errors.New("--country is required")
	}

	err := policyService.SetOverseasInfo(ctx, itemID, domain.OverseasTransfer{
		Country:      overseasCountry,
		TransferDate: overseasDate,
		Method:       overseasMethod,
		Trustee:      overseasTrustee,
		Contact:      overseasContact,
	})
	if err != nil {
		return err
	}
	cmd.Println("Overseas transfer record set")
	return nil
}

func runPolicyGenerate(cmd *cobra.Command, args []string) error {
	if policyService == nil {
		return errors.New("policy service not configured")
	}

	doc, err := policyService.Generate(context.Background())
	if err != nil {
		return err
	}
	cmd.Printf("Generated %q (%d sections, completion %d%%)\n",
		doc.Title, len(doc.Sections), policyService.State().CompletionRate)
	if policyGenerateShow {
		cmd.Println()
		printDocument(cmd, doc)
	}
	return nil
}

func runPolicyShow(cmd *cobra.Command, args []string) error {
	if policyService == nil {
		return errors.New("policy service not configured")
	}

	doc := policyService.State().Document
	if doc == nil {
		return domain.ErrNoDocument
	}
	if len(args) == 1 {
		section := doc.Section(args[0])
		if section == nil {
			return errors.New("unknown section: " + args[0])
		}
		if section.Title != "" {
			cmd.Println(section.Title)
			cmd.Println()
		}
		cmd.Println(section.Content)
		return nil
	}
	printDocument(cmd, doc)
	return nil
}

func runPolicyEdit(cmd *cobra.Command, args []string) error {
	if policyService == nil {
		return errors.New("policy service not configured")
	}

	doc := policyService.State().Document
	if doc == nil {
		return domain.ErrNoDocument
	}
	if doc.Section(args[0]) == nil {
		return errors.New("unknown section: " + args[0])
	}
	if err := policyService.UpdateSection(context.Background(), args[0], policyEditContent); err != nil {
		return err
	}
	cmd.Printf("Section %s updated\n", args[0])
	return nil
}

func runPolicyExport(cmd *cobra.Command, args []string) error {
	if exportService == nil {
		return errors.New("export service not configured")
	}

	format := driving.ExportFormat(policyExportFormat)
	if !format.IsValid() {
		return errors.New("invalid format: " + policyExportFormat)
	}
	path, err := exportService.ExportPolicy(context.Background(), format, policyExportDir)
	if err != nil {
		return err
	}
	if path == "" {
		cmd.Println("Copied to clipboard")
		return nil
	}
	cmd.Printf("Exported to %s\n", path)
	return nil
}

func runPolicyReset(cmd *cobra.Command, args []string) error {
	if policyService == nil {
		return errors.New("policy service not configured")
	}

	if err := policyService.Reset(context.Background()); err != nil {
		return err
	}
	cmd.Println("Privacy wizard state reset")
	return nil
}

// printDocument writes the plain-text rendition of a document.
func printDocument(cmd *cobra.Command, doc *domain.GeneratedDocument) {
	cmd.Println(doc.Title)
	for _, s := range doc.Sections {
		cmd.Println()
		if s.Title != "" {
			cmd.Println(s.Title)
		}
		cmd.Println(export.StripTags(s.Content))
	}
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
