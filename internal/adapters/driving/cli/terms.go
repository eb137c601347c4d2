package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/lawkit-dev/lawkit-cli/internal/adapters/driven/export"
	"github.com/lawkit-dev/lawkit-cli/internal/catalog"
	"github.com/lawkit-dev/lawkit-cli/internal/core/domain"
	"github.com/lawkit-dev/lawkit-cli/internal/core/ports/driving"
)

var termsCmd = &cobra.Command{
	Use:   "terms",
	Short: "Build terms of service (서비스 이용약관)",
}

var termsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the wizard state and completion rate",
	Args:  cobra.NoArgs,
	RunE:  runTermsStatus,
}

var termsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set service information fields",
	Args:  cobra.NoArgs,
	RunE:  runTermsSet,
}

var termsFeaturesCmd = &cobra.Command{
	Use:   "features",
	Short: "List the feature catalog",
	Args:  cobra.NoArgs,
	RunE:  runTermsFeatures,
}

var termsSelectCmd = &cobra.Command{
	Use:   "select <feature-id>...",
	Short: "Select features",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTermsSelect,
}

var termsDeselectCmd = &cobra.Command{
	Use:   "deselect <feature-id>...",
	Short: "Deselect features (the basic feature cannot be deselected)",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTermsDeselect,
}

var termsDefaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Select the recommended features for the service type",
	Args:  cobra.NoArgs,
	RunE:  runTermsDefaults,
}

var termsFeatureCmd = &cobra.Command{
	Use:   "feature <feature-id>",
	Short: "Show or edit the details of a selected feature",
	Args:  cobra.ExactArgs(1),
	RunE:  runTermsFeature,
}

var termsGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the terms of service",
	Args:  cobra.NoArgs,
	RunE:  runTermsGenerate,
}

var termsShowCmd = &cobra.Command{
	Use:   "show [chapter-id]",
	Short: "Print the generated document, or one chapter",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTermsShow,
}

var termsEditCmd = &cobra.Command{
	Use:   "edit <chapter-id> <article-id>",
	Short: "Replace the content of a generated article",
	Args:  cobra.ExactArgs(2),
	RunE:  runTermsEdit,
}

var termsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the generated terms",
	Args:  cobra.NoArgs,
	RunE:  runTermsExport,
}

var termsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard all terms wizard state",
	Args:  cobra.NoArgs,
	RunE:  runTermsReset,
}

// terms set flags
var (
	termsSetServiceName    string
	termsSetCompanyName    string
	termsSetServiceType    string
	termsSetAddress        string
	termsSetRegistration   string
	termsSetEmail          string
	termsSetPhone          string
	termsSetRepresentative string
)

// terms feature flags
var (
	featureEnabled         bool
	featureDisabled        bool
	featurePaymentMethods  []string
	featureRefundPolicy    string
	featureWithdrawal      string
	featureAutoRenewal     bool
	featureCancellation    string
	featurePriceChange     string
	featureShippingPeriod  string
	featureReturnPeriod    string
	featureExchangePolicy  string
	featureContentLicense  string
	featureReportPolicy    string
	featureBanCriteria     string
	featureAIDisclaimer    string
	featureDataUsage       bool
	featureLocationPurpose string
	featureLocationRetain  string
	featureGoverningLaw    string
	featureArbitration     string
	featureParentalConsent bool
	featureAgeLimit        string
)

// terms generate flags
var termsGenerateShow bool

// terms edit flags
var termsEditContent string

// terms export flags
var (
	termsExportFormat string
	termsExportDir    string
)

func init() {
	termsSetCmd.Flags().StringVar(&termsSetServiceName, "service-name", "", "service name")
	termsSetCmd.Flags().StringVar(&termsSetCompanyName, "company", "", "company name")
	termsSetCmd.Flags().StringVar(&termsSetServiceType, "type", "", "service type (saas, commerce, community, app, content, platform)")
	termsSetCmd.Flags().StringVar(&termsSetAddress, "address", "", "company address")
	termsSetCmd.Flags().StringVar(&termsSetRegistration, "registration", "", "business registration number")
	termsSetCmd.Flags().StringVar(&termsSetEmail, "email", "", "contact email")
	termsSetCmd.Flags().StringVar(&termsSetPhone, "phone", "", "contact phone")
	termsSetCmd.Flags().StringVar(&termsSetRepresentative, "representative", "", "representative name")

	termsFeatureCmd.Flags().BoolVar(&featureEnabled, "enable", false, "enable the feature")
	termsFeatureCmd.Flags().BoolVar(&featureDisabled, "disable", false, "disable the feature")
	termsFeatureCmd.Flags().StringSliceVar(&featurePaymentMethods, "payment-methods", nil, "accepted payment methods")
	termsFeatureCmd.Flags().StringVar(&featureRefundPolicy, "refund-policy", "", "refund policy")
	termsFeatureCmd.Flags().StringVar(&featureWithdrawal, "withdrawal-period", "", "subscription withdrawal period")
	termsFeatureCmd.Flags().BoolVar(&featureAutoRenewal, "auto-renewal", false, "subscription renews automatically")
	termsFeatureCmd.Flags().StringVar(&featureCancellation, "cancellation-notice", "", "cancellation notice period")
	termsFeatureCmd.Flags().StringVar(&featurePriceChange, "price-change-notice", "", "price change notice period")
	termsFeatureCmd.Flags().StringVar(&featureShippingPeriod, "shipping-period", "", "shipping period")
	termsFeatureCmd.Flags().StringVar(&featureReturnPeriod, "return-period", "", "return period")
	termsFeatureCmd.Flags().StringVar(&featureExchangePolicy, "exchange-policy", "", "exchange policy")
	termsFeatureCmd.Flags().StringVar(&featureContentLicense, "content-license", "", "user content license terms")
	termsFeatureCmd.Flags().StringVar(&featureReportPolicy, "report-policy", "", "content report handling policy")
	termsFeatureCmd.Flags().StringVar(&featureBanCriteria, "ban-criteria", "", "account suspension criteria")
	termsFeatureCmd.Flags().StringVar(&featureAIDisclaimer, "ai-disclaimer", "", "AI output disclaimer")
	termsFeatureCmd.Flags().BoolVar(&featureDataUsage, "data-usage", false, "user data used for model training")
	termsFeatureCmd.Flags().StringVar(&featureLocationPurpose, "location-purpose", "", "location data purpose")
	termsFeatureCmd.Flags().StringVar(&featureLocationRetain, "location-retention", "", "location data retention")
	termsFeatureCmd.Flags().StringVar(&featureGoverningLaw, "governing-law", "", "governing law")
	termsFeatureCmd.Flags().StringVar(&featureArbitration, "arbitration", "", "arbitration body")
	termsFeatureCmd.Flags().BoolVar(&featureParentalConsent, "parental-consent", false, "require parental consent for minors")
	termsFeatureCmd.Flags().StringVar(&featureAgeLimit, "age-limit", "", "minimum age")

	termsGenerateCmd.Flags().BoolVar(&termsGenerateShow, "show", false, "print the document after generating")

	termsEditCmd.Flags().StringVar(&termsEditContent, "content", "", "replacement content")
	_ = termsEditCmd.MarkFlagRequired("content")

	termsExportCmd.Flags().StringVar(&termsExportFormat, "format", "text", "export format (text, html, pdf, clipboard)")
	termsExportCmd.Flags().StringVar(&termsExportDir, "dir", ".", "output directory")

	termsCmd.AddCommand(termsStatusCmd)
	termsCmd.AddCommand(termsSetCmd)
	termsCmd.AddCommand(termsFeaturesCmd)
	termsCmd.AddCommand(termsSelectCmd)
	termsCmd.AddCommand(termsDeselectCmd)
	termsCmd.AddCommand(termsDefaultsCmd)
	termsCmd.AddCommand(termsFeatureCmd)
	termsCmd.AddCommand(termsGenerateCmd)
	termsCmd.AddCommand(termsShowCmd)
	termsCmd.AddCommand(termsEditCmd)
	termsCmd.AddCommand(termsExportCmd)
	termsCmd.AddCommand(termsResetCmd)
	rootCmd.AddCommand(termsCmd)
}

func runTermsStatus(cmd *cobra.Command, args []string) error {
	if termsService == nil {
		return errors.New("terms service not configured")
	}

	state := termsService.State()
	info := state.ServiceInfo

	cmd.Printf("Step:       %s\n", state.CurrentStep)
	cmd.Printf("Completion: %d%%\n", state.CompletionRate)
	cmd.Println()
	cmd.Printf("Service:    %s\n", orUnset(info.ServiceName))
	cmd.Printf("Company:    %s\n", orUnset(info.CompanyName))
	cmd.Printf("Type:       %s\n", orUnset(string(info.ServiceType)))
	cmd.Printf("Email:      %s\n", orUnset(info.ContactEmail))
	if info.Representative != "" {
		cmd.Printf("Represent.: %s\n", info.Representative)
	}
	if info.CompanyAddress != "" {
		cmd.Printf("Address:    %s\n", info.CompanyAddress)
	}
	cmd.Println()

	cmd.Printf("Selected features (%d):\n", len(state.SelectedFeatures))
	for _, id := range state.SelectedFeatures {
		cmd.Printf("  %s  %s\n", id, catalog.FeatureName(id))
	}
	if state.Document != nil {
		cmd.Println()
		cmd.Printf("Document generated at %s\n", state.Document.GeneratedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func runTermsSet(cmd *cobra.Command, args []string) error {
	if termsService == nil {
		return errors.New("terms service not configured")
	}

	patch := domain.TermsServiceInfoPatch{}
	changed := false
	if cmd.Flags().Changed("service-name") {
		patch.ServiceName = &termsSetServiceName
		changed = true
	}
	if cmd.Flags().Changed("company") {
		patch.CompanyName = &termsSetCompanyName
		changed = true
	}
	if cmd.Flags().Changed("type") {
		st := domain.TermsServiceType(termsSetServiceType)
		if !st.IsValid() {
			return errors.New("invalid service type: " + termsSetServiceType)
		}
		patch.ServiceType = &st
		changed = true
	}
	if cmd.Flags().Changed("address") {
		patch.CompanyAddress = &termsSetAddress
		changed = true
	}
	if cmd.Flags().Changed("registration") {
		patch.BusinessRegistration = &termsSetRegistration
		changed = true
	}
	if cmd.Flags().Changed("email") {
		patch.ContactEmail = &termsSetEmail
		changed = true
	}
	if cmd.Flags().Changed("phone") {
		patch.ContactPhone = &termsSetPhone
		changed = true
	}
	if cmd.Flags().Changed("representative") {
		patch.Representative = &termsSetRepresentative
		changed = true
	}
	if !changed {
		return errors.New("no fields given, see --help for available flags")
	}

	if err := termsService.SetServiceInfo(context.Background(), patch); err != nil {
		return err
	}
	cmd.Printf("Service information updated (completion %d%%)\n", termsService.State().CompletionRate)
	return nil
}

func runTermsFeatures(cmd *cobra.Command, args []string) error {
	if termsService == nil {
		return errors.New("terms service not configured")
	}

	state := termsService.State()
	printGroup := func(title string, features []catalog.TermsFeature) {
		cmd.Printf("%s:\n", title)
		for _, f := range features {
			mark := " "
			if state.IsSelected(f.ID) {
				mark = "*"
			}
			cmd.Printf("  [%s] %-16s %s\n", mark, f.ID, f.Name)
		}
	}

	printGroup("Basic", catalog.FeaturesByCategory(catalog.CategoryBasic))
	cmd.Println()
	printGroup("Advanced", catalog.FeaturesByCategory(catalog.CategoryAdvanced))
	return nil
}

func runTermsSelect(cmd *cobra.Command, args []string) error {
	if termsService == nil {
		return errors.New("terms service not configured")
	}

	ctx := context.Background()
	for _, id := range args {
		if _, ok := catalog.Feature(id); !ok {
			return errors.New("unknown feature: " + id)
		}
		if termsService.State().IsSelected(id) {
			continue
		}
		if err := termsService.ToggleFeature(ctx, id); err != nil {
			return err
		}
	}
	cmd.Printf("%d feature(s) selected (completion %d%%)\n",
		len(termsService.State().SelectedFeatures), termsService.State().CompletionRate)
	return nil
}

func runTermsDeselect(cmd *cobra.Command, args []string) error {
	if termsService == nil {
		return errors.New("terms service not configured")
	}

	ctx := context.Background()
	for _, id := range args {
		if !termsService.State().IsSelected(id) {
			continue
		}
		if err := termsService.ToggleFeature(ctx, id); err != nil {
			return err
		}
	}
	cmd.Printf("%d feature(s) selected (completion %d%%)\n",
		len(termsService.State().SelectedFeatures), termsService.State().CompletionRate)
	return nil
}

func runTermsDefaults(cmd *cobra.Command, args []string) error {
	if termsService == nil {
		return errors.New("terms service not configured")
	}

	if err := termsService.ApplyDefaults(context.Background()); err != nil {
		return err
	}
	state := termsService.State()
	cmd.Printf("Recommended features for %q selected:\n", state.ServiceInfo.ServiceType)
	for _, id := range state.SelectedFeatures {
		cmd.Printf("  %s  %s\n", id, catalog.FeatureName(id))
	}
	return nil
}

func runTermsFeature(cmd *cobra.Command, args []string) error {
	if termsService == nil {
		return errors.New("terms service not configured")
	}

	featureID := args[0]
	if _, ok := catalog.Feature(featureID); !ok {
		return errors.New("unknown feature: " + featureID)
	}
	if featureEnabled && featureDisabled {
		return errors.New("--enable and --disable are mutually exclusive")
	}

	var enabled *bool
	if featureEnabled || featureDisabled {
		v := featureEnabled
		enabled = &v
	}
	details, detailsChanged := collectFeatureDetails(cmd, featureID)
	if enabled != nil || detailsChanged {
		if err := termsService.SetFeatureInput(context.Background(), featureID, enabled, details); err != nil {
			return err
		}
	}

	input, ok := termsService.State().FeatureInputs[featureID]
	if !ok {
		cmd.Printf("No details entered for %s\n", featureID)
		return nil
	}
	cmd.Printf("%s (%s)\n", catalog.FeatureName(featureID), featureID)
	cmd.Printf("  Enabled: %t\n", input.Enabled)
	return nil
}

// collectFeatureDetails merges the current stored details with the
// changed flags. Returns nil when no detail flag was given.
func collectFeatureDetails(cmd *cobra.Command, featureID string) (*domain.TermsFeatureDetails, bool) {
	details := domain.TermsFeatureDetails{}
	if termsService != nil {
		if input, ok := termsService.State().FeatureInputs[featureID]; ok {
			details = input.Details
		}
	}

	changed := false
	set := func(flag string, apply func()) {
		if cmd.Flags().Changed(flag) {
			apply()
			changed = true
		}
	}
	set("payment-methods", func() { details.PaymentMethods = featurePaymentMethods })
	set("refund-policy", func() { details.RefundPolicy = featureRefundPolicy })
	set("withdrawal-period", func() { details.WithdrawalPeriod = featureWithdrawal })
	set("auto-renewal", func() { details.AutoRenewal = featureAutoRenewal })
	set("cancellation-notice", func() { details.CancellationNotice = featureCancellation })
	set("price-change-notice", func() { details.PriceChangeNotice = featurePriceChange })
	set("shipping-period", func() { details.ShippingPeriod = featureShippingPeriod })
	set("return-period", func() { details.ReturnPeriod = featureReturnPeriod })
	set("exchange-policy", func() { details.ExchangePolicy = featureExchangePolicy })
	set("content-license", func() { details.ContentLicense = featureContentLicense })
	set("report-policy", func() { details.ReportPolicy = featureReportPolicy })
	set("ban-criteria", func() { details.BanCriteria = featureBanCriteria })
	set("ai-disclaimer", func() { details.AIDisclaimer = featureAIDisclaimer })
	set("data-usage", func() { details.DataUsage = featureDataUsage })
	set("location-purpose", func() { details.LocationPurpose = featureLocationPurpose })
	set("location-retention", func() { details.LocationRetention = featureLocationRetain })
	set("governing-law", func() { details.GoverningLaw = featureGoverningLaw })
	set("arbitration", func() { details.Arbitration = featureArbitration })
	set("parental-consent", func() { details.ParentalConsent = featureParentalConsent })
	set("age-limit", func() { details.AgeLimit = featureAgeLimit })

	if !changed {
		return nil, false
	}
	return &details, true
}

func runTermsGenerate(cmd *cobra.Command, args []string) error {
	if termsService == nil {
		return errors.New("terms service not configured")
	}

	doc, err := termsService.Generate(context.Background())
	if err != nil {
		return err
	}
	articles := 0
	for _, ch := range doc.Chapters {
		articles += len(ch.Articles)
	}
	cmd.Printf("Generated %q (%d chapters, %d articles, completion %d%%)\n",
		doc.Title, len(doc.Chapters), articles, termsService.State().CompletionRate)
	if termsGenerateShow {
		cmd.Println()
		printTerms(cmd, doc)
	}
	return nil
}

func runTermsShow(cmd *cobra.Command, args []string) error {
	if termsService == nil {
		return errors.New("terms service not configured")
	}

	doc := termsService.State().Document
	if doc == nil {
		return domain.ErrNoDocument
	}
	if len(args) == 1 {
		chapter := doc.Chapter(args[0])
		if chapter == nil {
			return errors.New("unknown chapter: " + args[0])
		}
		printChapter(cmd, chapter)
		return nil
	}
	printTerms(cmd, doc)
	return nil
}

func runTermsEdit(cmd *cobra.Command, args []string) error {
	if termsService == nil {
		return errors.New("terms service not configured")
	}

	doc := termsService.State().Document
	if doc == nil {
		return domain.ErrNoDocument
	}
	if doc.Chapter(args[0]) == nil {
		return errors.New("unknown chapter: " + args[0])
	}
	if err := termsService.UpdateArticle(context.Background(), args[0], args[1], termsEditContent); err != nil {
		return err
	}
	cmd.Printf("Article %s updated\n", args[1])
	return nil
}

func runTermsExport(cmd *cobra.Command, args []string) error {
	if exportService == nil {
		return errors.New("export service not configured")
	}

	format := driving.ExportFormat(termsExportFormat)
	if !format.IsValid() {
		return errors.New("invalid format: " + termsExportFormat)
	}
	path, err := exportService.ExportTerms(context.Background(), format, termsExportDir)
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

func runTermsReset(cmd *cobra.Command, args []string) error {
	if termsService == nil {
		return errors.New("terms service not configured")
	}

	if err := termsService.Reset(context.Background()); err != nil {
		return err
	}
	cmd.Println("Terms wizard state reset")
	return nil
}

func printTerms(cmd *cobra.Command, doc *domain.GeneratedTerms) {
	cmd.Println(doc.Title)
	for i := range doc.Chapters {
		cmd.Println()
		printChapter(cmd, &doc.Chapters[i])
	}
}

func printChapter(cmd *cobra.Command, ch *domain.TermsChapter) {
	cmd.Println(ch.Title)
	for _, art := range ch.Articles {
		cmd.Println()
		cmd.Println(art.Title)
		cmd.Println(export.StripTags(art.Content))
	}
}
