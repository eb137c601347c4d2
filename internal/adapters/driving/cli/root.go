// Package cli provides the command-line interface for lawkit.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/lawkit-dev/lawkit-cli/internal/core/ports/driving"
	"github.com/lawkit-dev/lawkit-cli/internal/logger"
)

// version is the CLI version, overridden at build time via ldflags.
var version = "dev"

// Services used by the commands, injected before Execute.
var (
	policyService driving.PolicyService
	termsService  driving.TermsService
	exportService driving.ExportService
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "lawkit",
	Short: "Generate Korean privacy policies and terms of service",
	Long: `lawkit generates Korean legal documents from the terminal.

A guided wizard collects your service information, the personal data
you process, and the features your terms need to cover, then assembles
a privacy policy (개인정보처리방침) and terms of service (서비스 이용약관)
you can export as text, HTML, or PDF.

Run without arguments to start the interactive wizard, or use the
policy and terms subcommands to drive each step directly.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetServices injects the driving services used by the commands.
func SetServices(policy driving.PolicyService, terms driving.TermsService, export driving.ExportService) {
	policyService = policy
	termsService = terms
	exportService = export
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
