// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errIntegrity = errors.New("integrity check failed")

type globalOptions struct {
	configPath string
	ledgerPath string
	logLevel   string
	noProgress bool
}

// setup resolves configuration and the logger shared by every command.
func (o *globalOptions) setup() (*Config, *zap.Logger, error) {
	config, cfgErr := LoadConfig(o.configPath)
	if o.ledgerPath != "" {
		config.Ledger.File = o.ledgerPath
	}
	if o.logLevel != "" {
		config.Log.Level = o.logLevel
	}
	if o.noProgress {
		config.Ledger.ShowProgress = false
	}

	logger, err := newLogger(config.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	if cfgErr != nil {
		logger.Warn("Failed to load configuration, using default settings", zap.Error(cfgErr))
	}
	return config, logger, nil
}

func (o *globalOptions) openLedger() (*Ledger, *zap.Logger, error) {
	config, logger, err := o.setup()
	if err != nil {
		return nil, nil, err
	}
	ledger, err := loadLedger(config.Ledger.File, config, logger)
	if err != nil {
		return nil, nil, err
	}
	return ledger, logger, nil
}

func copyToClipboard(w io.Writer, logger *zap.Logger, text string) {
	if err := clipboard.WriteAll(text); err != nil {
		logger.Warn("Failed to copy to clipboard", zap.Error(err))
		return
	}
	fmt.Fprintln(w, styles.Muted.Render("copied to clipboard"))
}

func newRootCommand(out io.Writer) *cobra.Command {
	opts := &globalOptions{}

	var cmdIngest = &cobra.Command{
		Use:   "ingest",
		Short: "Load the ledger and print its merkle root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, logger, err := opts.setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			recs, err := readLedgerFile(config.Ledger.File)
			if err != nil {
				return fmt.Errorf("error reading ledger: %w", err)
			}
			ledger := NewLedger(config, logger)
			added, duplicates := ledger.Ingest(recs, config.Ledger.ShowProgress)

			fmt.Fprintf(out, "%s %d\n", styles.Label.Render("transactions:"), added)
			fmt.Fprintf(out, "%s %d\n", styles.Label.Render("duplicates:  "), duplicates)
			fmt.Fprintf(out, "%s %d\n", styles.Label.Render("height:      "), ledger.Height())
			fmt.Fprintf(out, "%s %s\n", styles.Label.Render("merkle root: "), styles.Digest.Render(ledger.Root()))
			return nil
		},
	}

	var cmdRoot = &cobra.Command{
		Use:   "root",
		Short: "Print the ledger's merkle root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ledger, logger, err := opts.openLedger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			fmt.Fprintln(out, ledger.Root())
			if copyFlag, _ := cmd.Flags().GetBool("copy"); copyFlag {
				copyToClipboard(out, logger, ledger.Root())
			}
			return nil
		},
	}
	cmdRoot.Flags().Bool("copy", false, "copy the merkle root to the clipboard")

	var cmdSearch = &cobra.Command{
		Use:   "search <id>",
		Short: "Look up a transaction by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ledger, logger, err := opts.openLedger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			rec, found := ledger.Lookup(args[0])
			if !found {
				fmt.Fprintf(out, "%s not found\n", args[0])
				return nil
			}
			fmt.Fprintln(out, formatRecord(rec))
			return nil
		},
	}

	var cmdProve = &cobra.Command{
		Use:   "prove <id>",
		Short: "Print the inclusion proof for a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ledger, logger, err := opts.openLedger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			proof, found := ledger.Prove(args[0])
			if !found {
				return fmt.Errorf("%s not found", args[0])
			}
			format, _ := cmd.Flags().GetString("format")
			text, err := formatProof(proof, format)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, text)

			if copyFlag, _ := cmd.Flags().GetBool("copy"); copyFlag {
				copyToClipboard(out, logger, text)
			}
			return nil
		},
	}
	cmdProve.Flags().String("format", "text", "output format: text, json or yaml")
	cmdProve.Flags().Bool("copy", false, "copy the proof to the clipboard")

	var cmdVerify = &cobra.Command{
		Use:   "verify",
		Short: "Recompute every digest and report mismatches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ledger, logger, err := opts.openLedger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			report := ledger.Verify()
			fmt.Fprintln(out, formatIntegrity(report))
			if !report.Valid {
				return errIntegrity
			}
			return nil
		},
	}

	var cmdReport = &cobra.Command{
		Use:   "report",
		Short: "Render a markdown summary of the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ledger, logger, err := opts.openLedger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			md := buildReport(ledger)
			if raw, _ := cmd.Flags().GetBool("raw"); raw {
				fmt.Fprint(out, md)
				return nil
			}
			rendered, err := renderMarkdown(md, 100)
			if err != nil {
				logger.Warn("Falling back to raw markdown", zap.Error(err))
				rendered = md
			}
			fmt.Fprint(out, rendered)
			return nil
		},
	}
	cmdReport.Flags().Bool("raw", false, "print markdown without rendering")

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Interactive session over the loaded ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, logger, err := opts.setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			ledger := NewLedger(config, logger)
			if recs, err := readLedgerFile(config.Ledger.File); err != nil {
				logger.Warn("Starting with an empty ledger", zap.Error(err))
			} else {
				ledger.Ingest(recs, config.Ledger.ShowProgress)
			}
			return runShell(cmd.InOrStdin(), out, ledger)
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the configuration, creating the default file if missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings(out, opts.configPath)
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print cryptotree usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(out, getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print cryptotree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(out, version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:           "cryptotree",
		Version:       version,
		Short:         "Authenticated AVL index for transaction ledgers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.cryptotree.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.ledgerPath, "ledger", "", "ledger file to index")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&opts.noProgress, "no-progress", false, "hide the indexing progress bar")

	rootCmd.AddCommand(cmdIngest, cmdRoot, cmdSearch, cmdProve, cmdVerify, cmdReport,
		cmdShell, cmdSettings, cmdUsage, cmdVersion)
	return rootCmd
}

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Error.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}
