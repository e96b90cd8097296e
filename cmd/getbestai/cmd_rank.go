package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/getbestai/getbestai/internal/catalog"
	"github.com/getbestai/getbestai/internal/prefs"
	"github.com/getbestai/getbestai/internal/projectconfig"
	"github.com/getbestai/getbestai/internal/spinner"
	"github.com/getbestai/getbestai/internal/wizard"
)

func newRankCommand() *cobra.Command {
	var (
		tasks      []string
		priorities []string
		requests   int
		inputLang  string
		outputLang string
		excluded   []string
		count      int
		offline    bool
		noCache    bool
		jsonOut    bool
	)

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank models against your preferences",
		Long: `Rank models against your preferences.

With no flags, an interactive wizard collects your task types, priorities,
and usage profile. With --task set, the wizard is skipped and preferences
come entirely from flags.

Examples:
  getbestai rank
  getbestai rank --task coding --priority quality,speed,budget
  getbestai rank --task qa,translation --priority budget,quality,speed --requests 100`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return &BadInputError{Message: err.Error()}
			}

			var p prefs.Preferences
			if len(tasks) == 0 {
				p, err = wizard.Run(os.Stdin, os.Stderr)
				if err != nil {
					return &BadInputError{Message: err.Error()}
				}
			} else {
				p, err = prefsFromFlags(tasks, priorities, requests, inputLang, outputLang, excluded)
				if err != nil {
					return &BadInputError{Message: err.Error()}
				}
			}

			logger := slog.Default()
			models, live := fetchCatalog(cmd, cfg, offline, noCache, logger)

			scored, err := engineFromConfig(cfg).Rank(models, p)
			if err != nil {
				return &BadInputError{Message: err.Error()}
			}

			if count == 0 {
				count = cfg.Output.ResultCount
			}

			out := cmd.OutOrStdout()
			if !live {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: live catalog unavailable, showing built-in model list")
			}
			if jsonOut {
				return writeResultsJSON(out, scored, count)
			}
			renderResults(out, scored, count, p)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&tasks, "task", nil, "Task types (translation, generation, qa, coding, creative, analysis)")
	cmd.Flags().StringSliceVar(&priorities, "priority", nil, "Priority order, most important first (quality, speed, budget)")
	cmd.Flags().IntVar(&requests, "requests", 0, "Expected requests per day (1-200)")
	cmd.Flags().StringVar(&inputLang, "input-lang", "", "Input language tag (e.g. en, de)")
	cmd.Flags().StringVar(&outputLang, "output-lang", "", "Output language tag")
	cmd.Flags().StringSliceVar(&excluded, "exclude", nil, "Providers to exclude from the ranking")
	cmd.Flags().IntVar(&count, "count", 0, "Number of results to show (0 = configured default)")
	cmd.Flags().BoolVar(&offline, "offline", false, "Skip the live catalog and use the built-in model list")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Bypass the catalog cache")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit results as JSON")

	return cmd
}

// prefsFromFlags assembles preferences from command line flags.
func prefsFromFlags(tasks, priorities []string, requests int, inputLang, outputLang string, excluded []string) (prefs.Preferences, error) {
	p := prefs.Default()

	p.TaskTypes = p.TaskTypes[:0]
	for _, s := range tasks {
		tt, err := prefs.ParseTaskType(s)
		if err != nil {
			return prefs.Preferences{}, err
		}
		p.TaskTypes = append(p.TaskTypes, tt)
	}

	if len(priorities) > 0 {
		if len(priorities) != 3 {
			return prefs.Preferences{}, fmt.Errorf("--priority needs exactly 3 entries, got %d", len(priorities))
		}
		for i, s := range priorities {
			pr, err := prefs.ParsePriority(s)
			if err != nil {
				return prefs.Preferences{}, err
			}
			p.PriorityOrder[i] = pr
		}
	}

	if requests != 0 {
		p.RequestsPerDay = requests
	}
	if inputLang != "" {
		p.InputLanguage = strings.TrimSpace(inputLang)
	}
	if outputLang != "" {
		p.OutputLanguage = strings.TrimSpace(outputLang)
	}
	p.ExcludedProviders = excluded

	if err := p.Validate(); err != nil {
		return prefs.Preferences{}, err
	}
	return p, nil
}

// fetchCatalog returns the live catalog, or the built-in list (and false)
// when offline or the upstream is unreachable.
func fetchCatalog(cmd *cobra.Command, cfg *projectconfig.ProjectConfig, offline, noCache bool, logger *slog.Logger) ([]catalog.Model, bool) {
	if offline {
		return catalog.Fallback(), false
	}

	client := newCatalogClient(cfg, noCache, logger)
	stop := spinner.Start(cmd.ErrOrStderr(), "Fetching model catalog")
	models, err := client.Models(cmd.Context())
	stop()
	if err != nil {
		logger.Warn("catalog fetch failed", "error", err)
		return catalog.Fallback(), false
	}
	return models, true
}
