package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/recokit/reconv/internal/config"
	"github.com/recokit/reconv/internal/dictionary"
	"github.com/recokit/reconv/internal/encode"
	"github.com/recokit/reconv/internal/logging"
	"github.com/recokit/reconv/internal/schema"
	"github.com/recokit/reconv/internal/store"
	"github.com/recokit/reconv/internal/transform"
)

var (
	outputDir        string
	outputFormat     string
	overwrite        bool
	dictionaryPath   string
	extraLabels      []string
	idLabel          string
	categoryLabel    string
	subcategoryLabel string
	validateInput    bool
	logLevel         string
	logJSON          bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <checklist.json> [more inputs...]",
	Short: "Convert v1 checklist files and store the v2 records on disk",
	Long: `Convert reads each v1 checklist file, maps its items to v2
recommendation records, and stores one file per record under
<output>/<service|cross-service>/<waf-pillar>/<guid>.<ext>.

A failing input is reported and the remaining inputs are still processed.
An unsupported output format aborts immediately.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logging.Init(logJSON, logging.ParseLevel(logLevel))
		cmd.SilenceUsage = true

		format, err := encode.ParseFormat(outputFormat)
		if err != nil {
			return err
		}

		opts := transform.Options{
			IDLabel:          idLabel,
			CategoryLabel:    categoryLabel,
			SubcategoryLabel: subcategoryLabel,
		}
		if dictionaryPath != "" {
			dict, err := dictionary.LoadFile(dictionaryPath)
			if err != nil {
				return err
			}
			opts.Dictionary = dict
		}
		if opts.ExtraLabels, err = parseLabels(extraLabels); err != nil {
			return err
		}

		var validator *schema.Validator
		if validateInput {
			if validator, err = schema.New(); err != nil {
				return err
			}
		}

		st := store.New(outputDir, format, overwrite)

		failed := 0
		for _, input := range args {
			if err := convertInput(input, opts, validator, st); err != nil {
				slog.Error("input failed, nothing stored for it", "input", input, "error", err)
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d inputs failed", failed, len(args))
		}
		return nil
	},
}

func convertInput(input string, opts transform.Options, validator *schema.Validator, st *store.Store) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}
	if validator != nil {
		if err := validator.Validate(data); err != nil {
			return err
		}
	}

	records, err := transform.Parse(data, input, opts)
	if err != nil {
		return err
	}

	sum, err := st.Persist(records)
	if err != nil {
		// Configuration error: abort everything, not just this input.
		slog.Error("store aborted", "error", err)
		os.Exit(1)
	}
	slog.Info("converted input", "input", input, "records", len(records),
		"written", sum.Written, "skipped", sum.Skipped, "conflicts", len(sum.Conflicts))
	return nil
}

// parseLabels turns repeated --label key=value flags into a map.
func parseLabels(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	labels := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid label %q, expected key=value", pair)
		}
		labels[key] = value
	}
	return labels, nil
}

func init() {
	cfg := config.Load()

	convertCmd.Flags().StringVarP(&outputDir, "output", "o", cfg.Store.OutputDir, "Output root directory")
	convertCmd.Flags().StringVarP(&outputFormat, "format", "f", cfg.Store.Format, "Output format (yaml, json)")
	convertCmd.Flags().BoolVar(&overwrite, "overwrite", cfg.Store.Overwrite, "Replace existing files with the same guid")
	convertCmd.Flags().StringVarP(&dictionaryPath, "dictionary", "d", cfg.Transform.DictionaryPath, "Service dictionary file (YAML or JSON)")
	convertCmd.Flags().StringArrayVarP(&extraLabels, "label", "l", nil, "Extra label added to every record (key=value, repeatable)")
	convertCmd.Flags().StringVar(&idLabel, "id-label", cfg.Transform.IDLabel, "Label key for the v1 id field")
	convertCmd.Flags().StringVar(&categoryLabel, "category-label", cfg.Transform.CategoryLabel, "Label key for the v1 category field")
	convertCmd.Flags().StringVar(&subcategoryLabel, "subcategory-label", cfg.Transform.SubcategoryLabel, "Label key for the v1 subcategory field")
	convertCmd.Flags().BoolVar(&validateInput, "validate", cfg.Validate, "Validate inputs against the checklist schema before converting")
	convertCmd.Flags().StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	convertCmd.Flags().BoolVar(&logJSON, "log-json", false, "Emit logs as JSON")
	rootCmd.AddCommand(convertCmd)
}
