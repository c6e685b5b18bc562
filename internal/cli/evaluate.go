package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/kmateva/hieroconv/internal/cache"
	"codeberg.org/kmateva/hieroconv/internal/corpus"
	"codeberg.org/kmateva/hieroconv/internal/evaluate"
	"codeberg.org/kmateva/hieroconv/internal/translate"
)

func newEvaluateCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate <corpus.json|directory>",
		Short: "Run a pretrained model over held-out data and report accuracy",
		Long: `evaluate extracts every record with both sides of the language pair
present from the given corpus JSON file (or every JSON file in the
given directory), generates one prediction per pair through the
configured model provider, writes the predictions to a text file and
reports exact match, BLEU and ROUGE-L scores.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.Source, "source", flags.Source, "Source field code")
	cmd.Flags().StringVar(&flags.Target, "target", flags.Target, "Target field code")
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Model provider (openai or gemini)")
	cmd.Flags().StringVar(&flags.Model, "model", "", "Model name override (default depends on provider)")
	cmd.Flags().StringVar(&flags.PredictionsPath, "predictions", flags.PredictionsPath, "Predictions output file")
	cmd.Flags().StringVar(&flags.CachePath, "cache", "", "Prediction cache database (default: $HOME/.hieroconv-cache.db)")
	cmd.Flags().BoolVar(&flags.NoCache, "no-cache", false, "Disable the prediction cache")

	viper.BindPFlag("model.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("model.name", cmd.Flags().Lookup("model"))
	viper.BindPFlag("cache.path", cmd.Flags().Lookup("cache"))

	return cmd
}

func runEvaluate(cmd *cobra.Command, path string, flags *Flags) error {
	ctx := cmd.Context()
	sourceCode := corpus.Code(flags.Source)
	targetCode := corpus.Code(flags.Target)

	// Unknown codes and missing input fail here, before any provider
	// or cache setup.
	pairs, err := evaluate.LoadPairs(path, sourceCode, targetCode)
	if err != nil {
		return err
	}
	if len(pairs) == 0 {
		return fmt.Errorf("no usable pairs found in %s for %s -> %s", path, flags.Source, flags.Target)
	}
	fmt.Printf("Loaded %d pairs for %s -> %s\n", len(pairs), flags.Source, flags.Target)

	config := translate.DefaultConfig()
	config.Provider = flags.Provider
	config.OpenAIKey = GetOpenAIKey()
	config.GeminiKey = GetGeminiKey()
	if flags.Model != "" {
		config.OpenAIModel = flags.Model
		config.GeminiModel = flags.Model
	}

	provider, err := translate.NewProvider(ctx, config)
	if err != nil {
		return err
	}

	model := config.OpenAIModel
	if config.Provider == "gemini" {
		model = config.GeminiModel
	}

	var predictionCache *cache.Cache
	if !flags.NoCache {
		cachePath := flags.CachePath
		if cachePath == "" {
			if home, err := os.UserHomeDir(); err == nil {
				cachePath = filepath.Join(home, ".hieroconv-cache.db")
			}
		}
		if cachePath != "" {
			predictionCache, err = cache.Open(cachePath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: prediction cache unavailable: %v\n", err)
				predictionCache = nil
			} else {
				defer predictionCache.Close()
			}
		}
	}

	evaluator := evaluate.New(evaluate.Options{
		SourceCode:      sourceCode,
		TargetCode:      targetCode,
		Provider:        translate.NewBreakerProvider(provider),
		Model:           model,
		Cache:           predictionCache,
		PredictionsPath: flags.PredictionsPath,
	})

	result, err := evaluator.Run(ctx, pairs)
	if err != nil {
		return err
	}

	fmt.Printf("\n=== Evaluation Results (%s -> %s, %s/%s) ===\n",
		flags.Source, flags.Target, provider.Name(), model)
	fmt.Printf("Pairs evaluated: %d\n", result.Pairs)
	if result.CacheHits > 0 {
		fmt.Printf("Cache hits: %d\n", result.CacheHits)
	}
	fmt.Printf("Exact match: %.2f%%\n", result.ExactMatch)
	fmt.Printf("BLEU: %.2f\n", result.BLEU)
	fmt.Printf("ROUGE-L: %.2f\n", result.ROUGEL)
	fmt.Printf("\nPredictions saved to: %s\n", flags.PredictionsPath)
	return nil
}
