package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/kmateva/hieroconv/internal"
	"codeberg.org/kmateva/hieroconv/internal/convert"
	"codeberg.org/kmateva/hieroconv/internal/corpus"
	"codeberg.org/kmateva/hieroconv/internal/models"
	"codeberg.org/kmateva/hieroconv/internal/separate"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hieroconv",
		Short: "Ancient Egyptian corpus conversion toolkit",
		Long: `hieroconv converts hiero-transformer JSON corpora into the paired
source/target text files used for sequence-to-sequence training,
converts the text pairs back to JSON, and evaluates pretrained models
on held-out data.

Examples:
  hieroconv json2txt test_data.json --source egy --target tnt
  hieroconv txt2json --source source_egy2tnt_cleaned.txt \
      --target target_egy2tnt_cleaned.txt --types egy,tnt
  hieroconv separate transliterations.txt
  hieroconv evaluate test_ramses/ --source egy --target tnt`,
		Version:      internal.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			applyConfigValues(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.hieroconv.yaml)")

	rootCmd.AddCommand(
		newJSON2TxtCommand(flags),
		newTxt2JSONCommand(flags),
		newSeparateCommand(flags),
		newEvaluateCommand(flags),
		newListModelsCommand(flags),
	)

	return rootCmd
}

func newJSON2TxtCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "json2txt <corpus.json>",
		Short: "Convert a corpus JSON file to paired text files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sourcePath, targetPath, stats, err := convert.ConvertJSONFile(
				args[0], corpus.Code(flags.Source), corpus.Code(flags.Target))
			if err != nil {
				return err
			}

			fmt.Println("Conversion completed successfully!")
			fmt.Printf("Source file: %s\n", sourcePath)
			fmt.Printf("Target file: %s\n", targetPath)
			fmt.Println("\nStatistics:")
			fmt.Printf("  Total entries: %d\n", stats.Total)
			fmt.Printf("  Processed entries: %d\n", stats.Processed)
			fmt.Printf("  Skipped entries: %d\n", stats.Skipped)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.Source, "source", flags.Source, "Source field code (egy or tnt)")
	cmd.Flags().StringVar(&flags.Target, "target", flags.Target, "Target field code (tnt, en, de, lkey or worldClass)")
	return cmd
}

func newTxt2JSONCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "txt2json",
		Short: "Convert paired text files back to corpus JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sourceCode, targetCode, err := ParseTypes(flags.Types)
			if err != nil {
				return err
			}

			outputPath, total, err := convert.ConvertTextFiles(
				flags.SourceFile, flags.TargetFile, sourceCode, targetCode, flags.Output)
			if err != nil {
				return err
			}

			fmt.Println("Conversion completed successfully!")
			fmt.Printf("Output file: %s\n", outputPath)
			fmt.Printf("Total entries: %d\n", total)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.SourceFile, "source", "", "Path to source text file")
	cmd.Flags().StringVar(&flags.TargetFile, "target", "", "Path to target text file")
	cmd.Flags().StringVar(&flags.Types, "types", "", "Comma-separated source and target field codes (e.g. 'egy,tnt')")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Output JSON path (default: <source-stem>_to_<target-stem>.json)")
	cmd.MarkFlagRequired("source")
	cmd.MarkFlagRequired("target")
	cmd.MarkFlagRequired("types")
	return cmd
}

func newSeparateCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "separate <file.txt>",
		Short: "Character-separate every line of a text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputPath, lines, err := separate.ProcessFile(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Processed %d lines\n", lines)
			fmt.Printf("Output saved to: %s\n", outputPath)
			return nil
		},
	}
}

func newListModelsCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "list-models",
		Short: "List OpenAI models available to the configured API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lister := models.NewLister(GetOpenAIKey())
			return lister.ListAvailableModels()
		},
	}
}

// ParseTypes splits a --types value like "egy,tnt" into source and
// target field codes.
func ParseTypes(types string) (corpus.Code, corpus.Code, error) {
	parts := strings.Split(types, ",")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("--types must contain exactly two comma-separated values (e.g. 'egy,tnt')")
	}
	return corpus.Code(strings.TrimSpace(parts[0])), corpus.Code(strings.TrimSpace(parts[1])), nil
}

// applyConfigValues overrides flags the user did not set explicitly
// with values from the viper configuration.
func applyConfigValues(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && viper.IsSet(f.Name) {
			cmd.Flags().Set(f.Name, viper.GetString(f.Name))
		}
	})
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".hieroconv" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".hieroconv")
	}

	// Environment variables
	viper.SetEnvPrefix("HIEROCONV")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("model.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("model.gemini_key")
}
