package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ThueCoders/oxforddict/internal/cli"
	"github.com/spf13/cobra"
)

var (
	configFile string
	language   string
	output     = cli.FormatText
)

func main() {
	var debugMode bool
	rootCommand := cobra.Command{
		Use:           "oxforddict",
		Short:         "Look up words in the Oxford Dictionaries API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return nil
		},
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode")
	rootCommand.PersistentFlags().StringVar(&language, "language", "", "Source language code. Overrides the configuration")
	rootCommand.PersistentFlags().Var(&output, "output", fmt.Sprintf("Output format. Possible values are %v", cli.Formats))

	rootCommand.AddCommand(
		newLookupCommand(),
		newSentencesCommand(),
		newTranslateCommand(),
		newThesaurusCommand(),
		newLemmasCommand(),
		newSearchCommand(),
		newWordlistCommand(),
	)
	if err := rootCommand.Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
	os.Exit(0)
}

// setupLogger configures the default logger based on debug mode
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}
