package main

import (
	"github.com/spf13/cobra"
)

func newLookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup WORD [FILTER...]",
		Short: "Look up the dictionary entries for a word",
		Long: `Look up the dictionary entries for a word.

Filters narrow the returned data and are passed to the API as extra
path segments, for example "examples", "definitions" or "regions=us".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lookupCLI, err := newLookupCLI()
			if err != nil {
				return err
			}
			return lookupCLI.Entries(cmd.Context(), args[0], args[1:])
		},
	}
}

func newSentencesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sentences WORD",
		Short: "Look up corpus sentences for a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lookupCLI, err := newLookupCLI()
			if err != nil {
				return err
			}
			return lookupCLI.Sentences(cmd.Context(), args[0])
		},
	}
}

func newTranslateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "translate WORD TARGET_LANGUAGE",
		Short: "Translate a word into a target language",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lookupCLI, err := newLookupCLI()
			if err != nil {
				return err
			}
			return lookupCLI.Translations(cmd.Context(), args[0], args[1])
		},
	}
}

func newThesaurusCommand() *cobra.Command {
	var synonyms, antonyms bool
	command := cobra.Command{
		Use:   "thesaurus WORD",
		Short: "Look up the synonyms or antonyms of a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lookupCLI, err := newLookupCLI()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			word := args[0]
			switch {
			case synonyms && antonyms:
				return lookupCLI.Thesaurus(ctx, word)
			case antonyms:
				return lookupCLI.Antonyms(ctx, word)
			default:
				return lookupCLI.Synonyms(ctx, word)
			}
		},
	}
	flags := command.Flags()
	flags.BoolVar(&synonyms, "synonyms", false, "Include synonyms")
	flags.BoolVar(&antonyms, "antonyms", false, "Include antonyms")
	return &command
}

func newLemmasCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lemmas WORD [FILTER...]",
		Short: "Look up the possible lemmas of an inflected word form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lookupCLI, err := newLookupCLI()
			if err != nil {
				return err
			}
			return lookupCLI.Lemmas(cmd.Context(), args[0], args[1:])
		},
	}
}
