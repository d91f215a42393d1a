package main

import (
	"github.com/ThueCoders/oxforddict"
	"github.com/spf13/cobra"
)

func newSearchCommand() *cobra.Command {
	var (
		prefix  bool
		regions string
		limit   int
		offset  int
	)
	command := cobra.Command{
		Use:   "search QUERY",
		Short: "Search for headwords matching a query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lookupCLI, err := newLookupCLI()
			if err != nil {
				return err
			}

			opts := []oxforddict.SearchOption{
				oxforddict.WithSearchLimit(limit),
				oxforddict.WithSearchOffset(offset),
			}
			if prefix {
				opts = append(opts, oxforddict.WithSearchPrefix())
			}
			if regions != "" {
				opts = append(opts, oxforddict.WithSearchRegions(regions))
			}
			return lookupCLI.Search(cmd.Context(), args[0], opts...)
		},
	}
	flags := command.Flags()
	flags.BoolVar(&prefix, "prefix", false, "Match headwords starting with the query only")
	flags.StringVar(&regions, "regions", "", "Filter results by region, for example us or gb")
	flags.IntVar(&limit, "limit", oxforddict.DefaultSearchLimit, "Maximum number of results")
	flags.IntVar(&offset, "offset", 0, "Number of results to skip")
	return &command
}

func newWordlistCommand() *cobra.Command {
	var (
		limit                 int
		offset                int
		exclude               string
		excludeSenses         string
		excludePrimeSentences string
		wordLength            string
		prefix                string
		exact                 bool
	)
	command := cobra.Command{
		Use:   "wordlist [FILTER...]",
		Short: "List headwords for domains, registers, regions or lexical categories",
		Long: `List headwords for domains, registers, regions or lexical categories.

Each filter is a path segment of semicolon separated parameter-value
pairs, for example "registers=Rare;domains=Art".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lookupCLI, err := newLookupCLI()
			if err != nil {
				return err
			}

			var opts []oxforddict.WordlistOption
			if limit > 0 {
				opts = append(opts, oxforddict.WithWordlistLimit(limit))
			}
			if offset > 0 {
				opts = append(opts, oxforddict.WithWordlistOffset(offset))
			}
			if exclude != "" {
				opts = append(opts, oxforddict.WithWordlistExclude(exclude))
			}
			if excludeSenses != "" {
				opts = append(opts, oxforddict.WithWordlistExcludeSenses(excludeSenses))
			}
			if excludePrimeSentences != "" {
				opts = append(opts, oxforddict.WithWordlistExcludePrimeSentences(excludePrimeSentences))
			}
			if wordLength != "" {
				opts = append(opts, oxforddict.WithWordlistWordLength(wordLength))
			}
			if prefix != "" {
				opts = append(opts, oxforddict.WithWordlistPrefix(prefix))
			}
			if exact {
				opts = append(opts, oxforddict.WithWordlistExact())
			}
			return lookupCLI.Wordlist(cmd.Context(), args, opts...)
		},
	}
	flags := command.Flags()
	flags.IntVar(&limit, "limit", 0, "Maximum number of results")
	flags.IntVar(&offset, "offset", 0, "Number of results to skip")
	flags.StringVar(&exclude, "exclude", "", "Exclude headwords matching the filters")
	flags.StringVar(&excludeSenses, "exclude-senses", "", "Exclude matching senses instead of whole headwords")
	flags.StringVar(&excludePrimeSentences, "exclude-prime-sentences", "", "Exclude headwords whose first sense matches the filters")
	flags.StringVar(&wordLength, "word-length", "", "Constrain the headword length, for example >5")
	flags.StringVar(&prefix, "prefix", "", "Keep only headwords starting with the prefix")
	flags.BoolVar(&exact, "exact", false, "Match the filters exactly")
	return &command
}
