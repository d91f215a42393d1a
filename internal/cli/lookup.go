package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/ThueCoders/oxforddict"
)

//go:generate mockgen -source=lookup.go -destination=../mocks/cli/mock_dictionary.go -package=mock_cli Dictionary

// Dictionary is the part of the dictionary client the lookup CLI depends on.
type Dictionary interface {
	Entries(ctx context.Context, word string, filters ...string) (oxforddict.Response, error)
	Sentences(ctx context.Context, word string) (oxforddict.Response, error)
	Translations(ctx context.Context, word, targetLanguage string) (oxforddict.Response, error)
	Synonyms(ctx context.Context, word string) (oxforddict.Response, error)
	Antonyms(ctx context.Context, word string) (oxforddict.Response, error)
	Thesaurus(ctx context.Context, word string) (oxforddict.Response, error)
	Lemmas(ctx context.Context, word string, filters ...string) (oxforddict.Response, error)
	Search(ctx context.Context, query string, opts ...oxforddict.SearchOption) (oxforddict.Response, error)
	Wordlist(ctx context.Context, filters []string, opts ...oxforddict.WordlistOption) (oxforddict.Response, error)
}

var _ Dictionary = (*oxforddict.Client)(nil)

// LookupCLI runs dictionary lookups and writes the payloads in the
// configured output format.
type LookupCLI struct {
	dictionary Dictionary
	renderer   *Renderer
}

func NewLookupCLI(dictionary Dictionary, writer io.Writer, format Format) *LookupCLI {
	return &LookupCLI{
		dictionary: dictionary,
		renderer:   NewRenderer(writer, format),
	}
}

func (cli *LookupCLI) Entries(ctx context.Context, word string, filters []string) error {
	res, err := cli.dictionary.Entries(ctx, word, filters...)
	if err != nil {
		return fmt.Errorf("dictionary.Entries > %w", err)
	}
	return cli.renderer.Render(res)
}

func (cli *LookupCLI) Sentences(ctx context.Context, word string) error {
	res, err := cli.dictionary.Sentences(ctx, word)
	if err != nil {
		return fmt.Errorf("dictionary.Sentences > %w", err)
	}
	return cli.renderer.Render(res)
}

func (cli *LookupCLI) Translations(ctx context.Context, word, targetLanguage string) error {
	res, err := cli.dictionary.Translations(ctx, word, targetLanguage)
	if err != nil {
		return fmt.Errorf("dictionary.Translations > %w", err)
	}
	return cli.renderer.Render(res)
}

func (cli *LookupCLI) Synonyms(ctx context.Context, word string) error {
	res, err := cli.dictionary.Synonyms(ctx, word)
	if err != nil {
		return fmt.Errorf("dictionary.Synonyms > %w", err)
	}
	return cli.renderer.Render(res)
}

func (cli *LookupCLI) Antonyms(ctx context.Context, word string) error {
	res, err := cli.dictionary.Antonyms(ctx, word)
	if err != nil {
		return fmt.Errorf("dictionary.Antonyms > %w", err)
	}
	return cli.renderer.Render(res)
}

func (cli *LookupCLI) Thesaurus(ctx context.Context, word string) error {
	res, err := cli.dictionary.Thesaurus(ctx, word)
	if err != nil {
		return fmt.Errorf("dictionary.Thesaurus > %w", err)
	}
	return cli.renderer.Render(res)
}

func (cli *LookupCLI) Lemmas(ctx context.Context, word string, filters []string) error {
	res, err := cli.dictionary.Lemmas(ctx, word, filters...)
	if err != nil {
		return fmt.Errorf("dictionary.Lemmas > %w", err)
	}
	return cli.renderer.Render(res)
}

func (cli *LookupCLI) Search(ctx context.Context, query string, opts ...oxforddict.SearchOption) error {
	res, err := cli.dictionary.Search(ctx, query, opts...)
	if err != nil {
		return fmt.Errorf("dictionary.Search > %w", err)
	}
	return cli.renderer.Render(res)
}

func (cli *LookupCLI) Wordlist(ctx context.Context, filters []string, opts ...oxforddict.WordlistOption) error {
	res, err := cli.dictionary.Wordlist(ctx, filters, opts...)
	if err != nil {
		return fmt.Errorf("dictionary.Wordlist > %w", err)
	}
	return cli.renderer.Render(res)
}
