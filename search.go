package oxforddict

import (
	"context"
	"strconv"
)

// DefaultSearchLimit is the page size the API documents as both default and
// maximum for search requests.
const DefaultSearchLimit = 5000

type searchOptions struct {
	prefix  bool
	regions string
	limit   int
	offset  int
}

// SearchOption configures a Search call.
type SearchOption func(*searchOptions)

// WithSearchPrefix restricts the results to headwords starting with the
// query string.
func WithSearchPrefix() SearchOption {
	return func(o *searchOptions) {
		o.prefix = true
	}
}

// WithSearchRegions filters the results to a region, for example "us" or
// "gb".
func WithSearchRegions(regions string) SearchOption {
	return func(o *searchOptions) {
		o.regions = regions
	}
}

// WithSearchLimit overrides DefaultSearchLimit. A non-positive limit omits
// the parameter and leaves the page size to the server.
func WithSearchLimit(limit int) SearchOption {
	return func(o *searchOptions) {
		o.limit = limit
	}
}

// WithSearchOffset skips the first offset results for pagination.
func WithSearchOffset(offset int) SearchOption {
	return func(o *searchOptions) {
		o.offset = offset
	}
}

// Search retrieves the headwords matching a free-form query, ordered by
// relevance.
func (c *Client) Search(ctx context.Context, query string, opts ...SearchOption) (Response, error) {
	o := searchOptions{limit: DefaultSearchLimit}
	for _, opt := range opts {
		opt(&o)
	}

	params := map[string]string{"q": normalizeWord(query)}
	if o.prefix {
		params["prefix"] = "true"
	}
	if o.regions != "" {
		params["regions"] = o.regions
	}
	if o.limit > 0 {
		params["limit"] = strconv.Itoa(o.limit)
	}
	if o.offset > 0 {
		params["offset"] = strconv.Itoa(o.offset)
	}
	return c.get(ctx, c.path(categorySearch), params)
}

type wordlistOptions struct {
	limit                 int
	offset                int
	exclude               string
	excludeSenses         string
	excludePrimeSentences string
	wordLength            string
	prefix                string
	exact                 bool
}

// WordlistOption configures a Wordlist call.
type WordlistOption func(*wordlistOptions)

// WithWordlistLimit caps the number of results per response.
func WithWordlistLimit(limit int) WordlistOption {
	return func(o *wordlistOptions) {
		o.limit = limit
	}
}

// WithWordlistOffset skips the first offset results for pagination.
func WithWordlistOffset(offset int) WordlistOption {
	return func(o *wordlistOptions) {
		o.offset = offset
	}
}

// WithWordlistExclude removes headwords matching the semicolon separated
// parameter-value pairs, for example "registers=Rare;domains=Art".
func WithWordlistExclude(filters string) WordlistOption {
	return func(o *wordlistOptions) {
		o.exclude = filters
	}
}

// WithWordlistExcludeSenses removes matching senses but keeps the headwords
// whose remaining senses still match.
func WithWordlistExcludeSenses(filters string) WordlistOption {
	return func(o *wordlistOptions) {
		o.excludeSenses = filters
	}
}

// WithWordlistExcludePrimeSentences removes headwords whose first sense
// matches the filters.
func WithWordlistExcludePrimeSentences(filters string) WordlistOption {
	return func(o *wordlistOptions) {
		o.excludePrimeSentences = filters
	}
}

// WithWordlistWordLength constrains the headword length, for example ">5",
// "7" or "<10".
func WithWordlistWordLength(constraint string) WordlistOption {
	return func(o *wordlistOptions) {
		o.wordLength = constraint
	}
}

// WithWordlistPrefix keeps only headwords starting with the given string.
func WithWordlistPrefix(prefix string) WordlistOption {
	return func(o *wordlistOptions) {
		o.prefix = prefix
	}
}

// WithWordlistExact keeps only headwords that match the basic filters
// exactly.
func WithWordlistExact() WordlistOption {
	return func(o *wordlistOptions) {
		o.exact = true
	}
}

// Wordlist retrieves the headwords matching basic filters on domains,
// lexical categories, registers or regions. Each filter is a path segment of
// semicolon separated parameter-value pairs, for example
// "registers=Rare;domains=Art". Advanced criteria go through the options.
func (c *Client) Wordlist(ctx context.Context, filters []string, opts ...WordlistOption) (Response, error) {
	var o wordlistOptions
	for _, opt := range opts {
		opt(&o)
	}

	params := map[string]string{}
	if o.limit > 0 {
		params["limit"] = strconv.Itoa(o.limit)
	}
	if o.offset > 0 {
		params["offset"] = strconv.Itoa(o.offset)
	}
	if o.exclude != "" {
		params["exclude"] = o.exclude
	}
	if o.excludeSenses != "" {
		params["exclude_senses"] = o.excludeSenses
	}
	if o.excludePrimeSentences != "" {
		params["exclude_prime_sentences"] = o.excludePrimeSentences
	}
	if o.wordLength != "" {
		params["word_length"] = o.wordLength
	}
	if o.prefix != "" {
		params["prefix"] = o.prefix
	}
	if o.exact {
		params["exact"] = "true"
	}
	return c.get(ctx, c.path(categoryWordlist, filters...), params)
}
