package oxforddict

import "context"

// Entries retrieves the dictionary entries for a word: definitions,
// pronunciations, examples and so on. Optional filters narrow the returned
// data and become extra path segments, for example "examples", "definitions"
// or "regions=us".
func (c *Client) Entries(ctx context.Context, word string, filters ...string) (Response, error) {
	segments := append([]string{normalizeWord(word)}, filters...)
	return c.get(ctx, c.path(categoryEntries, segments...), nil)
}

// Sentences retrieves corpus sentences for a word together with the senses
// they belong to.
func (c *Client) Sentences(ctx context.Context, word string) (Response, error) {
	return c.get(ctx, c.path(categoryEntries, normalizeWord(word), "sentences"), nil)
}

// Translations retrieves translations of a word into the target language.
// The target language is not validated on the client side; a pair the API
// does not cover surfaces as an *APIError.
func (c *Client) Translations(ctx context.Context, word, targetLanguage string) (Response, error) {
	return c.get(ctx, c.path(categoryEntries, normalizeWord(word), "translations="+targetLanguage), nil)
}

// Synonyms retrieves the synonyms of a word.
func (c *Client) Synonyms(ctx context.Context, word string) (Response, error) {
	return c.get(ctx, c.path(categoryEntries, normalizeWord(word), "synonyms"), nil)
}

// Antonyms retrieves the antonyms of a word.
func (c *Client) Antonyms(ctx context.Context, word string) (Response, error) {
	return c.get(ctx, c.path(categoryEntries, normalizeWord(word), "antonyms"), nil)
}

// Thesaurus retrieves the antonyms and synonyms of a word in a single call.
func (c *Client) Thesaurus(ctx context.Context, word string) (Response, error) {
	return c.get(ctx, c.path(categoryEntries, normalizeWord(word), "antonyms;synonyms"), nil)
}
