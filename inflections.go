package oxforddict

import "context"

// Lemmas retrieves the possible lemmas of an inflected word form, for example
// "swim" for "swimming". Optional filters restrict the results and become
// extra path segments, for example "grammaticalFeatures=singular" or
// "lexicalCategory=noun".
func (c *Client) Lemmas(ctx context.Context, word string, filters ...string) (Response, error) {
	segments := append([]string{normalizeWord(word)}, filters...)
	return c.get(ctx, c.path(categoryInflections, segments...), nil)
}
