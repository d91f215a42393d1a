package oxforddict

// Response is the decoded JSON payload of a lookup. The upstream response
// shape is not contractually fixed, so the payload stays a generic document
// and no schema is enforced beyond JSON decoding.
type Response map[string]any

// Results returns the "results" array of the payload, or nil when the payload
// carries none.
func (r Response) Results() []any {
	results, _ := r["results"].([]any)
	return results
}

// Metadata returns the "metadata" object of the payload, or nil when the
// payload carries none.
func (r Response) Metadata() map[string]any {
	metadata, _ := r["metadata"].(map[string]any)
	return metadata
}
