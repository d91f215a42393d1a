// Package oxforddict is a client for the Oxford Dictionaries API.
//
// A Client is built once with the application credentials issued by the API
// portal and reused across lookups:
//
//	client, err := oxforddict.New(appID, appKey)
//	if err != nil {
//		// only fails on an unsupported language option
//	}
//	payload, err := client.Entries(ctx, "cat", "examples")
//
// Every lookup issues a single authenticated GET request and returns the
// decoded JSON payload verbatim, without enforcing a response schema. Failures
// are typed: *TransportError when the exchange never completed, *APIError for
// responses outside the 2xx range and *DecodeError for bodies that are not
// valid JSON.
//
// API reference: https://developer.oxforddictionaries.com/documentation
package oxforddict
