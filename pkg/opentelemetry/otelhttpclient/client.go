package otelhttpclient

import "net/http"

// New returns a copy of client whose transport is instrumented under name.
// A nil client starts from an empty one.
func New(name string, client *http.Client) *http.Client {
	instrumented := &http.Client{}
	if client != nil {
		*instrumented = *client
	}
	instrumented.Transport = NewHTTPTransport(instrumented.Transport, name)
	return instrumented
}
