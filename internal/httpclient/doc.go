// Package httpclient provides the HTTP plumbing a load-test worker needs.
//
// Each worker gets its own [Requester] so connections are kept alive
// across its requests without being shared between workers:
//
//	req := httpclient.NewRequester(20*time.Second, false)
//	defer req.Close()
//
//	status, err := req.Get(ctx, "http://localhost:8080/health")
//
// A non-nil error means no complete response was received (timeout, refused
// connection, DNS failure, body cut off or stalled). Otherwise the status code is returned and the
// response body has been read in full and closed.
//
// [NewClient] builds the underlying *http.Client with its own transport.
package httpclient
