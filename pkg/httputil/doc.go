// Package httputil provides the HTTP plumbing used by the cover fetcher.
//
// # Overview
//
//   - [Client]: a thin GET client that sets the user agent, maps status
//     codes to coded errors and reports to the observability hooks
//   - [Retry]: automatic retry with exponential backoff
//
// # Retry
//
// [Retry] re-runs an operation only when it fails with a [RetryableError].
// [Client.Get] marks network errors and 5xx responses as retryable, so the
// usual pattern is:
//
//	var body []byte
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    var err error
//	    body, err = client.Get(ctx, url)
//	    return err
//	})
//
// A 404 is reported as NOT_FOUND and is never retried.
package httputil
