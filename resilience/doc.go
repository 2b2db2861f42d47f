// Package resilience provides retry with exponential backoff for
// processors that call flaky dependencies.
//
//	resp, err := resilience.Retry(ctx, resilience.DefaultRetryConfig(), func() (*processor.Response, error) {
//	    return inner.Process(ctx, req)
//	})
package resilience
