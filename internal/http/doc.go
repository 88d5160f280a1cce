// Package http fetches city datasets from a configured mirror.
//
// Downloads land atomically: the body goes to a temporary sibling file that is
// renamed over the destination only when complete.
//
//	client := http.NewClient()
//	retry := http.Retry{MaxAttempts: 3, Cooldown: 500 * time.Millisecond, Exponent: 2}
//	n, err := client.FetchWithRetry(ctx, mirrorURL+"/chicago.csv", "data/chicago.csv", retry, nil)
package http
