// Package keepalive pings the service's own public URL on an interval so
// free-tier hosts do not idle the process out.
package keepalive

import (
	"context"
	"log"
	"net/http"
	"time"
)

// Run pings targetURL every interval until ctx is cancelled. It blocks and
// is meant to be started in its own goroutine by the process owner.
func Run(ctx context.Context, targetURL string, interval time.Duration) {
	client := &http.Client{Timeout: 30 * time.Second}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			ping(ctx, client, targetURL)
		}
	}
}

func ping(ctx context.Context, client *http.Client, targetURL string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		log.Printf("[keepalive] bad target URL %s: %v", targetURL, err)
		return
	}
	resp, err := client.Do(req)
	if err != nil {
		log.Printf("[keepalive] ping %s failed: %v", targetURL, err)
		return
	}
	resp.Body.Close()
	log.Printf("[keepalive] ping %s: %d", targetURL, resp.StatusCode)
}
