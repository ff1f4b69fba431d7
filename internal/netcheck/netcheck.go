// Package netcheck probes for connectivity against the video platform.
package netcheck

import "net/http"

const probeURL = "https://youtube.com"

// Online reports whether the platform answers at all. Any HTTP response,
// error statuses included, counts as being online.
func Online(client *http.Client) bool {
	return OnlineAt(client, probeURL)
}

// OnlineAt probes an arbitrary URL.
func OnlineAt(client *http.Client, url string) bool {
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Head(url)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return true
}
