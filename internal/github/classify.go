package github

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// classification is the outcome of inspecting one API response.
type classification int

const (
	classSuccess classification = iota
	classRateLimited
	classAPIError
)

// Known rate-limit signatures. GitHub sometimes answers a quota exhaustion
// with a generic 403 and a rate-limit message body rather than 429, so
// status codes alone are not sufficient; the message patterns and the
// remaining-quota header close that gap. Every signature the classifier
// honors lives in this table.
var (
	rateLimitStatuses = map[int]bool{
		http.StatusTooManyRequests: true,
	}
	rateLimitPhrases = []string{
		"rate limit exceeded",
		"secondary rate limit",
	}
)

const headerRateLimitRemaining = "X-RateLimit-Remaining"

// apiMessage is the error envelope GitHub returns for non-2xx responses.
type apiMessage struct {
	Message string `json:"message"`
}

// classifyResponse classifies one response as success, rate-limited, or API
// error, and returns the error message and retry-after hint where relevant.
// A 2xx status is success and the body goes on to page decoding unread here.
func classifyResponse(status int, header http.Header, body []byte) (classification, string, time.Duration) {
	if status >= 200 && status < 300 {
		return classSuccess, "", 0
	}

	var env apiMessage
	// The message stays empty on malformed bodies; classification then
	// falls back to status codes and headers alone.
	_ = json.Unmarshal(body, &env)
	msg := env.Message
	if msg == "" {
		msg = http.StatusText(status)
	}

	if rateLimitStatuses[status] ||
		matchesRateLimitPhrase(msg) ||
		(status == http.StatusForbidden && header.Get(headerRateLimitRemaining) == "0") {
		return classRateLimited, msg, retryAfter(header)
	}

	return classAPIError, msg, 0
}

func matchesRateLimitPhrase(msg string) bool {
	msg = strings.ToLower(msg)
	for _, phrase := range rateLimitPhrases {
		if strings.Contains(msg, phrase) {
			return true
		}
	}
	return false
}

// retryAfter extracts a wait hint from Retry-After (delay seconds) or
// X-RateLimit-Reset (unix epoch). Returns zero when neither is usable.
func retryAfter(header http.Header) time.Duration {
	if s := header.Get("Retry-After"); s != "" {
		if secs, err := strconv.Atoi(s); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	if s := header.Get("X-RateLimit-Reset"); s != "" {
		if epoch, err := strconv.ParseInt(s, 10, 64); err == nil {
			if d := time.Until(time.Unix(epoch, 0)); d > 0 {
				return d
			}
		}
	}
	return 0
}
