// Package fetch downloads raw payloads from the internal transit endpoints.
//
// Requests mimic a logged-in browser session: captured URL with its pb blob,
// browser headers, and a session cookie taken from the environment. Responses
// are saved byte-for-byte; normalization happens at extraction time so the
// raw capture stays replayable. Failed requests are not retried, a stale
// session needs operator attention either way.
package fetch
