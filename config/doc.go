// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Everything has a working default except the endpoint URLs, which embed
// session-specific pb blobs that must be captured from a browser.
package config
