package utils

import "strings"

//go:generate $MOCKGEN -source=user_agent_provider.go -destination=mocks/user_agent_provider_mock.go

// UserAgentProvider supplies the User-Agent a client announces with its default headers.
type UserAgentProvider interface {
	// GetUserAgent returns a User-Agent string.
	GetUserAgent() string
}

// StaticUserAgent is a UserAgentProvider that always returns itself.
type StaticUserAgent string

// GetUserAgent returns a User-Agent string.
func (s StaticUserAgent) GetUserAgent() string {
	return string(s)
}

// ProductUserAgent builds a "product/version (comment; comment)" User-Agent.
// A leading "v" in version is dropped, empty comments are skipped.
func ProductUserAgent(product, version string, comments ...string) StaticUserAgent {
	var sb strings.Builder

	sb.WriteString(strings.TrimSpace(product))

	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	if version != "" {
		sb.WriteByte('/')
		sb.WriteString(version)
	}

	kept := make([]string, 0, len(comments))

	for _, comment := range comments {
		if comment = strings.TrimSpace(comment); comment != "" {
			kept = append(kept, comment)
		}
	}

	if len(kept) > 0 {
		sb.WriteString(" (")
		sb.WriteString(strings.Join(kept, "; "))
		sb.WriteByte(')')
	}

	return StaticUserAgent(sb.String())
}
