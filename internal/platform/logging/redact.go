package logging

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/m-mizutani/masq"
)

// policy lists what the masq ReplaceAttr hook hides. Keys are matched by
// exact name or prefix; values by pattern wherever they appear.
type policy struct {
	headers  []string
	fields   []string
	prefixes []string
	patterns []*regexp.Regexp
}

var defaultPolicy = policy{
	headers: []string{"authorization", "cookie", "x-api-key"},
	// email and phone are entity attributes holding personal data.
	fields:   []string{"email", "phone", "password", "secret", "token"},
	prefixes: []string{"secret_", "api_key"},
	patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
		// JWTs; ten characters per segment keeps version strings out.
		regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
		regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
		// e-mail addresses quoted inside messages, e.g. a rejection detail.
		regexp.MustCompile(`[\p{L}\p{N}_.\-]+@[\p{L}\p{N}_.\-]+\.[\p{L}\p{N}_]+`),
	},
}

func (p policy) replaceAttr() func([]string, slog.Attr) slog.Attr {
	var opts []masq.Option
	for _, name := range p.headers {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range p.fields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range p.prefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range p.patterns {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}

// IsSensitiveHeader reports whether the HTTP header name carries credentials
// and must not be logged. The match ignores case.
func IsSensitiveHeader(name string) bool {
	for _, h := range defaultPolicy.headers {
		if strings.EqualFold(h, name) {
			return true
		}
	}
	return false
}
