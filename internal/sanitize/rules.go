package sanitize

import "regexp"

// DefaultRules is the standard ordered rule set. Specific token
// formats run before the generic assignment patterns so a Stripe key
// in a `secret:` assignment is named as a Stripe key, not a generic
// secret.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:        "stripe_test_key",
			Pattern:     regexp.MustCompile(`sk_test_[a-zA-Z0-9]{24,}`),
			Replacement: "[STRIPE_TEST_KEY_REDACTED]",
		},
		{
			Name:        "stripe_live_key",
			Pattern:     regexp.MustCompile(`sk_live_[a-zA-Z0-9]{24,}`),
			Replacement: "[STRIPE_LIVE_KEY_REDACTED]",
		},
		{
			Name:        "stripe_publish_key",
			Pattern:     regexp.MustCompile(`pk_(test|live)_[a-zA-Z0-9]{24,}`),
			Replacement: "[STRIPE_PUBLISH_KEY_REDACTED]",
		},
		{
			Name:        "github_token",
			Pattern:     regexp.MustCompile(`gh[ps]_[a-zA-Z0-9]{36,}`),
			Replacement: "[GITHUB_TOKEN_REDACTED]",
		},
		{
			// Key name is preserved; only the value is redacted.
			Name:        "generic_api_key",
			Pattern:     regexp.MustCompile(`(?i)(api[_-]?key["']?\s*[:=]\s*["']?)[a-zA-Z0-9_\-]{32,}`),
			Replacement: "${1}[API_KEY_REDACTED]",
		},
		{
			Name:        "bearer_token",
			Pattern:     regexp.MustCompile(`Bearer\s+[a-zA-Z0-9_\-.]{20,}`),
			Replacement: "Bearer [TOKEN_REDACTED]",
		},
		{
			Name:        "jwt",
			Pattern:     regexp.MustCompile(`eyJ[a-zA-Z0-9_-]*\.eyJ[a-zA-Z0-9_-]*\.[a-zA-Z0-9_-]*`),
			Replacement: "[JWT_TOKEN_REDACTED]",
		},
		{
			Name:        "aws_access_key",
			Pattern:     regexp.MustCompile(`AKIA[0-9A-Z]{16}`),
			Replacement: "[AWS_ACCESS_KEY_REDACTED]",
		},
		{
			Name:        "aws_secret_key",
			Pattern:     regexp.MustCompile(`(?i)aws[_-]?secret[_-]?access[_-]?key["']?\s*[:=]\s*["']?[a-zA-Z0-9/+=]{40}`),
			Replacement: "aws_secret_access_key: [AWS_SECRET_REDACTED]",
		},
		{
			Name:        "password",
			Pattern:     regexp.MustCompile(`(?i)password["']?\s*[:=]\s*["']?[^\s'"]{8,}`),
			Replacement: "password: [PASSWORD_REDACTED]",
		},
		{
			Name:        "secret",
			Pattern:     regexp.MustCompile(`(?i)secret["']?\s*[:=]\s*["']?[a-zA-Z0-9_\-]{16,}`),
			Replacement: "secret: [SECRET_REDACTED]",
		},
		{
			Name:        "private_key_header",
			Pattern:     regexp.MustCompile(`-----BEGIN (?:RSA )?PRIVATE KEY-----`),
			Replacement: "[PRIVATE_KEY_REDACTED]",
		},
	}
}
