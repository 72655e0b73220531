package webhook

// SecurityConfig holds webhook security settings
type SecurityConfig struct {
	Secret          string   // Shared secret for signature verification, empty disables it
	AllowedIPs      []string // IP whitelist (optional)
	RateLimitPerMin int      // Max requests per minute per source, 0 disables limiting
}

// SignatureHeader is where Launchpad puts the HMAC of the body.
const SignatureHeader = "X-Hub-Signature"
