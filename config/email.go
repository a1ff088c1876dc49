package config

import "time"

// EmailConfig contains booking notification configuration. The notifier
// posts to an EmailJS-style trigger endpoint; when Enabled is false,
// booking confirmations are logged instead of sent.
type EmailConfig struct {
	Enabled    bool   `env:"ENABLED"     envDefault:"false"`
	Endpoint   string `env:"ENDPOINT"    envDefault:"https://api.emailjs.com/api/v1.0/email/send"`
	ServiceID  string `env:"SERVICE_ID"  envDefault:""`
	TemplateID string `env:"TEMPLATE_ID" envDefault:""`
	// ResetTemplateID selects the password reset template. Leaving it empty
	// disables reset emails without touching booking notifications.
	ResetTemplateID string        `env:"RESET_TEMPLATE_ID" envDefault:""`
	PublicKey       string        `env:"PUBLIC_KEY"  envDefault:""`
	Timeout         time.Duration `env:"TIMEOUT"     envDefault:"10s"`
	RetryLimit      int           `env:"RETRY_LIMIT" envDefault:"2"`
}

// Sanitize applies guardrails to email configuration values.
func (e *EmailConfig) Sanitize() {
	if e.Timeout <= 0 {
		e.Timeout = 10 * time.Second
	}
	if e.RetryLimit < 0 {
		e.RetryLimit = 0
	}
}
