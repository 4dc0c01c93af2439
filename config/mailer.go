package config

import "os"

// MailerConfig holds SMTP transport settings for the notifier.
type MailerConfig struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

// LoadMailerConfig reads SMTP settings from the environment.
// An empty Host means mail is not configured and the notifier falls back to logging.
func LoadMailerConfig() MailerConfig {
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}
	return MailerConfig{
		Host: os.Getenv("SMTP_HOST"),
		Port: port,
		User: os.Getenv("SMTP_USER"),
		Pass: os.Getenv("SMTP_PASS"),
		From: os.Getenv("SMTP_FROM"),
	}
}
