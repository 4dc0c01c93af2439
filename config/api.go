package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// Public paths: customer order flow, confirmation endpoint, health, GraphQL (read-only)
	return []string{"/order", "/confirm/:token", "/health", "/graphql"}
}
