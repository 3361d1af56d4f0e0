package utils

import "os"

func IsProdEnv() bool {
	return os.Getenv("VIDAFIT_ENV") == "prod"
}

// ApiBaseURL returns the backend base URL, defaulting to the local dev
// server used by the mobile simulator builds.
func ApiBaseURL() string {
	if base := os.Getenv("VIDAFIT_API_BASE"); len(base) > 0 {
		return base
	}
	return "http://localhost:8090"
}
