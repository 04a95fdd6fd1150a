package pkg

import "os"

// Getenv returns the value of the environment variable for key, falling back
// to defaultValue only when the key is not set at all. An empty value that is
// explicitly set wins over the default.
func Getenv(key, defaultValue string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	return value
}
