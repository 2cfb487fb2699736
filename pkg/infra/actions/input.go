// Package actions implements the GitHub Actions runner file and environment conventions.
package actions

import (
	"os"
	"strings"
)

// InputEnv returns the environment variable name the runner uses for an action input,
// e.g. "INPUT_TEMPLATE" for "template". Spaces are replaced with underscores.
func InputEnv(name string) string {
	return "INPUT_" + strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
}

// Input returns the value of an action input, or an empty string if it is not set
func Input(name string) string {
	return os.Getenv(InputEnv(name))
}
