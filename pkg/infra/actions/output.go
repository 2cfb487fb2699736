package actions

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// OutputFile appends step outputs to the file named by GITHUB_OUTPUT
type OutputFile struct {
	path string
}

// NewOutputFile creates an OutputFile. An empty path makes Write a no-op,
// which is the case when running outside of a workflow.
func NewOutputFile(path string) *OutputFile {
	return &OutputFile{path: strings.TrimSpace(path)}
}

// Write appends the values in key order. Multi-line values use the heredoc form.
func (o *OutputFile) Write(values map[string]string) error {
	if o.path == "" || len(values) == 0 {
		return nil
	}

	f, err := os.OpenFile(o.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return goerr.Wrap(err, "failed to open output file", goerr.V("path", o.path))
	}
	defer func() { _ = f.Close() }()

	if err := writeOutputs(f, values); err != nil {
		return goerr.Wrap(err, "failed to write outputs", goerr.V("path", o.path))
	}
	return nil
}

func writeOutputs(w io.Writer, values map[string]string) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		if strings.TrimSpace(k) == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := values[key]
		if !strings.ContainsAny(value, "\r\n") {
			if _, err := fmt.Fprintf(w, "%s=%s\n", key, value); err != nil {
				return err
			}
			continue
		}

		delimiter := "ghadelimiter_" + uuid.NewString()
		if _, err := fmt.Fprintf(w, "%s<<%s\n%s\n%s\n", key, delimiter, value, delimiter); err != nil {
			return err
		}
	}
	return nil
}
