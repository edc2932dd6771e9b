// Package integration provides the embedded starter configuration.
package integration

import (
	"bytes"
	_ "embed"
	"text/template"

	"github.com/idelchi/toobig/internal/toobig"
)

// ConfigTemplate contains the starter configuration file template.
//
//go:embed config.toml.tmpl
var ConfigTemplate string

// Render renders the starter configuration with the built-in defaults
// filled in.
func Render() (string, error) {
	tmpl, err := template.New("config").Parse(ConfigTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any{
		"Top": toobig.DefaultTopN,
	}); err != nil {
		return "", err
	}

	return buf.String(), nil
}
