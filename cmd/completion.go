// Package cmd provides the snowcrash command-line interface.
// This file contains shell completion predictors for flag values.
package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/posener/complete"
)

// PredictFormat suggests the supported --format values.
func PredictFormat() complete.Predictor {
	return complete.PredictSet("yaml", "json")
}

// PredictBlueprintFiles suggests files with a Markdown or API Blueprint
// extension in the current directory, for the positional input
// argument.
func PredictBlueprintFiles() complete.Predictor {
	return complete.PredictFunc(func(_ complete.Args) []string {
		entries, err := os.ReadDir(".")
		if err != nil {
			return nil
		}

		var out []string
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			ext := strings.ToLower(filepath.Ext(entry.Name()))
			if ext == ".md" || ext == ".apib" || ext == ".apiblueprint" {
				out = append(out, entry.Name())
			}
		}

		return out
	})
}
