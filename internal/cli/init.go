package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/agility/internal/manifest"
)

const sampleManifestHeader = `# agility type manifest
# Types are agile unless trait is set to confined.
`

// sampleManifest is written by init when no manifest exists.
var sampleManifest = manifest.Manifest{
	Types: []manifest.Entry{
		{Name: "Widget"},
		{Name: "Window", Trait: "confined"},
	},
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration directory and a sample manifest",
		Long:  "Create the configuration directory with config.yaml and, if missing, a sample type manifest.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	// config.yaml was created by prepareSession.
	path, err := manifestPath()
	if err != nil {
		return withCode(exitSysError, fmt.Errorf("resolve manifest: %w", err))
	}

	created, err := writeManifestIfMissing(path)
	if err != nil {
		return withCode(exitSysError, fmt.Errorf("write manifest: %w", err))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "config: %s\n", current.configDir)
	if created {
		fmt.Fprintf(out, "manifest created: %s\n", path)
	} else {
		fmt.Fprintf(out, "manifest exists: %s\n", path)
	}
	return nil
}

// writeManifestIfMissing writes the sample manifest to path unless a file is
// already there. It reports whether a file was written.
func writeManifestIfMissing(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	data, err := yaml.Marshal(&sampleManifest)
	if err != nil {
		return false, fmt.Errorf("marshal manifest: %w", err)
	}

	return true, os.WriteFile(path, append([]byte(sampleManifestHeader), data...), 0o644)
}
