package cmd

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/MohamedRadiWebDev/ACC/internal/config"
	"github.com/MohamedRadiWebDev/ACC/internal/store"
)

var exportOut string

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the whole store as a JSON snapshot",
	Long: `Export every collection of the store as one JSON object.

The snapshot can be re-imported with "acc import"; a replace-mode import of
an export reproduces the store exactly.

Example:
  acc export --out backup.json`,
	Run: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (default stdout)")
}

func runExport(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")
	exitOnError(cfg.Validate(), "invalid configuration")

	st, err := store.Open(cfg.Store.Path)
	exitOnError(err, "failed to open store")
	defer st.Close()

	snap, err := st.ExportAll()
	exitOnError(err, "failed to export store")

	data, err := json.MarshalIndent(snap, "", "  ")
	exitOnError(err, "failed to encode snapshot")

	if exportOut == "" {
		os.Stdout.Write(data)
		os.Stdout.WriteString("\n")
		return
	}
	exitOnError(os.WriteFile(exportOut, data, 0o644), "failed to write snapshot")
	slog.Info("snapshot written", "path", exportOut)
}
