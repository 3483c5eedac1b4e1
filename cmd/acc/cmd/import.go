package cmd

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/MohamedRadiWebDev/ACC/internal/config"
	"github.com/MohamedRadiWebDev/ACC/internal/store"
)

var (
	importIn   string
	importMode string
)

// importCmd represents the import command.
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a JSON snapshot into the store",
	Long: `Import a snapshot produced by "acc export".

Modes:
  replace - clear every collection, then load the snapshot
  merge   - overlay the snapshot onto existing records (same-id records are
            overwritten)

Either way the import is a single store transaction.

Example:
  acc import --in backup.json --mode replace`,
	Run: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importIn, "in", "", "Input file (required)")
	importCmd.Flags().StringVar(&importMode, "mode", string(store.ImportMerge), "Import mode: replace or merge")

	importCmd.MarkFlagRequired("in")
}

func runImport(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")
	exitOnError(cfg.Validate(), "invalid configuration")

	data, err := os.ReadFile(importIn)
	exitOnError(err, "failed to read snapshot")

	var snap store.Snapshot
	exitOnError(json.Unmarshal(data, &snap), "failed to parse snapshot")

	st, err := store.Open(cfg.Store.Path)
	exitOnError(err, "failed to open store")
	defer st.Close()

	exitOnError(st.ImportSnapshot(&snap, store.ImportMode(importMode)), "failed to import snapshot")
	slog.Info("snapshot imported", "path", importIn, "mode", importMode)
}
