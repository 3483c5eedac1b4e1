package cmd

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MohamedRadiWebDev/ACC/internal/config"
	"github.com/MohamedRadiWebDev/ACC/internal/store"
)

var resetYes bool

// resetCmd represents the reset command.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear every collection in the store",
	Long: `Delete every record from every collection in one transaction.

Example:
  acc reset --yes`,
	Run: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Skip the confirmation prompt")
}

func runReset(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")
	exitOnError(cfg.Validate(), "invalid configuration")

	if !resetYes {
		fmt.Printf("This deletes every record in %s. Continue? [y/N] ", cfg.Store.Path)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.TrimSpace(strings.ToLower(answer)) != "y" {
			fmt.Println("Aborted.")
			return
		}
	}

	st, err := store.Open(cfg.Store.Path)
	exitOnError(err, "failed to open store")
	defer st.Close()

	exitOnError(st.Reset(), "failed to reset store")
	slog.Info("store reset", "path", cfg.Store.Path)
}
