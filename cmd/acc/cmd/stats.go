package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/MohamedRadiWebDev/ACC/internal/config"
	"github.com/MohamedRadiWebDev/ACC/internal/store"
)

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Display per-collection record counts",
	Long: `Display the number of records stored in every collection.

Example:
  acc stats`,
	Run: runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")
	exitOnError(cfg.Validate(), "invalid configuration")

	st, err := store.Open(cfg.Store.Path)
	exitOnError(err, "failed to open store")
	defer st.Close()

	stats, err := st.Stats()
	exitOnError(err, "failed to get statistics")

	collections := make([]string, 0, len(stats))
	for name := range stats {
		collections = append(collections, name)
	}
	sort.Strings(collections)

	fmt.Println("\n=== Store Statistics ===")
	for _, name := range collections {
		fmt.Printf("%-22s %d\n", name, stats[name])
	}
	fmt.Println()
}
