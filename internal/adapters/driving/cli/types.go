package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/servicehub/internal/adapters/driving/cli/styles"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the service types that can be requested",
	Args:  cobra.NoArgs,
	RunE:  runTypes,
}

func init() {
	rootCmd.AddCommand(typesCmd)
}

func runTypes(cmd *cobra.Command, _ []string) error {
	if serviceCatalogue == nil {
		return errors.New("service catalogue not configured")
	}

	st := outputStyles(cmd)
	cmd.Println(st.Title("Service types:"))
	for _, kind := range serviceCatalogue.List() {
		cmd.Printf("  %s  %-12s %s %s\n",
			kind.Prefix(), kind, styles.Pad(st.Price(formatPrice(kind.Price())), 6), st.Muted(kind.Description()))
	}
	return nil
}
