package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/servicehub/internal/adapters/driving/cli/styles"
	"github.com/custodia-labs/servicehub/internal/core/domain"
)

// formatPrice renders a price without trailing zeros ("500", "12.5").
func formatPrice(p float64) string {
	return "$" + strconv.FormatFloat(p, 'g', -1, 64)
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// outputStyles returns styles for cmd's output writer. Styling needs the
// output.color setting and a terminal.
func outputStyles(cmd *cobra.Command) *styles.Styles {
	if settingsService == nil || !isTerminal(cmd.OutOrStdout()) {
		return styles.Plain()
	}
	settings, err := settingsService.Get()
	if err != nil || !settings.Output.Color {
		return styles.Plain()
	}
	return styles.New(styles.DefaultTheme(), true)
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func printService(cmd *cobra.Command, st *styles.Styles, svc *domain.Service) {
	cmd.Printf("  %-8s %-12s %s %s %s\n",
		svc.ServiceID,
		svc.Kind,
		styles.Pad(st.Status(svc.Status), 12),
		styles.Pad(st.Price(formatPrice(svc.Price)), 6),
		st.Muted(svc.Ref))
}
