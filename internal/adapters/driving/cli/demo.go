package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/servicehub/internal/core/domain"
	"github.com/custodia-labs/servicehub/internal/logger"
)

// demoRequest is one service created by the demo.
type demoRequest struct {
	serviceID string
	userID    string
}

var demoRequests = []demoRequest{
	{"CP001", "USER123"},
	{"EL001", "USER123"},
	{"CL001", "USER456"},
	{"PL001", "USER456"},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the example scenario against a fresh in-memory registry",
	Long: `Creates four example services for two users, performs all of them,
then prints each user's service history.

The demo never touches the configured store.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, _ []string) (err error) {
	if newDemoRegistry == nil {
		return errors.New("demo registry not configured")
	}

	registry := newDemoRegistry()
	defer func() {
		if cerr := registry.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	ctx := context.Background()
	created := make([]*domain.Service, 0, len(demoRequests))
	for _, req := range demoRequests {
		svc, err := registry.Create(ctx, req.serviceID, req.userID)
		if err != nil {
			return fmt.Errorf("create %s: %w", req.serviceID, err)
		}
		created = append(created, svc)
	}

	logger.Section("Perform")
	for _, svc := range created {
		if _, err := registry.Perform(ctx, svc.Ref); err != nil {
			return fmt.Errorf("perform %s: %w", svc.ServiceID, err)
		}
	}

	for _, userID := range []string{"USER123", "USER456"} {
		services, err := registry.Services(ctx, userID)
		if err != nil {
			return fmt.Errorf("list %s: %w", userID, err)
		}
		cmd.Printf("\nServices for %s:\n", userID)
		for i := range services {
			cmd.Printf("Service ID: %s, Status: %s, Price: %s\n",
				services[i].ServiceID, services[i].Status, formatPrice(services[i].Price))
		}
	}
	return nil
}
