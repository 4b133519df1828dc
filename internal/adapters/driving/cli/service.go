package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var serviceJSON bool

var errRegistryNotConfigured = errors.New("service registry not configured")

var serviceCmd = &cobra.Command{
	Use:   "service",
	Short: "Manage service requests",
	Long: `Create, perform and list service requests.

A service ID's first two characters select the service type:
  CP - carpentry ($500)    EL - electrician ($400)
  CL - cleaning ($200)     PL - plumbing ($300)`,
	PersistentPreRunE: requireRegistry,
}

var serviceCreateCmd = &cobra.Command{
	Use:   "create [service-id] [user-id]",
	Short: "Create a service request for a user",
	Args:  cobra.ExactArgs(2),
	RunE:  runServiceCreate,
}

var servicePerformCmd = &cobra.Command{
	Use:   "perform [ref]",
	Short: "Perform a service, marking it completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runServicePerform,
}

var serviceListCmd = &cobra.Command{
	Use:   "list [user-id]",
	Short: "List a user's services in creation order",
	Args:  cobra.ExactArgs(1),
	RunE:  runServiceList,
}

var serviceUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List users with a service history",
	Args:  cobra.NoArgs,
	RunE:  runServiceUsers,
}

func init() {
	serviceListCmd.Flags().BoolVar(&serviceJSON, "json", false, "output services as JSON")
	serviceCmd.AddCommand(serviceCreateCmd)
	serviceCmd.AddCommand(servicePerformCmd)
	serviceCmd.AddCommand(serviceListCmd)
	serviceCmd.AddCommand(serviceUsersCmd)
	rootCmd.AddCommand(serviceCmd)
}

func runServiceCreate(cmd *cobra.Command, args []string) error {
	if serviceRegistry == nil {
		return errRegistryNotConfigured
	}

	svc, err := serviceRegistry.Create(context.Background(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("create service: %w", err)
	}

	st := outputStyles(cmd)
	cmd.Printf("Created %s service %s for %s\n", svc.Kind, svc.ServiceID, svc.UserID)
	cmd.Printf("  Ref:    %s\n", svc.Ref)
	cmd.Printf("  Price:  %s\n", st.Price(formatPrice(svc.Price)))
	cmd.Printf("  Status: %s\n", st.Status(svc.Status))
	return nil
}

func runServicePerform(cmd *cobra.Command, args []string) error {
	if serviceRegistry == nil {
		return errRegistryNotConfigured
	}

	svc, err := serviceRegistry.Perform(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("perform service: %w", err)
	}

	cmd.Printf("Service %s for %s is %s\n", svc.ServiceID, svc.UserID, outputStyles(cmd).Status(svc.Status))
	return nil
}

func runServiceList(cmd *cobra.Command, args []string) error {
	if serviceRegistry == nil {
		return errRegistryNotConfigured
	}

	userID := args[0]
	services, err := serviceRegistry.Services(context.Background(), userID)
	if err != nil {
		return fmt.Errorf("list services: %w", err)
	}

	if serviceJSON {
		return printJSON(cmd, services)
	}

	st := outputStyles(cmd)
	if len(services) == 0 {
		cmd.Printf("No services for %s.\n", userID)
		return nil
	}

	cmd.Println(st.Title(fmt.Sprintf("Services for %s:", userID)))
	for i := range services {
		printService(cmd, st, &services[i])
	}
	return nil
}

func runServiceUsers(cmd *cobra.Command, _ []string) error {
	if serviceRegistry == nil {
		return errRegistryNotConfigured
	}

	users, err := serviceRegistry.Users(context.Background())
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	if len(users) == 0 {
		cmd.Println("No users yet.")
		return nil
	}
	for _, u := range users {
		cmd.Println(u)
	}
	return nil
}
