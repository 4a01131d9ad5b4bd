package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/plannerx/plx/internal/store"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage the active company's users",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users of a company",
	RunE:  runUsersList,
}

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user in a company",
	RunE:  runUsersCreate,
}

var (
	usersCompanyID   int
	userUsername     string
	userDisplayName  string
	userRole         string
	userTempPassword string
	userForceChange  bool
	userPermissions  []string
)

func init() {
	usersCmd.PersistentFlags().IntVar(&usersCompanyID, "company", 0, "company id (defaults to the session's company)")

	create := usersCreateCmd.Flags()
	create.StringVar(&userUsername, "username", "", "login email (required)")
	create.StringVar(&userDisplayName, "display-name", "", "display name (required)")
	create.StringVar(&userRole, "role", string(store.RoleKAM), "role (COMPANY_ADMIN, CEO, CFO, KAM)")
	create.StringVar(&userTempPassword, "temp-password", "", "temporary password (required)")
	create.BoolVar(&userForceChange, "force-change", true, "require a password change on first login")
	create.StringSliceVar(&userPermissions, "permission", nil, "grant a capability (repeatable)")
	usersCreateCmd.MarkFlagRequired("username")
	usersCreateCmd.MarkFlagRequired("display-name")
	usersCreateCmd.MarkFlagRequired("temp-password")

	usersCmd.AddCommand(usersListCmd, usersCreateCmd)
	rootCmd.AddCommand(usersCmd)
}

func runUsersList(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd.Context())
	if err != nil {
		return err
	}
	companyID, err := resolveCompanyID(s, usersCompanyID)
	if err != nil {
		return err
	}

	users, err := s.LoadCompanyUsers(cmd.Context(), companyID)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMAIL\tNAME\tROLE\tACTIVE")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n", u.ID, u.Email, u.DisplayName, u.Role, u.IsActive)
	}
	return w.Flush()
}

func runUsersCreate(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd.Context())
	if err != nil {
		return err
	}
	if _, err := resolveCompanyID(s, usersCompanyID); err != nil {
		return err
	}

	perms := store.Permissions{}
	for _, p := range userPermissions {
		perms[p] = true
	}

	created, err := s.CreateUserForActiveCompany(cmd.Context(), store.UserInput{
		Username:            userUsername,
		DisplayName:         userDisplayName,
		Role:                store.Role(userRole),
		TempPassword:        userTempPassword,
		ForcePasswordChange: userForceChange,
		Permissions:         perms,
	})
	if err != nil {
		return err
	}

	fmt.Printf("created user #%d %s (%s)\n", created.ID, created.Email, created.Role)
	return nil
}
