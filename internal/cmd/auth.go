package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication helpers",
}

var authCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Sign in and print session details",
	Long: `Sign in with the configured credentials and print the resulting
session: user, role, company binding, permissions and token expiry.`,
	RunE: runAuthCheck,
}

func init() {
	authCmd.AddCommand(authCheckCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthCheck(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd.Context())
	if err != nil {
		return err
	}

	u, _ := s.CurrentUser()
	fmt.Printf("user:    %s (#%d)\n", u.Email, u.ID)
	fmt.Printf("name:    %s\n", u.DisplayName)
	fmt.Printf("role:    %s\n", u.Role)
	if id, ok := s.ActiveCompanyID(); ok {
		fmt.Printf("company: #%d\n", id)
	} else {
		fmt.Println("company: none (select one per operation)")
	}
	if u.ForcePasswordChange {
		fmt.Println("note:    password change required before other operations")
	}

	if len(u.Permissions) > 0 {
		caps := make([]string, 0, len(u.Permissions))
		for c, granted := range u.Permissions {
			if granted {
				caps = append(caps, c)
			}
		}
		sort.Strings(caps)
		fmt.Println("permissions:")
		for _, c := range caps {
			fmt.Printf("  - %s\n", c)
		}
	}

	if exp, ok := tokenExpiry(s.Token()); ok {
		fmt.Printf("token:   expires %s (%s)\n",
			exp.Format(time.RFC3339), time.Until(exp).Round(time.Second))
	}
	return nil
}

// tokenExpiry decodes the access token's exp claim without verifying
// the signature; the server remains the authority on validity.
func tokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
