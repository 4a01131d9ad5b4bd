package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var sheetsCmd = &cobra.Command{
	Use:   "sheets",
	Short: "Inspect planning sheets",
}

var sheetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a company's sheets",
	RunE:  runSheetsList,
}

var sheetsCompanyID int

func init() {
	sheetsCmd.PersistentFlags().IntVar(&sheetsCompanyID, "company", 0, "company id (defaults to the session's company)")
	sheetsCmd.AddCommand(sheetsListCmd)
	rootCmd.AddCommand(sheetsCmd)
}

func runSheetsList(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd.Context())
	if err != nil {
		return err
	}
	companyID, err := resolveCompanyID(s, sheetsCompanyID)
	if err != nil {
		return err
	}

	sheets, err := s.LoadSheets(cmd.Context(), companyID)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKEY\tNAME\tACTIVE")
	for _, sh := range sheets {
		fmt.Fprintf(w, "%d\t%s\t%s\t%t\n", sh.ID, sh.Key, sh.Name, sh.IsActive)
	}
	return w.Flush()
}
