package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Inspect and import the fiscal calendar",
}

var calendarRowsCmd = &cobra.Command{
	Use:   "rows",
	Short: "Print the company's fiscal calendar",
	RunE:  runCalendarRows,
}

var calendarImportCmd = &cobra.Command{
	Use:   "import <workbook.xlsx>",
	Short: "Import a fiscal calendar workbook",
	Long: `Upload a calendar workbook. On success the server links the
company's calendar sheet and the company record is refreshed.`,
	Args: cobra.ExactArgs(1),
	RunE: runCalendarImport,
}

var (
	calendarCompanyID int
	calendarLimit     int
)

func init() {
	calendarCmd.PersistentFlags().IntVar(&calendarCompanyID, "company", 0, "company id (defaults to the session's company)")
	calendarRowsCmd.Flags().IntVar(&calendarLimit, "limit", 30, "print at most this many rows (0 for all)")

	calendarCmd.AddCommand(calendarRowsCmd, calendarImportCmd)
	rootCmd.AddCommand(calendarCmd)
}

func runCalendarRows(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd.Context())
	if err != nil {
		return err
	}
	companyID, err := resolveCompanyID(s, calendarCompanyID)
	if err != nil {
		return err
	}

	rows, err := s.LoadCalendar(cmd.Context(), companyID)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tFY\tFQ\tFM\tFW\tYRWK\tDAY")
	for i, r := range rows {
		if calendarLimit > 0 && i >= calendarLimit {
			fmt.Fprintf(w, "... %d more rows\n", len(rows)-calendarLimit)
			break
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%s\t%s\n",
			r.DateID, r.FiscalYear, r.FiscalQuarter, r.FiscalMonth, r.FiscalWeek, r.FiscalYrwk, r.DayName)
	}
	return w.Flush()
}

func runCalendarImport(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd.Context())
	if err != nil {
		return err
	}
	companyID, err := resolveCompanyID(s, calendarCompanyID)
	if err != nil {
		return err
	}

	f, err := openWorkbook(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	if err := s.ImportCalendar(cmd.Context(), companyID, f.Name(), f); err != nil {
		return err
	}

	fmt.Printf("imported calendar: %d rows loaded\n", len(s.CalendarRows()))
	return nil
}
