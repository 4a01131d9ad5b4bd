package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/plannerx/plx/internal/store"
)

var companiesCmd = &cobra.Command{
	Use:   "companies",
	Short: "Manage tenant companies (SYSADMIN)",
}

var companiesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all companies",
	RunE:  runCompaniesList,
}

var companiesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a company",
	Long: `Create a company. The company code is derived from the domain
(uppercased alphanumerics, accents stripped, at most 10 characters).`,
	RunE: runCompaniesCreate,
}

var companiesUpdateCmd = &cobra.Command{
	Use:   "update <company-id>",
	Short: "Update a company",
	Long: `Update a company. Only the given flags are sent; everything else
keeps its server-side value. The domain cannot be changed.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompaniesUpdate,
}

var (
	companyName     string
	companyDomain   string
	companyIndustry string
	companyAddress1 string
	companyAddress2 string
	companyCity     string
	companyState    string
	companyZip      string
	companyActive   bool
	companySheetID  int
)

func init() {
	create := companiesCreateCmd.Flags()
	create.StringVar(&companyName, "name", "", "company name (required)")
	create.StringVar(&companyDomain, "domain", "", "company domain (required)")
	create.StringVar(&companyIndustry, "industry", "", "industry")
	create.StringVar(&companyAddress1, "address1", "", "address line 1")
	create.StringVar(&companyAddress2, "address2", "", "address line 2")
	create.StringVar(&companyCity, "city", "", "city")
	create.StringVar(&companyState, "state", "", "state")
	create.StringVar(&companyZip, "zip", "", "ZIP code")
	companiesCreateCmd.MarkFlagRequired("name")
	companiesCreateCmd.MarkFlagRequired("domain")

	update := companiesUpdateCmd.Flags()
	update.StringVar(&companyName, "name", "", "company name")
	update.StringVar(&companyIndustry, "industry", "", "industry")
	update.StringVar(&companyAddress1, "address1", "", "address line 1")
	update.StringVar(&companyAddress2, "address2", "", "address line 2")
	update.StringVar(&companyCity, "city", "", "city")
	update.StringVar(&companyState, "state", "", "state")
	update.StringVar(&companyZip, "zip", "", "ZIP code")
	update.BoolVar(&companyActive, "active", false, "active flag")
	update.IntVar(&companySheetID, "calendar-sheet", 0, "calendar sheet id")

	companiesCmd.AddCommand(companiesListCmd, companiesCreateCmd, companiesUpdateCmd)
	rootCmd.AddCommand(companiesCmd)
}

func runCompaniesList(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd.Context())
	if err != nil {
		return err
	}
	if err := s.LoadCompanies(cmd.Context()); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDOMAIN\tINDUSTRY\tACTIVE")
	for _, c := range s.Companies() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n", c.ID, c.Name, c.Domain, c.Industry, c.IsActive)
	}
	return w.Flush()
}

func runCompaniesCreate(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd.Context())
	if err != nil {
		return err
	}

	created, err := s.CreateCompany(cmd.Context(), store.CompanyInput{
		Name:     companyName,
		Domain:   companyDomain,
		Industry: companyIndustry,
		Address1: companyAddress1,
		Address2: companyAddress2,
		City:     companyCity,
		State:    companyState,
		Zip:      companyZip,
	})
	if err != nil {
		return err
	}

	fmt.Printf("created company #%d %q (%s)\n", created.ID, created.Name, created.Domain)
	return nil
}

func runCompaniesUpdate(cmd *cobra.Command, args []string) error {
	companyID, err := parseID(args[0], "company id")
	if err != nil {
		return err
	}

	s, err := newSession(cmd.Context())
	if err != nil {
		return err
	}

	patch := store.CompanyPatch{}
	flags := cmd.Flags()
	if flags.Changed("name") {
		patch.Name = &companyName
	}
	if flags.Changed("industry") {
		patch.Industry = &companyIndustry
	}
	if flags.Changed("address1") {
		patch.Address1 = &companyAddress1
	}
	if flags.Changed("address2") {
		patch.Address2 = &companyAddress2
	}
	if flags.Changed("city") {
		patch.City = &companyCity
	}
	if flags.Changed("state") {
		patch.State = &companyState
	}
	if flags.Changed("zip") {
		patch.Zip = &companyZip
	}
	if flags.Changed("active") {
		patch.IsActive = &companyActive
	}
	if flags.Changed("calendar-sheet") {
		patch.CalendarSheetID = &companySheetID
	}

	updated, err := s.UpdateCompany(cmd.Context(), companyID, patch)
	if err != nil {
		return err
	}

	fmt.Printf("updated company #%d %q\n", updated.ID, updated.Name)
	return nil
}
