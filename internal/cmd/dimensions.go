package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/plannerx/plx/internal/errors"
	"github.com/plannerx/plx/internal/store"
)

var dimensionsCmd = &cobra.Command{
	Use:   "dimensions",
	Short: "Manage planning dimensions and their values",
}

var dimensionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a company's dimensions",
	RunE:  runDimensionsList,
}

var dimensionsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a dimension",
	RunE:  runDimensionsCreate,
}

var dimensionsUpdateCmd = &cobra.Command{
	Use:   "update <dimension-id>",
	Short: "Update a dimension",
	Args:  cobra.ExactArgs(1),
	RunE:  runDimensionsUpdate,
}

var dimensionsImportCmd = &cobra.Command{
	Use:   "import <workbook.xlsx>",
	Short: "Import dimensions and values from a workbook",
	Long: `Upload a workbook with Dimensions and Values sheets. Prints the
created/updated/skipped counts and any per-row errors.`,
	Args: cobra.ExactArgs(1),
	RunE: runDimensionsImport,
}

var valuesCmd = &cobra.Command{
	Use:   "values",
	Short: "Manage one dimension's values",
}

var valuesListCmd = &cobra.Command{
	Use:   "list <dimension-id>",
	Short: "List a dimension's values",
	Args:  cobra.ExactArgs(1),
	RunE:  runValuesList,
}

var valuesCreateCmd = &cobra.Command{
	Use:   "create <dimension-id>",
	Short: "Create a dimension value",
	Args:  cobra.ExactArgs(1),
	RunE:  runValuesCreate,
}

var valuesUpdateCmd = &cobra.Command{
	Use:   "update <dimension-id> <value-id>",
	Short: "Update a dimension value",
	Long: `Update a dimension value. Only the given flags are sent; omitted
fields keep their server-side values.`,
	Args: cobra.ExactArgs(2),
	RunE: runValuesUpdate,
}

var (
	dimCompanyID   int
	dimKey         string
	dimName        string
	dimDescription string
	dimDataType    string
	dimActive      bool

	valueKey       string
	valueName      string
	valueSortOrder int
	valueAttrsJSON string
	valueActive    bool
)

func init() {
	dimensionsCmd.PersistentFlags().IntVar(&dimCompanyID, "company", 0, "company id (defaults to the session's company)")

	create := dimensionsCreateCmd.Flags()
	create.StringVar(&dimKey, "key", "", "dimension key (required)")
	create.StringVar(&dimName, "name", "", "dimension name (required)")
	create.StringVar(&dimDescription, "description", "", "description")
	create.StringVar(&dimDataType, "data-type", "TEXT", "data type (TEXT, NUMBER, DATE)")
	dimensionsCreateCmd.MarkFlagRequired("key")
	dimensionsCreateCmd.MarkFlagRequired("name")

	update := dimensionsUpdateCmd.Flags()
	update.StringVar(&dimName, "name", "", "dimension name")
	update.StringVar(&dimDescription, "description", "", "description")
	update.StringVar(&dimDataType, "data-type", "", "data type (TEXT, NUMBER, DATE)")
	update.BoolVar(&dimActive, "active", false, "active flag")

	vcreate := valuesCreateCmd.Flags()
	vcreate.StringVar(&valueKey, "key", "", "value key (required)")
	vcreate.StringVar(&valueName, "name", "", "value name (required)")
	vcreate.IntVar(&valueSortOrder, "sort-order", 0, "sort order")
	vcreate.StringVar(&valueAttrsJSON, "attributes", "", `attributes as a JSON object, e.g. '{"channel":"web"}'`)
	valuesCreateCmd.MarkFlagRequired("key")
	valuesCreateCmd.MarkFlagRequired("name")

	vupdate := valuesUpdateCmd.Flags()
	vupdate.StringVar(&valueName, "name", "", "value name")
	vupdate.IntVar(&valueSortOrder, "sort-order", 0, "sort order")
	vupdate.StringVar(&valueAttrsJSON, "attributes", "", "attributes as a JSON object")
	vupdate.BoolVar(&valueActive, "active", false, "active flag")

	valuesCmd.AddCommand(valuesListCmd, valuesCreateCmd, valuesUpdateCmd)
	dimensionsCmd.AddCommand(dimensionsListCmd, dimensionsCreateCmd, dimensionsUpdateCmd, dimensionsImportCmd, valuesCmd)
	rootCmd.AddCommand(dimensionsCmd)
}

func runDimensionsList(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd.Context())
	if err != nil {
		return err
	}
	companyID, err := resolveCompanyID(s, dimCompanyID)
	if err != nil {
		return err
	}

	dims, err := s.LoadDimensions(cmd.Context(), companyID)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKEY\tNAME\tTYPE\tACTIVE")
	for _, d := range dims {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n", d.ID, d.Key, d.Name, d.DataType, d.IsActive)
	}
	return w.Flush()
}

func runDimensionsCreate(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd.Context())
	if err != nil {
		return err
	}
	companyID, err := resolveCompanyID(s, dimCompanyID)
	if err != nil {
		return err
	}

	created, err := s.CreateDimension(cmd.Context(), companyID, store.DimensionInput{
		Key:         dimKey,
		Name:        dimName,
		Description: dimDescription,
		DataType:    store.DimensionDataType(dimDataType),
	})
	if err != nil {
		return err
	}

	fmt.Printf("created dimension #%d %q (%s)\n", created.ID, created.Name, created.DataType)
	return nil
}

func runDimensionsUpdate(cmd *cobra.Command, args []string) error {
	dimensionID, err := parseID(args[0], "dimension id")
	if err != nil {
		return err
	}

	s, err := newSession(cmd.Context())
	if err != nil {
		return err
	}
	companyID, err := resolveCompanyID(s, dimCompanyID)
	if err != nil {
		return err
	}

	patch := store.DimensionPatch{}
	flags := cmd.Flags()
	if flags.Changed("name") {
		patch.Name = &dimName
	}
	if flags.Changed("description") {
		patch.Description = &dimDescription
	}
	if flags.Changed("data-type") {
		dt := store.NormalizeDataType(dimDataType)
		patch.DataType = &dt
	}
	if flags.Changed("active") {
		patch.IsActive = &dimActive
	}

	updated, err := s.UpdateDimension(cmd.Context(), companyID, dimensionID, patch)
	if err != nil {
		return err
	}

	fmt.Printf("updated dimension #%d %q\n", updated.ID, updated.Name)
	return nil
}

func runValuesList(cmd *cobra.Command, args []string) error {
	dimensionID, err := parseID(args[0], "dimension id")
	if err != nil {
		return err
	}

	s, err := newSession(cmd.Context())
	if err != nil {
		return err
	}
	companyID, err := resolveCompanyID(s, dimCompanyID)
	if err != nil {
		return err
	}

	values, err := s.LoadDimensionValues(cmd.Context(), companyID, dimensionID)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKEY\tNAME\tSORT\tACTIVE\tATTRIBUTES")
	for _, v := range values {
		attrs := ""
		if len(v.Attributes) > 0 {
			if data, err := json.Marshal(v.Attributes); err == nil {
				attrs = string(data)
			}
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%t\t%s\n", v.ID, v.Key, v.Name, v.SortOrder, v.IsActive, attrs)
	}
	return w.Flush()
}

func parseAttributes(raw string) (map[string]any, error) {
	if raw == "" {
		return nil, nil
	}
	var attrs map[string]any
	if err := json.Unmarshal([]byte(raw), &attrs); err != nil {
		return nil, errors.NewBadAttributesError(err)
	}
	return attrs, nil
}

func runValuesCreate(cmd *cobra.Command, args []string) error {
	dimensionID, err := parseID(args[0], "dimension id")
	if err != nil {
		return err
	}

	s, err := newSession(cmd.Context())
	if err != nil {
		return err
	}
	companyID, err := resolveCompanyID(s, dimCompanyID)
	if err != nil {
		return err
	}

	attrs, err := parseAttributes(valueAttrsJSON)
	if err != nil {
		return err
	}

	in := store.DimensionValueInput{
		Key:        valueKey,
		Name:       valueName,
		Attributes: attrs,
	}
	if cmd.Flags().Changed("sort-order") {
		in.SortOrder = &valueSortOrder
	}

	created, err := s.CreateDimensionValue(cmd.Context(), companyID, dimensionID, in)
	if err != nil {
		return err
	}

	fmt.Printf("created value #%d %q\n", created.ID, created.Name)
	return nil
}

func runValuesUpdate(cmd *cobra.Command, args []string) error {
	dimensionID, err := parseID(args[0], "dimension id")
	if err != nil {
		return err
	}
	valueID, err := parseID(args[1], "value id")
	if err != nil {
		return err
	}

	s, err := newSession(cmd.Context())
	if err != nil {
		return err
	}
	companyID, err := resolveCompanyID(s, dimCompanyID)
	if err != nil {
		return err
	}

	patch := store.ValuePatch{}
	flags := cmd.Flags()
	if flags.Changed("name") {
		patch.Name = &valueName
	}
	if flags.Changed("sort-order") {
		patch.SortOrder = &valueSortOrder
	}
	if flags.Changed("active") {
		patch.IsActive = &valueActive
	}
	if flags.Changed("attributes") {
		attrs, err := parseAttributes(valueAttrsJSON)
		if err != nil {
			return err
		}
		if attrs == nil {
			attrs = map[string]any{}
		}
		patch.Attributes = &attrs
	}

	updated, err := s.UpdateDimensionValue(cmd.Context(), companyID, dimensionID, valueID, patch)
	if err != nil {
		return err
	}

	fmt.Printf("updated value #%d %q\n", updated.ID, updated.Name)
	return nil
}

func runDimensionsImport(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd.Context())
	if err != nil {
		return err
	}
	companyID, err := resolveCompanyID(s, dimCompanyID)
	if err != nil {
		return err
	}

	f, err := openWorkbook(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	summary, err := s.ImportDimensionsExcel(cmd.Context(), companyID, f.Name(), f)
	if err != nil {
		return err
	}

	printBucket := func(label string, b store.ImportBucket) {
		fmt.Printf("%s: %d created, %d updated, %d skipped\n", label, b.Created, b.Updated, b.Skipped)
		for _, e := range b.Errors {
			fmt.Printf("  row %d: %s\n", e.Row, e.Error)
		}
	}
	printBucket("dimensions", summary.Dimensions)
	printBucket("values", summary.Values)
	return nil
}
