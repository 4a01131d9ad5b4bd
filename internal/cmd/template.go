package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plannerx/plx/internal/xlsx"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Generate import-template workbooks",
}

var templateCalendarCmd = &cobra.Command{
	Use:   "calendar <out.xlsx>",
	Short: "Write a calendar import template",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateCalendar,
}

var templateDimensionsCmd = &cobra.Command{
	Use:   "dimensions <out.xlsx>",
	Short: "Write a dimensions import template",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateDimensions,
}

func init() {
	templateCmd.AddCommand(templateCalendarCmd, templateDimensionsCmd)
	rootCmd.AddCommand(templateCmd)
}

func writeTemplate(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func runTemplateCalendar(cmd *cobra.Command, args []string) error {
	return writeTemplate(args[0], func(f *os.File) error {
		return xlsx.WriteCalendarTemplate(f)
	})
}

func runTemplateDimensions(cmd *cobra.Command, args []string) error {
	return writeTemplate(args[0], func(f *os.File) error {
		return xlsx.WriteDimensionsTemplate(f)
	})
}
