package main

import (
	"os"

	"github.com/san-kum/oscplot/internal/pipeline"
	"github.com/san-kum/oscplot/internal/viz"
	"github.com/spf13/cobra"
)

var (
	baseDir string
	show    bool
)

// main is the entry point for the oscplot CLI; the root command renders the
// angle-vs-time chart from the simulation's CSV output, and inspect prints a
// summary of that data without plotting.
// It exits the process with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "oscplot",
		Short:        "plot driven damped oscillator results",
		SilenceUsage: true,
		RunE:         runPlot,
	}

	rootCmd.PersistentFlags().StringVar(&baseDir, "base", "", "base directory (default: executable directory)")
	rootCmd.Flags().BoolVar(&show, "show", false, "open the terminal viewer after saving")

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "summarize simulation output",
		RunE:  runInspect,
	}

	rootCmd.AddCommand(inspectCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runPlot(cmd *cobra.Command, args []string) error {
	p := pipeline.New(baseDir)

	res, err := p.Run()
	if err != nil {
		return err
	}

	if show {
		return viz.Show(res.Time, res.Angle)
	}
	return nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	base, err := pipeline.ResolveBase(baseDir)
	if err != nil {
		return err
	}
	return pipeline.Summarize(base, os.Stdout)
}
