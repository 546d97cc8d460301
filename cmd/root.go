package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/pypdfium2-team/demolib-go/demolib"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "demoapp",
	Short: "Demo consumer for the trivial_add native library",
	Long: `Invokes the trivial_add function exported by the demo native library
and prints the inputs and the result, one labeled value per line.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := runDemo(cmd)
		if err != nil {
			fmt.Printf("Error running demo: %v\n", err)
			return
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Int32P("a", "a", 1, "First addend")
	rootCmd.Flags().Int32P("b", "b", 2, "Second addend")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

func runDemo(cmd *cobra.Command) error {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("failed to get verbose: %w", err)
	}
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	a, err := cmd.Flags().GetInt32("a")
	if err != nil {
		return fmt.Errorf("failed to get a: %w", err)
	}
	b, err := cmd.Flags().GetInt32("b")
	if err != nil {
		return fmt.Errorf("failed to get b: %w", err)
	}

	doDemo(cmd.OutOrStdout(), a, b)
	return nil
}

// doDemo calls into the native library and reports the inputs and the
// result. The three output lines are the program's external contract.
func doDemo(out io.Writer, a, b int32) {
	logrus.WithFields(logrus.Fields{
		"a": a,
		"b": b,
	}).Debug("calling trivial_add")

	result := demolib.Add(a, b)

	logrus.WithFields(logrus.Fields{
		"result": result,
	}).Debug("trivial_add returned")

	fmt.Fprintf(out, "a %d\n", a)
	fmt.Fprintf(out, "b %d\n", b)
	fmt.Fprintf(out, "result %d\n", result)
}
