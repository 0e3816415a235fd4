package main

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"fieldmap-service/internal/cache"
	"fieldmap-service/internal/fieldmap/service"
)

var rootCmd = &cobra.Command{
	Use:   "fieldmap",
	Short: "Map import column headers to canonical accounting fields",
	Long: `fieldmap - offline access to the field mapping engine.

Examples:
  fieldmap map export.csv --software megasoft   # map headers of a file
  fieldmap map --fields "Naziv kupca,Iznos"     # map a list of names
  fieldmap fields tax_id                        # known variations of a field
  fieldmap preset onivo invoices                # competitor column table`,
	SilenceUsage: true,
}

var verbose bool

// newService: CLI живёт один запуск, поэтому кэш только в памяти.
func newService() *service.Service {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	return service.New(cache.NewMemory(0), logger)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log engine decisions to stderr")
	rootCmd.AddCommand(mapCmd(), fieldsCmd(), presetCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
