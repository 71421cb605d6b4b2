// chickens is a two-level Chicken Invaders arcade game for the terminal.
//
// Usage:
//
//	chickens                 - Play (same as 'chickens play')
//	chickens play            - Play from the main menu
//	chickens levels          - List the registered levels
//	chickens config          - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>        - Custom config YAML
//	--difficulty <preset>  - easy, normal or hard
//	--frontend <name>      - tea (default) or tcell
//	--fps <rate>           - Redraw rate (default: 60)
//	--sound                - Play sound effects
//	--log-file <path>      - Write logs to a file
//	--debug                - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import levels to register them
	_ "github.com/vovakirdan/chicken-invaders/internal/levels/boss"
	_ "github.com/vovakirdan/chicken-invaders/internal/levels/formation"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFrontend   string
	flagFPS        int
	flagSound      bool
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chickens",
	Short: "Chicken Invaders - shoot down the chickens in your terminal",
	Long: `Chicken Invaders is a terminal arcade shooter in two levels.

Level 1 sends a row of chickens sweeping across the sky. Level 2 is a
boss chicken that has to be hit many times. Your gun fires on its own;
dodge the eggs and keep your lives.

Available commands:
  play     - Start the game (default)
  levels   - Show the registered levels
  config   - Print the effective configuration

Examples:
  chickens
  chickens --difficulty hard
  chickens play --frontend tcell --sound
  chickens config --config ./my-chickens.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	flags.StringVar(&flagFrontend, "frontend", frontendTea, "Terminal frontend: tea or tcell")
	flags.IntVar(&flagFPS, "fps", 60, "Redraw rate (frames per second)")
	flags.BoolVar(&flagSound, "sound", false, "Play sound effects")
	flags.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	flags.BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}
