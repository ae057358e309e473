// platformer is a side-scrolling platformer played in the terminal.
//
// Usage:
//
//	platformer play          - Play the game
//	platformer menu          - Title menu with high scores
//	platformer serve         - Start SSH server for remote play
//	platformer scores        - Show high scores and stats
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible particle bursts
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
//	--log <path>    - Write game lifecycle events to a log file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

const gameID = "platformer"

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer - run, jump and stomp in your terminal",
	Long: `Platformer is a side-scrolling platformer for the terminal.
Stomp enemies, collect coins and grab the star before your lives run out.

Available commands:
  play     - Play the game directly
  menu     - Title menu with high scores
  serve    - Start SSH server for remote play
  scores   - View high scores and stats

Examples:
  platformer play
  platformer play --difficulty easy
  platformer menu
  platformer serve --ssh :2222
  platformer scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Path to a log file for game events")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
