// Package cli implements the hextanks CLI commands: connecting to a server
// and playing a game, printing the version, and validating an offline map
// fixture against the bot planner.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// config is the layered session configuration: cobra flags override env
// vars (HEXTANKS_*) which override hextanks.yaml, resolved once in
// PersistentPreRunE and shared by every subcommand that needs it.
type config struct {
	Server     string
	Name       string
	Password   string
	Game       string
	NumTurns   int
	NumPlayers int
	IsFull     bool
	IsObserver bool
	Timeout    time.Duration

	SpectatorAddr string
	Display       bool
}

var cfg config

// rootCmd is the top-level cobra command for the hextanks CLI.
var rootCmd = &cobra.Command{
	Use:   "hextanks",
	Short: "HexTanks client",
	Long:  "Connect to a HexTanks game server, play a game with the built-in bot, and inspect maps offline.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("server", "127.0.0.1:50000", "game server address (host:port)")
	rootCmd.PersistentFlags().String("name", "", "player name")
	rootCmd.PersistentFlags().String("password", "", "player password")
	rootCmd.PersistentFlags().String("game", "", "game name to join or create")
	rootCmd.PersistentFlags().Int("num-turns", 0, "number of turns, when creating a new game")
	rootCmd.PersistentFlags().Int("num-players", 0, "number of players, when creating a new game")
	rootCmd.PersistentFlags().Bool("is-full", false, "wait for the game to fill before starting")
	rootCmd.PersistentFlags().Bool("is-observer", false, "join as an observer")
	rootCmd.PersistentFlags().Duration("timeout", 10*time.Second, "per-action network timeout")
	rootCmd.PersistentFlags().String("config", "", "path to a hextanks.yaml config file")
	rootCmd.PersistentFlags().String("spectator-addr", "", "address to serve the spectator websocket hub on (disabled if empty)")
	rootCmd.PersistentFlags().Bool("display", false, "open a native hex-board viewer window while playing")

	viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server"))
	viper.BindPFlag("name", rootCmd.PersistentFlags().Lookup("name"))
	viper.BindPFlag("password", rootCmd.PersistentFlags().Lookup("password"))
	viper.BindPFlag("game", rootCmd.PersistentFlags().Lookup("game"))
	viper.BindPFlag("num_turns", rootCmd.PersistentFlags().Lookup("num-turns"))
	viper.BindPFlag("num_players", rootCmd.PersistentFlags().Lookup("num-players"))
	viper.BindPFlag("is_full", rootCmd.PersistentFlags().Lookup("is-full"))
	viper.BindPFlag("is_observer", rootCmd.PersistentFlags().Lookup("is-observer"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("spectator_addr", rootCmd.PersistentFlags().Lookup("spectator-addr"))
	viper.BindPFlag("display", rootCmd.PersistentFlags().Lookup("display"))

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(validateMapCmd)
}

// loadConfig resolves hextanks.yaml (flags > env > file) into cfg.
func loadConfig(cmd *cobra.Command) error {
	viper.SetEnvPrefix("hextanks")
	viper.AutomaticEnv()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("hextanks")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config: %w", err)
		}
	}

	cfg = config{
		Server:     viper.GetString("server"),
		Name:       viper.GetString("name"),
		Password:   viper.GetString("password"),
		Game:       viper.GetString("game"),
		NumTurns:   viper.GetInt("num_turns"),
		NumPlayers: viper.GetInt("num_players"),
		IsFull:     viper.GetBool("is_full"),
		IsObserver: viper.GetBool("is_observer"),
		Timeout:    viper.GetDuration("timeout"),

		SpectatorAddr: viper.GetString("spectator_addr"),
		Display:       viper.GetBool("display"),
	}
	return nil
}
