package commands

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"contractseal/internal/app"
)

var (
	home       string
	configPath string
	keyBits    int

	wire   *app.Wire
	logger zerolog.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:   "contractseal",
		Short: "Multi-party contract co-signing and confidential messaging",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".contractseal")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			cfg := app.Default(home)
			if configPath == "" {
				configPath = filepath.Join(home, "config.yaml")
			}
			if err := cfg.LoadFile(configPath); err != nil {
				return err
			}
			if cmd.Flags().Changed("key-bits") {
				cfg.KeyBits = keyBits
			}

			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			wire = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "base dir (default ~/.contractseal)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <home>/config.yaml)")
	root.PersistentFlags().IntVar(&keyBits, "key-bits", 2048, "RSA modulus size for new key pairs")

	root.AddCommand(demoCmd(), verifyCmd(), listCmd())
	return root.Execute()
}
