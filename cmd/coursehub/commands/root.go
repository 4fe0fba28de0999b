package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"coursehub/internal/app"
)

var (
	configPath   string
	apiURL       string
	seedFile     string
	delay        time.Duration
	strict       bool
	showMessages bool
	queryExpr    string

	appCtx *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:          "coursehub",
		Short:        "Browse, search, add and delete courses",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				dir, err := os.UserConfigDir()
				if err == nil {
					configPath = filepath.Join(dir, "coursehub", "config.yaml")
				}
			}
			cfg, err := app.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			flags := cmd.Flags()
			if flags.Changed("api") {
				cfg.APIURL = apiURL
			}
			if flags.Changed("seed") {
				cfg.SeedFile = seedFile
			}
			if flags.Changed("delay") {
				cfg.Delay = delay
			}
			if strict {
				cfg.ErrorPolicy = "return"
			}

			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			appCtx = app.New(w)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if appCtx == nil {
				return nil
			}
			err := appCtx.Close()
			if showMessages {
				printMessages(cmd)
			}
			return err
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/coursehub/config.yaml)")
	root.PersistentFlags().StringVar(&apiURL, "api", "", "courses server root (e.g. http://127.0.0.1:8080); empty uses the in-process mock")
	root.PersistentFlags().StringVar(&seedFile, "seed", "", "YAML/JSON seed for the in-process mock")
	root.PersistentFlags().DurationVar(&delay, "delay", 0, "simulated latency of the in-process mock")
	root.PersistentFlags().BoolVar(&strict, "strict", false, "report request failures instead of printing empty results")
	root.PersistentFlags().BoolVar(&showMessages, "messages", false, "print the message log after the command")

	root.AddCommand(
		listCmd(),
		dashboardCmd(),
		getCmd(),
		searchCmd(),
		addCmd(),
		deleteCmd(),
		updateCmd(),
		uiCmd(),
	)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return root.ExecuteContext(ctx)
}
