package main

import (
	"errors"
	"os"
	"strconv"

	"github.com/gonewx/pong/pkg/app"
	"github.com/gonewx/pong/pkg/embedded"
	"github.com/gonewx/pong/pkg/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// options 命令行参数
type options struct {
	configPath string
	fontPath   string
	verbose    bool
	noSave     bool
	mute       bool
}

func main() {
	// .env 不存在时忽略
	_ = godotenv.Load()

	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "pong",
		Short:         "Two-player Pong. First to 10 points wins.",
		Long:          "Two-player Pong.\n\nLeft paddle: Q/A or W/S. Right paddle: Up/Down.\nF11 toggles fullscreen, F5 copies the score.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyEnv(cmd, opts)
			logging.Setup(opts.verbose, os.Stderr)

			if err := run(opts); err != nil {
				logrus.WithError(err).Error("pong exited with error")
				return err
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "game config YAML (default: built-in)")
	flags.StringVar(&opts.fontPath, "font", "", "TTF/OTF font for the score (default: Go Regular)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&opts.noSave, "no-save", false, "do not read or write settings and match records")
	flags.BoolVar(&opts.mute, "mute", false, "disable sound effects")

	return cmd
}

// applyEnv 未在命令行指定的参数从环境变量读取
func applyEnv(cmd *cobra.Command, opts *options) {
	flags := cmd.Flags()
	if v, ok := os.LookupEnv("PONG_CONFIG"); ok && !flags.Changed("config") {
		opts.configPath = v
	}
	if v, ok := os.LookupEnv("PONG_FONT"); ok && !flags.Changed("font") {
		opts.fontPath = v
	}
	if v, ok := os.LookupEnv("PONG_VERBOSE"); ok && !flags.Changed("verbose") {
		if verbose, err := strconv.ParseBool(v); err == nil {
			opts.verbose = verbose
		}
	}
}

func run(opts *options) error {
	embedded.Init(dataFS)

	game, err := app.NewApp(app.Config{
		ConfigPath: opts.configPath,
		FontPath:   opts.fontPath,
		NoSave:     opts.noSave,
		Mute:       opts.mute,
		Console:    os.Stdout,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := game.Close(); err != nil {
			logrus.WithError(err).Warn("failed to save on exit")
		}
	}()

	game.ApplyWindowSettings()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
