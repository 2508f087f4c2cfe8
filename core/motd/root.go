package motd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/opensvc/motd/core/motdcmd"
	"github.com/opensvc/motd/core/output"
	"github.com/opensvc/motd/util/bootid"
	"github.com/opensvc/motd/util/logging"
	"github.com/opensvc/motd/util/render"
)

var (
	// Version is set at build time.
	Version = "dev"

	callerFlag bool
	debugFlag  bool
	quietFlag  bool

	root = newCmdRoot()
)

func newCmdRoot() *cobra.Command {
	return &cobra.Command{
		Use:               filepath.Base(os.Args[0]),
		Short:             "greet the user with the last system update and the boot time",
		PersistentPreRunE: persistentPreRunE,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return newCmdWelcome(cmd).Run(cmd.Context())
		},
		SilenceUsage: true,
		Version:      Version,
	}
}

func configureLogger() error {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	level := "info"
	if debugFlag {
		level = "debug"
	}
	logFile := viper.GetString(keyLogFile)
	err := logging.Configure(logging.Config{
		WithConsoleLog: !quietFlag || debugFlag,
		WithColor:      viper.GetString(keyOutputColor) != "no",
		WithCaller:     callerFlag,
		Level:          level,
		WithLogFile:    logFile != "",
		File:           logFile,
		MaxSize:        viper.GetInt(keyLogMaxSize),
		MaxBackups:     viper.GetInt(keyLogMaxBackups),
		MaxAge:         viper.GetInt(keyLogMaxAge),
	})
	if err != nil {
		return err
	}
	if id := bootid.Get(); id != "" {
		log.Logger = log.Logger.With().Str("boot_id", id).Logger()
	}
	return nil
}

func persistentPreRunE(cmd *cobra.Command, _ []string) error {
	if configErr != nil {
		return configErr
	}
	if err := configureLogger(); err != nil {
		return err
	}
	if f := viper.ConfigFileUsed(); f != "" {
		log.Debug().Str("file", f).Msg("config loaded")
	}
	if format := viper.GetString(keyOutputFormat); !output.IsValid(format) {
		return fmt.Errorf("invalid output format %q, valid formats are %v", format, output.Names())
	}
	render.SetColor(viper.GetString(keyOutputColor))
	return nil
}

func optsGlobal(cmd *cobra.Command) motdcmd.OptsGlobal {
	return motdcmd.OptsGlobal{
		Color:   viper.GetString(keyOutputColor),
		Output:  viper.GetString(keyOutputFormat),
		Quiet:   quietFlag,
		Debug:   debugFlag,
		Palette: configuredPalette(viper.GetViper()),
		Stdout:  cmd.OutOrStdout(),
		Stderr:  cmd.ErrOrStderr(),
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the root command.
func Execute() {
	ExecuteArgs(os.Args[1:])
}

// ExecuteArgs parses args and executes the cobra command.
// Example:
//
//	ExecuteArgs([]string{"boot", "-o", "json"})
func ExecuteArgs(args []string) {
	type exitcoder interface {
		ExitCode() int
	}
	var xc int
	var xerr exitcoder
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		if errors.As(err, &xerr) {
			xc = xerr.ExitCode()
		} else {
			xc = 1
		}
		stop()
		os.Exit(xc)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := root.PersistentFlags()
	flagConfig(flags, &configFile)
	flagQuiet(flags, &quietFlag)
	flagDebug(flags, &debugFlag)
	flagCaller(flags, &callerFlag)
	flagColor(flags)
	flagOutput(flags)
	flagTimeout(flags)
	flagProcFS(flags)
	flagDBPath(flags)

	root.AddCommand(
		newCmdBoot(),
		newCmdGreet(),
		newCmdUpdate(),
	)
}
