package motd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/opensvc/motd/core/motdcmd"
)

func newCmdWelcome(cmd *cobra.Command) motdcmd.CmdWelcome {
	opts := optsGlobal(cmd)
	return motdcmd.CmdWelcome{
		OptsGlobal: opts,
		Greet:      cmdGreet(opts),
		Update:     cmdUpdate(opts),
		Boot:       cmdBoot(opts, false),
	}
}

func cmdGreet(opts motdcmd.OptsGlobal) motdcmd.CmdGreet {
	return motdcmd.CmdGreet{
		OptsGlobal: opts,
		Sentences:  viper.GetStringSlice(keyGreetingSentences),
	}
}

func cmdUpdate(opts motdcmd.OptsGlobal) motdcmd.CmdUpdate {
	return motdcmd.CmdUpdate{
		OptsGlobal: opts,
		DBPath:     viper.GetString(keyPacmanDBPath),
	}
}

func cmdBoot(opts motdcmd.OptsGlobal, verbose bool) motdcmd.CmdBoot {
	return motdcmd.CmdBoot{
		OptsGlobal: opts,
		Timeout:    configuredTimeout(viper.GetViper()),
		ProcFS:     viper.GetString(keyBootProcFS),
		Verbose:    verbose,
	}
}

func newCmdBoot() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "boot",
		Short: "report the boot duration, stage by stage",
		Long: "Report the time spent in each boot stage (firmware, loader, kernel, initrd, userspace)\n" +
			"from the monotonic timestamps published by systemd. When the boot is still in\n" +
			"progress, the elapsed time so far is reported.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmdBoot(optsGlobal(cmd), verbose).Run(cmd.Context())
		},
	}
	flagVerbose(cmd.Flags(), &verbose)
	return cmd
}

func newCmdGreet() *cobra.Command {
	return &cobra.Command{
		Use:   "greet",
		Short: "print a random welcome sentence",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmdGreet(optsGlobal(cmd)).Run()
		},
	}
}

func newCmdUpdate() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "report the time elapsed since the last package install",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmdUpdate(optsGlobal(cmd)).Run()
		},
	}
}
