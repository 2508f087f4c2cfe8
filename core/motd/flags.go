package motd

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func flagConfig(flags *pflag.FlagSet, p *string) {
	flags.StringVar(p, "config", "", "config file (default \"$HOME/.motd.yaml\")")
}

func flagQuiet(flags *pflag.FlagSet, p *bool) {
	flags.BoolVarP(p, "quiet", "q", false, "don't print the logs on the console")
}

func flagDebug(flags *pflag.FlagSet, p *bool) {
	flags.BoolVar(p, "debug", false, "show debug log entries")
}

func flagCaller(flags *pflag.FlagSet, p *bool) {
	flags.BoolVar(p, "caller", false, "show the caller file and linenum in logs")
}

func flagColor(flags *pflag.FlagSet) {
	flags.String("color", "auto", "output colorization (yes|no|auto)")
	_ = viper.BindPFlag(keyOutputColor, flags.Lookup("color"))
}

func flagOutput(flags *pflag.FlagSet) {
	flags.StringP("output", "o", "human", "output format (human|json|flat|yaml|table)")
	_ = viper.BindPFlag(keyOutputFormat, flags.Lookup("output"))
}

func flagTimeout(flags *pflag.FlagSet) {
	flags.Duration("timeout", 0, "init manager property read timeout (default 5s)")
	_ = viper.BindPFlag(keyBootTimeout, flags.Lookup("timeout"))
}

func flagProcFS(flags *pflag.FlagSet) {
	flags.String("procfs", "", "procfs mount point (default \"/proc\")")
	_ = viper.BindPFlag(keyBootProcFS, flags.Lookup("procfs"))
}

func flagDBPath(flags *pflag.FlagSet) {
	flags.String("dbpath", "", "pacman database path (default \"/var/lib/pacman/\")")
	_ = viper.BindPFlag(keyPacmanDBPath, flags.Lookup("dbpath"))
}

func flagVerbose(flags *pflag.FlagSet, p *bool) {
	flags.BoolVarP(p, "verbose", "v", false, "also report the wall clock boot time and the uptime")
}
