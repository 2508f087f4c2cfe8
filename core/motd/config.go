package motd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/opensvc/motd/core/pacman"
	"github.com/opensvc/motd/util/render/palette"
	"github.com/opensvc/motd/util/sdmanager"
)

// Configuration keys.
const (
	keyBootTimeout       = "boot.timeout"
	keyBootProcFS        = "boot.procfs"
	keyPacmanDBPath      = "pacman.dbpath"
	keyGreetingSentences = "greeting.sentences"
	keyOutputFormat      = "output.format"
	keyOutputColor       = "output.color"
	keyLogFile           = "log.file"
	keyLogMaxSize        = "log.max_size"
	keyLogMaxBackups     = "log.max_backups"
	keyLogMaxAge         = "log.max_age"
	keyPalette           = "palette"
)

var (
	configFile string

	// configErr is the config file loading error, reported once the
	// logger is configured.
	configErr error
)

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyBootTimeout, sdmanager.DefaultTimeout)
	v.SetDefault(keyBootProcFS, "/proc")
	v.SetDefault(keyPacmanDBPath, pacman.DefaultDBPath)
	v.SetDefault(keyOutputFormat, "human")
	v.SetDefault(keyOutputColor, "auto")
	v.SetDefault(keyLogMaxSize, 5)
	v.SetDefault(keyLogMaxBackups, 1)
	v.SetDefault(keyLogMaxAge, 30)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	configErr = loadConfig(viper.GetViper(), configFile)
}

func loadConfig(v *viper.Viper, file string) error {
	setDefaults(v)
	v.SetEnvPrefix("MOTD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv() // read in environment variables that match

	if file != "" {
		// Use config file from the flag.
		v.SetConfigFile(file)
	} else {
		// Search config in home directory with name ".motd" (without extension).
		home, err := homedir.Dir()
		if err != nil {
			return fmt.Errorf("home directory: %w", err)
		}
		v.AddConfigPath(home)
		v.SetConfigName(".motd")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config file: %w", err)
	}
	return nil
}

func configuredPalette(v *viper.Viper) *palette.ColorPaletteFunc {
	var sp palette.StringPalette
	if err := v.UnmarshalKey(keyPalette, &sp); err != nil {
		return palette.DefaultFuncPalette()
	}
	return palette.New(sp).Funcs()
}

func configuredTimeout(v *viper.Viper) time.Duration {
	d := v.GetDuration(keyBootTimeout)
	if d <= 0 {
		return sdmanager.DefaultTimeout
	}
	return d
}
