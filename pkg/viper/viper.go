package viper

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ConfigFlagName is the flag specifying the config file path.
const ConfigFlagName = "config"

func init() {
	pflag.String(ConfigFlagName, "", "config file path")
}

// LoadConfig fills opts from the config file (if given) and environment
// variables. It runs before cobra parses flags, so the config flag is
// picked out of os.Args directly; flag values set on the command line
// still take precedence because pflag applies them afterwards.
func LoadConfig(opts interface{}) error {
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if configFile := configFileFromArgs(); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	if err := viper.Unmarshal(opts); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return nil
}

func configFileFromArgs() string {
	for i, arg := range os.Args {
		if arg == "--"+ConfigFlagName && i+1 < len(os.Args) {
			return os.Args[i+1]
		}
		if strings.HasPrefix(arg, "--"+ConfigFlagName+"=") {
			return strings.TrimPrefix(arg, "--"+ConfigFlagName+"=")
		}
	}
	return ""
}
