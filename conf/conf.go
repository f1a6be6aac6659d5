package conf

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Cfg is the loaded node configuration. InitConfig must run before any
// package reads it.
var Cfg *Configuration

type Configuration struct {
	DataDir  string `mapstructure:"datadir"`
	LogLevel string `mapstructure:"loglevel"`

	Chain struct {
		Network string `mapstructure:"network"`
	} `mapstructure:"chain"`

	Mining struct {
		// BlockMaxSize caps the serialized size of generated blocks.
		BlockMaxSize uint64 `mapstructure:"blockmaxsize"`
		// BlockMinTxFee is the satoshis/kB floor for including a package.
		BlockMinTxFee int64  `mapstructure:"blockmintxfee"`
		Strategy      string `mapstructure:"strategy"`
		Workers       int    `mapstructure:"workers"`
		MiningAddr    string `mapstructure:"miningaddr"`
	} `mapstructure:"mining"`
}

const (
	defaultConfigName = "fortuneblock"
	defaultLogLevel   = "info"
	defaultStrategy   = "ancestorfeerate"
)

// InitConfig loads configuration from the yaml file under dir, applying
// env overrides (FBC_ prefix) and built-in defaults.
func InitConfig(dir string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigName(defaultConfigName)
	v.SetConfigType("yaml")
	if dir != "" {
		v.AddConfigPath(dir)
	}
	v.SetEnvPrefix("FBC")
	v.AutomaticEnv()

	v.SetDefault("datadir", defaultDataDir())
	v.SetDefault("loglevel", defaultLogLevel)
	v.SetDefault("chain.network", "mainnet")
	v.SetDefault("mining.blockmaxsize", 0)
	v.SetDefault("mining.blockmintxfee", 1000)
	v.SetDefault("mining.strategy", defaultStrategy)
	v.SetDefault("mining.workers", 1)

	if err := v.ReadInConfig(); err != nil {
		// absent config file falls back to defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := new(Configuration)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	Cfg = cfg
	return cfg, nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".fortuneblock"
	}
	return filepath.Join(home, ".fortuneblock")
}
