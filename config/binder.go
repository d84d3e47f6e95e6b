package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Binder registers a set of parameters and reads them
// once they are parsed
type Binder interface {
	// Bind registers the flags and defaults of the parameters
	Bind(v *viper.Viper, cmd *cobra.Command) error

	// Configure reads the parameters after they are parsed
	Configure(v *viper.Viper) error
}

// ConfigFile is the binder for the configuration file of an
// application. Any format supported by viper can be used
type ConfigFile struct {
	Path string
}

func (f *ConfigFile) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String("config", "", "path to the configuration file")
	return nil
}

func (f *ConfigFile) Configure(v *viper.Viper) error {
	f.Path = v.GetString("config")
	if len(f.Path) == 0 {
		return nil
	}

	v.SetConfigFile(f.Path)
	if err := v.ReadInConfig(); err != nil {
		return ErrReadConfigFile{Path: f.Path, Cause: err}
	}

	return nil
}

// DefaultEnvFiles are the environment files loaded when
// none is provided
var DefaultEnvFiles = []string{".env"}

// EnvFile is the binder that loads environment files into the
// environment of the process. Variables that are already set
// are not overwritten
type EnvFile struct {
	Paths []string
}

func (f *EnvFile) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().StringSlice("env-file", DefaultEnvFiles, "environment files to load")
	return nil
}

func (f *EnvFile) Configure(v *viper.Viper) error {
	paths := lo.Filter(v.GetStringSlice("env-file"), func(path string, _ int) bool {
		return fileExists(path)
	})

	f.Paths = paths
	if len(paths) == 0 {
		return nil
	}

	if err := godotenv.Load(paths...); err != nil {
		return ErrReadEnvFile{Paths: paths, Cause: err}
	}

	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return !info.IsDir()
}
