package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is implemented by the configuration of an application
type Config interface {
	// Use is the one line usage of the application
	Use() string

	// EnvPrefix is the prefix of the environment variables
	// that can set the configuration
	EnvPrefix() string

	// Binders that register and read the parameters of the
	// application
	Binders() []Binder
}

// Parser reads the configuration of an application from, in order
// of precedence, flags, environment variables, environment files and
// the configuration file
type Parser struct {
	Config Config

	file    *ConfigFile
	envFile *EnvFile

	cmd *cobra.Command
	v   *viper.Viper
}

// Parse parses the command line arguments of the process
func (p *Parser) Parse() error {
	return p.ParseArgs(os.Args[1:])
}

// ParseArgs parses the provided arguments and configures
// all the binders
func (p *Parser) ParseArgs(args []string) error {
	if p.cmd.PersistentFlags().Parsed() {
		return ErrAlreadyParsed
	}

	if err := p.cmd.PersistentFlags().Parse(args); err != nil {
		return ErrParseFlags{Cause: err}
	}

	// keep files first so that any parameters read from them are used
	// as defaults for the other flags
	var binders []Binder
	binders = append(binders, p.file, p.envFile)
	binders = append(binders, p.Config.Binders()...)

	for _, c := range binders {
		if err := c.Configure(p.v); err != nil {
			return err
		}
	}

	return nil
}

// Usage writes the usage of the application
func (p *Parser) Usage() error {
	return p.cmd.Usage()
}

// Viper returns the viper instance that holds the parsed values
func (p *Parser) Viper() *viper.Viper {
	return p.v
}

// Generate creates a new parser for the application
func Generate(app string, config Config) (*Parser, error) {
	v := viper.New()
	// all environment variables start with prefix `prefix` and are set
	// by replacing `.` and `-` to _.
	v.SetEnvPrefix(config.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{Use: app, Short: config.Use()}
	file := ConfigFile{}
	envFile := EnvFile{}
	var binders []Binder
	binders = append(binders, &file, &envFile)
	binders = append(binders, config.Binders()...)

	for _, c := range binders {
		if err := c.Bind(v, cmd); err != nil {
			return nil, fmt.Errorf("failed to bind flags %s", err.Error())
		}
	}

	if err := v.BindPFlags(cmd.PersistentFlags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags %s", err.Error())
	}

	return &Parser{file: &file, envFile: &envFile, Config: config, cmd: cmd, v: v}, nil
}
