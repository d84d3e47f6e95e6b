package config

import (
	"io"

	"github.com/eaugeas/linkedbst/logs"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// LogConfig is the binder for the logging parameters
type LogConfig struct {
	Level  logrus.Level
	Format string
}

func (c *LogConfig) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String("log.level", "info", "minimum level of the log entries")
	cmd.PersistentFlags().String("log.format", "text", "format of the log entries, text or json")
	return nil
}

func (c *LogConfig) Configure(v *viper.Viper) error {
	level, err := logrus.ParseLevel(v.GetString("log.level"))
	if err != nil {
		return ErrInvalidValue{Key: "log.level", Value: v.GetString("log.level")}
	}

	if _, err := logs.NewFormatter(v.GetString("log.format")); err != nil {
		return ErrInvalidValue{Key: "log.format", Value: v.GetString("log.format")}
	}

	c.Level = level
	c.Format = v.GetString("log.format")
	return nil
}

// Logger creates the logger described by the configuration
func (c *LogConfig) Logger(output io.Writer) logs.Logger {
	formatter, err := logs.NewFormatter(c.Format)
	if err != nil {
		panic("log format not validated: " + err.Error())
	}

	return logs.NewLogrus(logs.LogrusLoggerProperties{
		Level:     c.Level,
		Output:    output,
		Formatter: formatter,
	})
}
