package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// DemoConfig is the binder for the parameters of the word
// list lookup demo
type DemoConfig struct {
	Words   string
	Samples int
	Workers int
	Quiet   bool
}

func (c *DemoConfig) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String("demo.words", "words.txt", "path to the word list, one word per line")
	cmd.PersistentFlags().Int("demo.samples", 1000, "number of lookups, targets are drawn with replacement")
	cmd.PersistentFlags().Int("demo.workers", 0, "goroutines used for parallel lookups, 0 uses one per CPU")
	cmd.PersistentFlags().Bool("demo.quiet", false, "do not show the progress of the lookups")
	return nil
}

func (c *DemoConfig) Configure(v *viper.Viper) error {
	if len(v.GetString("demo.words")) == 0 {
		return ErrInvalidValue{Key: "demo.words", Value: v.GetString("demo.words")}
	}

	if v.GetInt("demo.samples") <= 0 {
		return ErrInvalidValue{Key: "demo.samples", Value: v.GetInt("demo.samples")}
	}

	if v.GetInt("demo.workers") < 0 {
		return ErrInvalidValue{Key: "demo.workers", Value: v.GetInt("demo.workers")}
	}

	c.Words = v.GetString("demo.words")
	c.Samples = v.GetInt("demo.samples")
	c.Workers = v.GetInt("demo.workers")
	c.Quiet = v.GetBool("demo.quiet")
	return nil
}
