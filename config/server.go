package config

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ServerConfig is the binder for the parameters of the
// http server
type ServerConfig struct {
	Address         string
	BodyLimit       uint
	ShutdownTimeout time.Duration
	Cors            CorsConfig
}

// CorsConfig holds the CORS parameters of the server
type CorsConfig struct {
	Enabled        bool
	AllowedOrigins []string
	MaxAge         int
}

func (c *ServerConfig) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String("server.address", "localhost:8080", "address the server listens on")
	cmd.PersistentFlags().Uint("server.body-limit", 1<<14, "maximum size in bytes of a request body")
	cmd.PersistentFlags().Duration("server.shutdown-timeout", 10*time.Second, "time allowed to complete requests on shutdown")
	cmd.PersistentFlags().Bool("server.cors.enabled", false, "verify cross-origin requests")
	cmd.PersistentFlags().StringSlice("server.cors.origins", []string{"*"}, "origins allowed to make cross-origin requests")
	cmd.PersistentFlags().Int("server.cors.max-age", 0, "seconds the result of a preflight request can be cached")
	return nil
}

func (c *ServerConfig) Configure(v *viper.Viper) error {
	if len(v.GetString("server.address")) == 0 {
		return ErrInvalidValue{Key: "server.address", Value: v.GetString("server.address")}
	}

	if v.GetUint("server.body-limit") == 0 {
		return ErrInvalidValue{Key: "server.body-limit", Value: v.GetUint("server.body-limit")}
	}

	if v.GetInt("server.cors.max-age") < 0 {
		return ErrInvalidValue{Key: "server.cors.max-age", Value: v.GetInt("server.cors.max-age")}
	}

	c.Address = v.GetString("server.address")
	c.BodyLimit = v.GetUint("server.body-limit")
	c.ShutdownTimeout = v.GetDuration("server.shutdown-timeout")
	c.Cors = CorsConfig{
		Enabled:        v.GetBool("server.cors.enabled"),
		AllowedOrigins: v.GetStringSlice("server.cors.origins"),
		MaxAge:         v.GetInt("server.cors.max-age"),
	}
	return nil
}
