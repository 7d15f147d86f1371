// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/weylchamber/prec"
)

// Output formats.
const (
	formatText = "text"
	formatYAML = "yaml"
)

var (
	errBadFormat    = errors.New("weylchamber: output must be text or yaml")
	errBadPrecision = errors.New("weylchamber: precision must be non-negative")
)

// app carries the per-invocation configuration and logger.
type app struct {
	v      *viper.Viper
	log    *logrus.Logger
	out    io.Writer
	cfgRaw string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("output", formatText)
	v.SetDefault("precision", prec.DefaultWeylPrecision)

	v.SetDefault("gate", "cnot")
	v.SetDefault("region", "")
	v.SetDefault("seed", 1)

	v.SetDefault("sample.count", 100)
	v.SetDefault("sample.workers", 4)

	v.SetDefault("closest.method", "leastsq")
	v.SetDefault("closest.limit", 1e-6)
	v.SetDefault("closest.max_restarts", 1000)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: viper.New(), log: logrus.New(), out: stdout}
	setDefaults(a.v)
	a.v.SetEnvPrefix("WEYLCHAMBER")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "weylchamber",
		Short:         "Weyl chamber coordinates and local invariants of two-qubit gates",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(stderr)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgRaw, "config", "", "YAML configuration file")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.StringP("output", "o", formatText, "output format: text or yaml")
	pf.Int("precision", prec.DefaultWeylPrecision, "decimal digits of reported values")
	pf.String("gate", "cnot", "named gate, or \"random\" (see --region, --seed)")
	pf.String("region", "", "chamber region for random gates: W0, W0*, W1, PE, SQ")
	pf.Int64("seed", 1, "random seed")
	a.bind("log_level", pf.Lookup("log-level"))
	a.bind("output", pf.Lookup("output"))
	a.bind("precision", pf.Lookup("precision"))
	a.bind("gate", pf.Lookup("gate"))
	a.bind("region", pf.Lookup("region"))
	a.bind("seed", pf.Lookup("seed"))

	root.AddCommand(
		a.coordsCmd(),
		a.cartanCmd(),
		a.closestCmd(),
		a.sampleCmd(),
		a.sceneCmd(),
		a.gatesCmd(),
	)
	return root
}

// setup reads the config file and configures the logger.
func (a *app) setup(stderr io.Writer) error {
	if a.cfgRaw != "" {
		a.v.SetConfigFile(a.cfgRaw)
		a.v.SetConfigType("yaml")
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}
	a.log.SetOutput(stderr)
	a.log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	level, err := logrus.ParseLevel(a.v.GetString("log_level"))
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	a.log.SetLevel(level)
	if f := a.v.GetString("output"); f != formatText && f != formatYAML {
		return fmt.Errorf("%w (got %q)", errBadFormat, f)
	}
	if n := a.v.GetInt("precision"); n < 0 {
		return fmt.Errorf("%w (got %d)", errBadPrecision, n)
	}
	if a.cfgRaw != "" {
		a.log.WithField("file", a.v.ConfigFileUsed()).Debug("configuration loaded")
	}
	return nil
}

// bind ties a viper key to a flag. BindPFlag fails only for a nil flag.
func (a *app) bind(key string, f *pflag.Flag) {
	if err := a.v.BindPFlag(key, f); err != nil {
		panic(fmt.Sprintf("weylchamber: bind %s: %v", key, err))
	}
}

// precision is valid once setup has run.
func (a *app) precision() prec.Option {
	return prec.WithDigits(a.v.GetInt("precision"))
}

// emit prints v as YAML, or calls text for the text format.
func (a *app) emit(v any, text func(w io.Writer) error) error {
	if a.v.GetString("output") == formatYAML {
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return text(a.out)
}
