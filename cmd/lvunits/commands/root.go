// SPDX-License-Identifier: MIT

// Package commands implements the lvunits subcommands.
package commands

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/lvunits/catalog"
	"github.com/katalvlaran/lvunits/kind"
	"github.com/katalvlaran/lvunits/logger"
	"github.com/katalvlaran/lvunits/registry"
	"github.com/katalvlaran/lvunits/si"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config keys; flags, LVUNITS_* variables and the config file share them.
const (
	keyCatalog   = "catalog"
	keyPrecision = "precision"
	keyVerbose   = "verbose"
	keyJSONLog   = "json-log"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	v     *viper.Viper
	reg   *registry.Registry
	kinds *kind.Table
}

// NewRootCmd builds the lvunits command tree with its own configuration.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "lvunits",
		Short: "Dimension-checked unit conversion",
		Long: `lvunits converts values between units of the SI catalogue and any
catalogues given with --catalog.

Configuration is read from --config, ./lvunits.toml or
$HOME/.config/lvunits/lvunits.toml; LVUNITS_* environment variables
override it (LVUNITS_PRECISION, LVUNITS_JSON_LOG, ...).

Examples:
  lvunits convert 20 °C °F
  lvunits units Length
  lvunits quantities
  lvunits prefix 0.0042 A
  lvunits export --format yaml`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (TOML)")
	pf.StringSlice(keyCatalog, nil, "extra unit catalogue (.toml, .yaml, .yml, .json); repeatable")
	pf.Int(keyPrecision, 6, "significant digits of printed values")
	pf.CountP(keyVerbose, "v", "log more (-v info, -vv debug)")
	pf.Bool(keyJSONLog, false, "log JSON to stderr")
	for _, k := range []string{keyCatalog, keyPrecision, keyVerbose, keyJSONLog} {
		_ = a.v.BindPFlag(k, pf.Lookup(k))
	}

	a.v.SetEnvPrefix("LVUNITS")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		newConvertCmd(a),
		newUnitsCmd(a),
		newQuantitiesCmd(a),
		newKindsCmd(a),
		newPrefixCmd(a),
		newConstantsCmd(a),
		newExportCmd(a),
	)

	return root
}

// setup reads the configuration, starts logging and fills the registry.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")
	if err := a.readConfig(path); err != nil {
		return err
	}

	logger.Initialize(a.v.GetBool(keyJSONLog), a.v.GetInt(keyVerbose))
	log := logger.Base()
	if used := a.v.ConfigFileUsed(); used != "" {
		logger.Logger.Infow("config loaded", "path", used)
	}

	a.kinds = kind.NewTable(kind.WithLogger(log))
	if err := si.DeclareKinds(a.kinds); err != nil {
		return err
	}
	a.reg = registry.New(registry.WithLogger(log))
	if err := si.Register(a.reg); err != nil {
		return err
	}

	for _, p := range a.v.GetStringSlice(keyCatalog) {
		cat, err := catalog.Load(p)
		if err != nil {
			return err
		}
		if err := catalog.Apply(cat, a.reg, a.kinds, catalog.WithLogger(log)); err != nil {
			return errors.Wrapf(err, "%s", p)
		}
		logger.Logger.Infow("catalogue loaded", "path", p)
	}

	return nil
}

func (a *app) readConfig(path string) error {
	if path != "" {
		a.v.SetConfigFile(path)
	} else {
		a.v.SetConfigName("lvunits")
		a.v.SetConfigType("toml")
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(filepath.Join(home, ".config", "lvunits"))
		}
	}

	err := a.v.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if path == "" && errors.As(err, &notFound) {
		return nil
	}

	return errors.Wrap(err, "read config")
}

// number renders x with the configured significant digits.
func (a *app) number(x float64) string {
	return strconv.FormatFloat(x, 'g', a.v.GetInt(keyPrecision), 64)
}
