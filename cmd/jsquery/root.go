package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/jsquery"
	"github.com/aretw0/jsquery/internal/config"
	"github.com/aretw0/jsquery/pkg/jqapi"
	"github.com/aretw0/jsquery/pkg/jquery"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// app carries the configuration loaded before every command runs.
type app struct {
	v       *viper.Viper
	cfg     *config.Config
	logger  *slog.Logger
	catalog *jqapi.Catalog
}

// persistentKeys maps the root flags to their configuration keys.
var persistentKeys = map[string]string{
	"log-level":      "log_level",
	"log-format":     "log_format",
	"catalog":        "catalog",
	"jquery-version": "jquery_version",
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "jsquery",
		Short: "jsquery builds jQuery code that the jQuery API documentation allows",
		Long: `jsquery renders declarative jQuery chains to JavaScript. Every call is
checked against a catalog of the documented jQuery API, so unknown methods and
wrong argument kinds fail before any code is produced.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (YAML, TOML or JSON)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().String("catalog", "", "Alternative API catalog (YAML)")
	rootCmd.PersistentFlags().String("jquery-version", "", "Only allow entries available in this jQuery version")

	rootCmd.AddCommand(
		newRenderCmd(a),
		newGraphCmd(a),
		newMethodsCmd(a),
		newDocsCmd(a),
		newGenerateCmd(a),
		newServeCmd(a),
		newMCPCmd(a),
		newCacheCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// load builds the configuration from defaults, the config file, the
// environment and the flags of cmd, in increasing precedence.
func (a *app) load(cmd *cobra.Command) error {
	a.v = config.NewViper()
	for flag, key := range persistentKeys {
		if err := a.v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return err
		}
	}
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := f.Annotations[configKey]; ok && bindErr == nil {
			bindErr = a.v.BindPFlag(key[0], f)
		}
	})
	if bindErr != nil {
		return bindErr
	}

	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(a.v, path)
	if err != nil {
		return err
	}
	logger, err := cfg.Logger()
	if err != nil {
		return err
	}
	cat, err := cfg.LoadCatalog()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.catalog = cat
	slog.SetDefault(logger)
	jquery.SetUseDollar(cfg.Render.Dollar)
	logger.Debug("configuration loaded", "config", path, "entries", cat.Len())
	return nil
}

// configKey annotates command flags with the configuration key they set.
const configKey = "jsquery_config_key"

func bindFlag(flags *pflag.FlagSet, flag, key string) {
	_ = flags.SetAnnotation(flag, configKey, []string{key})
}

// engine creates a render engine for the loaded configuration.
func (a *app) engine(opts ...jsquery.Option) *jsquery.Engine {
	base := []jsquery.Option{
		jsquery.WithCatalog(a.catalog),
		jsquery.WithSettings(a.cfg.Settings()),
		jsquery.WithLogger(a.logger),
	}
	return jsquery.New(append(base, opts...)...)
}

// readInput reads the file named by args[0], or in when no file is given.
func readInput(in io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(in)
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return data, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
