package main

import (
	"database/sql"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"langconv/config"
	"langconv/converter"

	_ "github.com/lib/pq"
)

type options struct {
	configPath string
	sourceDir  string
	outputDir  string
	logLevel   string
	indent     bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "langconv",
		Short:         "Convert class declarations to JSON and table descriptions to classes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "config.yaml", "config file (optional)")
	root.PersistentFlags().StringVar(&opts.sourceDir, "source-dir", "", "directory with <ClassName>.cs files")
	root.PersistentFlags().StringVar(&opts.outputDir, "output-dir", "", "directory for generated files")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&opts.indent, "indent", false, "indent generated JSON")

	root.AddCommand(
		newClassToJSONCmd(opts),
		newXMLToClassCmd(opts),
		newSQLToClassCmd(opts),
		newDBToClassCmd(opts),
	)
	return root
}

// load читает конфигурацию, флаги командной строки имеют приоритет
func (o *options) load(cmd *cobra.Command) error {
	cfg, err := config.LoadOrDefault(o.configPath)
	if err != nil {
		return err
	}

	if o.sourceDir != "" {
		cfg.Paths.SourceDir = o.sourceDir
	}
	if o.outputDir != "" {
		cfg.Paths.OutputDir = o.outputDir
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if cmd.Flags().Changed("indent") {
		cfg.JSON.Indent = o.indent
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	o.cfg = cfg
	return nil
}

func newClassToJSONCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "class2json <ClassName>...",
		Short: "Parse <ClassName>.cs and write <ClassName>.json",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv := converter.New(opts.cfg, log.StandardLogger())
			for _, className := range args {
				if _, err := conv.ClassToJSON(className); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newXMLToClassCmd(opts *options) *cobra.Command {
	var xmlFile string
	cmd := &cobra.Command{
		Use:   "xml2class",
		Short: "Generate a class from data_class.xml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if xmlFile != "" {
				opts.cfg.Paths.XMLFile = xmlFile
			}
			_, err := converter.New(opts.cfg, log.StandardLogger()).XMLToClass()
			return err
		},
	}
	cmd.Flags().StringVar(&xmlFile, "file", "", "XML file (default from config: data_class.xml)")
	return cmd
}

func newSQLToClassCmd(opts *options) *cobra.Command {
	var sqlFile, table string
	cmd := &cobra.Command{
		Use:   "sql2class",
		Short: "Generate classes from CREATE TABLE statements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sqlFile != "" {
				opts.cfg.Paths.SQLFile = sqlFile
			}
			_, err := converter.New(opts.cfg, log.StandardLogger()).SQLToClass(table)
			return err
		},
	}
	cmd.Flags().StringVar(&sqlFile, "file", "", "SQL script (default from config)")
	cmd.Flags().StringVar(&table, "table", "", "only this table")
	return cmd
}

func newDBToClassCmd(opts *options) *cobra.Command {
	var table string
	cmd := &cobra.Command{
		Use:   "db2class",
		Short: "Generate a class from a PostgreSQL table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := sql.Open("postgres", opts.cfg.Database.GetConnectionString())
			if err != nil {
				return err
			}
			defer db.Close()

			_, err = converter.New(opts.cfg, log.StandardLogger()).DBToClass(cmd.Context(), db, table)
			return err
		},
	}
	cmd.Flags().StringVar(&table, "table", "", "table name")
	_ = cmd.MarkFlagRequired("table")
	return cmd
}
