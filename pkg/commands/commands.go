package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/nongdam/pkg/app"
	"tableflip.dev/nongdam/pkg/catalog/viewmodel"
	"tableflip.dev/nongdam/pkg/commands/options"
	"tableflip.dev/nongdam/pkg/logging"
	"tableflip.dev/nongdam/pkg/source"
	"tableflip.dev/nongdam/pkg/store"
)

var (
	output   = &options.OutputOptions{}
	so       = &options.SourceOptions{}
	logLevel string

	// config is read once before any command runs.
	config *store.FileConfig
	// level is the resolved diagnostic log level.
	level string
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "nongdam",
		Short: base.Wrap80("Keep track of the plush toys you own and the ones you wish for, and share them as an image."),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddSourceArgs(cmd, so)
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Diagnostic log level: debug, info, warn or error.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addList(topLevel)
	addToggle(topLevel)
	addClear(topLevel)
	addExport(topLevel)
	addSummary(topLevel)
	addUI(topLevel)
	addBrowse(topLevel)
	addKey(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// setup loads the configuration and installs the logger.
func setup() error {
	cfg, err := store.LoadConfig()
	if err != nil {
		return err
	}
	config = cfg

	level = logLevel
	if level == "" {
		level = os.Getenv(logging.EnvLevel)
	}
	if level == "" {
		level = cfg.LogLevel
	}
	logging.Set(logging.New(level))
	return nil
}

// companyGroupHint explains why a company group filter hides everything
// when the group has no companies configured.
func companyGroupHint(cfg *store.FileConfig, f viewmodel.Filters) string {
	if cfg == nil || f.Company != "" || f.CompanyGroup == "" || f.CompanyGroup == viewmodel.All {
		return ""
	}
	if len(cfg.Companies[f.CompanyGroup]) > 0 {
		return ""
	}
	return fmt.Sprintf("no companies configured for --company-group %s, set companies.%s in .nongdam.yaml",
		f.CompanyGroup, f.CompanyGroup)
}

func warnCompanyGroup(f viewmodel.Filters) {
	if hint := companyGroupHint(config, f); hint != "" {
		_, _ = fmt.Fprintln(color.Error, color.YellowString(hint))
	}
}

// logToFile sends diagnostics to a file while a full screen ui owns the
// terminal.
func logToFile() {
	path := logging.DefaultFile()
	l, err := logging.NewFile(level, path)
	if err != nil {
		logging.L().Warn("logging to stderr", zap.String("file", path), zap.Error(err))
		return
	}
	logging.Set(l)
}

// newService wires persistence, the catalog source and the grouping
// options from the configuration and the source flags.
func newService() (*app.Service, error) {
	if config == nil {
		if err := setup(); err != nil {
			return nil, err
		}
	}
	p, err := store.Load(config)
	if err != nil {
		return nil, err
	}
	src, err := newSource()
	if err != nil {
		return nil, err
	}
	svc := app.New(p, src,
		viewmodel.WithSubgroupCharacter(config.SubgroupCharacter),
		viewmodel.WithCompanyGroups(config.Companies),
	)
	svc.Log = logging.Named("app")
	return svc, nil
}

func newSource() (source.Source, error) {
	if so.File != "" {
		b, err := os.ReadFile(so.File)
		if err != nil {
			return nil, err
		}
		return source.Static(b), nil
	}
	sheet := &source.Sheet{ID: config.SheetID, Name: config.SheetName}
	if so.SheetID != "" {
		sheet.ID = so.SheetID
	}
	if so.SheetName != "" {
		sheet.Name = so.SheetName
	}
	return sheet, nil
}
