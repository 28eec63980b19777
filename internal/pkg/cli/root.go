package cli

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ccloud-tools/ccmigrate/internal/pkg/api/connect"
	"github.com/ccloud-tools/ccmigrate/internal/pkg/build"
	"github.com/ccloud-tools/ccmigrate/internal/pkg/cli/dialog"
	"github.com/ccloud-tools/ccmigrate/internal/pkg/cli/prompt"
	nopPrompt "github.com/ccloud-tools/ccmigrate/internal/pkg/cli/prompt/nop"
	"github.com/ccloud-tools/ccmigrate/internal/pkg/log"
	"github.com/ccloud-tools/ccmigrate/internal/pkg/mapping"
	"github.com/ccloud-tools/ccmigrate/internal/pkg/migrate"
	"github.com/ccloud-tools/ccmigrate/internal/pkg/options"
)

const description = `
Connector migration tool

Migrate managed sink connectors from their
legacy/V1 shape to the V2 shape, preserving
offsets so data movement resumes without
loss or duplication.

Credentials are read from the CCLOUD_EMAIL and
CCLOUD_PASSWORD environment variables, from a
JSON credentials file, or asked interactively.
`

type rootCommand struct {
	cmd          *cobra.Command
	options      *options.Options // parsed flags and env variables
	prompt       prompt.Prompt    // user interaction
	dialogs      *dialog.Dialogs
	ctx          context.Context
	api          *connect.Api       // GetApi should be used to initialize
	start        time.Time          // cmd start time
	initialized  bool               // init method was called
	logFile      *os.File           // log file instance
	logFileClear bool               // is log file temporary? it is removed at the end if no error occurs
	logger       *zap.SugaredLogger // log to console and logFile
}

// NewRootCommand creates parent of all sub-commands.
func NewRootCommand(stdin io.ReadCloser, stdout io.WriteCloser, stderr io.WriteCloser, interactionPrompt prompt.Prompt) *rootCommand {
	root := &rootCommand{
		options: options.NewOptions(),
		prompt:  interactionPrompt,
		ctx:     context.Background(),
		start:   time.Now(),
	}

	// Command definition
	root.cmd = &cobra.Command{
		Use:          path.Base(os.Args[0]), // name of the binary
		Version:      build.Version(),
		Short:        description,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Print help if no command specified
			return root.cmd.Help()
		},
	}

	// Setup in/out
	root.cmd.SetIn(stdin)
	root.cmd.SetOut(stdout)
	root.cmd.SetErr(stderr)
	root.cmd.SetVersionTemplate("{{.Version}}")

	// Persistent flags for all sub-commands
	root.options.BindPersistentFlags(root.cmd.PersistentFlags())

	// Root command flags
	root.cmd.Flags().SortFlags = true
	root.cmd.Flags().BoolP("version", "V", false, "print version")

	// Init when flags are parsed
	root.cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return root.init(cmd)
	}

	// Sub-commands
	root.cmd.AddCommand(
		bigqueryCommand(root),
		httpCommand(root),
		statusCommand(root),
	)

	return root
}

// Execute command or sub-command.
func (root *rootCommand) Execute() (exitCode int) {
	defer root.tearDown()
	if err := root.cmd.Execute(); err != nil {
		// Init, it can be uninitialized, if an error occurred before PersistentPreRun call
		_ = root.init(root.cmd)
		root.logger.Errorf("Error: %s", err)

		// Keep the log file for diagnosis
		if root.logFileClear {
			root.logFileClear = false
			root.logger.Infof(`Details can be found in the log file "%s".`, root.options.LogFilePath)
		}
		return 1
	}
	return 0
}

func (root *rootCommand) ValidateOptions(required []string) error {
	if err := root.options.Validate(required); len(err) > 0 {
		root.logger.Warn("Invalid parameters:\n", err)
		return fmt.Errorf("invalid parameters, see output above")
	}
	return nil
}

// GetApi returns an authenticated API client, created on first use.
func (root *rootCommand) GetApi() (*connect.Api, error) {
	if root.api != nil {
		return root.api, nil
	}

	credentials, err := root.options.LoadCredentials()
	if err != nil {
		return nil, err
	}
	if credentials.Empty() {
		credentials, err = root.dialogs.AskCredentials()
		if err != nil {
			return nil, err
		}
	}

	baseURL := root.options.BaseURL
	if baseURL == "" {
		baseURL = connect.DefaultBaseURL
	}

	api := connect.NewApi(root.ctx, root.logger, baseURL, credentials, root.options.Verbose)
	if err := api.Authenticate(); err != nil {
		return nil, err
	}

	root.api = api
	return root.api, nil
}

// runMigration is shared by the per-variant sub-commands.
func (root *rootCommand) runMigration(variant *mapping.Variant) error {
	if err := root.ValidateOptions([]string{"Connector", "Environment", "Cluster"}); err != nil {
		return err
	}

	api, err := root.GetApi()
	if err != nil {
		return err
	}

	err = migrate.Run(&migrate.Flow{
		Variant:     variant,
		Api:         api,
		Dialogs:     root.dialogs,
		Logger:      root.logger,
		Environment: root.options.Environment,
		Cluster:     root.options.Cluster,
		Connector:   root.options.Connector,
	})
	if errors.Is(err, migrate.ErrAborted) {
		root.logger.Info("Migration cancelled.")
		return nil
	}
	return err
}

// tearDown makes clean-up after command execution.
func (root *rootCommand) tearDown() {
	if root.logFile != nil {
		if err := root.logFile.Close(); err != nil {
			panic(fmt.Errorf("cannot close log file \"%s\": %s", root.options.LogFilePath, err))
		}
	}

	// Remove the temporary log file if no error occurred
	if root.logFileClear {
		// nolint: forbidigo
		if err := os.Remove(root.options.LogFilePath); err != nil {
			panic(fmt.Errorf("cannot remove temp log file \"%s\": %s", root.options.LogFilePath, err))
		}
	}
}

// init sets logger and options after flags are parsed.
func (root *rootCommand) init(cmd *cobra.Command) (err error) {
	if root.initialized {
		return
	}

	// Run only once
	root.initialized = true

	// Logger must always be set up, even if options loading fails
	defer func() {
		if root.logger == nil {
			root.setupLogger()
		}
	}()

	// Load values from flags and envs
	warnings, err := root.options.Load(cmd.Flags())
	if err != nil {
		return err
	}

	// Setup logger and log options load warnings
	root.setupLogger()
	root.logDebugInfo()
	for _, warning := range warnings {
		root.logger.Warn(warning)
	}

	// Disable prompts if requested
	if root.options.NonInteractive {
		root.prompt = nopPrompt.New()
	}
	root.dialogs = dialog.New(root.prompt)

	return nil
}

// setupLogger according to the options.
func (root *rootCommand) setupLogger() {
	logFile, logFileErr := root.getLogFile()
	root.logger = log.NewLogger(root.cmd.OutOrStdout(), root.cmd.ErrOrStderr(), logFile, root.options.Verbose)
	root.logFile = logFile
	root.cmd.SetOut(log.ToInfoWriter(root.logger))
	root.cmd.SetErr(log.ToWarnWriter(root.logger))

	// Warn if user specified a log file and it cannot be opened
	if logFileErr != nil && !root.logFileClear {
		root.logger.Warnf("Cannot open log file: %s", logFileErr)
	}
}

func (root *rootCommand) logDebugInfo() {
	log.ToDebugWriter(root.logger).WriteStringNoErr(root.cmd.Version)
	root.logger.Debugf("Running command %v", os.Args)
	root.logger.Debug(root.options.Dump())
}

// Get log file defined in the flags or create a temp file.
func (root *rootCommand) getLogFile() (logFile *os.File, logFileErr error) {
	if len(root.options.LogFilePath) > 0 {
		root.logFileClear = false // log file defined by user will be preserved
	} else {
		// Generate a unique hash if multiple instances start simultaneously
		randomHash := ``
		randomBytes := make([]byte, 6)
		if _, err := rand.Read(randomBytes); err == nil {
			randomHash = fmt.Sprintf(`-%x`, randomBytes)
		}

		// nolint: forbidigo
		root.options.LogFilePath = filepath.Join(os.TempDir(), fmt.Sprintf("ccmigrate-%d%s.txt", time.Now().Unix(), randomHash))
		root.logFileClear = true // temp log file will be removed, it is preserved only in case of error
	}

	// nolint: forbidigo
	logFile, logFileErr = os.OpenFile(root.options.LogFilePath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if logFileErr != nil {
		root.options.LogFilePath = ""
	}
	return
}
