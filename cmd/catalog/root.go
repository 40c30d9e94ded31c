package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"homeinsight-catalog/internal/datasource"
	"homeinsight-catalog/internal/session"
	"homeinsight-catalog/pkg/config"
	"homeinsight-catalog/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const defaultLogFile = "catalog.log"

type rootOptions struct {
	configPath string
	apiBaseURL string
	mediaBase  string
	debounce   string
	anonymous  bool
	debug      bool
}

// env holds everything a subcommand needs after configuration is resolved
type env struct {
	cfg     *config.Config
	client  *datasource.Client
	session *session.Store
	logFile *os.File
}

func (e *env) close() {
	if e.logFile != nil {
		_ = e.logFile.Close()
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "catalog",
		Short:        "Browse real-estate listings from the terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(opts)
			if err != nil {
				return err
			}
			defer e.close()
			return runBrowser(cmd.Context(), e, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to config file (default $CONFIG_PATH or configs/config.yaml)")
	flags.StringVar(&opts.apiBaseURL, "api", "", "listing service base URL")
	flags.StringVar(&opts.mediaBase, "media", "", "base URL for relative photo references")
	flags.StringVar(&opts.debounce, "debounce", "", "quiet period before a search is sent (e.g. 600ms)")
	flags.BoolVar(&opts.debug, "debug", false, "log at DEBUG level and trace HTTP requests")
	cmd.Flags().BoolVar(&opts.anonymous, "anonymous", false, "ignore any saved session and browse public listings")

	cmd.AddCommand(newLoginCmd(opts), newLogoutCmd(opts))
	return cmd
}

// setup loads .env and config, layers flags on top and opens the log file
func setup(opts *rootOptions) (*env, error) {
	_ = godotenv.Load()

	configPath := opts.configPath
	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	if opts.apiBaseURL != "" {
		os.Setenv("CATALOG_API_BASE_URL", opts.apiBaseURL)
	}
	if opts.mediaBase != "" {
		os.Setenv("CATALOG_MEDIA_BASE_URL", opts.mediaBase)
	}
	if opts.debounce != "" {
		os.Setenv("CATALOG_DEBOUNCE", opts.debounce)
	}
	if opts.debug {
		os.Setenv("LOG_LEVEL", "DEBUG")
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %v", err)
	}

	logPath := cfg.Log.File
	if logPath == "" {
		logPath = defaultLogFile
	}
	logFile, err := logger.OpenLogFile(logPath)
	if err != nil {
		return nil, err
	}
	logger.InitLogger(logFile, cfg.Log.Level)

	tokenFile := cfg.Client.TokenFile
	if tokenFile == "" {
		tokenFile = defaultTokenFile()
	}
	store := session.NewStore(tokenFile)
	if err := store.Load(); err != nil {
		logger.GlobalLogger.Errorf("Failed to load saved session: %v", err)
	}
	if store.Expired(time.Now()) {
		logger.GlobalLogger.Println("Saved session has expired; browsing public listings")
		store.Clear()
	}

	client := datasource.NewClient(datasource.Options{
		BaseURL:    cfg.Client.APIBaseURL,
		Timeout:    cfg.Client.Timeout,
		RetryCount: cfg.Client.RetryCount,
		Debug:      opts.debug,
	})

	logger.GlobalLogger.Printf("Catalog configured: api=%s, media=%s, debounce=%v", cfg.Client.APIBaseURL, cfg.Media.BaseURL, cfg.Client.Debounce)
	return &env{cfg: cfg, client: client, session: store, logFile: logFile}, nil
}

func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "homeinsight-catalog", "token")
}
