package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harrison/consolidator/internal/config"
	"github.com/harrison/consolidator/internal/filelock"
	"github.com/harrison/consolidator/internal/gateway"
	"github.com/harrison/consolidator/internal/logger"
	"github.com/harrison/consolidator/internal/report"
)

// addCommonFlags registers the flags shared by every subcommand.
func addCommonFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String("config", "", "Path to config file (default: .consolidator/config.yaml)")
	flags.String("log-level", "", "Log verbosity: trace, debug, info, warn, error")
	flags.String("log-dir", "", "Directory for run log files")
	flags.Bool("no-log-file", false, "Log to the console only")
	flags.BoolP("quiet", "q", false, "Suppress console logging (warnings and the run log are kept)")
	flags.String("format", "", "Output format: text, json, yaml, markdown, html")
	flags.StringP("output", "o", "", "Write the report to a file instead of stdout")
	flags.String("strategy", "", "Consolidation strategy: greedy, components")
}

// session carries the merged configuration and loggers for one command run.
type session struct {
	cfg     *config.Config
	log     logger.Logger
	closers []io.Closer
}

// Close releases the run log.
func (s *session) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// newSession loads configuration, applies changed flags and opens loggers.
func newSession(cmd *cobra.Command) (*session, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		var err error
		configPath, err = config.GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to locate config: %w", err)
		}
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	}

	// Build flag pointers for merge (only explicitly set values)
	stringFlag := func(name string) *string {
		if !cmd.Flags().Changed(name) {
			return nil
		}
		v, _ := cmd.Flags().GetString(name)
		return &v
	}
	cfg.MergeWithFlags(stringFlag("log-level"), stringFlag("log-dir"), stringFlag("strategy"), stringFlag("format"))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	s := &session{cfg: cfg}
	var consoleLog logger.Logger = logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		consoleLog = logger.NewNoOpLogger()
	}

	noLogFile, _ := cmd.Flags().GetBool("no-log-file")
	if noLogFile {
		s.log = consoleLog
		return s, nil
	}

	logDir, err := cfg.ResolveLogDir()
	if err != nil {
		return nil, err
	}
	fileLog, err := logger.NewFileLoggerWithDirAndLevel(logDir, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create file logger: %w", err)
	}
	s.closers = append(s.closers, fileLog)
	s.log = logger.NewMultiLogger(consoleLog, fileLog)
	s.log.LogDebug(fmt.Sprintf("Run %s logging to %s", fileLog.RunID(), fileLog.RunFile()))

	return s, nil
}

// gcsOptions maps the gcs config section onto the gateway.
func (s *session) gcsOptions() gateway.GCSOptions {
	return gateway.GCSOptions{
		CredentialsFile: s.cfg.GCS.CredentialsFile,
		CredentialsJSON: s.cfg.GCS.CredentialsJSON,
		Endpoint:        s.cfg.GCS.Endpoint,
	}
}

// lister resolves dir to a lister that reports each listing to the log.
// A non-empty exts keeps only names with those extensions.
func (s *session) lister(ctx context.Context, dir string, exts ...string) (*loggingLister, error) {
	l, err := gateway.Resolve(ctx, dir, s.gcsOptions(), exts...)
	if err != nil {
		return nil, err
	}
	if c, ok := l.(io.Closer); ok {
		s.closers = append(s.closers, c)
	}
	return &loggingLister{Lister: l, log: s.log}, nil
}

// writeReport renders rep in the configured format to --output or stdout.
func (s *session) writeReport(cmd *cobra.Command, rep *report.Report) error {
	out, err := report.Render(rep, s.cfg.Format)
	if err != nil {
		return err
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), out)
		return err
	}

	if err := filelock.LockAndWrite(outputPath, []byte(out), filelock.DefaultTimeout); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	s.log.LogInfo(fmt.Sprintf("Report written to %s", outputPath))
	return nil
}

// loggingLister records every successful listing.
type loggingLister struct {
	gateway.Lister
	log    logger.Logger
	listed int
}

func (l *loggingLister) ListFiles(ctx context.Context, dir, glob string) ([]string, error) {
	names, err := l.Lister.ListFiles(ctx, dir, glob)
	if err != nil {
		return nil, err
	}
	l.listed = len(names)
	l.log.LogScan(dir, glob, len(names))
	return names, nil
}

// readLines reads one name per line, dropping blank lines and trailing CR.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read names: %w", err)
	}
	return lines, nil
}
