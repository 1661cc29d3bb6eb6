package cmd

import (
	"io"
	"os"

	"github.com/gitx-cli/gitx/internal/config"
	"github.com/gitx-cli/gitx/internal/repository"
	"github.com/gitx-cli/gitx/internal/service"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// container holds all the dependencies for the application.
type container struct {
	cfg    *config.Config
	logger *zap.Logger
	fs     afero.Fs

	git     repository.GitClient
	hosting repository.HostingClient
	editor  service.EditorService

	// in is the interactive input stream for confirmation prompts.
	in io.Reader
}

// newContainer creates a new container with all the dependencies.
func newContainer() (*container, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	fs := afero.NewOsFs()
	return &container{
		cfg:     cfg,
		logger:  logger,
		fs:      fs,
		git:     repository.NewGitClient(cfg.GitBinary, cfg.Remote, logger),
		hosting: repository.NewHostingClient(cfg.GhBinary, fs, logger),
		editor:  service.NewEditorService(cfg.Editor, fs, logger),
		in:      os.Stdin,
	}, nil
}

// newLogger builds a console logger bound to stderr so primary results on
// stdout stay uncontaminated.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
