package app

import (
	"context"
	"os"

	"github.com/doeshing/spinit/internal/application/run"
	"github.com/doeshing/spinit/internal/infrastructure/config"
	"github.com/doeshing/spinit/internal/infrastructure/executor"
	"github.com/doeshing/spinit/internal/infrastructure/history"
	"github.com/doeshing/spinit/internal/infrastructure/spinner"
	"github.com/doeshing/spinit/internal/pkg/logger"
	"github.com/doeshing/spinit/internal/ports"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	RunService   *run.Service
	ConfigLoader *config.FileLoader
	HistoryStore ports.HistoryRepository
	Spinner      *spinner.Controller
	Logger       ports.Logger
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewStd(verbose)
	historyStore := history.NewSQLiteStore(cfg.History.Path)
	controller := spinner.New(os.Stdout)

	runService := &run.Service{
		ConfigProvider: cfgLoader,
		Executor:       executor.NewLocal(cfg.Execution.Shell),
		Reporter:       controller,
		History:        historyStore,
		Logger:         log,
	}

	return &Container{
		RunService:   runService,
		ConfigLoader: cfgLoader,
		HistoryStore: historyStore,
		Spinner:      controller,
		Logger:       log,
	}, nil
}
