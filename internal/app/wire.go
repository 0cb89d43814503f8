package app

import (
	"log/slog"
	"net/http"

	"proposer/internal/domain"
	"proposer/internal/gateway"
	"proposer/internal/logging"
	draftsvc "proposer/internal/services/draft"
	evidencesvc "proposer/internal/services/evidence"
	factssvc "proposer/internal/services/facts"
	sessionsvc "proposer/internal/services/session"
	"proposer/internal/store"
)

// App bundles the stores, clients, services and the hydrated workspace
// for the CLI.
type App struct {
	Workspace *domain.Workspace
	Store     domain.WorkspaceStore
	API       domain.ProposalAPI
	Broker    domain.UploadBroker

	Sessions *sessionsvc.Service
	Evidence *evidencesvc.Service
	Facts    *factssvc.Service
	Drafts   *draftsvc.Service

	Log      *slog.Logger
	CloseLog func() error
	Preview  int
}

// NewApp constructs the dependency graph from cfg and hydrates the
// workspace from the persisted snapshot, if any.
func NewApp(cfg Config, clipboard domain.Clipboard) (*App, error) {
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	fl, err := logging.NewFileLogger(cfg.Home, cfg.Debug)
	if err != nil {
		return nil, err
	}

	ws := store.NewWorkspaceFileStore(cfg.Home)
	api := gateway.NewAPI(cfg.APIBase, httpClient)
	broker := gateway.NewBroker(cfg.BrokerBase, httpClient)

	workspace := domain.NewWorkspace()
	if p, ok, err := ws.LoadWorkspace(); err != nil {
		return nil, err
	} else if ok {
		workspace.Hydrate(p)
	}

	return &App{
		Workspace: workspace,
		Store:     ws,
		API:       api,
		Broker:    broker,
		Sessions:  sessionsvc.New(api, ws, fl.Logger),
		Evidence:  evidencesvc.New(api, broker, fl.Logger),
		Facts:     factssvc.New(api, fl.Logger),
		Drafts:    draftsvc.New(api, ws, clipboard, fl.Logger, cfg.DraftPause),
		Log:       fl.Logger,
		CloseLog:  fl.Close,
		Preview:   cfg.Preview,
	}, nil
}
