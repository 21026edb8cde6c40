package cmd

import (
	"fmt"

	"github.com/careerbooster/cb-cli/internal/careerbooster"
	"github.com/careerbooster/cb-cli/internal/history"
	"github.com/careerbooster/cb-cli/internal/logger"
	"github.com/careerbooster/cb-cli/internal/secrets"
	"github.com/careerbooster/cb-cli/internal/session"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// appState wires the pieces every command needs: configuration, logger, the
// session manager and the API client. The session accessor is injected into
// the client, no package carries a global current user.
type appState struct {
	logger   *zap.Logger
	config   *Config
	sessions *session.Manager
	api      *careerbooster.Client
}

func newAppState() (*appState, error) {
	zl, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		return nil, fmt.Errorf("creating a logger: %w", err)
	}

	config, err := getConfig()
	if err != nil {
		return nil, fmt.Errorf("getting a config: %w", err)
	}

	sessionPath := config.SessionFile
	if sessionPath == "" {
		sessionPath, err = session.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	store := session.NewFileStore(sessionPath)
	manager := session.NewManager(store, nil, zl)
	// restore must finish before any authenticated command runs
	manager.Restore()

	tokens, err := tokenSource(config, manager)
	if err != nil {
		return nil, err
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = careerbooster.DefaultBaseURL(config.Platform)
	}

	api := careerbooster.New(baseURL, tokens, zl)
	if config.Timeout > 0 {
		api.HTTPClient.Timeout = config.Timeout
	}
	manager.SetAPI(api)

	return &appState{
		logger:   zl,
		config:   config,
		sessions: manager,
		api:      api,
	}, nil
}

// tokenSource prefers an explicitly supplied token file over the stored
// session, which keeps headless runs possible without a login flow.
func tokenSource(config *Config, manager *session.Manager) (careerbooster.TokenSource, error) {
	if config.TokenFile == "" {
		return manager, nil
	}

	token, err := secrets.Load(secrets.Source{
		Name: "bearer token",
		File: config.TokenFile,
	})
	if err != nil {
		return nil, err
	}

	return careerbooster.TokenFunc(func() string { return token }), nil
}

// requireAuth fails early with a clear message instead of letting a request
// bounce off the backend with a 401.
func (a *appState) requireAuth() error {
	if a.api.HasToken() {
		return nil
	}

	return fmt.Errorf("not logged in: run %q or %q first", app+" login", app+" register")
}

// openHistory opens the local history store. History is best-effort: a nil
// store with a logged warning is an acceptable outcome.
func (a *appState) openHistory() *history.Store {
	path := a.config.HistoryDB
	if path == "" {
		var err error
		path, err = history.DefaultPath()
		if err != nil {
			a.logger.Warn("history disabled", zap.Error(err))
			return nil
		}
	}

	store, err := history.Open(path)
	if err != nil {
		a.logger.Warn("history disabled", zap.Error(err))
		return nil
	}

	return store
}
