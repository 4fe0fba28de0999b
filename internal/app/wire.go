package app

import (
	"fmt"
	"net/http"

	"coursehub/internal/backend"
	"coursehub/internal/domain"
	"coursehub/internal/logging"
	"coursehub/internal/mockapi"
	coursesvc "coursehub/internal/services/course"
	messagesvc "coursehub/internal/services/message"
	"coursehub/internal/store"
)

// InProcessURL is the base URL used when requests are served by the in-process mock.
const InProcessURL = "http://coursehub.local"

// Wire bundles the services and clients shared by every view.
type Wire struct {
	Logger   logging.Logger
	Messages *messagesvc.Service
	Courses  domain.CourseService
	Backend  domain.CourseBackend
	HTTP     *http.Client

	// Set only when the in-process mock backend is installed.
	Store     *store.MemoryStore
	Transport *mockapi.Transport
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	logger, err := logging.New(cfg.LogOutput, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	policy, err := coursesvc.ParsePolicy(cfg.ErrorPolicy)
	if err != nil {
		return nil, err
	}

	w := &Wire{Logger: logger, Messages: messagesvc.New()}

	base := cfg.APIURL
	if base == "" {
		// Install the mock backend in place of a real server.
		seed, err := store.LoadSeed(cfg.SeedFile)
		if err != nil {
			return nil, fmt.Errorf("load seed: %w", err)
		}
		w.Store = store.NewMemoryStore(seed)

		h := mockapi.NewHandler(w.Store)
		h.Logger = logger
		h.Delay = cfg.Delay
		w.Transport = mockapi.NewTransport(h)
		w.HTTP = &http.Client{Transport: w.Transport, Timeout: cfg.Timeout}
		base = InProcessURL
	} else {
		w.HTTP = cfg.HTTP
		if w.HTTP == nil {
			w.HTTP = &http.Client{Timeout: cfg.Timeout}
		}
	}

	w.Backend = backend.NewHTTP(base, w.HTTP)
	w.Courses = coursesvc.New(w.Backend, w.Messages,
		coursesvc.WithLogger(logger),
		coursesvc.WithPolicy(policy),
	)
	return w, nil
}
