package export

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"mixget/internal/catalog"
	"mixget/internal/domain"
	"mixget/internal/metrics"
	"mixget/internal/remote"
)

const (
	// DefaultPollInterval is the wait before each monitor poll.
	DefaultPollInterval = 3 * time.Second
	// DefaultMaxPolls bounds one job to roughly ten minutes of polling.
	DefaultMaxPolls = 200
)

// Config holds the worker settings that do not change between runs.
type Config struct {
	ManifestPath string
	PageSize     int
	PollInterval time.Duration
	// MaxPolls of zero polls until the job completes or fails.
	MaxPolls    int
	Preferences domain.Preferences
}

// DefaultConfig returns the settings matching the service's web client.
func DefaultConfig() Config {
	return Config{
		ManifestPath: catalog.DefaultManifestPath,
		PageSize:     catalog.DefaultPageSize,
		PollInterval: DefaultPollInterval,
		MaxPolls:     DefaultMaxPolls,
		Preferences:  DefaultPreferences(),
	}
}

// Request selects what one run exports and where it writes.
type Request struct {
	OutputPath string
	Mode       domain.ExportMode
	Query      string
}

// Validate checks presence only: a known mode, and a query in query mode.
func (r Request) Validate() error {
	if !r.Mode.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidMode, r.Mode)
	}
	if r.Mode == domain.ModeQuery && r.Query == "" {
		return domain.ErrQueryRequired
	}
	return nil
}

// Option customises a Worker.
type Option func(*Worker)

// WithMetrics records polls, exports and downloaded bytes on m.
func WithMetrics(m *metrics.Recorder) Option { return func(w *Worker) { w.metrics = m } }

// WithLogger replaces the standard logger.
func WithLogger(l *log.Logger) Option { return func(w *Worker) { w.logger = l } }

// WithSleep replaces the poll-interval wait.
func WithSleep(sleep func(context.Context, time.Duration) error) Option {
	return func(w *Worker) { w.sleep = sleep }
}

// Worker runs export passes one at a time.
type Worker struct {
	api     domain.AnimationAPI
	writer  domain.ModelWriter
	cfg     Config
	metrics *metrics.Recorder
	logger  *log.Logger
	sleep   func(context.Context, time.Duration) error

	mu      sync.Mutex
	req     Request
	running atomic.Bool
	stop    atomic.Bool
}

// New returns a worker using api for remote calls and writer for output.
func New(api domain.AnimationAPI, writer domain.ModelWriter, cfg Config, opts ...Option) *Worker {
	w := &Worker{
		api:    api,
		writer: writer,
		cfg:    cfg,
		logger: log.Default(),
		sleep:  remote.SleepContext,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Configure sets the target of the next run.
func (w *Worker) Configure(req Request) error {
	if err := req.Validate(); err != nil {
		return err
	}
	w.mu.Lock()
	w.req = req
	w.mu.Unlock()
	return nil
}

// Cancel asks the current pass to stop before its next animation. A Cancel
// issued while idle applies to the next Run, which then stops before its
// first animation. The request is cleared when a pass returns.
func (w *Worker) Cancel() { w.stop.Store(true) }

// Running reports whether a pass is in progress.
func (w *Worker) Running() bool { return w.running.Load() }

// Run executes one pass synchronously. Done is emitted on every return path
// except ErrRunInProgress, where no pass was started.
func (w *Worker) Run(ctx context.Context, obs domain.ProgressObserver) error {
	if !w.running.CompareAndSwap(false, true) {
		return domain.ErrRunInProgress
	}
	defer w.running.Store(false)
	defer w.stop.Store(false)
	if obs == nil {
		obs = ObserverFuncs{}
	}
	defer obs.Done()

	w.mu.Lock()
	req := w.req
	w.mu.Unlock()
	if err := req.Validate(); err != nil {
		return err
	}

	runID := uuid.NewString()
	w.logf(runID, "Starting export run mode=%s output=%q", req.Mode, req.OutputPath)

	// Step 1: resolve character
	ch, err := w.api.PrimaryCharacter(ctx)
	if err != nil {
		return fmt.Errorf("resolve primary character: %w", err)
	}
	if ch.ID == "" {
		w.logf(runID, "No primary character on the account")
		return domain.ErrNoCharacter
	}
	w.logf(runID, "Primary character %s (%s)", ch.Name, ch.ID)

	// Step 2: acquire animation list
	cat, err := w.source(req, ch).Load(ctx)
	if err != nil {
		return fmt.Errorf("load %s catalog: %w", req.Mode, err)
	}
	obs.TotalCount(len(cat))
	w.logf(runID, "Resolved %d animations", len(cat))

	for i, entry := range cat {
		if w.stop.Load() {
			w.logf(runID, "Cancelled after %d of %d animations", i, len(cat))
			return domain.ErrCancelled
		}

		// Step 3: build payload
		payload, err := w.payload(ctx, req, ch, entry)
		if err != nil {
			return err
		}
		w.logf(runID, "[%d/%d] Exporting %q", i+1, len(cat), payload.ProductName)

		// Steps 4-5: submit and poll
		link, err := w.export(ctx, runID, ch.ID, payload)
		if err != nil {
			return err
		}

		// Step 6: download
		file, err := w.download(ctx, req.OutputPath, payload.ProductName, link)
		if err != nil {
			return err
		}
		w.logf(runID, "[%d/%d] Saved %s (%d bytes)", i+1, len(cat), file.Path, file.Size)
		obs.TaskCompleted(i + 1)
	}

	w.logf(runID, "Export run completed")
	return nil
}

func (w *Worker) source(req Request, ch domain.Character) domain.CatalogSource {
	switch req.Mode {
	case domain.ModeTPose:
		return catalog.TPose{Character: ch}
	case domain.ModeQuery:
		return catalog.Search{API: w.api, Query: req.Query, PageSize: w.cfg.PageSize}
	default:
		return catalog.Manifest{Path: w.cfg.ManifestPath}
	}
}

func (w *Worker) payload(ctx context.Context, req Request, ch domain.Character, entry domain.CatalogEntry) (domain.ExportPayload, error) {
	if req.Mode == domain.ModeTPose {
		return BuildTPosePayload(ch), nil
	}
	d, err := w.api.Product(ctx, entry.ID, ch.ID)
	if err != nil {
		return domain.ExportPayload{}, fmt.Errorf("fetch animation %s (%q): %w", entry.ID, entry.Description, err)
	}
	return BuildAnimationPayload(ch.ID, d, w.cfg.Preferences)
}

// export submits payload and polls the character's monitor until the job
// reaches a terminal state, returning the download link.
func (w *Worker) export(ctx context.Context, runID string, characterID domain.CharacterID, payload domain.ExportPayload) (string, error) {
	if err := w.api.Export(ctx, payload); err != nil {
		return "", fmt.Errorf("submit export of %q: %w", payload.ProductName, err)
	}

	var last domain.MonitorStatus
	for attempt := 1; w.cfg.MaxPolls <= 0 || attempt <= w.cfg.MaxPolls; attempt++ {
		if err := w.sleep(ctx, w.cfg.PollInterval); err != nil {
			return "", err
		}
		st, err := w.api.Monitor(ctx, characterID)
		if err != nil {
			return "", fmt.Errorf("poll export of %q: %w", payload.ProductName, err)
		}
		w.metrics.ObservePoll()
		last = st

		switch {
		case st.Status.Completed():
			if st.JobResult == "" {
				w.metrics.ObserveExport(metrics.OutcomeFailed)
				return "", &domain.JobFailedError{Product: payload.ProductName, Status: st.Status, Message: "no download link in job result"}
			}
			w.metrics.ObserveExport(metrics.OutcomeCompleted)
			return st.JobResult, nil
		case st.Status.Failed():
			w.logf(runID, "Export of %q failed: %s", payload.ProductName, st.Message)
			w.metrics.ObserveExport(metrics.OutcomeFailed)
			return "", &domain.JobFailedError{Product: payload.ProductName, Status: st.Status, Message: st.Message}
		}
	}

	w.metrics.ObserveExport(metrics.OutcomeTimeout)
	return "", &domain.PollTimeoutError{Product: payload.ProductName, Attempts: w.cfg.MaxPolls, Status: last.Status}
}

func (w *Worker) download(ctx context.Context, dir, name, link string) (domain.DownloadedFile, error) {
	data, err := w.api.Download(ctx, link)
	if err != nil {
		return domain.DownloadedFile{}, fmt.Errorf("download %q: %w", name, err)
	}
	w.metrics.ObserveDownload(len(data))
	file, err := w.writer.WriteModel(dir, name, data)
	if err != nil {
		return domain.DownloadedFile{}, err
	}
	return file, nil
}

func (w *Worker) logf(runID, format string, args ...any) {
	if w.logger == nil {
		return
	}
	w.logger.Printf("[%s] "+format, append([]any{runID}, args...)...)
}

// IsCancelled reports whether err ended a run through Cancel.
func IsCancelled(err error) bool { return errors.Is(err, domain.ErrCancelled) }
