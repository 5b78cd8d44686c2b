package http

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/wordfreq"
	"golang.org/x/sync/errgroup"
)

// ShutdownTimeout is the time given for outstanding requests to finish
// before the server is forcefully stopped.
const ShutdownTimeout = 5 * time.Second

// SessionCookie is the name of the cookie holding the session ID.
const SessionCookie = "wordfreq_session"

// ChartHeight is the pixel height of every embedded chart frame.
const ChartHeight = 600

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(
	template.New("index.html").
		Funcs(template.FuncMap{"inc": func(i int) int { return i + 1 }}).
		ParseFS(templateFS, "templates/index.html"),
)

// Server serves the browser UI.
type Server struct {
	ln     net.Listener
	server *http.Server
	router *http.ServeMux

	// Bind address for the server's listener.
	Addr string

	// Services used by the handlers.
	Analyzer wordfreq.Analyzer
	Charts   wordfreq.ChartRenderer
	Sessions wordfreq.SessionService

	Logger *slog.Logger
}

// NewServer returns a new Server with routes registered.
func NewServer() *Server {
	s := &Server{
		router: http.NewServeMux(),
		Logger: slog.New(slog.DiscardHandler),
	}
	s.server = &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.router.HandleFunc("GET /{$}", s.handleIndex)
	s.router.HandleFunc("GET /healthz", s.handleHealth)

	return s
}

// Open begins listening on the bind address.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	return nil
}

// Port returns the TCP port of the running server, or 0 if not open.
func (s *Server) Port() int {
	if s.ln == nil {
		return 0
	}
	return s.ln.Addr().(*net.TCPAddr).Port
}

// URL returns the local base URL of the running server.
func (s *Server) URL() string {
	return "http://localhost:" + strconv.Itoa(s.Port())
}

// Serve handles requests until ctx is canceled, then shuts down gracefully.
// Open must be called first.
func (s *Server) Serve(ctx context.Context) error {
	if s.ln == nil {
		return wordfreq.Errorf(wordfreq.EINVALID, "server not open")
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.server.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// ServeHTTP logs the request and dispatches it to the router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	defer func(begin time.Time) {
		s.Logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(begin),
		)
	}(time.Now())
	s.router.ServeHTTP(rec, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// indexPage is the data rendered by the index template.
type indexPage struct {
	URL      string
	Kinds    []kindOption
	MinFreq  int
	MaxFreq  int
	Height   int
	Errors   []string
	Analysis *analysisView
}

type kindOption struct {
	Value    string
	Label    string
	Selected bool
}

type analysisView struct {
	Top    []wordfreq.Term
	Charts []chartView
}

type chartView struct {
	Title string
	HTML  string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sess, err := s.session(w, r)
	if err != nil {
		s.Logger.Error("session", "err", err)
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}

	sess.Apply(parseSessionUpdate(r))
	if err := s.Sessions.UpdateSession(ctx, sess); err != nil {
		s.Logger.Error("session", "id", sess.ID, "err", err)
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}

	page := &indexPage{
		URL:     sess.URL,
		Kinds:   kindOptions(sess.Kind),
		MinFreq: 1,
		MaxFreq: 1,
		Height:  ChartHeight,
	}

	if sess.URL != "" {
		view, minFreq, maxFreq, err := s.analyze(ctx, sess)
		if err != nil {
			page.Errors = wordfreq.NewFailure(err, sess.URL).Lines()
		} else {
			page.Analysis = view
			page.MinFreq = minFreq
			page.MaxFreq = maxFreq
		}
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, page); err != nil {
		s.Logger.Error("render index", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// analyze runs the pipeline for the session and renders its charts. No
// partial view is returned on error.
func (s *Server) analyze(ctx context.Context, sess *wordfreq.Session) (*analysisView, int, int, error) {
	analysis, err := s.Analyzer.Analyze(ctx, sess.URL)
	if err != nil {
		return nil, 0, 0, err
	}

	threshold := analysis.Table.ClampThreshold(sess.MinFreq)
	top := analysis.Top()
	filtered := analysis.Filtered(threshold).TopN(wordfreq.DefaultTopN)

	type chartSpec struct {
		kind  wordfreq.ChartKind
		title string
		terms []wordfreq.Term
	}
	charts := []chartSpec{{wordfreq.ChartWordCloud, "Word cloud", top}}
	if sess.Kind != wordfreq.ChartWordCloud {
		charts = append(charts, chartSpec{sess.Kind, sess.Kind.Label(), top})
	}
	charts = append(charts, chartSpec{wordfreq.ChartWordCloud, "Word cloud, frequency ≥ " + strconv.Itoa(threshold), filtered})

	view := &analysisView{Top: top}
	for _, c := range charts {
		var buf bytes.Buffer
		if err := s.Charts.Render(&buf, c.kind, analysis.ChartData(c.title, c.terms)); err != nil {
			return nil, 0, 0, err
		}
		view.Charts = append(view.Charts, chartView{Title: c.title, HTML: buf.String()})
	}

	return view, threshold, analysis.Table.MaxCount(), nil
}

// session returns the caller's session, creating one and setting the
// cookie when the request has none or it has expired.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*wordfreq.Session, error) {
	ctx := r.Context()

	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		sess, err := s.Sessions.FindSessionByID(ctx, c.Value)
		if err == nil {
			return sess, nil
		} else if wordfreq.ErrorCode(err) != wordfreq.ENOTFOUND {
			return nil, err
		}
	}

	sess, err := s.Sessions.CreateSession(ctx)
	if err != nil {
		return nil, err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess, nil
}

// parseSessionUpdate reads the url, kind and min query parameters.
// Parameters that are absent or malformed are left out of the update.
func parseSessionUpdate(r *http.Request) wordfreq.SessionUpdate {
	q := r.URL.Query()

	var upd wordfreq.SessionUpdate
	if q.Has("url") {
		u := q.Get("url")
		upd.URL = &u
	}
	if kind, err := wordfreq.ParseChartKind(q.Get("kind")); err == nil {
		upd.Kind = &kind
	}
	if n, err := strconv.Atoi(q.Get("min")); err == nil {
		upd.MinFreq = &n
	}
	return upd
}

func kindOptions(selected wordfreq.ChartKind) []kindOption {
	kinds := wordfreq.ChartKinds()
	opts := make([]kindOption, len(kinds))
	for i, k := range kinds {
		opts[i] = kindOption{Value: k.String(), Label: k.Label(), Selected: k == selected}
	}
	return opts
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
