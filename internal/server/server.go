package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"CalendarScraper/internal/app"
	"CalendarScraper/internal/models"
	"CalendarScraper/internal/scraper"
	"CalendarScraper/utils"
)

// Server exposes the scrape pipeline over HTTP. Each request runs its own
// pipeline; a slot channel caps how many browser sessions run at once.
type Server struct {
	app        *app.App
	slots      chan struct{}
	newScraper func() scraper.Scraper
}

// New sizes the concurrent-session limit and returns a ready Server.
func New(a *app.App) *Server {
	n := utils.SessionCount(a.Config.Server.Workers)
	return &Server{app: a, slots: make(chan struct{}, n), newScraper: a.NewScraper}
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Post("/api/scrape", s.handleScrape)
	r.Get("/api/channels", s.handleListChannels)
	r.Post("/api/channels", s.handleAddChannel)
	r.Get("/health", s.handleHealth)
	return r
}

// Start runs the server on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.app.Config.Server.Port)
	zap.L().Info("starting API server", zap.String("addr", addr))
	return http.ListenAndServe(addr, s.Router())
}

type scrapeRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type scrapeResponse struct {
	ScrapedData []models.Record `json:"scraped_data"`
	Count       int             `json:"count"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	var body scrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req, err := models.ParseScrapeRequest(body.StartDate, body.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// One slot per browser session; park the request until one frees up.
	select {
	case s.slots <- struct{}{}:
		defer func() { <-s.slots }()
	case <-r.Context().Done():
		return
	}

	records, err := s.newScraper().Scrape(r.Context(), req)
	if err != nil {
		status, msg := classifyScrapeErr(err)
		zap.L().Error("scrape failed", zap.Error(err))
		writeError(w, status, msg)
		return
	}
	records = s.app.Decorate(records)

	writeJSON(w, http.StatusOK, scrapeResponse{ScrapedData: records, Count: len(records)})
}

type addChannelRequest struct {
	Channel string `json:"channel"`
	Website string `json:"website"`
	Country string `json:"country"`
}

func (s *Server) handleAddChannel(w http.ResponseWriter, r *http.Request) {
	var body addChannelRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Channel == "" || body.Website == "" {
		writeError(w, http.StatusBadRequest, "channel and website are required")
		return
	}
	if body.Country == "" {
		body.Country = "US"
	}

	ch := models.Channel{Name: body.Channel, Website: body.Website, Country: body.Country}
	if err := s.app.Repo.SaveChannel(ch); err != nil {
		zap.L().Error("failed to save channel", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to save channel")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListChannels(w http.ResponseWriter, _ *http.Request) {
	channels, err := s.app.Repo.All()
	if err != nil {
		zap.L().Error("failed to list channels", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list channels")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"channels": channels,
		"count":    len(channels),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// classifyScrapeErr maps the scraper error taxonomy onto HTTP statuses and
// the operator-facing message: network problem vs browser/driver problem vs
// site not responding.
func classifyScrapeErr(err error) (int, string) {
	var (
		connErr    *scraper.ConnectivityError
		launchErr  *scraper.BrowserLaunchError
		timeoutErr *scraper.PageTimeoutError
		extractErr *scraper.ExtractionError
	)
	switch {
	case errors.As(err, &connErr):
		return http.StatusBadGateway, connErr.Error()
	case errors.As(err, &launchErr):
		return http.StatusInternalServerError, launchErr.Error()
	case errors.As(err, &timeoutErr):
		return http.StatusGatewayTimeout, timeoutErr.Error()
	case errors.As(err, &extractErr):
		return http.StatusBadGateway, extractErr.Error()
	default:
		return http.StatusInternalServerError, "scraping failed, see server logs"
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("failed to encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
