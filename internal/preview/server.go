package preview

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server exposes a Registry over HTTP: one endpoint for a job's current
// status, one for its finished per-layer geometry, and one websocket
// endpoint that pushes status updates as the job advances.
type Server struct {
	registry *Registry
	echo     *echo.Echo
	upgrader websocket.Upgrader
}

// NewServer builds a Server around registry. Routes are registered
// immediately; call ListenAndServe to start accepting connections.
func NewServer(registry *Registry) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	s := &Server{registry: registry, echo: e}

	e.GET("/jobs/:id", s.handleStatus)
	e.GET("/jobs/:id/layers", s.handleLayers)
	e.GET("/jobs/:id/stream", s.handleStream)

	return s
}

// ListenAndServe blocks serving HTTP on addr.
func (s *Server) ListenAndServe(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) lookup(c echo.Context) (*SliceJob, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "malformed job id")
	}
	job, ok := s.registry.Get(id)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusNotFound, "job not found")
	}
	return job, nil
}

type statusResponse struct {
	ID             uuid.UUID `json:"id"`
	StartedAt      time.Time `json:"started_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	LayerCount     int       `json:"layer_count"`
	CompletedCount int       `json:"completed_count"`
	Done           bool      `json:"done"`
	Error          string    `json:"error,omitempty"`
	WarningCount   int       `json:"warning_count"`
}

func (s *Server) handleStatus(c echo.Context) error {
	job, err := s.lookup(c)
	if err != nil {
		return err
	}
	resp := statusResponse{
		ID:             job.ID,
		StartedAt:      job.StartedAt,
		UpdatedAt:      job.UpdatedAt,
		LayerCount:     job.LayerCount,
		CompletedCount: job.CompletedCount,
		Done:           job.Done,
		WarningCount:   job.WarningCount,
	}
	if job.Err != nil {
		resp.Error = job.Err.Error()
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleLayers(c echo.Context) error {
	job, err := s.lookup(c)
	if err != nil {
		return err
	}
	if !job.Done || job.Stack == nil {
		return echo.NewHTTPError(http.StatusConflict, "job has not finished slicing")
	}
	return c.JSON(http.StatusOK, job.Stack.Layers)
}

// handleStream upgrades to a websocket connection and pushes a status
// message on connect and after each Subscribe notification (several
// advances between pushes yield one message), closing the connection once
// the job is done.
func (s *Server) handleStream(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed job id")
	}
	if _, ok := s.registry.Get(id); !ok {
		return echo.NewHTTPError(http.StatusNotFound, "job not found")
	}

	conn, err := s.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	updates, cancel := s.registry.Subscribe(id)
	defer cancel()

	for {
		job, ok := s.registry.Get(id)
		if !ok {
			return nil
		}
		if err := conn.WriteJSON(job); err != nil {
			return nil
		}
		if job.Done {
			return nil
		}
		if _, ok := <-updates; !ok {
			return nil
		}
	}
}

// MarshalJSON renders a SliceJob's progress fields for the websocket
// stream, omitting the full layer stack to keep each push small.
func (j *SliceJob) MarshalJSON() ([]byte, error) {
	type wire struct {
		ID             uuid.UUID `json:"id"`
		CompletedCount int       `json:"completed_count"`
		LayerCount     int       `json:"layer_count"`
		Done           bool      `json:"done"`
		WarningCount   int       `json:"warning_count"`
	}
	w := wire{
		ID:             j.ID,
		CompletedCount: j.CompletedCount,
		LayerCount:     j.LayerCount,
		Done:           j.Done,
		WarningCount:   j.WarningCount,
	}
	return json.Marshal(w)
}
