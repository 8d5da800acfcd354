package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jvs-project/uuidgen/pkg/errclass"
	"github.com/jvs-project/uuidgen/pkg/metrics"
	"github.com/jvs-project/uuidgen/pkg/uuid"
)

// MaxCount caps how many UUIDs one request may ask for.
const MaxCount = 1000

type generateResponse struct {
	UUIDs []string `json:"uuids"`
}

type compareRequest struct {
	A string `json:"a" binding:"required"`
	B string `json:"b" binding:"required"`
}

type compareResponse struct {
	Equal bool `json:"equal"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// generate handles GET /v1/uuids?count=N.
func (s *Server) generate(c *gin.Context) {
	count := 1
	if raw := c.Query("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > MaxCount {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "count must be between 1 and " + strconv.Itoa(MaxCount)})
			return
		}
		count = n
	}

	resp := generateResponse{UUIDs: make([]string, 0, count)}
	for i := 0; i < count; i++ {
		start := time.Now()
		u, err := s.newID()
		s.metrics.RecordGenerate(metrics.SurfaceHTTP, err == nil, time.Since(start))
		if err != nil {
			s.logger.ErrorErr("generate uuid", err)
			s.writeError(c, http.StatusServiceUnavailable, err)
			return
		}
		resp.UUIDs = append(resp.UUIDs, u.String())
	}
	c.JSON(http.StatusOK, resp)
}

// inspect handles GET /v1/uuids/:id.
func (s *Server) inspect(c *gin.Context) {
	u, err := uuid.Parse(c.Param("id"))
	s.metrics.RecordParse(metrics.SurfaceHTTP, err == nil)
	if err != nil {
		s.writeError(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusOK, uuid.Inspect(u))
}

// compare handles POST /v1/uuids/compare.
func (s *Server) compare(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	a, err := uuid.Parse(req.A)
	s.metrics.RecordParse(metrics.SurfaceHTTP, err == nil)
	if err != nil {
		s.writeError(c, http.StatusBadRequest, err)
		return
	}
	b, err := uuid.Parse(req.B)
	s.metrics.RecordParse(metrics.SurfaceHTTP, err == nil)
	if err != nil {
		s.writeError(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusOK, compareResponse{Equal: a.Equal(b)})
}

func (s *Server) writeError(c *gin.Context, status int, err error) {
	resp := errorResponse{Error: err.Error()}
	var ue *errclass.UUIDError
	if errors.As(err, &ue) {
		resp.Code = ue.Code
	}
	c.JSON(status, resp)
}
