package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/FuandB/vn-numtext/internal/reading"
)

type readRequest struct {
	Number string `json:"number" form:"number" query:"number"`
}

type parseRequest struct {
	Text string `json:"text" form:"text" query:"text"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) routes() {
	s.echo.GET("/", s.handleIndex)
	s.echo.POST("/", s.handleIndexSubmit)

	api := s.echo.Group("/api/v1")
	api.GET("/read", s.handleRead)
	api.POST("/read", s.handleRead)
	api.GET("/parse", s.handleParse)
	api.POST("/parse", s.handleParse)
	api.GET("/ordinal", s.handleOrdinal)

	s.echo.GET("/api/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}

func (s *Server) handleIndex(c echo.Context) error {
	return c.Render(http.StatusOK, indexTemplate, pageData{})
}

func (s *Server) handleIndexSubmit(c echo.Context) error {
	raw := c.FormValue("number")
	res, err := s.svc.Cardinal(raw)
	if err != nil {
		return c.Render(s.status(c, err), indexTemplate, pageData{Input: raw, Error: reading.Message(err)})
	}
	return c.Render(http.StatusOK, indexTemplate, pageData{Input: raw, Text: res.Text})
}

func (s *Server) handleRead(c echo.Context) error {
	var req readRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	res, err := s.svc.Cardinal(req.Number)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (s *Server) handleParse(c echo.Context) error {
	var req parseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	res, err := s.svc.Parse(req.Text)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (s *Server) handleOrdinal(c echo.Context) error {
	res, err := s.svc.Ordinal(c.QueryParam("number"))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// fail writes err as a JSON error response.
func (s *Server) fail(c echo.Context, err error) error {
	status := s.status(c, err)
	resp := errorResponse{Error: reading.Message(err)}
	if status != http.StatusInternalServerError {
		resp.Detail = err.Error()
	}
	return c.JSON(status, resp)
}

// status maps err to an HTTP status, logging unexpected errors.
func (s *Server) status(c echo.Context, err error) int {
	switch {
	case errors.Is(err, reading.ErrTooLong):
		return http.StatusRequestEntityTooLarge
	case reading.IsUserError(err):
		return http.StatusUnprocessableEntity
	default:
		s.log.Error("reading failed",
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			zap.Error(err))
		return http.StatusInternalServerError
	}
}
