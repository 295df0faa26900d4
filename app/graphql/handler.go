package graphql

import (
	"log/slog"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"
	"github.com/labstack/echo/v4"
)

// Handler serves GraphQL requests over HTTP
type Handler struct {
	schema graphql.Schema
	logger *slog.Logger
}

// NewHandler creates a new GraphQL HTTP handler
func NewHandler(schema graphql.Schema, logger *slog.Logger) *Handler {
	return &Handler{
		schema: schema,
		logger: logger.With("component", "graphql_handler"),
	}
}

// request is the standard GraphQL-over-HTTP POST body
type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Execute handles POST /graphql. The request context already carries the
// resolved identity (or none) from the identity middleware; execution
// results, including resolver errors, are returned with status 200 in the
// standard {data, errors} envelope.
func (h *Handler) Execute(c echo.Context) error {
	var req request
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, graphql.Result{
			Errors: []gqlerrors.FormattedError{
				{Message: "malformed request body"},
			},
		})
	}

	if req.Query == "" {
		return c.JSON(http.StatusBadRequest, graphql.Result{
			Errors: []gqlerrors.FormattedError{
				{Message: "query is required"},
			},
		})
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        c.Request().Context(),
	})

	if len(result.Errors) > 0 {
		h.logger.Debug("graphql execution returned errors",
			"operation", req.OperationName,
			"errors", len(result.Errors))
	}

	return c.JSON(http.StatusOK, result)
}
