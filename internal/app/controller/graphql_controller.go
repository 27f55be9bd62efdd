package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
	apperrors "github.com/ikkim/cart-backend/internal/errors"
	"github.com/ikkim/cart-backend/internal/middleware"
)

type GraphQLController struct {
	schema *graphql.Schema
}

func NewGraphQLController(schema *graphql.Schema) *GraphQLController {
	return &GraphQLController{
		schema: schema,
	}
}

type GraphQLRequest struct {
	Query         string                 `json:"query" binding:"required"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Execute runs one GraphQL operation.
// POST /api/graphql
func (ctrl *GraphQLController) Execute(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req GraphQLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid GraphQL request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidFormat, "request body must be a JSON object with a query")
		return
	}

	resp := ctrl.schema.Exec(c.Request.Context(), req.Query, req.OperationName, req.Variables)

	if len(resp.Errors) > 0 {
		messages := make([]string, 0, len(resp.Errors))
		for _, e := range resp.Errors {
			messages = append(messages, e.Message)
		}
		log.Warn("GraphQL operation returned errors", map[string]interface{}{
			"operation": req.OperationName,
			"errors":    messages,
		})
	} else {
		log.Debug("GraphQL operation executed", map[string]interface{}{
			"operation": req.OperationName,
		})
	}

	c.JSON(http.StatusOK, resp)
}
