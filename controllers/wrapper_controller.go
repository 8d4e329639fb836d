package controllers

import (
	"net/http"

	"masterdataapi/pkg/logger"
	"masterdataapi/services"
	"masterdataapi/utils"

	"github.com/gin-gonic/gin"
)

var wrapperSrv services.WrapperService

// SetWrapperService initializes the wrapper service instance.
// Used for dependency injection in tests to provide mock implementations.
func SetWrapperService(s services.WrapperService) {
	wrapperSrv = s
}

// postWrapper dispatches a generic table-wrapper operation
// @Summary Generic master table wrapper
// @Description Dispatches create/list/view/update/delete/list_col_values over a whitelisted master table
// @Tags Master Data
// @Accept json
// @Produce json
// @Param request body services.WrapperRequest true "Wrapper request"
// @Success 200 {object} services.Envelope "Operation completed"
// @Success 201 {object} services.Envelope "Record created"
// @Failure 400 {object} services.Envelope "Shape, whitelist or validation error"
// @Failure 401 {object} services.Envelope "Missing or invalid credential"
// @Failure 404 {object} services.Envelope "Locator matched no active record"
// @Failure 500 {object} services.Envelope "Unexpected store error"
// @Router /api/master/wrapper [post]
func postWrapper(c *gin.Context) {
	var req services.WrapperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONResponse(c, http.StatusBadRequest, services.Envelope{
			Success: false,
			Message: "Invalid request body.",
			Data:    nil,
		})
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.JSONResponse(c, http.StatusBadRequest, services.Envelope{
			Success: false,
			Message: "Missing required field: table_name and method_name are mandatory.",
			Data:    nil,
		})
		return
	}

	p, ok := utils.CurrentPrincipal(c)
	if !ok {
		utils.JSONResponse(c, http.StatusUnauthorized, services.Envelope{
			Success: false,
			Message: "Authentication credentials were not provided.",
			Data:    nil,
		})
		return
	}

	logger.Debugf("Wrapper %s on %s by %s", req.MethodName, req.TableName, p.Login)
	status, envelope := wrapperSrv.Dispatch(p.Login, req)
	utils.JSONResponse(c, status, envelope)
}

// RegisterWrapperRoutes registers the generic table-wrapper endpoint.
func RegisterWrapperRoutes(rg *gin.RouterGroup) {
	rg.POST("/wrapper", postWrapper)
}
