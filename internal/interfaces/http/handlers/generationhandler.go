package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	generationUsecases "fiscalis/internal/application/generation/usecases"
	"fiscalis/internal/shared/constants"
	"fiscalis/internal/shared/logger"
	"fiscalis/internal/shared/utils"
)

type GenerationHandler struct {
	runManualUC     *generationUsecases.RunManualGenerationUseCase
	newBusinessUC   *generationUsecases.GenerateForNewBusinessUseCase
	catalogChangeUC *generationUsecases.RegenerateOnCatalogChangeUseCase
	logger          logger.Interface
}

func NewGenerationHandler(
	runManualUC *generationUsecases.RunManualGenerationUseCase,
	newBusinessUC *generationUsecases.GenerateForNewBusinessUseCase,
	catalogChangeUC *generationUsecases.RegenerateOnCatalogChangeUseCase,
	logger logger.Interface,
) *GenerationHandler {
	return &GenerationHandler{
		runManualUC:     runManualUC,
		newBusinessUC:   newBusinessUC,
		catalogChangeUC: catalogChangeUC,
		logger:          logger,
	}
}

// RunGeneration triggers a full-portfolio generation run and returns the
// run summary synchronously.
func (h *GenerationHandler) RunGeneration(c *gin.Context) {
	actorID := c.GetHeader(constants.HeaderXActor)

	cmd := generationUsecases.RunManualGenerationCommand{
		ActorID: actorID,
	}

	summary, err := h.runManualUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("manual generation run failed", "error", err, "actor", actorID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "generation run completed", summary)
}

// GenerateForBusiness triggers generation scoped to one newly created
// business.
func (h *GenerationHandler) GenerateForBusiness(c *gin.Context) {
	actorID := c.GetHeader(constants.HeaderXActor)

	businessID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid business ID")
		return
	}

	cmd := generationUsecases.GenerateForNewBusinessCommand{
		BusinessID: uint(businessID),
		ActorID:    actorID,
	}

	summary, err := h.newBusinessUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("new-business generation failed",
			"error", err, "business_id", businessID, "actor", actorID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "generation completed for business", summary)
}

// CatalogChanged purges machine-generated obligations and regenerates the
// full portfolio from the current catalog.
func (h *GenerationHandler) CatalogChanged(c *gin.Context) {
	actorID := c.GetHeader(constants.HeaderXActor)

	cmd := generationUsecases.RegenerateOnCatalogChangeCommand{
		ActorID: actorID,
	}

	summary, err := h.catalogChangeUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("catalog-change regeneration failed", "error", err, "actor", actorID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "regeneration completed", summary)
}
