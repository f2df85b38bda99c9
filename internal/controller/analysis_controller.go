package controller

import (
	"net/http"

	"codescore/internal/analysis"
	"codescore/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AnalysisController struct {
	analysisService *service.AnalysisService
	logger          *zap.Logger
}

func NewAnalysisController(analysisService *service.AnalysisService, logger *zap.Logger) *AnalysisController {
	return &AnalysisController{
		analysisService: analysisService,
		logger:          logger,
	}
}

// Code is not marked required: an empty snippet is a valid input and yields
// the zero-valued feature record.
type AnalyzeComplexityRequest struct {
	Code      string              `json:"code"`
	Language  string              `json:"language" binding:"required"`
	Overrides *analysis.Overrides `json:"overrides"`
}

// AnalyzeComplexity handles POST /api/v1/analyzeComplexity
func (ac *AnalysisController) AnalyzeComplexity(c *gin.Context) {
	var request AnalyzeComplexityRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		ac.logger.Error("Invalid request payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	result := ac.analysisService.AnalyzeCode(request.Code, request.Language, request.Overrides)
	c.JSON(http.StatusOK, result)
}

// ExtractFeatures handles POST /api/v1/extractFeatures
func (ac *AnalysisController) ExtractFeatures(c *gin.Context) {
	var request AnalyzeComplexityRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		ac.logger.Error("Invalid request payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	features, lang := ac.analysisService.ExtractFeatures(request.Code, request.Language, request.Overrides)
	c.JSON(http.StatusOK, gin.H{
		"language": string(lang),
		"features": features,
	})
}

type PatternEffectivenessRequest struct {
	Pattern  string            `json:"pattern" binding:"required"`
	Features analysis.Features `json:"features"`
}

// PatternEffectiveness handles POST /api/v1/patternEffectiveness
func (ac *AnalysisController) PatternEffectiveness(c *gin.Context) {
	var request PatternEffectivenessRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		ac.logger.Error("Invalid request payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	effectiveness := ac.analysisService.PatternEffectiveness(request.Pattern, request.Features)
	c.JSON(http.StatusOK, gin.H{
		"pattern":       request.Pattern,
		"effectiveness": effectiveness,
	})
}

type ActorModelRequest struct {
	Modules   []string `json:"modules"`
	Functions []string `json:"functions"`
}

// AnalyzeActorModel handles POST /api/v1/analyzeActorModel
func (ac *AnalysisController) AnalyzeActorModel(c *gin.Context) {
	var request ActorModelRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		ac.logger.Error("Invalid request payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	result := ac.analysisService.AnalyzeActorModel(request.Modules, request.Functions)
	c.JSON(http.StatusOK, result)
}

// ListLanguages handles GET /api/v1/languages
func (ac *AnalysisController) ListLanguages(c *gin.Context) {
	languages := analysis.SupportedLanguages()
	names := make([]string, 0, len(languages))
	for _, lang := range languages {
		names = append(names, string(lang))
	}
	c.JSON(http.StatusOK, gin.H{
		"languages": names,
		"fallback":  string(analysis.LangOther),
	})
}
