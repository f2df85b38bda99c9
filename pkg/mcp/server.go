package mcp

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"codescore/internal/config"
	"codescore/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

// ComplexityServer exposes the analysis pipeline as MCP tools over the
// streamable HTTP transport, mounted on the main gin router.
type ComplexityServer struct {
	server          *mcp.Server
	analysisService *service.AnalysisService
	config          *config.Config
	logger          *zap.Logger
	handler         *mcp.StreamableHTTPHandler
}

type AnalyzeComplexityParams struct {
	Code     string `json:"code" jsonschema:"the source code snippet to analyze"`
	Language string `json:"language" jsonschema:"the source language of the snippet, e.g. python, go, elixir"`
}

type ActorModelParams struct {
	Modules   []string `json:"modules,omitempty" jsonschema:"module names to score for supervision-tree idioms"`
	Functions []string `json:"functions,omitempty" jsonschema:"function names to score for actor idioms"`
}

func NewComplexityServer(analysisService *service.AnalysisService, cfg *config.Config, logger *zap.Logger) *ComplexityServer {
	server := &ComplexityServer{
		analysisService: analysisService,
		config:          cfg,
		logger:          logger,
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "CodeScore",
		Version: "1.0.0",
	}, nil)

	// Register the analyzeComplexity tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "analyzeComplexity",
		Description: "Compute a normalized complexity score (0-10) for a code snippet in a given language, with structural, cognitive, and maintainability sub-scores",
	}, server.handleAnalyzeComplexity)

	// Register the analyzeActorModel tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "analyzeActorModel",
		Description: "Score supervision-tree and actor-model idioms over lists of module and function names (BEAM-family codebases)",
	}, server.handleAnalyzeActorModel)

	server.handler = mcp.NewStreamableHTTPHandler(func(req *http.Request) *mcp.Server {
		return mcpServer
	}, nil)

	server.server = mcpServer
	return server
}

func (s *ComplexityServer) handleAnalyzeComplexity(ctx context.Context, req *mcp.CallToolRequest, args AnalyzeComplexityParams) (*mcp.CallToolResult, any, error) {
	s.logger.Info("Handling analyzeComplexity request",
		zap.String("language", args.Language),
		zap.Int("code_bytes", len(args.Code)))

	result := s.analysisService.AnalyzeCode(args.Code, args.Language, nil)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Complexity analysis (%s):\n", result.Language)
	fmt.Fprintf(&sb, "  score: %.2f / 10\n", result.Score)
	fmt.Fprintf(&sb, "  structural: %.2f, cognitive: %.2f, maintainability: %.2f\n",
		result.SubScores.Structural, result.SubScores.Cognitive, result.SubScores.Maintainability)
	fmt.Fprintf(&sb, "  lines: %d total, %d non-empty\n",
		result.Features.TotalLines, result.Features.NonEmptyLines)
	fmt.Fprintf(&sb, "  functions: %d, control flow: %d, nesting depth: %d\n",
		result.Features.FunctionCount, result.Features.ControlFlowCount, result.Features.NestingDepth)
	fmt.Fprintf(&sb, "  comment ratio: %.2f, cyclomatic estimate: %.1f\n",
		result.Features.CommentRatio, result.Features.Cyclomatic)

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: sb.String()}},
	}, result, nil
}

func (s *ComplexityServer) handleAnalyzeActorModel(ctx context.Context, req *mcp.CallToolRequest, args ActorModelParams) (*mcp.CallToolResult, any, error) {
	s.logger.Info("Handling analyzeActorModel request",
		zap.Int("modules", len(args.Modules)),
		zap.Int("functions", len(args.Functions)))

	result := s.analysisService.AnalyzeActorModel(args.Modules, args.Functions)

	text := fmt.Sprintf("Actor model analysis:\n  supervision complexity: %.2f / 10\n  actor complexity: %.2f / 10\n",
		result.SupervisionComplexity, result.ActorComplexity)

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}, result, nil
}

// SetupHTTPRoutes mounts the MCP streamable HTTP handler on the gin router
// at the configured path.
func (s *ComplexityServer) SetupHTTPRoutes(router *gin.Engine) {
	if !s.config.Mcp.Enabled {
		s.logger.Info("MCP server disabled in configuration")
		return
	}
	path := s.config.Mcp.Path
	router.Any(path, gin.WrapH(s.handler))
	s.logger.Info("MCP server mounted", zap.String("path", path))
}
