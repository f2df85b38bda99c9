package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"codescore/internal/config"
	"codescore/internal/controller"
	"codescore/internal/handler"
	"codescore/internal/service"
	"codescore/pkg/mcp"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	var appConfigPath = flag.String("app", "app.yaml", "Path to app configuration file")
	var port = flag.Int("port", 0, "Server port (overrides configuration)")
	flag.Parse()

	cfg, err := config.LoadConfig(*appConfigPath)
	if err != nil {
		log.Printf("Failed to load configuration (%v), using defaults", err)
		cfg = config.Default()
	}

	cfgZap := zap.NewProductionConfig()
	cfgZap.Level.SetLevel(parseLogLevel(cfg.App.LogLevel))
	logger, err := cfgZap.Build()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	// Override port from command line if provided
	if *port != 0 {
		cfg.App.Port = *port
	}

	logger.Info("Configuration loaded successfully",
		zap.Int("port", cfg.App.Port),
		zap.Int("configured_language_overrides", len(cfg.Languages)))

	analysisService := service.NewAnalysisService(cfg, logger)
	analysisController := controller.NewAnalysisController(analysisService, logger)
	mcpServer := mcp.NewComplexityServer(analysisService, cfg, logger)

	router := handler.SetupRouter(analysisController, mcpServer, logger)

	logger.Info("Starting server", zap.Int("port", cfg.App.Port))
	if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.App.Port), router); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

func parseLogLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
