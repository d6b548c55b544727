package main

import (
	"os"

	"github.com/pushkov-fedor/course-selection/internal/pkg/logger"
	"github.com/pushkov-fedor/course-selection/internal/server"
)

// @title Course Selection API
// @version 1.0
// @description API for student course selection and enrollment

// @host localhost:8084
// @BasePath /api/v1
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for catalog administration

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
