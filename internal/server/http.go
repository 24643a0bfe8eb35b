// Copyright (c) 2026 Dream Labs Inc. All Rights Reserved.
// This is licensed software from Dream Labs Inc, for limitations
// and restrictions contact your company contract manager.

package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dreamlabs/season-progression/pkg/handler"

	"github.com/sirupsen/logrus"
)

// HTTPServer manages the API server lifecycle.
type HTTPServer struct {
	server *http.Server
	port   int
	api    *handler.Handler
}

// NewHTTPServer creates a new API server instance.
func NewHTTPServer(port int, api *handler.Handler) *HTTPServer {
	return &HTTPServer{
		port: port,
		api:  api,
	}
}

// Setup builds the router and configures the server.
func (s *HTTPServer) Setup() error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.api.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return nil
}

// Start begins listening and serving API requests.
func (s *HTTPServer) Start(ctx context.Context) error {
	go func() {
		logrus.Infof("HTTP server listening on port %d", s.port)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("HTTP server failed: %v", err)
		}
	}()
	return nil
}

// Shutdown gracefully stops the API server.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	logrus.Info("shutting down HTTP server...")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	logrus.Info("HTTP server stopped")
	return nil
}
