// Package main is the entry point for the pickship tool.
//
// @title           Pick-Ship API
// @version         1.0.0
// @description     Packs customer orders into weight-limited boxes and returns the pick-ship manifest.
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Manifests
// @tag.description Order packing operations
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import "github.com/guttosm/pickship/internal/cmd"

func main() {
	cmd.Execute()
}
