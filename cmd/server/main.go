package main

import (
	"os"

	"github.com/agmada-asa/Nexus/internal/app"
)

// @title           Nexus API
// @version         1.0
// @description     Local chat server that proxies prompts to Ollama models and answers over attached files and web pages.
// @host            localhost:3030
// @BasePath        /
func main() {
	os.Exit(app.Run())
}
