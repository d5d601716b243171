package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/snsihub/showcase-portal-backend/api"
	"github.com/snsihub/showcase-portal-backend/config"
	"github.com/snsihub/showcase-portal-backend/services"
	"github.com/snsihub/showcase-portal-backend/store"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()

	backendBaseURL := config.GetString(c, "BACKEND_BASE_URL", "")
	if backendBaseURL == "" {
		fmt.Println("BACKEND_BASE_URL is required. Exiting...")
		os.Exit(1)
	}

	backendTimeout := config.GetDuration(c, "BACKEND_TIMEOUT_SECONDS", 30*time.Second)
	backend := services.NewClient(backendBaseURL, backendTimeout)

	draftTTL := config.GetDuration(c, "DRAFT_TTL_SECONDS", 2*time.Hour)
	draftStore := store.NewDraftStore(draftTTL)
	defer draftStore.Close()

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(backend, draftStore)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
