package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	glog "github.com/labstack/gommon/log"

	"github.com/iliyamo/party-bliss/internal/config"
	"github.com/iliyamo/party-bliss/internal/queue"
)

// enquiry-consumer drains the enquiry.accepted queue and logs every accepted
// enquiry as a JSON line.
func main() {
	_ = godotenv.Load()
	cfg := config.LoadQueueConfig()

	logger := glog.New("enquiry-consumer")
	logger.SetLevel(glog.INFO)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("consuming %s", cfg.Queue)
	if err := queue.StartEnquiryConsumer(ctx, cfg.URL, cfg.Queue, logger); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
