package commands

import (
	"fmt"
	"log"
	"os"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/obolus/obolus/adapters/events"
	"github.com/obolus/obolus/adapters/store"
	"github.com/obolus/obolus/ports"
	"github.com/obolus/obolus/service"
	"github.com/obolus/obolus/transport/http"
)

func serveCmd() *cobra.Command {
	var (
		addr      string
		redisURL  string
		keyPath   string
		keyBase64 string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the demonstration challenge server",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := loadVerificationKey(keyPath, keyBase64)
			if err != nil {
				return err
			}

			if redisURL == "" {
				redisURL = os.Getenv("REDIS_URL")
			}

			var (
				challengeStore ports.ChallengeStore
				eventPub       ports.EventPublisher
			)

			if redisURL != "" {
				opts, err := redis.ParseURL(redisURL)
				if err != nil {
					return fmt.Errorf("failed to parse Redis URL: %w", err)
				}
				redisClient := redis.NewClient(opts)

				logger := watermill.NewStdLogger(false, false)
				publisher, err := redisstream.NewPublisher(
					redisstream.PublisherConfig{
						Client: redisClient,
					},
					logger,
				)
				if err != nil {
					return fmt.Errorf("failed to create Redis publisher: %w", err)
				}

				challengeStore = store.NewRedisStore(redisClient)
				eventPub = events.NewWatermillPublisher(publisher)
				log.Printf("Using Redis challenge store at %s", redisURL)
			} else {
				challengeStore = store.NewMemoryStore()
				log.Print("Using in-memory challenge store")
			}

			challengeService, err := service.NewChallengeService(challengeStore, eventPub, key)
			if err != nil {
				return err
			}

			router := http.SetupRouter(challengeService)

			log.Printf("Listening on %s", addr)
			return router.Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":9000", "listen address")
	cmd.Flags().StringVar(&redisURL, "redis", "", "Redis URL for challenge storage (default: REDIS_URL env, else in-memory)")
	cmd.Flags().StringVar(&keyPath, "key", "", "path to PEM public key file")
	cmd.Flags().StringVar(&keyBase64, "key-base64", "", "base64 compact public key")

	return cmd
}
