package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/options-trainer/src/eventpubsub"
	"github.com/jiaming2012/options-trainer/src/exercise"
	"github.com/jiaming2012/options-trainer/src/handler"
	"github.com/jiaming2012/options-trainer/src/utils"
)

type RunArgs struct {
	GoEnv string
	Port  int
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/server/main.go --port 5001",
	Short: "Serve the options ladder trainer API",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		port, err := cmd.Flags().GetInt("port")
		if err != nil {
			log.Fatalf("error getting port: %v", err)
		}

		if err := Run(RunArgs{GoEnv: goEnv, Port: port}); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

func Run(args RunArgs) error {
	projectDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("Run: getwd: %v", err)
	}

	if err := utils.InitEnvironmentVariables(projectDir, args.GoEnv); err != nil {
		return fmt.Errorf("Run: init env: %v", err)
	}

	eventpubsub.Init()

	if err := eventpubsub.Subscribe(eventpubsub.ExerciseGeneratedTopic, func(event eventpubsub.ExerciseGeneratedEvent) {
		log.WithFields(log.Fields{
			"exercise_id":   event.ExerciseID,
			"exercise_type": event.ExerciseType,
			"num_strikes":   event.NumStrikes,
			"disclosures":   event.Disclosures,
			"used_fallback": event.UsedFallback,
		}).Info("exercise generated")
	}); err != nil {
		return fmt.Errorf("Run: subscribe: %v", err)
	}

	router := mux.NewRouter()
	handler.NewExerciseHandler(exercise.NewService()).SetupRouter(router)

	port := args.Port
	if envPort := os.Getenv("PORT"); port == 0 && envPort != "" {
		fmt.Sscanf(envPort, "%d", &port)
	}
	if port == 0 {
		port = 5001
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Infof("Listening on :%d", port)
	return srv.ListenAndServe()
}

func main() {
	runCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in")
	runCmd.PersistentFlags().Int("port", 0, "The port to serve on. Defaults to PORT or 5001")

	if err := runCmd.Execute(); err != nil {
		log.Fatalf("error executing command: %v", err)
	}
}
