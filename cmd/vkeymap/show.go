package vkeymap

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/dasdy/vkeymap/db"
	"github.com/dasdy/vkeymap/ime"
	"github.com/dasdy/vkeymap/web"
	"github.com/dasdy/vkeymap/web/routes"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	storagePath string
	port        int
)

// openTrackers replays the recorded taps into new trackers.
func openTrackers(storage db.Storage) (*db.NeighborCounter, *db.CorrectionTracker, error) {
	neighborTracker, err := db.NewNeighborCounterFromDB(storage)
	if err != nil {
		return nil, nil, fmt.Errorf("could not create neighbor tracker: %w", err)
	}

	// Both replays read through the single storage connection.
	neighborTracker.Wait()

	correctionTracker, err := db.NewCorrectionTrackerFromDB(storage)
	if err != nil {
		return nil, nil, fmt.Errorf("could not create correction tracker: %w", err)
	}

	correctionTracker.Wait()

	return neighborTracker, correctionTracker, nil
}

// showCmd represents the show command.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show recorded taps",
	Long:  `Use taps recorded by the track command to serve a heat map of the keyboard.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		log.Printf("Config file: %s\n", viper.ConfigFileUsed())
		log.Printf("Storage file: %s\n", storagePath)

		storage, err := db.NewStorageFromPath(storagePath, true)
		if err != nil {
			return fmt.Errorf("could not open %s as sqlite file: %w", storagePath, err)
		}
		defer storage.Close()

		neighborTracker, correctionTracker, err := openTrackers(storage)
		if err != nil {
			return err
		}

		keyboard, _, err := newKeyboard(nil, ime.NewTextSink(io.Discard))
		if err != nil {
			return err
		}
		defer keyboard.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		return web.StartServer(ctx, port, &routes.ServerHandler{
			Storage:           storage,
			Keyboard:          keyboard,
			NeighborTracker:   neighborTracker,
			CorrectionTracker: correctionTracker,
		})
	},
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().IntVarP(&port, "port", "p", 9000,
		"Port on which server should be watching")

	showCmd.Flags().StringVarP(
		&storagePath,
		"storage",
		"s",
		"./taps.sqlite",
		"Path of the recorded taps")
}
