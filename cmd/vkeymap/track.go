package vkeymap

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dasdy/vkeymap/db"
	"github.com/dasdy/vkeymap/ime"
	"github.com/dasdy/vkeymap/keylog"
	"github.com/dasdy/vkeymap/keylog/ports"
	"github.com/dasdy/vkeymap/model"
	"github.com/dasdy/vkeymap/prefs"
	"github.com/dasdy/vkeymap/web"
	"github.com/dasdy/vkeymap/web/routes"
	"github.com/spf13/cobra"
)

var (
	filenames        []string
	devicePath       string
	monitorEvdev     bool
	prefsPath        string
	uinputPath       string
	record           bool
	disableInterface bool
	verbose          bool
)

// openTouches returns the touch stream picked by the flags and a function releasing it.
func openTouches(ctx context.Context, rect model.Rect) (<-chan model.TouchEvent, func(), error) {
	switch {
	case devicePath != "":
		device, err := ports.OpenEvdev(devicePath, rect)
		if err != nil {
			return nil, nil, err
		}

		return device.Channel(), func() { device.Close() }, nil
	case monitorEvdev:
		reader := ports.DefaultMonitoringDeviceReader(rect)

		return reader.Channel(ctx), func() { reader.Close() }, nil
	}

	switch len(filenames) {
	case 0:
		names, err := ports.GetAvailableDevices()
		if err != nil {
			return nil, nil, err
		}

		log.Printf("Suggested devices: %+v ", names)
		log.Print("Will proceed to read from stdin...")

		return keylog.ParseLines(ports.ReadFile(os.Stdin)), func() {}, nil
	case 1:
		port, err := ports.Open(filenames[0])
		if err != nil {
			return nil, nil, suggestDevices(err)
		}

		return keylog.ParseLines(ports.ReadFile(port)), func() { port.Close() }, nil
	case 2:
		lines, closer, err := ports.OpenTwoFiles(filenames[0], filenames[1])
		if err != nil {
			return nil, nil, suggestDevices(err)
		}

		return keylog.ParseLines(lines), closer, nil
	default:
		return nil, nil, fmt.Errorf("expected at most 2 files, got %d", len(filenames))
	}
}

func suggestDevices(err error) error {
	names, errInner := ports.GetAvailableDevices()
	if errInner != nil {
		return fmt.Errorf("could not open file: %w; Could not suggest devices: %w", err, errInner)
	}

	if len(names) > 0 {
		return fmt.Errorf("error opening files: %w. Maybe try instead: %+v", err, names)
	}

	return fmt.Errorf("error opening files: %w. It does not seem like any digitizer is connected", err)
}

func openSink() (ime.Sink, error) {
	if uinputPath == "" {
		return ime.NewTextSink(os.Stdout), nil
	}

	return ime.CreateUinputSink(uinputPath)
}

// trackCmd represents the track command.
var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Type with a touchscreen",
	Long: `Read touches from a touchscreen or from digitizer debug output and type the
keys they hit. Provide up to two serial ports with --file, a touchscreen with
--device or --evdev, or nothing to read debug lines from stdin.
Taps can be recorded to a sqlite file and shown as a heat map by a web server.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		rect, err := keyboardRect()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log.Printf("Output file: %s\n", storagePath)

		storage, err := db.NewStorageFromPath(storagePath, false)
		if err != nil {
			return fmt.Errorf("could not open %s as sqlite file: %w", storagePath, err)
		}
		defer storage.Close()

		neighborTracker, correctionTracker, err := openTrackers(storage)
		if err != nil {
			return err
		}

		sink, err := openSink()
		if err != nil {
			return err
		}

		keyboard, p, err := newKeyboard(storage, sink,
			ime.WithRecorder(storage, neighborTracker, correctionTracker),
			ime.WithDiamond(true))
		if err != nil {
			sink.Close()

			return err
		}
		defer keyboard.Close()

		if err := p.SaveLayouts(); err != nil {
			slog.Warn("Could not save layout names", "error", err)
		}

		if prefsPath != "" {
			if err := prefs.Watch(ctx, prefsPath, p, keyboard.ApplyPreferences); err != nil {
				return err
			}

			keyboard.ApplyPreferences()
		}

		if err := keyboard.SetRecording(record); err != nil {
			return err
		}

		touches, closeTouches, err := openTouches(ctx, rect)
		if err != nil {
			return err
		}
		defer closeTouches()

		if !disableInterface {
			go func() {
				err := web.StartServer(ctx, port, &routes.ServerHandler{
					Storage:           storage,
					Keyboard:          keyboard,
					NeighborTracker:   neighborTracker,
					CorrectionTracker: correctionTracker,
				})
				if err != nil {
					slog.Error("Web interface stopped", "error", err)
				}
			}()
		}

		log.Print("Main loop")

		err = keylog.TouchLoop(ctx, touches, keyboard, verbose)
		if errors.Is(err, context.Canceled) {
			return nil
		}

		return err
	},
}

func init() {
	rootCmd.AddCommand(trackCmd)

	trackCmd.Flags().StringSliceVarP(
		&filenames,
		"file",
		"f",
		[]string{},
		"Serial ports printing digitizer debug lines")

	trackCmd.Flags().StringVar(&devicePath, "device", "", "Touchscreen input device, e.g. /dev/input/event5")
	trackCmd.Flags().BoolVar(&monitorEvdev, "evdev", false, "Read every touchscreen found, picking up new ones")
	trackCmd.Flags().StringVar(&prefsPath, "prefs", "", "Preferences JSON file, reloaded when it changes")
	trackCmd.Flags().StringVar(&uinputPath, "uinput", "", "Type through a virtual keyboard created on this uinput device, e.g. /dev/uinput (default stdout)")

	trackCmd.Flags().StringVarP(
		&storagePath,
		"storage",
		"s",
		"./taps.sqlite",
		"Output path for recorded taps")

	trackCmd.Flags().IntVarP(
		&port, "port", "p", 3000,
		"Port on which server should be watching")

	trackCmd.Flags().BoolVar(&record, "record", false, "Start with tap recording on")

	trackCmd.Flags().BoolVar(&disableInterface,
		"no-interface",
		false,
		"If provided, no web server will be run with visualization")

	trackCmd.Flags().BoolVarP(&verbose,
		"verbose",
		"v",
		false,
		"If provided, debug output will be shown")
}
