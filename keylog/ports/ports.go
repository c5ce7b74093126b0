// Package ports reads touch input: line-based digitizer debug output from
// serial ports or files, and Linux touchscreens through evdev.
package ports

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dasdy/vkeymap/logging"
	"go.bug.st/serial"
)

const (
	BaudRate    = 115200
	ReadTimeout = 10 * time.Hour
)

var logCtx = logging.PackageCtx("ports")

// Open opens a serial port with the digitizer's debug settings.
func Open(path string) (io.ReadCloser, error) {
	port, err := serial.Open(path, &serial.Mode{
		BaudRate: BaudRate,
	})
	if err != nil {
		return nil, fmt.Errorf("could not open port %s: %w", path, err)
	}

	if err := port.SetReadTimeout(ReadTimeout); err != nil {
		port.Close()

		return nil, fmt.Errorf("could not set read timeout on %s: %w", path, err)
	}

	return port, nil
}

// ReadFile sends the lines of r to the returned channel, closing it at EOF.
func ReadFile(r io.Reader) <-chan string {
	ch := make(chan string)

	go func() {
		defer close(ch)

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			ch <- scanner.Text()
		}

		if err := scanner.Err(); err != nil {
			slog.ErrorContext(logCtx, "Could not read input", "error", err)
		}
	}()

	return ch
}

// ReadTwoFiles reads both readers line by line at the same time. The channel is
// closed once both are exhausted.
func ReadTwoFiles(r1, r2 io.Reader) <-chan string {
	out := make(chan string)

	var wg sync.WaitGroup

	for _, r := range []io.Reader{r1, r2} {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for line := range ReadFile(r) {
				out <- line
			}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// OpenTwoFiles opens two serial ports and merges their lines.
func OpenTwoFiles(path1, path2 string) (<-chan string, func(), error) {
	port1, err := Open(path1)
	if err != nil {
		return nil, func() {}, err
	}

	port2, err := Open(path2)
	if err != nil {
		port1.Close()

		return nil, func() {}, err
	}

	closer := func() {
		for _, port := range []io.Closer{port1, port2} {
			if err := port.Close(); err != nil {
				slog.ErrorContext(logCtx, "Could not close port", "error", err)
			}
		}
	}

	return ReadTwoFiles(port1, port2), closer, nil
}

// LooksLikeDigitizer reports whether a serial port name is typical for a USB
// CDC device, which is how touch controllers expose their debug console.
func LooksLikeDigitizer(path string) bool {
	name := filepath.Base(path)

	for _, prefix := range []string{"tty.usbmodem", "ttyACM", "ttyUSB"} {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}

	return false
}

// GetAvailableDevices lists serial ports that look like digitizers, or every
// port when none does.
func GetAvailableDevices() ([]string, error) {
	names, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("could not list serial ports: %w", err)
	}

	result := make([]string, 0)

	for _, n := range names {
		if LooksLikeDigitizer(n) {
			result = append(result, n)
		}
	}

	if len(result) == 0 {
		return names, nil
	}

	return result, nil
}
