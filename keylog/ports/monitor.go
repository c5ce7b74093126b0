package ports

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/dasdy/vkeymap/model"
)

// TouchSource is an open touch device.
type TouchSource interface {
	Channel() <-chan model.TouchEvent
	Close() error
}

// DeviceOpener finds and opens touch devices.
type DeviceOpener interface {
	Find() ([]string, error)
	Open(path string) (TouchSource, error)
}

// EvdevOpener opens evdev touchscreens scaled to Rect.
type EvdevOpener struct {
	Rect model.Rect
}

func (o EvdevOpener) Find() ([]string, error) { return FindTouchscreens() }

func (o EvdevOpener) Open(path string) (TouchSource, error) { return OpenEvdev(path, o.Rect) }

// MonitoringDeviceReader polls for touch devices and merges the touches of all
// connected ones, picking up devices plugged in later.
type MonitoringDeviceReader struct {
	opener DeviceOpener

	devicesList map[string]TouchSource
	lock        sync.RWMutex

	pollingInterval time.Duration
}

func DefaultMonitoringDeviceReader(rect model.Rect) *MonitoringDeviceReader {
	return NewMonitoringDeviceReader(EvdevOpener{Rect: rect}, 5*time.Second)
}

func NewMonitoringDeviceReader(opener DeviceOpener, pollingInterval time.Duration) *MonitoringDeviceReader {
	return &MonitoringDeviceReader{
		opener:          opener,
		devicesList:     make(map[string]TouchSource),
		pollingInterval: pollingInterval,
	}
}

func (r *MonitoringDeviceReader) Close() error {
	r.lock.Lock()
	defer r.lock.Unlock()

	for path, device := range r.devicesList {
		if err := device.Close(); err != nil {
			return fmt.Errorf("could not close device %s: %w", path, err)
		}

		delete(r.devicesList, path)
	}

	return nil
}

// Devices lists the paths of the open devices.
func (r *MonitoringDeviceReader) Devices() []string {
	r.lock.RLock()
	defer r.lock.RUnlock()

	paths := make([]string, 0, len(r.devicesList))
	for path := range r.devicesList {
		paths = append(paths, path)
	}

	slices.Sort(paths)

	return paths
}

func (r *MonitoringDeviceReader) removeDevice(devicePath string, device TouchSource) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if current, exists := r.devicesList[devicePath]; exists && current == device {
		delete(r.devicesList, devicePath)
		slog.InfoContext(logCtx, "Device removed", "path", devicePath)
	}
}

// AddDevice opens devicePath unless it is open already and forwards its touches to out.
func (r *MonitoringDeviceReader) AddDevice(ctx context.Context, devicePath string, out chan<- model.TouchEvent) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, exists := r.devicesList[devicePath]; exists {
		slog.DebugContext(logCtx, "Device already open, skipping", "path", devicePath)

		return nil
	}

	device, err := r.opener.Open(devicePath)
	if err != nil {
		return fmt.Errorf("could not open device %s: %w", devicePath, err)
	}

	r.devicesList[devicePath] = device

	go func() {
		slog.InfoContext(logCtx, "Device loop started", "path", devicePath)

		defer r.removeDevice(devicePath, device)

		for touch := range device.Channel() {
			select {
			case out <- touch:
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

func (r *MonitoringDeviceReader) poll(ctx context.Context, out chan<- model.TouchEvent) {
	devices, err := r.opener.Find()
	if err != nil {
		slog.ErrorContext(logCtx, "Could not find devices", "error", err)

		return
	}

	for _, devicePath := range devices {
		if err := r.AddDevice(ctx, devicePath, out); err != nil {
			slog.ErrorContext(logCtx, "Could not add device", "path", devicePath, "error", err)
		}
	}
}

// Channel polls for devices until ctx is done, then closes every device. The
// channel stays open: readers stop on ctx.
func (r *MonitoringDeviceReader) Channel(ctx context.Context) <-chan model.TouchEvent {
	out := make(chan model.TouchEvent, 5)

	go func() {
		slog.InfoContext(logCtx, "Monitoring started", "interval", r.pollingInterval)
		defer slog.InfoContext(logCtx, "Monitoring ended")

		ticker := time.NewTicker(r.pollingInterval)
		defer ticker.Stop()

		for {
			r.poll(ctx, out)

			select {
			case <-ctx.Done():
				if err := r.Close(); err != nil {
					slog.ErrorContext(logCtx, "Could not close devices", "error", err)
				}

				return
			case <-ticker.C:
			}
		}
	}()

	return out
}
