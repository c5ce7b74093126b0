// Package parser reads touch samples out of digitizer debug output.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dasdy/vkeymap/model"
)

// ParseLine extracts a touch event from lines like
// "[12:00:01.002] <dbg> touch: x: 120, y: 300, pressed: true".
// Lines without a complete sample return nil and no error.
func ParseLine(line string) (*model.TouchEvent, error) {
	splits := strings.Fields(line)

	var (
		x, y, foundCount int
		pressed          bool
		err              error
	)

	ix := 0
	limit := len(splits) - 1 // every field is read together with the token after it

	for ix < limit {
		curItem := splits[ix]
		nextItem := strings.TrimRight(splits[ix+1], ",")

		switch curItem {
		case "x:":
			x, err = strconv.Atoi(nextItem)
			if err != nil {
				return nil, fmt.Errorf("could not parse x: %w", err)
			}

			ix++
			foundCount++
		case "y:":
			y, err = strconv.Atoi(nextItem)
			if err != nil {
				return nil, fmt.Errorf("could not parse y: %w", err)
			}

			ix++
			foundCount++
		case "pressed:":
			// Colored consoles end the line with a reset code.
			nextItem = strings.TrimSuffix(nextItem, "\x1b[0m")

			switch nextItem {
			case "true", "1":
				pressed = true
			case "false", "0":
				pressed = false
			default:
				return nil, fmt.Errorf("pressed value unexpected: '%s'", nextItem)
			}

			ix++
			foundCount++
		default:
		}

		ix++
	}

	if foundCount == 3 {
		return &model.TouchEvent{X: x, Y: y, Pressed: pressed}, nil
	}

	return nil, nil
}
