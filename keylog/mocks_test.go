package keylog_test

import (
	"errors"

	"github.com/dasdy/vkeymap/keys"
	"github.com/dasdy/vkeymap/model"
)

var errTapFailed = errors.New("tap failed")

type keyboardMock struct {
	taps []model.Point
	fail bool
}

func (k *keyboardMock) Tap(p model.Point) (keys.Key, error) {
	if k.fail {
		return keys.None, errTapFailed
	}

	k.taps = append(k.taps, p)

	return keys.Char('Q'), nil
}
