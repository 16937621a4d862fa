//go:build gojson

package skooma_test

import (
	"github.com/davidjamesknight/Skooma/frame"
	drv "github.com/davidjamesknight/Skooma/frame/gojson"
)

func init() {
	frame.SetJSONDriver(drv.Driver())
}
