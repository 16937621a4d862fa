package frame

import (
	"io"
	"sync"

	"github.com/davidjamesknight/Skooma/internal/jsontok"
)

// JSONDriver converts JSON input into a token source via a pluggable SPI.
// The default implementation is based on encoding/json and may be swapped
// with SetJSONDriver (see the gojson subpackage for a goccy/go-json-backed
// driver).
type JSONDriver interface {
	NewReader(r io.Reader) jsontok.TokenSource
	NewBytes(b []byte) jsontok.TokenSource
	Name() string
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver JSONDriver = defaultJSONDriver{}
)

// SetJSONDriver replaces the global JSON driver; nil values are ignored.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// UseDefaultJSONDriver restores the default encoding/json-backed driver.
func UseDefaultJSONDriver() {
	jsonDriverMu.Lock()
	currentJSONDriver = defaultJSONDriver{}
	jsonDriverMu.Unlock()
}

// JSONDriverName reports the active driver.
func JSONDriverName() string {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d.Name()
}

func getJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d
}

// defaultJSONDriver wraps the encoding/json implementation.
type defaultJSONDriver struct{}

func (defaultJSONDriver) NewReader(r io.Reader) jsontok.TokenSource { return jsontok.NewReader(r) }
func (defaultJSONDriver) NewBytes(b []byte) jsontok.TokenSource    { return jsontok.NewBytes(b) }
func (defaultJSONDriver) Name() string                             { return "encoding/json" }
