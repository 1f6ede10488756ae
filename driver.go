package schemac

import (
	"bytes"
	"io"
	"sync"

	json "github.com/goccy/go-json"

	js "github.com/reoring/schemac/jsonschema"
)

// JSONDriver renders an ordered JSON tree to a writer via a pluggable SPI.
// The default implementation is based on goccy/go-json and may be swapped
// with SetJSONDriver.
type JSONDriver interface {
	Encode(w io.Writer, tree js.Members, indent string) error
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

// UseDefaultJSONDriver restores the default go-json-backed driver.
func UseDefaultJSONDriver() {
	jsonDriverMu.Lock()
	currentJSONDriver = defaultJSONDriver{}
	jsonDriverMu.Unlock()
}

// CurrentJSONDriver returns the driver used when WriteOpt.Driver is nil.
func CurrentJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d
}

// DefaultJSONDriver returns the go-json-backed driver.
func DefaultJSONDriver() JSONDriver { return defaultJSONDriver{} }

// defaultJSONDriver wraps the goccy/go-json implementation.
type defaultJSONDriver struct{}

func (defaultJSONDriver) Encode(w io.Writer, tree js.Members, indent string) error {
	b, err := json.Marshal(tree)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if indent == "" {
		buf.Write(b)
	} else if err := json.Indent(&buf, b, "", indent); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = buf.WriteTo(w)
	return err
}

func (defaultJSONDriver) Name() string { return "go-json" }
