//go:build jsonv2

package benchmarks_test

import (
	schemac "github.com/reoring/schemac"
	drv "github.com/reoring/schemac/writer/jsonv2"
)

func init() {
	schemac.SetJSONDriver(drv.Driver())
}
