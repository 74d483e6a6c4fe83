package utils

import (
	"github.com/charmbracelet/log"
	"github.com/davecgh/go-spew/spew"
)

var spewConfig *spew.ConfigState

func init() {
	spewConfig = spew.NewDefaultConfig()
	spewConfig.DisableCapacities = true
	spewConfig.DisablePointerAddresses = true
	spewConfig.SortKeys = true
}

func SDump(a ...interface{}) string {
	return spewConfig.Sdump(a...)
}

// LogDump writes a dump of a to l at debug level.
func LogDump(l *log.Logger, a ...interface{}) {
	if l.GetLevel() > log.DebugLevel {
		return
	}
	l.Debug(spewConfig.Sdump(a...))
}
