package cli

import (
	"os"
	"strings"
	"sync"

	segpathplugin "github.com/macropower/pathlex/pkg/kclplugin/segpath"
)

var registerOnce sync.Once

// RegisterEnabledPlugins registers the KCL plugins that are not disabled in
// the environment. It is safe to call more than once.
func RegisterEnabledPlugins() {
	registerOnce.Do(func() {
		if !envTrue("PATHLEX_SEGPATH_PLUGIN_DISABLED") {
			segpathplugin.Register()
		}
	})
}

func envTrue(key string) bool {
	return strings.ToLower(os.Getenv(key)) == "true"
}
