package cli

import (
	"fmt"
	"io"

	"github.com/autobrr/go-bitrate-stats/internal/bitrate"
)

var appVersion = "dev"

func SetVersion(version string) {
	if version != "" {
		appVersion = version
	}
}

func Version(stdout io.Writer) {
	fmt.Fprintf(stdout, "go-bitrate-stats, %s\n", bitrate.FormatVersion(appVersion))
}
