package bitrate

const (
	AppName = "go-bitrate-stats"
	AppURL  = "https://github.com/autobrr/go-bitrate-stats"
)

var AppVersion = "dev"

func SetAppVersion(version string) {
	if version != "" {
		AppVersion = version
	}
}

func FormatVersion(version string) string {
	return "v" + version
}
