package bhasha

// Name and Version identify the module in CLI output.
const (
	Name    = "bhasha"
	Version = "0.1.0"
)

// Build metadata, stamped by the release build:
//
//	go build -ldflags "-X github.com/ZaguanLabs/bhasha.GitCommit=$(git rev-parse HEAD) -X github.com/ZaguanLabs/bhasha.BuildDate=$(date -u +%FT%TZ)"
var (
	GitCommit = ""
	BuildDate = ""
)

// FullVersion returns Version, suffixed with the short commit when one was stamped.
func FullVersion() string {
	if len(GitCommit) > 7 {
		return Version + "+" + GitCommit[:7]
	}
	if GitCommit != "" {
		return Version + "+" + GitCommit
	}
	return Version
}
