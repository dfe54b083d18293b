package version

// Version is set at build time with -ldflags "-X github.com/gimlet-io/gerrit-slack/pkg/version.Version=v0.1.0"
var Version = ""

func String() string {
	if Version == "" {
		return "idk"
	}
	return Version
}
