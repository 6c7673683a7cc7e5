package touchcli

import "github.com/hashicorp/go-version"

// Version is overridden at build time with
// -ldflags "-X github.com/dansimau/touch/pkg/touchcli.Version=...".
var Version = "1.0.0"

func versionString() string {
	v, err := version.NewVersion(Version)
	if err != nil {
		return "touch (devel)"
	}

	return "touch " + v.String()
}
