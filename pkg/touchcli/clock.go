package touchcli

import "code.cloudfoundry.org/clock"

// clockSource supplies "now" for invocations without -d, -t or -r. Tests
// replace it with a fake clock.
var clockSource clock.Clock = clock.NewClock()
