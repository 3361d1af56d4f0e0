package flag

import "flag"

var (
	// ServiceName identifies which binary is running, used for log tagging.
	ServiceName = flag.String("service", "vidafit_client", "name of the running service")
)

func ParseFlags() {
	flag.Parse()
}
