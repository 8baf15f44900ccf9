package telemetry

// ParseTarget exposes parseTarget to the external test package.
func ParseTarget(exporter, endpoint string) (host string, insecure bool, err error) {
	t, err := parseTarget(exporter, endpoint)
	return t.host, t.insecure, err
}
