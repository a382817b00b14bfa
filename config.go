package portico

// Config is the manager configuration. Settings are enumerated and typed;
// there is no absorption of arbitrary configuration objects, so an unknown
// setting is a compile error rather than a silent merge.
type Config struct {
	// Name is the product name shown as the navbar brand and used as the
	// default page-title suffix.
	Name string

	// AssetsDir is a local directory of shared static assets served under
	// /assets/. Ignored when an asset store is supplied with WithAssetStore.
	AssetsDir string

	// Metrics enables Prometheus request metrics and exposes them at
	// MetricsPath.
	Metrics bool

	// MetricsPath is where the metrics handler is mounted.
	// Default: "/metrics".
	MetricsPath string

	// Tracing enables OpenTelemetry request spans using the global tracer
	// provider.
	Tracing bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Name:        "Portico",
		MetricsPath: "/metrics",
	}
}

// merge overlays non-zero fields of override onto base.
func (base Config) merge(override Config) Config {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.AssetsDir != "" {
		out.AssetsDir = override.AssetsDir
	}
	if override.Metrics {
		out.Metrics = true
	}
	if override.MetricsPath != "" {
		out.MetricsPath = override.MetricsPath
	}
	if override.Tracing {
		out.Tracing = true
	}
	return out
}
