package vecmap

// MapOption configures a Map during creation.
//
// Example:
//
//	m := vecmap.NewMap(proj, canvas, cfg,
//		vecmap.WithProgress(func(current, total, step int, phase string) {
//			fmt.Printf("\r%s: %d/%d", phase, current, total)
//		}))
type MapOption func(*Map)

// WithProgress installs a progress observer for render passes.
func WithProgress(fn ProgressFunc) MapOption {
	return func(m *Map) {
		m.progress = fn
	}
}
