package inbox

import (
	"github.com/aretw0/introspection"
)

// WatcherState is the observable state of a Watcher.
type WatcherState struct {
	Dir      string `json:"dir"`
	Pattern  string `json:"pattern"`
	Running  bool   `json:"running"`
	Pending  int    `json:"pending"`
	Imported int    `json:"imported"`
	Failed   int    `json:"failed"`
}

// State implements introspection.Introspectable.
func (w *Watcher) State() any {
	w.mu.Lock()
	defer w.mu.Unlock()
	return WatcherState{
		Dir:      w.config.Dir,
		Pattern:  w.config.Pattern,
		Running:  w.running,
		Pending:  len(w.timers),
		Imported: w.imported,
		Failed:   w.failed,
	}
}

// ComponentType implements introspection.Component.
func (w *Watcher) ComponentType() string {
	return "inbox-watcher"
}

var _ introspection.Introspectable = (*Watcher)(nil)
var _ introspection.Component = (*Watcher)(nil)
