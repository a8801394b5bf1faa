package styleserver

import (
	"context"

	"github.com/vango-dev/componentx/internal/dev"
	"github.com/vango-dev/componentx/pkg/style"
)

// Watch reloads styles as files in the server's directory change, and
// tells connected browsers. It blocks until ctx is cancelled.
func (s *Server) Watch(ctx context.Context) error {
	w := dev.NewWatcher(dev.WatcherConfig{
		Paths:    []string{s.dir},
		Match:    IsSourceFile,
		Debounce: s.debounce,
		Logger:   s.logger,
	})
	return w.Run(ctx, s.Apply)
}

// Apply handles one file change: a written file is recompiled and its
// component's style replaced, a removed file drops the style. Invalid files
// keep the previous style and broadcast the error instead.
func (s *Server) Apply(c dev.Change) {
	name := style.ComponentName(c.Path)

	if c.Type == dev.ChangeRemoved {
		if s.reg.Forget(name) {
			s.logger.Info("style removed", "component", name, "file", c.Path)
			s.hub.NotifyCSS(name, c.Path)
		}
		return
	}

	if _, err := s.load(c.Path); err != nil {
		s.logger.Warn("style reload failed", "file", c.Path, "err", err)
		s.hub.NotifyError(c.Path, err.Error())
		return
	}
	s.logger.Info("style reloaded", "component", name, "file", c.Path)
	s.hub.ClearError()
	s.hub.NotifyCSS(name, c.Path)
}
