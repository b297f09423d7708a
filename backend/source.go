package backend

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"

	"gioui.org/x/explorer"
	"github.com/fsnotify/fsnotify"

	"git.sr.ht/~whereswaldon/materialchart/chartdata"
)

// Update is a snapshot of the loaded dataset. Datasets are never modified
// after being published.
type Update struct {
	// Path is the file the dataset came from, if any.
	Path    string
	Dataset *chartdata.Dataset
	// Err is the last load failure. Dataset still holds the last good
	// data when Err is set.
	Err error
	// Generation increases with every published update.
	Generation int
}

type RWBox[T any] struct {
	t    T
	lock sync.RWMutex
}

func (r *RWBox[T]) Read(f func(*T)) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	f(&r.t)
}

func (r *RWBox[T]) Write(f func(*T)) {
	r.lock.Lock()
	defer r.lock.Unlock()
	f(&r.t)
}

type sourceState struct {
	current Update
	subs    map[chan Update]struct{}
}

// Option adjusts every dataset a Source loads.
type Option func(*chartdata.Dataset)

// Source loads a dataset file and reloads it whenever it changes on disk.
type Source struct {
	watcher *fsnotify.Watcher
	logger  *slog.Logger
	opts    []Option
	state   RWBox[sourceState]
}

// NewSource starts a source. It stops watching files once ctx is done. A
// nil logger discards log output.
func NewSource(ctx context.Context, logger *slog.Logger, opts ...Option) (*Source, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed creating file watcher: %w", err)
	}
	s := &Source{
		watcher: watcher,
		logger:  logger,
		opts:    opts,
	}
	s.state.t.subs = map[chan Update]struct{}{}
	go s.watch(ctx)
	return s, nil
}

func (s *Source) log(level slog.Level, msg string, args ...any) {
	if s.logger != nil {
		s.logger.Log(context.Background(), level, msg, args...)
	}
}

// Current returns the latest update.
func (s *Source) Current() Update {
	var u Update
	s.state.Read(func(st *sourceState) {
		u = st.current
	})
	return u
}

// Updates streams every update until ctx is done. The latest update is
// delivered immediately; a slow reader only ever sees the newest one.
func (s *Source) Updates(ctx context.Context) <-chan Update {
	out := make(chan Update, 1)
	s.state.Write(func(st *sourceState) {
		st.subs[out] = struct{}{}
		if st.current.Generation > 0 {
			out <- st.current
		}
	})
	go func() {
		<-ctx.Done()
		s.state.Write(func(st *sourceState) {
			delete(st.subs, out)
			close(out)
		})
	}()
	return out
}

// publish replaces the current update and hands it to every subscriber.
func (s *Source) publish(f func(*Update)) {
	s.state.Write(func(st *sourceState) {
		f(&st.current)
		st.current.Generation++
		for sub := range st.subs {
			select {
			case <-sub:
			default:
			}
			sub <- st.current
		}
	})
}

func (s *Source) apply(ds *chartdata.Dataset) *chartdata.Dataset {
	for _, opt := range s.opts {
		opt(ds)
	}
	return ds
}

// Open loads the dataset at path and watches it for changes, replacing any
// previously watched file.
func (s *Source) Open(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed resolving %q: %w", path, err)
	}
	var prev string
	s.state.Read(func(st *sourceState) {
		prev = st.current.Path
	})
	if prev != "" && filepath.Dir(prev) != filepath.Dir(abs) {
		_ = s.watcher.Remove(filepath.Dir(prev))
	}
	// Editors often replace files instead of writing them, so watch the
	// directory and filter by name.
	if err := s.watcher.Add(filepath.Dir(abs)); err != nil {
		s.log(slog.LevelWarn, "cannot watch dataset directory", "path", abs, "err", err)
	}
	return s.load(abs)
}

func (s *Source) load(path string) error {
	ds, err := DecodeFile(path)
	s.publish(func(u *Update) {
		u.Path = path
		u.Err = err
		if err == nil {
			u.Dataset = s.apply(ds)
		}
	})
	if err != nil {
		s.log(slog.LevelError, "failed loading dataset", "path", path, "err", err)
		return err
	}
	s.log(slog.LevelInfo, "loaded dataset", "path", path, "points", len(ds.Data))
	return nil
}

// Load publishes a dataset read from r, decoded according to the extension
// of name. It is not watched for changes.
func (s *Source) Load(name string, r io.Reader) error {
	ds, err := decoderFor(name)(r)
	if err != nil {
		err = fmt.Errorf("%s: %w", name, err)
	}
	s.publish(func(u *Update) {
		u.Path = ""
		u.Err = err
		if err == nil {
			u.Dataset = s.apply(ds)
		}
	})
	return err
}

// Set publishes ds directly.
func (s *Source) Set(ds *chartdata.Dataset) {
	s.publish(func(u *Update) {
		u.Path = ""
		u.Err = nil
		u.Dataset = s.apply(ds)
	})
}

// LoadFromExplorer asks the user for a dataset file. Files with a name on
// disk are watched like files passed to Open.
func (s *Source) LoadFromExplorer(expl *explorer.Explorer) error {
	file, err := expl.ChooseFile(".yaml", ".yml", ".json", ".csv")
	if err != nil {
		return err
	}
	defer file.Close()
	if f, ok := file.(interface{ Name() string }); ok {
		return s.Open(f.Name())
	}
	return s.Load("dataset", file)
}

func (s *Source) watch(ctx context.Context) {
	defer s.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			path := s.Current().Path
			if path == "" || filepath.Clean(ev.Name) != path {
				continue
			}
			s.log(slog.LevelDebug, "dataset changed", "path", path, "op", ev.Op.String())
			_ = s.load(path)
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.log(slog.LevelWarn, "file watcher failed", "err", err)
			s.publish(func(u *Update) {
				u.Err = fmt.Errorf("file watcher failed: %w", err)
			})
		}
	}
}
