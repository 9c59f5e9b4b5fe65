package library

import (
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settle is how long a file must stay quiet before its change is reported.
const settle = 100 * time.Millisecond

// coalescer holds changed paths until they have been quiet for settle, so
// an editor's burst of write, rename and chmod becomes one reload of the
// final bytes.
type coalescer struct {
	quiet   time.Duration
	pending map[string]time.Time
}

func newCoalescer(quiet time.Duration) *coalescer {
	return &coalescer{quiet: quiet, pending: map[string]time.Time{}}
}

// touch records a change to path at now, pushing its report back.
func (c *coalescer) touch(path string, now time.Time) {
	c.pending[path] = now
}

// due removes and returns, sorted, every path quiet since before now-quiet.
func (c *coalescer) due(now time.Time) []string {
	var out []string
	for path, last := range c.pending {
		if now.Sub(last) >= c.quiet {
			out = append(out, path)
			delete(c.pending, path)
		}
	}
	slices.Sort(out)
	return out
}

// next returns how long until the earliest pending path is due, and false
// when nothing is pending.
func (c *coalescer) next(now time.Time) (time.Duration, bool) {
	if len(c.pending) == 0 {
		return 0, false
	}
	wait := c.quiet
	for _, last := range c.pending {
		wait = min(wait, max(c.quiet-now.Sub(last), 0))
	}
	return wait, true
}

// Watcher reports animation files that changed on disk. Events carries
// full paths.
type Watcher struct {
	fs      *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// Watch reports changes to the library's disk directory.
func (l *Library) Watch() (*Watcher, error) {
	if l.dir == "" {
		return nil, errors.New("library: watch: no directory")
	}
	return NewWatcher(l.dir)
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fw,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.run(newCoalescer(settle))
	return w, nil
}

// Close stops the watcher. Events and Errors are closed once the run loop
// exits; calling Close again is a no-op.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) run(c *coalescer) {
	defer close(w.Events)
	defer close(w.Errors)

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 || !IsAnimationFile(event.Name) {
				continue
			}
			c.touch(event.Name, time.Now())
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-timer.C:
			for _, path := range c.due(time.Now()) {
				select {
				case w.Events <- path:
				case <-w.closeCh:
					return
				}
			}
		case <-w.closeCh:
			return
		}
		if wait, ok := c.next(time.Now()); ok {
			timer.Reset(wait)
		}
	}
}
