// Package crumbtug is a small directory browser built around the breadcrumb bar.
package crumbtug

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"

	"github.com/filetug/crumbtug/pkg/files"
	"github.com/filetug/crumbtug/pkg/files/osfile"
	"github.com/filetug/crumbtug/pkg/fsutils"
	"github.com/filetug/crumbtug/pkg/logutil"
	"github.com/filetug/crumbtug/pkg/pathnav"
	"github.com/filetug/crumbtug/pkg/settings"
	"github.com/filetug/crumbtug/pkg/sneatv/crumbs"
	"github.com/filetug/crumbtug/pkg/state"
	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Config is what main hands over to the browser.
type Config struct {
	StartDir string
	Settings settings.Settings
	Logger   *slog.Logger
	// State remembers the current directory when set.
	State *state.Store
}

var _ pathnav.PathController = (*Browser)(nil)

// Browser shows the breadcrumb bar above the list of entries of the current directory.
type Browser struct {
	*tview.Flex
	app    application
	store  files.Store
	logger *slog.Logger
	state  *state.Store
	fps    int

	bar     *crumbs.Breadcrumbs
	list    *tview.List
	status  *statusLine
	watcher *dirWatcher

	current *files.DirContext
	cancel  context.CancelFunc
}

var newStore = func() files.Store {
	return osfile.NewStore()
}

// SetupApp builds the browser, opens cfg.StartDir and makes the browser the root of app.
func SetupApp(app *tview.Application, cfg Config) {
	app.EnableMouse(true)
	b := newBrowser(tviewApp{Application: app}, newStore(), cfg)
	b.NavigateTo(cfg.StartDir)
	b.Start(context.Background())
	app.SetRoot(b, true)
	app.SetFocus(b.list)
}

func newBrowser(app application, store files.Store, cfg Config) *Browser {
	logger := cfg.Logger
	if logger == nil {
		logger = logutil.NewDiscardLogger()
	}
	s := cfg.Settings
	b := &Browser{
		app:    app,
		store:  store,
		logger: logger,
		state:  cfg.State,
		fps:    s.Animation.FPS,
		list:   newDirList(),
		status: newStatusLine(s.Edge.Range),
	}
	b.bar = crumbs.NewBreadcrumbs(
		crumbs.WithSeparator(s.Layout.Separator),
		crumbs.WithColors(s.CrumbColors()),
		crumbs.WithNavigatorOptions(
			pathnav.WithLogger(logger),
			pathnav.WithSegmentGap(s.Layout.SegmentGap),
			pathnav.WithLongNamePadding(s.Layout.LongNamePadding),
			pathnav.WithAnimationsEnabled(s.Animation.Enabled),
			pathnav.WithAnimationDuration(s.Animation.Duration),
			pathnav.WithAnimationStartDelay(s.Animation.StartDelay),
			pathnav.WithAnimationEasing(s.Easing()),
		),
	)
	b.bar.SetEdgeListener(b.status)
	b.bar.SetNextFocusTarget(b.list)
	b.bar.SetPrevFocusTarget(b.list)

	b.Flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(b.bar, 1, 0, false).
		AddItem(b.list, 0, 1, true).
		AddItem(b.status, 1, 0, false)
	b.SetInputCapture(b.inputCapture)
	b.list.SetInputCapture(b.listInputCapture)
	return b
}

// Start runs the animations of the bar and watches the current directory until ctx is done or Stop is called.
func (b *Browser) Start(ctx context.Context) {
	ctx, b.cancel = context.WithCancel(ctx)
	b.bar.Animate(ctx, b.fps, b.app.QueueUpdateDraw)

	watcher, err := newDirWatcher(b.logger, b.app.QueueUpdateDraw, b.onDirEvent)
	if err != nil {
		b.logger.Error("failed to create directory watcher", "err", err)
		return
	}
	b.watcher = watcher
	if b.current != nil {
		b.watch(b.current.Path)
	}
	go func() {
		watcher.Run(ctx)
		if err := watcher.Close(); err != nil {
			b.logger.Debug("failed to close directory watcher", "err", err)
		}
	}()
}

// Stop ends the background work and the application.
func (b *Browser) Stop() {
	if b.cancel != nil {
		b.cancel()
	}
	b.app.Stop()
}

// CurrentDir returns the directory the browser shows.
func (b *Browser) CurrentDir() string {
	if b.current == nil {
		return ""
	}
	return b.current.Path
}

// NavigateTo opens dirPath. Failures are shown in the status line and leave the bar untouched.
func (b *Browser) NavigateTo(dirPath string) {
	if err := b.goDir(dirPath); err != nil {
		b.logger.Error("failed to open directory", "dir", dirPath, "err", err)
		b.status.showError(err)
	}
}

func (b *Browser) goDir(dirPath string) error {
	dirPath, err := b.resolve(dirPath)
	if err != nil {
		return err
	}
	children, err := b.store.ReadDir(context.Background(), dirPath)
	if err != nil {
		return err
	}
	if err = b.bar.SetPath(dirPath, b); err != nil {
		return err
	}
	selected := -1
	if b.current != nil && b.current.Path == dirPath {
		selected = b.list.GetCurrentItem()
	}
	b.current = files.NewDirContext(b.store, dirPath, files.SortDirChildren(children))
	b.showDir(b.current)
	if selected >= 0 {
		b.list.SetCurrentItem(selected)
	}
	b.watch(dirPath)
	if b.state != nil {
		if err = b.state.SaveCurrentDir(dirPath); err != nil {
			b.logger.Warn("failed to save current directory", "dir", dirPath, "err", err)
		}
	}
	return nil
}

func (b *Browser) resolve(dirPath string) (string, error) {
	if dirPath == "" {
		dirPath = "~"
	}
	dirPath = fsutils.ExpandHome(dirPath)
	if !path.IsAbs(dirPath) {
		abs, err := filepath.Abs(dirPath)
		if err != nil {
			return "", fmt.Errorf("failed to resolve %s: %w", dirPath, err)
		}
		dirPath = abs
	}
	return path.Clean(dirPath), nil
}

func (b *Browser) watch(dirPath string) {
	if b.watcher == nil {
		return
	}
	if err := b.watcher.Watch(dirPath); err != nil {
		b.logger.Warn("failed to watch directory", "dir", dirPath, "err", err)
	}
}

// onDirEvent reloads the current directory, or leaves it for the nearest
// ancestor that still exists when it was removed.
func (b *Browser) onDirEvent(dir string, event fsnotify.Event) {
	if b.current == nil || dir != b.current.Path {
		return
	}
	if event.Name == dir && (event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)) {
		b.goAncestor()
		return
	}
	if err := b.goDir(dir); err != nil {
		b.logger.Info("current directory is gone", "dir", dir, "err", err)
		b.goAncestor()
	}
}

func (b *Browser) goAncestor() {
	dir := b.current.Path
	for dir != "/" {
		dir = path.Dir(dir)
		if err := b.goDir(dir); err == nil {
			return
		}
	}
}

func (b *Browser) goParent() {
	if b.current == nil || b.current.IsRoot() {
		return
	}
	b.NavigateTo(b.current.ParentPath())
}

func (b *Browser) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	if event.Modifiers()&tcell.ModAlt != 0 && event.Key() == tcell.KeyRune {
		switch event.Rune() {
		case '/':
			b.NavigateTo("/")
			return nil
		case '~':
			b.NavigateTo("~")
			return nil
		case 'x':
			b.Stop()
			return nil
		}
	}
	switch event.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		b.goParent()
		return nil
	default:
		return event
	}
}

// listInputCapture moves the focus up to the bar from the first list item.
func (b *Browser) listInputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		if b.list.GetCurrentItem() > 0 {
			return event
		}
	case tcell.KeyBacktab:
	default:
		return event
	}
	b.bar.TakeFocus(b.list)
	b.app.SetFocus(b.bar)
	return nil
}
