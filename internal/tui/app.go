package tui

import (
	"context"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-portal-client/internal/guard"
	"github.com/MKhiriev/go-portal-client/internal/service"
	"github.com/MKhiriev/go-portal-client/models"
)

// routeTracker publishes the rendered route to other goroutines; the
// transport reads it to tell whether the user is on the login screen.
type routeTracker struct {
	route atomic.Value
}

func (t *routeTracker) set(r models.Route) {
	t.route.Store(r)
}

func (t *routeTracker) get() models.Route {
	if r, ok := t.route.Load().(models.Route); ok {
		return r
	}
	return models.RouteHome
}

// RootModel is a TUI router:
// 1) keeps the requested and the rendered route
// 2) runs the route guard on every navigation and every session change
// 3) handles global keys (ctrl+c, build info window)
// 4) delegates all other messages to the rendered page
type RootModel struct {
	ctx      context.Context
	services *service.ClientServices
	pages    map[models.Route]tea.Model
	tracker  *routeTracker

	session   models.Session
	requested models.Route
	current   models.Route
	waiting   bool

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	overlay       *errorOverlayModel
}

// NewRootModel registers all pages and requests startRoute. Nothing renders
// until the session has booted.
func NewRootModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo, tracker *routeTracker, startRoute models.Route) RootModel {
	pages := map[models.Route]tea.Model{
		models.RouteHome:       NewMenuModel(ctx, services),
		models.RouteLogin:      NewLoginModel(ctx, services.Login),
		models.RouteVerify:     NewVerifyModel(ctx, services.Account),
		models.RouteProfile:    NewProfileModel(ctx, services.Sessions),
		models.RouteTOTP:       NewTOTPModel(ctx, services.Sessions, services.Account),
		models.RouteApply:      NewApplyModel(ctx, services.Sessions, services.Applications),
		models.RouteModeration: NewModerationModel(ctx, services.Sessions, services.Admin),
		models.RouteAdmin:      NewAdminModel(ctx, services.Sessions, services.Admin),
	}

	r := RootModel{
		ctx:       ctx,
		services:  services,
		pages:     pages,
		tracker:   tracker,
		session:   services.Sessions.Current(),
		requested: startRoute,
		buildInfo: buildInfo,
	}
	r.navigate(startRoute)
	return r
}

func (r RootModel) Init() tea.Cmd {
	ctx := r.ctx
	sessions := r.services.Sessions
	boot := func() tea.Msg {
		return bootDoneMsg{err: sessions.Boot(ctx)}
	}

	if r.waiting || r.page() == nil {
		return boot
	}
	return tea.Batch(boot, r.page().Init())
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			return r, tea.Quit
		case key.Matches(keyMsg, keys.version) && r.isMenuPage() && r.overlay == nil:
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc, keys.enter) && r.overlay != nil:
			r.overlay = nil
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo || r.overlay != nil || r.waiting {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		r.showBuildInfo = false
		return r, r.navigate(msg.Route)

	case sessionChangedMsg:
		r.session = msg.session
		return r, tea.Batch(r.forward(msg), r.navigate(r.requested))

	case bootDoneMsg:
		r.session = r.services.Sessions.Current()
		if msg.err != nil {
			r.overlay = &errorOverlayModel{message: "Could not restore your session: " + humanizeError(msg.err)}
		}
		return r, r.navigate(r.requested)
	}

	return r, r.forward(msg)
}

func (r RootModel) View() string {
	switch {
	case r.overlay != nil:
		return r.overlay.View()
	case r.showBuildInfo:
		return renderBuildInfoWindow(r.buildInfo)
	case r.waiting:
		return loadingView()
	case r.page() == nil:
		return renderPage(appName, "", "")
	}
	return r.page().View()
}

// navigate asks the guard about target and switches pages accordingly.
// The returned command initialises the page when it changed.
func (r *RootModel) navigate(target models.Route) tea.Cmd {
	r.requested = target

	decision := guard.EvaluateRoute(r.session, target)
	switch decision.Action {
	case guard.ActionWait:
		r.waiting = true
		return nil
	case guard.ActionRedirect:
		target = decision.To
		r.requested = target
	case guard.ActionAllow:
	}

	r.waiting = false
	if target == r.current {
		return nil
	}

	r.current = target
	r.tracker.set(target)
	if p := r.page(); p != nil {
		return p.Init()
	}
	return nil
}

func (r *RootModel) forward(msg tea.Msg) tea.Cmd {
	p := r.page()
	if p == nil || r.waiting {
		return nil
	}
	updated, cmd := p.Update(msg)
	r.pages[r.current] = updated
	return cmd
}

func (r RootModel) page() tea.Model {
	return r.pages[r.current]
}

func (r RootModel) isMenuPage() bool {
	return r.current == models.RouteHome && !r.waiting
}
