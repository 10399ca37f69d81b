package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"veteranmentors.org/mentors-web/internal/content"
	handlersPkg "veteranmentors.org/mentors-web/internal/handlers"
	"veteranmentors.org/mentors-web/internal/live"
	mw "veteranmentors.org/mentors-web/internal/middleware"
	"veteranmentors.org/mentors-web/internal/nav"
)

// HomeHandler renders the default site.
func (a *app) HomeHandler(w http.ResponseWriter, r *http.Request) {
	a.renderSite(w, r, a.store.Library().Default())
}

// SiteHandler renders a named site.
func (a *app) SiteHandler(w http.ResponseWriter, r *http.Request) {
	site, err := a.store.Library().Site(chi.URLParam(r, "site"))
	if err != nil {
		a.NotFoundHandler(w, r)
		return
	}
	a.renderSite(w, r, site)
}

// renderSite mints a page instance, or reuses the one named by ?page= when it
// belongs to the same site.
func (a *app) renderSite(w http.ResponseWriter, r *http.Request, site *content.Site) {
	var page *live.Page
	if id := r.URL.Query().Get("page"); id != "" {
		if p, err := a.pages.Get(id); err == nil && p.Site().Name == site.Name {
			page = p
		}
	}
	if page == nil {
		page = a.pages.Create(site)
	}
	vm, err := handlersPkg.BuildHomeData(page, a.requestInfo(r, site))
	if err != nil {
		mw.LoggerFrom(r.Context()).Error("build home data", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	a.views.render(w, "base", http.StatusOK, vm)
}

// MenuToggleHandler flips the mobile menu of a page.
func (a *app) MenuToggleHandler(w http.ResponseWriter, r *http.Request) {
	page, ok := a.page(w, r)
	if !ok {
		return
	}
	st := page.ToggleMenu()
	if !mw.IsHTMX(r.Context()) {
		http.Redirect(w, r, a.pageURL(page, ""), http.StatusSeeOther)
		return
	}
	a.views.render(w, "navbar", http.StatusOK, handlersPkg.BuildNavbar(page.ID, page.Site(), st, a.requestInfo(r, page.Site())))
}

// TestimonialsToggleHandler expands or collapses the testimonials list.
func (a *app) TestimonialsToggleHandler(w http.ResponseWriter, r *http.Request) {
	page, ok := a.page(w, r)
	if !ok {
		return
	}
	st := page.ToggleTestimonials()
	if !mw.IsHTMX(r.Context()) {
		http.Redirect(w, r, a.pageURL(page, "testimonials"), http.StatusSeeOther)
		return
	}
	revealed := page.State().Revealed
	a.views.render(w, "testimonials", http.StatusOK,
		handlersPkg.BuildTestimonials(page.ID, page.Site(), st, revealed, a.requestInfo(r, page.Site())))
}

// NavbarFrag renders the navbar for a client-reported scroll offset.
func (a *app) NavbarFrag(w http.ResponseWriter, r *http.Request) {
	page, ok := a.page(w, r)
	if !ok {
		return
	}
	y, err := strconv.ParseFloat(r.URL.Query().Get("y"), 64)
	if err != nil {
		http.Error(w, "invalid offset", http.StatusBadRequest)
		return
	}
	st := page.NavbarAt(y)
	a.views.render(w, "navbar", http.StatusOK, handlersPkg.BuildNavbar(page.ID, page.Site(), st, a.requestInfo(r, page.Site())))
}

// LiveHandler upgrades to the page's websocket session.
func (a *app) LiveHandler(w http.ResponseWriter, r *http.Request) {
	a.live.Serve(w, r, chi.URLParam(r, "id"))
}

// SitesAPIHandler lists the available sites.
func (a *app) SitesAPIHandler(w http.ResponseWriter, r *http.Request) {
	lib := a.store.Library()
	writeJSON(w, http.StatusOK, map[string]any{
		"default": lib.DefaultName(),
		"sites":   lib.Names(),
	})
}

// SiteAPIHandler returns one site's content record.
func (a *app) SiteAPIHandler(w http.ResponseWriter, r *http.Request) {
	site, err := a.store.Library().Site(chi.URLParam(r, "site"))
	if errors.Is(err, content.ErrSiteNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "site not found"})
		return
	}
	writeJSON(w, http.StatusOK, site)
}

// NotFoundHandler renders the not-found page.
func (a *app) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	lib := a.store.Library()
	info := handlersPkg.RequestInfo{
		Lang:  mw.Lang(r),
		Path:  r.URL.Path,
		Sites: nav.Sites(lib.Names(), lib.DefaultName(), r.URL.Path),
	}
	a.views.render(w, "notfound", http.StatusNotFound, handlersPkg.NotFound(info))
}

// page resolves the {id} route parameter, answering 404 when unknown.
func (a *app) page(w http.ResponseWriter, r *http.Request) (*live.Page, bool) {
	page, err := a.pages.Get(chi.URLParam(r, "id"))
	if err != nil {
		if mw.IsHTMX(r.Context()) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "page not found"})
		} else {
			http.Error(w, "page not found", http.StatusNotFound)
		}
		return nil, false
	}
	return page, true
}

func (a *app) requestInfo(r *http.Request, site *content.Site) handlersPkg.RequestInfo {
	lib := a.store.Library()
	canonical := site.SEO.URL
	if canonical == "" {
		canonical = absoluteURL(r, a.sitePath(site))
	}
	return handlersPkg.RequestInfo{
		Lang:      mw.Lang(r),
		Path:      r.URL.Path,
		CSRFToken: mw.CSRFToken(r),
		Canonical: canonical,
		Sites:     nav.Sites(lib.Names(), lib.DefaultName(), r.URL.Path),
	}
}

func (a *app) sitePath(site *content.Site) string {
	return staticPath(a.store.Library(), site)
}

// pageURL links back to a page instance, optionally at an anchor.
func (a *app) pageURL(page *live.Page, anchor string) string {
	u := url.URL{Path: a.sitePath(page.Site()), RawQuery: url.Values{"page": {page.ID}}.Encode(), Fragment: anchor}
	return u.String()
}

func absoluteURL(r *http.Request, path string) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return (&url.URL{Scheme: scheme, Host: r.Host, Path: path}).String()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
