package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/NielsdaWheelz/filemyrti/internal/errors"
	"github.com/NielsdaWheelz/filemyrti/internal/events"
	"github.com/NielsdaWheelz/filemyrti/internal/leads"
	"github.com/NielsdaWheelz/filemyrti/internal/popup"
	"github.com/NielsdaWheelz/filemyrti/internal/provider"
	"github.com/NielsdaWheelz/filemyrti/internal/resources"
	"github.com/NielsdaWheelz/filemyrti/internal/states"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeProblem(w, r, http.StatusNotFound, "", "no route for "+r.Method+" "+r.URL.Path)
}

type stateSummary struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

func (s *Server) handleListStates(w http.ResponseWriter, _ *http.Request) {
	all := s.deps.Provider.Table().All()
	out := make([]stateSummary, 0, len(all))
	for _, c := range all {
		out = append(out, stateSummary{Slug: c.Slug, Name: c.Name})
	}
	writeJSON(w, http.StatusOK, map[string]any{"states": out})
}

type stateResponse struct {
	Slug        string                     `json:"slug"`
	Phase       provider.Phase             `json:"phase"`
	Config      *states.JurisdictionConfig `json:"config"`
	RemoteError string                     `json:"remote_error,omitempty"`
}

// snapshot runs one provider instance for slug and waits at most Await
// for the merged view. The instance is closed before returning, so a
// fetch still in flight is cancelled and its late result dropped.
func (s *Server) snapshot(ctx context.Context, slug string) (provider.Snapshot, provider.Phase) {
	inst := s.deps.Provider.Use(slug, provider.WithContext(ctx))
	defer inst.Close()

	if s.deps.Await <= 0 {
		return inst.Snapshot(), inst.Phase()
	}
	releaseBusy(ctx)
	waitCtx, cancel := context.WithTimeout(ctx, s.deps.Await)
	defer cancel()
	snap := inst.Wait(waitCtx)
	return snap, inst.Phase()
}

func unknownState(slug string) error {
	return errors.NewWithDetails(errors.EUnknownState, "unknown state: "+slug, map[string]string{
		"slug": slug,
		"hint": "use one of: " + strings.Join(states.AllSlugs(), ", "),
	})
}

func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	slug := strings.ToLower(strings.TrimSpace(r.PathValue("slug")))
	if !s.deps.Provider.Table().Has(slug) {
		writeError(w, r, s.deps.Logger, unknownState(slug))
		return
	}
	snap, phase := s.snapshot(r.Context(), slug)
	resp := stateResponse{Slug: slug, Phase: phase, Config: snap.Config}
	if snap.Err != nil {
		resp.RemoteError = snap.Err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

// pageSlug picks the slug from ?state=, then the Host subdomain, then the
// default jurisdiction.
func pageSlug(r *http.Request) string {
	if q := strings.TrimSpace(r.URL.Query().Get("state")); q != "" {
		return strings.ToLower(q)
	}
	if slug, ok := provider.ResolveSlugFromHost(r.Host); ok {
		return slug
	}
	return string(resources.DefaultJurisdiction)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	slug := pageSlug(r)
	if !s.deps.Provider.Table().Has(slug) {
		writeError(w, r, s.deps.Logger, unknownState(slug))
		return
	}
	snap, phase := s.snapshot(r.Context(), slug)
	writeJSON(w, http.StatusOK, s.deps.Pages.Build(slug, snap, phase))
}

func (s *Server) handleDepartments(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("state")
	j, ok := resources.ParseJurisdiction(raw)
	if !ok {
		writeError(w, r, s.deps.Logger, unknownState(raw))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"state":    j,
		"sections": s.deps.Pages.Sections(j),
	})
}

type resourceResponse struct {
	Found        bool                   `json:"found"`
	Jurisdiction resources.Jurisdiction `json:"jurisdiction"`
	Department   any                    `json:"department"`
}

// handleResource resolves ?name= exactly. A miss is 404 with the
// application-flow fallback in the body.
func (s *Server) handleResource(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, r, s.deps.Logger, errors.NewWithDetails(errors.EUsage, "name is required", map[string]string{
			"hint": "pass the exact department label, e.g. ?name=RTI+Delhi+Police",
		}))
		return
	}
	j := resources.ClassifyJurisdiction(name)
	if raw := r.URL.Query().Get("state"); raw != "" {
		pj, ok := resources.ParseJurisdiction(raw)
		if !ok {
			writeError(w, r, s.deps.Logger, unknownState(raw))
			return
		}
		j = pj
	}

	d := s.deps.Pages.Resolve(string(j), name)
	status := http.StatusOK
	if !d.HasResource {
		status = http.StatusNotFound
	}
	writeJSON(w, status, resourceResponse{Found: d.HasResource, Jurisdiction: j, Department: d})
}

type leadResponse struct {
	SubmissionID string `json:"submission_id"`
	Status       string `json:"status"`
}

func (s *Server) handleLead(w http.ResponseWriter, r *http.Request) {
	var l leads.Lead
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxLeadBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&l); err != nil {
		writeError(w, r, s.deps.Logger, errors.Wrap(errors.EUsage, "request body must be a lead json object", err))
		return
	}

	receipt, err := s.deps.Leads.Submit(r.Context(), l)
	if err != nil {
		writeError(w, r, s.deps.Logger, err)
		return
	}
	writeJSON(w, http.StatusAccepted, leadResponse{SubmissionID: receipt.SubmissionID, Status: "submitted"})
}

type popupResponse struct {
	Visitor string `json:"visitor"`
	Flag    string `json:"flag"`
	Show    bool   `json:"show"`
	Backend string `json:"backend"`
}

// handlePopupStatus reports whether to show the popup. A store failure
// hides it rather than failing the page.
func (s *Server) handlePopupStatus(w http.ResponseWriter, r *http.Request) {
	visitor := r.PathValue("visitor")
	show, err := popup.ShouldShow(r.Context(), s.deps.Popup, visitor)
	if err != nil {
		if errors.GetCode(err) == errors.EUsage {
			writeError(w, r, s.deps.Logger, err)
			return
		}
		s.deps.Logger.Warn("popup store read failed; hiding popup", "backend", s.deps.Popup.Backend(), "err", err)
	}
	writeJSON(w, http.StatusOK, popupResponse{Visitor: visitor, Flag: popup.FlagName, Show: show, Backend: s.deps.Popup.Backend()})
}

func (s *Server) handlePopupDismiss(w http.ResponseWriter, r *http.Request) {
	visitor := r.PathValue("visitor")
	if err := s.deps.Popup.MarkSeen(r.Context(), visitor); err != nil {
		writeError(w, r, s.deps.Logger, err)
		return
	}
	if s.deps.Events != nil {
		if err := s.deps.Events.Append(events.Event{
			Event: events.EventPopupDismissed,
			Data:  events.PopupDismissedData(visitor, s.deps.Popup.Backend()),
		}); err != nil {
			s.deps.Logger.Warn("failed to append popup event", "err", err)
		}
	}
	writeJSON(w, http.StatusOK, popupResponse{Visitor: visitor, Flag: popup.FlagName, Show: false, Backend: s.deps.Popup.Backend()})
}
