package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"ewintr.nl/videonotes/export"
	"ewintr.nl/videonotes/fetch"
	"ewintr.nl/videonotes/model"
	"ewintr.nl/videonotes/session"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

type SessionAPI struct {
	registry *session.Registry
	logger   *slog.Logger
}

func NewSessionAPI(registry *session.Registry, logger *slog.Logger) *SessionAPI {
	return &SessionAPI{
		registry: registry,
		logger:   logger,
	}
}

func (sa *SessionAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	head, tail := ShiftPath(r.URL.Path)
	if head == "" {
		if r.Method == http.MethodPost {
			sa.Create(w, r)
			return
		}
		Error(w, http.StatusNotFound, "not found", fmt.Errorf("method %s was not registered in the session api", r.Method))
		return
	}

	id, err := uuid.Parse(head)
	if err != nil {
		Error(w, http.StatusNotFound, "not found", fmt.Errorf("%q is not a session id", head))
		return
	}
	s, ok := sa.registry.Get(id)
	if !ok {
		Error(w, http.StatusNotFound, "not found", fmt.Errorf("session %s does not exist", id))
		return
	}

	sub, _ := ShiftPath(tail)
	switch {
	case r.Method == http.MethodGet && sub == "":
		JSON(w, http.StatusOK, s.View())
	case r.Method == http.MethodPost && sub == "":
		sa.Submit(w, r, s)
	case r.Method == http.MethodPost && sub == "reset":
		sa.Reset(w, s)
	case r.Method == http.MethodDelete && sub == "":
		sa.registry.Remove(id)
		Message(w, http.StatusOK, "session closed")
	case r.Method == http.MethodGet && sub == "notes.md":
		sa.Notes(w, s)
	default:
		Error(w, http.StatusNotFound, "not found", fmt.Errorf("method %s with subpath %q was not registered in the session api", r.Method, sub))
	}
}

func (sa *SessionAPI) Create(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(r)
	if err != nil {
		returnErr(sa.logger, w, statusFor(err), "could not create session", err)
		return
	}

	s := sa.registry.New()
	if err := s.Submit(req); err != nil {
		sa.registry.Remove(s.ID)
		returnErr(sa.logger, w, statusFor(err), "could not submit request", err)
		return
	}

	JSON(w, http.StatusCreated, s.View())
}

func (sa *SessionAPI) Submit(w http.ResponseWriter, r *http.Request, s *session.Session) {
	req, err := decodeRequest(r)
	if err != nil {
		returnErr(sa.logger, w, statusFor(err), "could not submit request", err)
		return
	}
	if err := s.Submit(req); err != nil {
		returnErr(sa.logger, w, statusFor(err), "could not submit request", err)
		return
	}

	JSON(w, http.StatusAccepted, s.View())
}

func (sa *SessionAPI) Reset(w http.ResponseWriter, s *session.Session) {
	if err := s.Reset(); err != nil {
		returnErr(sa.logger, w, statusFor(err), "could not reset session", err)
		return
	}

	JSON(w, http.StatusOK, s.View())
}

func (sa *SessionAPI) Notes(w http.ResponseWriter, s *session.Session) {
	res, ok := s.Result()
	if !ok {
		Error(w, http.StatusNotFound, "not found", fmt.Errorf("session %s has no result", s.ID))
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(*res)))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(export.Markdown(*res)))
}

// decodeRequest rejects what the pipeline would reject in its validation
// stage, so that a bad form never starts a run.
func decodeRequest(r *http.Request) (model.Request, error) {
	var req model.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return model.Request{}, model.InvalidInput("could not decode request body: %v", err)
	}
	if _, ok := fetch.ExtractVideoID(req.VideoURL); !ok {
		return model.Request{}, model.InvalidInput("please enter a valid YouTube video URL")
	}
	if !req.DetailLevel.Normalize().Valid() {
		return model.Request{}, model.InvalidInput("unknown detail level %q", req.DetailLevel)
	}

	return req, nil
}
