package handler

import (
	"fmt"
	"net/http"

	"ewintr.nl/videonotes/storage"
	"golang.org/x/exp/slog"
)

const recentRuns = 20

type RunAPI struct {
	runRepo storage.RunRepository
	logger  *slog.Logger
}

func NewRunAPI(runRepo storage.RunRepository, logger *slog.Logger) *RunAPI {
	return &RunAPI{
		runRepo: runRepo,
		logger:  logger,
	}
}

func (ra *RunAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	head, _ := ShiftPath(r.URL.Path)

	switch {
	case r.Method == http.MethodGet && head == "":
		ra.List(w)
	default:
		Error(w, http.StatusNotFound, "not found", fmt.Errorf("method %s with subpath %q was not registered in the run api", r.Method, head))
	}
}

func (ra *RunAPI) List(w http.ResponseWriter) {
	runs, err := ra.runRepo.Recent(recentRuns)
	if err != nil {
		returnErr(ra.logger, w, http.StatusInternalServerError, "could not list runs", err)
		return
	}

	JSON(w, http.StatusOK, runs)
}
