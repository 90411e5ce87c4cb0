package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"ewintr.nl/videonotes/feed"
	"golang.org/x/exp/slog"
)

// Inbox lists feed entries that can be submitted.
type Inbox interface {
	Unread() ([]feed.Entry, error)
	MarkRead(entryID int64) error
}

type InboxAPI struct {
	inbox  Inbox
	logger *slog.Logger
}

func NewInboxAPI(inbox Inbox, logger *slog.Logger) *InboxAPI {
	return &InboxAPI{
		inbox:  inbox,
		logger: logger,
	}
}

func (ia *InboxAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	head, _ := ShiftPath(r.URL.Path)

	switch {
	case r.Method == http.MethodGet && head == "":
		ia.List(w)
	case r.Method == http.MethodPost && head != "":
		ia.MarkRead(w, head)
	default:
		Error(w, http.StatusNotFound, "not found", fmt.Errorf("method %s with subpath %q was not registered in the inbox api", r.Method, head))
	}
}

func (ia *InboxAPI) List(w http.ResponseWriter) {
	entries, err := ia.inbox.Unread()
	if err != nil {
		returnErr(ia.logger, w, http.StatusInternalServerError, "could not list inbox", err)
		return
	}

	JSON(w, http.StatusOK, entries)
}

func (ia *InboxAPI) MarkRead(w http.ResponseWriter, rawID string) {
	entryID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid entry id", err)
		return
	}
	if err := ia.inbox.MarkRead(entryID); err != nil {
		returnErr(ia.logger, w, http.StatusInternalServerError, "could not mark entry as read", err)
		return
	}

	Message(w, http.StatusOK, "entry marked as read")
}
