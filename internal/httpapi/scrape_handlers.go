package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"techready-engine/internal/events"
	"techready-engine/internal/scrape"
)

// scrapeFailedMsg is the catch-all shown when a page fetched fine but the
// pipeline blew up; the UI falls back to manual input on it.
const scrapeFailedMsg = "Failed to scrape job posting. Please try manual input."

type ScrapeHandler struct {
	Fetcher *scrape.Fetcher
	Hub     *events.Hub
}

type scrapeRequest struct {
	URL string `json:"url"`
}

type scrapeResponse struct {
	Success bool           `json:"success"`
	Data    scrape.JobData `json:"data"`
}

// Scrape handles POST /scrape: fetch a job posting URL and run the
// extraction pipeline over it.
//
// Only fetch-side failures are errors on the wire. A page where every
// strategy comes up empty is still a 200 with blank fields; the UI shows an
// editable form in that case.
func (h ScrapeHandler) Scrape(w http.ResponseWriter, r *http.Request) {
	var req scrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.URL) == "" {
		writeErr(w, http.StatusBadRequest, "URL is required")
		return
	}

	if err := scrape.ValidateURL(req.URL); err != nil {
		writeErr(w, http.StatusBadRequest, "Invalid URL format")
		return
	}

	html, err := h.Fetcher.Fetch(r.Context(), req.URL)
	if err != nil {
		var fe *scrape.FetchError
		if errors.As(err, &fe) {
			writeErr(w, fe.StatusCode, "Failed to fetch URL: "+fe.Status)
			return
		}
		log.Printf("[scrape] fetch failed url=%q err=%v", req.URL, err)
		writeErr(w, http.StatusInternalServerError, scrapeFailedMsg)
		return
	}

	doc, err := scrape.Parse(html)
	if err != nil {
		log.Printf("[scrape] parse failed url=%q err=%v", req.URL, err)
		writeErr(w, http.StatusInternalServerError, scrapeFailedMsg)
		return
	}

	data := scrape.Extract(doc)

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeScrapeCompleted, 1, map[string]any{
		"url":  req.URL,
		"role": data.Role,
	}))

	writeJSON(w, http.StatusOK, scrapeResponse{Success: true, Data: data})
}
