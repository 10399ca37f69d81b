package handlers

import "net/http"

// PageData is the view model for simple pages sharing the layout, such as
// the not-found page.
type PageData struct {
	RequestInfo
	Title      string
	Status     int
	MessageKey string
}

// NotFound builds the not-found page.
func NotFound(info RequestInfo) PageData {
	return PageData{
		RequestInfo: info,
		Title:       http.StatusText(http.StatusNotFound),
		Status:      http.StatusNotFound,
		MessageKey:  "error.not_found",
	}
}
