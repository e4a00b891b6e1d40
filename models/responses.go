package models

// Link is a single hypermedia link in an API response.
type Link struct {
	Href string `json:"href"`
	Type string `json:"type,omitempty"`
}

// Links maps link relations ("self", "next", ...) to their targets.
type Links map[string]Link

// Next returns the href of the "next" page link, or an empty string when the
// current page is the last one.
func (l Links) Next() string {
	return l["next"].Href
}
