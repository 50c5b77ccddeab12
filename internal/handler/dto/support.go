package dto

// Support is the static, non-functional block attached to single-entity
// responses for wire compatibility with the public reqres API.
type Support struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// DefaultSupport returns the support block verbatim from the public API.
func DefaultSupport() Support {
	return Support{
		URL:  "https://contentcaddy.io?utm_source=reqres&utm_medium=json&utm_campaign=referral",
		Text: "Tired of writing endless social media content? Let Content Caddy generate it for you.",
	}
}
