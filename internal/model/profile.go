package model

// Profile is the merged canonical identity assembled from resume, GitHub and
// fallback sources. Every field is optional; "" means absent and downstream
// consumers must tolerate it. Profiles are value types and are not mutated
// after the merge.
type Profile struct {
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Location    string `json:"location,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	Website     string `json:"website,omitempty"`
	GitHubURL   string `json:"github_url,omitempty"`
	LinkedInURL string `json:"linkedin_url,omitempty"`
	Bio         string `json:"bio,omitempty"`
	Summary     string `json:"summary,omitempty"`
}

// Identity is the minimal identity already known to the caller (e.g. the
// authenticated account), used as the lowest-priority merge source.
type Identity struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}
