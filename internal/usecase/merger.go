package usecase

import (
	"strings"

	"github.com/fadilmartias/portfolio-gen/internal/model"
	"github.com/fadilmartias/portfolio-gen/internal/parser"
)

// MergeProfile combines resume data, GitHub data and the caller's fallback
// identity into one Profile. Self-reported resume data wins for contact and
// identity fields, GitHub wins for developer-identity fields (avatar, bio);
// the fallback identity is always last. Bio and summary resolve differently:
// summary comes only from the resume, bio falls back to GitHub.
func MergeProfile(gh *model.GitHubData, resume *parser.ResumeData, fallback model.Identity) model.Profile {
	var ghProfile model.GitHubProfile
	if gh != nil {
		ghProfile = gh.Profile
	}
	var personal parser.PersonalInfo
	var resumeSummary string
	if resume != nil {
		personal = resume.PersonalInfo
		resumeSummary = resume.Summary
	}

	profile := model.Profile{
		Name:        firstNonEmpty(personal.Name, ghProfile.Name, fallback.Name),
		Email:       firstNonEmpty(personal.Email, ghProfile.Email, fallback.Email),
		Phone:       personal.Phone,
		Location:    firstNonEmpty(personal.Location, ghProfile.Location),
		AvatarURL:   ghProfile.AvatarURL,
		Website:     normalizeURL(personal.Website),
		LinkedInURL: normalizeURL(personal.LinkedIn),
		Summary:     resumeSummary,
	}

	// Resume-declared GitHub URL wins; otherwise derive from the connected
	// account login.
	if personal.GitHub != "" {
		profile.GitHubURL = normalizeURL(personal.GitHub)
	} else if ghProfile.Login != "" {
		profile.GitHubURL = "https://github.com/" + ghProfile.Login
	}

	// Bio: GitHub's bio unless the resume carries a summary, in which case
	// the summary doubles as the bio.
	if resumeSummary != "" {
		profile.Bio = resumeSummary
	} else {
		profile.Bio = ghProfile.Bio
	}

	return profile
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// normalizeURL prepends a scheme to scheme-less URLs pulled out of resume
// text ("github.com/jane" style matches).
func normalizeURL(url string) string {
	if url == "" {
		return ""
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return "https://" + url
	}
	return url
}
