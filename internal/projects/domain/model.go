package domain

import "time"

// Project is a single portfolio entry shown on the public site.
// JSON names match what the React client reads.
type Project struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TechStack   string    `json:"techStack"`
	GithubURL   string    `json:"githubUrl"`
	LiveURL     string    `json:"liveUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ProjectInput carries the caller-editable fields for create and update.
// Values are stored verbatim.
type ProjectInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	TechStack   string `json:"techStack"`
	GithubURL   string `json:"githubUrl"`
	LiveURL     string `json:"liveUrl"`
}

// Validate requires every field to be present and non-empty.
func (in ProjectInput) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"title", in.Title},
		{"description", in.Description},
		{"techStack", in.TechStack},
		{"githubUrl", in.GithubURL},
		{"liveUrl", in.LiveURL},
	}
	for _, f := range fields {
		if f.value == "" {
			return &ValidationError{Field: f.name}
		}
	}
	return nil
}
