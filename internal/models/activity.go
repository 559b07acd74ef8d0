package models

// Activity is a school extracurricular with an ordered participant roster.
// MaxParticipants is advisory only and is never enforced on signup.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}
