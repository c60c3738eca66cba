package notify

import (
	"strings"
)

const (
	cardType    = "MessageCard"
	cardContext = "http://schema.org/extensions"
)

// MessageCard is the legacy Office 365 connector card
type MessageCard struct {
	Type       string    `json:"@type"`
	Context    string    `json:"@context"`
	Summary    string    `json:"summary"`
	ThemeColor string    `json:"themeColor"`
	Sections   []Section `json:"sections"`
}

// Section groups facts or actions of a card
type Section struct {
	StartGroup      bool     `json:"startGroup,omitempty"`
	Title           string   `json:"title,omitempty"`
	Facts           []Fact   `json:"facts,omitempty"`
	PotentialAction []Action `json:"potentialAction,omitempty"`
}

// Action is a button on the card
type Action struct {
	Type    string   `json:"@type"`
	Name    string   `json:"name"`
	Targets []Target `json:"targets"`
}

// Target is where an OpenUri action leads on a given OS
type Target struct {
	OS  string `json:"os"`
	URI string `json:"uri"`
}

// TextMessage is the plain text webhook payload
type TextMessage struct {
	Text string `json:"text"`
}

// BuildCard creates the action card for a deployment
func BuildCard(d Deployment) MessageCard {
	return MessageCard{
		Type:       cardType,
		Context:    cardContext,
		Summary:    d.Summary(),
		ThemeColor: d.ThemeColor,
		Sections: []Section{
			{
				StartGroup: true,
				Title:      d.Title(),
				Facts:      d.Facts(),
			},
			{
				PotentialAction: []Action{
					{
						Type: "OpenUri",
						Name: "View Website",
						Targets: []Target{
							{OS: "default", URI: d.URL},
						},
					},
				},
			},
		},
	}
}

// BuildText creates a plain text message for webhooks that do not render cards
func BuildText(d Deployment) TextMessage {
	var b strings.Builder
	b.WriteString(d.Summary())
	for _, fact := range d.Facts() {
		if fact.Name == "Link:" {
			continue
		}
		b.WriteString("\n\n")
		b.WriteString(fact.Name)
		b.WriteString(" ")
		b.WriteString(fact.Value)
	}
	return TextMessage{Text: b.String()}
}
