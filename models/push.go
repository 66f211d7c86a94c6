package models

// PushMessage is the JSON payload accepted by Gotify's POST /message
// endpoint.
type PushMessage struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Priority int    `json:"priority"`
}

// defaultGotifyPriority is used for origin priorities outside the mapped
// range.
const defaultGotifyPriority = 5

var priorityTable = map[int]int{
	-2: 1,
	-1: 3,
	0:  5,
	1:  10,
}

// TranslatePriority maps a Pushover priority onto the Gotify priority
// scale. The mapping is total: values outside -2..1 (including emergency
// priority 2) fall back to the mid-level Gotify priority.
func TranslatePriority(origin int) int {
	if p, ok := priorityTable[origin]; ok {
		return p
	}
	return defaultGotifyPriority
}

// NewPushMessage builds the Gotify payload for a Pushover message. Messages
// without a title are forwarded under the sending application's name.
func NewPushMessage(m Message) PushMessage {
	title := m.Title
	if title == "" {
		title = m.App
	}
	return PushMessage{
		Title:    title,
		Message:  m.Body,
		Priority: TranslatePriority(m.Priority),
	}
}
