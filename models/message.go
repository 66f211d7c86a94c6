package models

import "strconv"

// Message is a single notification as returned by the Pushover Open Client
// API. Messages are immutable once received; IDs increase monotonically per
// device.
type Message struct {
	// ID is the device-scoped message identifier used for cursor tracking.
	ID int64 `json:"id"`
	// UMID is the user-scoped message identifier carried by newer API
	// revisions alongside ID.
	UMID int64 `json:"umid"`
	// Title is the optional notification title. Empty for messages sent
	// without one.
	Title string `json:"title"`
	// Body is the notification text.
	Body string `json:"message"`
	// App is the name of the sending application.
	App string `json:"app"`
	// AppID identifies the sending application; used to derive a default
	// icon when the message carries none.
	AppID int64 `json:"aid"`
	// Icon is the icon identifier supplied by the provider, without
	// extension. May be empty.
	Icon string `json:"icon"`
	// Date is the creation time as a unix timestamp.
	Date int64 `json:"date"`
	// Priority is the Pushover priority in the range -2..2.
	Priority int `json:"priority"`
	// Acked reports whether an emergency-priority message has been
	// acknowledged by the user.
	Acked int `json:"acked"`
}

// MessageListResponse is the envelope of GET messages.json.
type MessageListResponse struct {
	Status   int       `json:"status"`
	Messages []Message `json:"messages"`
}

// IconName returns the cache file name for the message's icon: the
// provider-supplied icon id when present, otherwise a default derived from
// the sending application id.
func (m Message) IconName() string {
	if m.Icon != "" {
		return m.Icon + ".png"
	}
	return "default_" + strconv.FormatInt(m.AppID, 10) + ".png"
}
