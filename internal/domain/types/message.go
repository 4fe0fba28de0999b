package types

// Message is one line of user-visible status text in the notification log.
type Message string

// String returns the string form of the message.
func (m Message) String() string { return string(m) }
