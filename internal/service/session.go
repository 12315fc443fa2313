package service

// Session identifies the caller of a service operation.
type Session struct {
	Username string
	Token    string // upstream bearer token
}

// Notifier pushes events to connected clients.
type Notifier interface {
	Notify(eventType string, data interface{})
}
