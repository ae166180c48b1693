package apiclient

import "net/http"

// Operation identifies each (endpoint, method) pair the app uses. The
// demo fallback is keyed by Operation instead of matching on raw path
// strings, so a new endpoint can't silently fall through a typo.
type Operation int

const (
	OpUnknown Operation = iota
	OpLogin
	OpRegister
	OpListContacts
	OpAddContact
	OpDeleteContact
	OpTriggerPanic
	OpResolvePanic
	OpLegalChat
	OpSafeRoute
	OpReportLocation
)

func (op Operation) Method() string {
	switch op {
	case OpListContacts:
		return http.MethodGet
	case OpDeleteContact:
		return http.MethodDelete
	default:
		return http.MethodPost
	}
}

func (op Operation) String() string {
	switch op {
	case OpLogin:
		return "login"
	case OpRegister:
		return "register"
	case OpListContacts:
		return "list-contacts"
	case OpAddContact:
		return "add-contact"
	case OpDeleteContact:
		return "delete-contact"
	case OpTriggerPanic:
		return "trigger-panic"
	case OpResolvePanic:
		return "resolve-panic"
	case OpLegalChat:
		return "legal-chat"
	case OpSafeRoute:
		return "safe-route"
	case OpReportLocation:
		return "report-location"
	}
	return "unknown"
}
