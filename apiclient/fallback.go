package apiclient

import (
	"encoding/json"
	"math/rand"
	"time"
)

// Demo account honoured by the fallback path when the backend is
// unreachable. Matches the fixtures served by the stub server.
const (
	DemoEmail  = "test@raksha.com"
	DemoToken  = "mock-jwt"
	DemoUserID = "1"

	// DemoAnswer is the single canned reply the legal-chat fallback
	// gives, whatever the question was.
	DemoAnswer = "This is a demo response from the Legal AI. In a real scenario, " +
		"your question would be analyzed by the Raksha legal-advice model."
)

var (
	DemoContacts = []Contact{
		{ID: 1, Name: "Mom", Phone: "9876543210", Relationship: "Parent"},
		{ID: 2, Name: "Rahul (Brother)", Phone: "9123456789", Relationship: "Sibling"},
	}

	DemoRoute = []RouteNode{
		{ID: 1, Latitude: 28.6, Longitude: 77.2, Weight: 1},
		{ID: 2, Latitude: 28.7, Longitude: 77.3, Weight: 2},
	}
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

// DemoResponse synthesizes the canned JSON payload for an operation.
// It is deterministic for every operation except AddContact, which
// hands out a fresh random contact id each time. Only the login
// operation inspects the request body; all other inputs are ignored,
// which is acceptable purely because this is a demo aid.
func DemoResponse(op Operation, body interface{}) ([]byte, error) {
	switch op {
	case OpLogin:
		params, ok := body.(LoginParams)
		if !ok || params.Email != DemoEmail {
			return nil, ErrInvalidCredentials
		}
		return json.Marshal(LoginResponse{Token: DemoToken, UserID: DemoUserID, Message: "Demo Login"})

	case OpRegister:
		return json.Marshal(RegisterResponse{Message: "Registered (Demo)", UserID: DemoUserID})

	case OpListContacts:
		return json.Marshal(DemoContacts)

	case OpAddContact:
		return json.Marshal(AddContactResponse{Message: "Contact Added (Demo)", ContactID: rand.Int63n(899999) + 100000})

	case OpDeleteContact:
		return json.Marshal(DeleteContactResponse{Message: "Deleted (Demo)"})

	case OpTriggerPanic:
		return json.Marshal(PanicResponse{Message: "SOS Alert Triggered!", AlertID: 123, NotifiedContacts: 2})

	case OpResolvePanic:
		return json.Marshal(ResolvePanicResponse{Message: "Alert Resolved"})

	case OpLegalChat:
		return json.Marshal(ChatResponse{Answer: DemoAnswer})

	case OpSafeRoute:
		return json.Marshal(SafeRouteResponse{Path: DemoRoute})
	}

	// Anything unmatched (location reports included) degrades to an
	// empty object, which callers read as "no data" rather than an error.
	return []byte("{}"), nil
}
