package apiclient

type LoginParams struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token   string `json:"token"`
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

type RegisterParams struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required,phone_number"`
	Password    string `json:"password" validate:"required"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// Contact is a trusted emergency contact as returned by the backend.
type Contact struct {
	ID           int64  `json:"contact_id"`
	Name         string `json:"contact_name"`
	Phone        string `json:"contact_phone"`
	Relationship string `json:"relationship_type"`
}

type AddContactParams struct {
	Name         string `json:"contact_name" validate:"required"`
	Phone        string `json:"contact_phone" validate:"required,phone_number"`
	Relationship string `json:"relationship_type" validate:"required"`
}

type AddContactResponse struct {
	Message   string `json:"message"`
	ContactID int64  `json:"contact_id"`
}

type DeleteContactResponse struct {
	Message string `json:"message"`
}

type PanicResponse struct {
	Message          string `json:"message"`
	AlertID          int64  `json:"alert_id"`
	NotifiedContacts int    `json:"notified_contacts"`
}

type ResolvePanicResponse struct {
	Message string `json:"message"`
}

type ChatParams struct {
	Question string `json:"question"`
}

type ChatResponse struct {
	Answer string `json:"answer"`
}

type SafeRouteParams struct {
	StartID int `json:"startId"`
	EndID   int `json:"endId"`
}

// RouteNode is one waypoint on a computed safe route. Weight is the
// safety cost the route engine assigned to the zone.
type RouteNode struct {
	ID        int     `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Weight    float64 `json:"weight"`
}

type SafeRouteResponse struct {
	Path []RouteNode `json:"path"`
}

type LocationParams struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
