package apiclient

// Stub is a canned API implementation for tests - set the response (or
// error) you want each operation to produce.
type Stub struct {
	LoginResult         *LoginResponse
	LoginError          error
	RegisterResult      *RegisterResponse
	RegisterError       error
	ContactsResult      []Contact
	ContactsError       error
	AddContactResult    *AddContactResponse
	AddContactError     error
	DeleteContactResult *DeleteContactResponse
	DeleteContactError  error
	PanicResult         *PanicResponse
	PanicError          error
	ResolveResult       *ResolvePanicResponse
	ResolveError        error
	ChatResult          *ChatResponse
	ChatError           error
	RouteResult         *SafeRouteResponse
	RouteError          error
	LocationError       error
	DemoModeFlag        bool

	// Recorded inputs, for asserting what the panels sent.
	DeletedContactIDs []int64
	AskedQuestions    []string
	ReportedLocations []LocationParams
}

func (s *Stub) Login(email, password string) (*LoginResponse, error) {
	return s.LoginResult, s.LoginError
}

func (s *Stub) Register(params RegisterParams) (*RegisterResponse, error) {
	return s.RegisterResult, s.RegisterError
}

func (s *Stub) Contacts() ([]Contact, error) {
	return s.ContactsResult, s.ContactsError
}

func (s *Stub) AddContact(params AddContactParams) (*AddContactResponse, error) {
	return s.AddContactResult, s.AddContactError
}

func (s *Stub) DeleteContact(id int64) (*DeleteContactResponse, error) {
	s.DeletedContactIDs = append(s.DeletedContactIDs, id)
	return s.DeleteContactResult, s.DeleteContactError
}

func (s *Stub) TriggerPanic() (*PanicResponse, error) {
	return s.PanicResult, s.PanicError
}

func (s *Stub) ResolvePanic() (*ResolvePanicResponse, error) {
	return s.ResolveResult, s.ResolveError
}

func (s *Stub) AskLegalBot(question string) (*ChatResponse, error) {
	s.AskedQuestions = append(s.AskedQuestions, question)
	return s.ChatResult, s.ChatError
}

func (s *Stub) SafeRoute(startID, endID int) (*SafeRouteResponse, error) {
	return s.RouteResult, s.RouteError
}

func (s *Stub) ReportLocation(latitude, longitude float64) error {
	s.ReportedLocations = append(s.ReportedLocations, LocationParams{Latitude: latitude, Longitude: longitude})
	return s.LocationError
}

func (s *Stub) DemoMode() bool {
	return s.DemoModeFlag
}
