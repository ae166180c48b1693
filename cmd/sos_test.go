package cmd

import (
	"strings"
	"testing"

	"github.com/raksha-app/raksha/apiclient"
)

func TestSosCmd(t *testing.T) {
	stub := &apiclient.Stub{
		PanicResult: &apiclient.PanicResponse{Message: "SOS Alert Triggered!", AlertID: 123, NotifiedContacts: 2},
	}
	setupTestEnv(t, stub)
	signIn(t)

	out := executeCommand(createSosCmd())

	for _, expected := range []string{"SOS SENT!", "Notified 2 trusted contacts", "112", "1091"} {
		if !strings.Contains(out, expected) {
			t.Errorf("Expected: \n\"%s\" \nTo contain: \n\"%s\"", out, expected)
		}
	}
}

func TestSosCmdReportsLocationFromConfig(t *testing.T) {
	stub := &apiclient.Stub{
		PanicResult: &apiclient.PanicResponse{Message: "SOS Alert Triggered!", AlertID: 123, NotifiedContacts: 2},
	}
	setupTestEnv(t, stub)
	signIn(t)

	// The fixture config pins the user's area to Delhi
	executeCommand(createSosCmd())

	if len(stub.ReportedLocations) != 1 {
		t.Fatalf("Expected exactly one location report, got %v", len(stub.ReportedLocations))
	}

	if stub.ReportedLocations[0].Latitude != 28.6139 || stub.ReportedLocations[0].Longitude != 77.2090 {
		t.Errorf("Expected the configured coordinates to be reported, got %+v", stub.ReportedLocations[0])
	}
}

func TestSosCmdSurvivesFailedLocationReport(t *testing.T) {
	stub := &apiclient.Stub{
		PanicResult:   &apiclient.PanicResponse{Message: "SOS Alert Triggered!", AlertID: 123, NotifiedContacts: 2},
		LocationError: &apiclient.RequestError{Message: "location service down"},
	}
	setupTestEnv(t, stub)
	signIn(t)

	out := executeCommand(createSosCmd())

	// A failed location report must never block the alert itself
	if !strings.Contains(out, "SOS SENT!") {
		t.Errorf("Expected: \n\"%s\" \nTo contain: \n\"%s\"", out, "SOS SENT!")
	}
}

func TestSosResolveCmd(t *testing.T) {
	stub := &apiclient.Stub{
		ResolveResult: &apiclient.ResolvePanicResponse{Message: "Alert Resolved"},
	}
	setupTestEnv(t, stub)
	signIn(t)

	out := executeCommand(createSosResolveCmd())

	for _, expected := range []string{"Alert Resolved", "Stay safe."} {
		if !strings.Contains(out, expected) {
			t.Errorf("Expected: \n\"%s\" \nTo contain: \n\"%s\"", out, expected)
		}
	}
}

func TestSosCmdRequiresSession(t *testing.T) {
	setupTestEnv(t, &apiclient.Stub{})

	out := executeCommand(createSosCmd())

	if !strings.Contains(out, "not signed in") {
		t.Errorf("Expected: \n\"%s\" \nTo contain: \n\"%s\"", out, "not signed in")
	}
}

func TestSosCmdSurfacesTriggerFailure(t *testing.T) {
	stub := &apiclient.Stub{
		PanicError: &apiclient.RequestError{Message: "alert service rejected the request"},
	}
	setupTestEnv(t, stub)
	signIn(t)

	out := executeCommand(createSosCmd())

	if !strings.Contains(out, "failed to trigger SOS") {
		t.Errorf("Expected: \n\"%s\" \nTo contain: \n\"%s\"", out, "failed to trigger SOS")
	}
}
