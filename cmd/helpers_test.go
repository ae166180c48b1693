package cmd

import (
	"bytes"
	"io"
	"testing"

	"github.com/raksha-app/raksha/apiclient"
	"github.com/raksha-app/raksha/session"
	"github.com/spf13/cobra"
)

type TestDataProvider []struct {
	description string
	args        []string
	expectedOut string
}

// setupTestEnv points the package globals at a stub API and a scratch
// session store, and reverts them when the test is done. Test mode also
// makes the cobra initializers read their config from test-fixtures/
// and skip building the real client.
func setupTestEnv(t *testing.T, stub *apiclient.Stub) {
	t.Helper()

	savedTestEnv := isTestEnv
	savedAPI := api
	savedStore := sessionStore

	isTestEnv = true
	api = stub

	var err error
	sessionStore, err = session.NewStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		isTestEnv = savedTestEnv
		api = savedAPI
		sessionStore = savedStore
	})
}

func signIn(t *testing.T) {
	t.Helper()

	err := sessionStore.Login(apiclient.DemoToken, session.User{ID: "1", Email: apiclient.DemoEmail})
	if err != nil {
		t.Fatal(err)
	}
}

func executeCommand(cmd *cobra.Command, args ...string) string {
	return executeCommandWithInput(cmd, nil, args...)
}

func executeCommandWithInput(cmd *cobra.Command, input io.Reader, args ...string) string {
	buff := new(bytes.Buffer)

	cmd.SetOut(buff)
	cmd.SetErr(buff)
	if input != nil {
		cmd.SetIn(input)
	}

	// With nil args cobra falls back to os.Args, which holds the test
	// binary's own flags
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	cmd.Execute()

	return buff.String()
}
