package cmd

import (
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(createWhoamiCmd())
}

func createWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}

			user := sessionStore.User()
			cmd.Printf("Signed in as %s (user id %s)%s\n", user.Email, user.ID, demoBadge())

			if expiry, ok := tokenExpiry(sessionStore.Token()); ok {
				cmd.Printf("Token expires %s\n", expiry.Format(time.RFC1123))
			}

			return nil
		},
	}
}

// tokenExpiry pulls the exp claim out of the session token without
// verifying the signature - verification is the backend's job, this is
// just a courtesy display. Opaque tokens (like the demo one) simply
// have no expiry to show.
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	expiry, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}, false
	}

	return time.Unix(int64(expiry), 0), true
}
