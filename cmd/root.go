/*
Copyright © 2026 The Raksha Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/go-playground/validator"
	"github.com/joho/godotenv"
	"github.com/raksha-app/raksha/apiclient"
	"github.com/raksha-app/raksha/colors"
	"github.com/raksha-app/raksha/session"
	"github.com/raksha-app/raksha/shared"
	"github.com/raksha-app/raksha/utils"
	"github.com/raksha-app/raksha/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile      string
	config       *viper.Viper
	clientConfig shared.ClientConfig

	sessionStore *session.Store
	api          apiclient.API

	isDevEnv  bool
	isTestEnv bool

	warningLabel = colors.Yellow("Warning:")
	demoLabel    = colors.Yellow("[demo mode]")
)

// rootCmd represents the base command when called without any subcommands.
// It must be initialized here (not in init) so it exists before the
// subcommand files' init functions run and call rootCmd.AddCommand.
var rootCmd = createRootCmd()

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initConfig, initSessionStore, initAPIClient)

	rootCmd.Version = fmt.Sprintf("v%s", version.Version)
}

func createRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use: "raksha",
		Short: `raksha is a personal-safety companion for your terminal.

Sign in, keep a list of trusted contacts, trigger an SOS alert that
notifies them, ask the legal assistant about your rights, and look up
safer routes - all against the Raksha backend. When the backend is
unreachable, the app switches itself into demo mode so every command
stays usable.`,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.raksha.yaml)")
	cmd.PersistentFlags().BoolVarP(&isDevEnv, "dev", "", false, "run in development mode")
	cmd.PersistentFlags().BoolVarP(&isTestEnv, "test", "", false, "run in test mode")

	return cmd
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// A .env file is optional, so a missing one is fine
	_ = godotenv.Load()

	config = viper.New()

	if cfgFile != "" {
		// Use config file from the flag.
		config.SetConfigFile(cfgFile)
	} else {
		configName, configDir, err := defaultCfgNameAndDir()
		cobra.CheckErr(err)

		// If config file is not found, create one using defaultConfigValue
		configFilePath := filepath.Join(configDir, configName)
		if !utils.FileExist(configFilePath) {
			err = ioutil.WriteFile(configFilePath, []byte(defaultConfigValue()), 0600)
			cobra.CheckErr(err)
		}

		config.AddConfigPath(configDir)
		config.SetConfigType("yaml")
		config.SetConfigName(configName)
	}

	// BIND api.url to RAKSHA_API_URL env, so the backend origin can be
	// pointed somewhere else without editing .raksha.yaml.
	// FYI: The env var overrides whatever is in the config file
	config.BindEnv("api.url", "RAKSHA_API_URL")

	config.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := config.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", config.ConfigFileUsed())
	}

	clientConfig = shared.ClientConfig{}
	cobra.CheckErr(config.Unmarshal(&clientConfig))

	if clientConfig.API.URL == "" {
		clientConfig.API.URL = apiclient.DefaultBaseURL
	}

	cobra.CheckErr(validator.New().Struct(clientConfig))
}

func initSessionStore() {
	// Tests provide their own store, pointed at a scratch directory
	if isTestEnv {
		return
	}

	var err error
	sessionStore, err = session.NewStore(sessionDirectory())
	cobra.CheckErr(err)
}

func initAPIClient() {
	// No need for a real API client in tests
	if isTestEnv {
		return
	}

	api = apiclient.NewClient(apiclient.Config{
		BaseURL: clientConfig.API.URL,
		Tokens:  sessionStore,
		OnDemoSwitch: func() {
			fmt.Fprintf(os.Stderr, "%s Backend unreachable. Switched to Demo Mode.\n", warningLabel)
		},
	})
}

func defaultCfgNameAndDir() (configName string, configDir string, err error) {
	configName = ".raksha.yaml"

	// Use home directory for production
	configDir, err = os.UserHomeDir()
	if err != nil {
		return "", "", err
	}

	if isDevEnv || isTestEnv {
		configName = ".raksha.dev.yaml"
		configDir, err = os.Getwd()
		if err != nil {
			return "", "", err
		}

		if isTestEnv {
			configName = ".raksha.yaml"
			configDir = filepath.Join(configDir, "test-fixtures")
		}
	}

	return configName, configDir, err
}

// sessionDirectory is where the signed-in session is persisted across runs.
func sessionDirectory() string {
	folderName := ".raksha"
	rootDir, err := os.UserHomeDir()
	cobra.CheckErr(err)

	if isDevEnv {
		rootDir, err = os.Getwd()
		cobra.CheckErr(err)
	}

	return filepath.Join(rootDir, folderName)
}

// defaultConfigValue returns the default content for .raksha.yaml
func defaultConfigValue() string {
	return `api:
 url: "http://localhost:3000/api"

# Pin your usual area here. A terminal has no geolocation hardware, so
# these coordinates are what the sos command quietly reports to the
# backend before an alert goes out.
# e.g.
# location:
#  latitude: 28.6139
#  longitude: 77.2090
location:
`
}

func formattedError(format string, a ...interface{}) error {
	return fmt.Errorf(colors.Red(format), a...)
}

func requireSession() error {
	if sessionStore.Authenticated() {
		return nil
	}

	return formattedError("you're not signed in. Run 'raksha login' first")
}

// demoBadge is appended to panel output once the app has switched to
// canned responses, mirroring the web client's demo chip.
func demoBadge() string {
	if api.DemoMode() {
		return " " + demoLabel
	}

	return ""
}
