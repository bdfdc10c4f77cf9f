package commands

import (
	"fmt"
	"os"

	"github.com/fivetwenty-io/beer-client/internal/constants"
	"github.com/fivetwenty-io/beer-client/internal/logging"
	"github.com/fivetwenty-io/beer-client/pkg/beer"
	"github.com/fivetwenty-io/beer-client/pkg/beerclient"
	"github.com/spf13/viper"
)

// userAgent is sent by every CLI request; main sets the version part.
var userAgent = constants.DefaultUserAgent

// SetUserAgentVersion records the CLI version in the User-Agent header.
func SetUserAgentVersion(version string) {
	userAgent = "beer-cli/" + version
}

// createClient builds a client from the merged flag, environment and file
// configuration.
func createClient() (beer.Client, error) {
	config := loadConfig()
	if config.API == "" {
		return nil, constants.ErrNoAPIConfigured
	}

	clientConfig := &beer.Config{
		BaseURL:     config.API,
		Username:    config.Username,
		Password:    config.Password,
		AccessToken: config.Token,
		HTTPTimeout: viper.GetDuration("timeout"),
		UserAgent:   userAgent,
	}

	if viper.GetBool("verbose") {
		clientConfig.Debug = true
		clientConfig.Logger = logging.NewConsole(os.Stderr, logging.LevelDebug, config.NoColor)
	}

	client, err := beerclient.New(clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}
