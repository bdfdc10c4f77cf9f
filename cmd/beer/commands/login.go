package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fivetwenty-io/beer-client/internal/constants"
	"github.com/fivetwenty-io/beer-client/pkg/beer"
	"github.com/fivetwenty-io/beer-client/pkg/beerclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Login to a beer API",
		Long: `Verify Basic credentials against a beer API and store them in the config file.

The endpoint, username and password are taken from --api, --username and
--password (or the config file and BEER_* variables) and prompted for when
missing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			apiEndpoint := viper.GetString(keyAPI)
			username := viper.GetString(keyUsername)
			password := viper.GetString(keyPassword)

			if apiEndpoint == "" {
				apiEndpoint = prompt(reader, out, "API endpoint: ")
			}

			if apiEndpoint == "" {
				return constants.ErrNoAPIConfigured
			}

			apiEndpoint = beerclient.NormalizeBaseURL(apiEndpoint)

			if username == "" {
				username = prompt(reader, out, "Username: ")
			}

			if username == "" {
				return constants.ErrUsernameRequired
			}

			if password == "" {
				var err error

				password, err = readPassword(cmd.InOrStdin(), reader, out)
				if err != nil {
					return err
				}
			}

			if password == "" {
				return constants.ErrPasswordRequired
			}

			client, err := beerclient.New(&beer.Config{
				BaseURL:   apiEndpoint,
				Username:  username,
				Password:  password,
				UserAgent: userAgent,
			})
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			_, err = client.List(context.Background(), beer.NewListOptions().WithPageSize(1))
			if err != nil {
				if beer.IsUnauthorized(err) || beer.IsForbidden(err) {
					return fmt.Errorf("%w: %w", constants.ErrNotAuthenticated, err)
				}

				return fmt.Errorf("failed to verify credentials: %w", err)
			}

			config := loadConfig()
			config.API = apiEndpoint
			config.Username = username
			config.Password = password
			config.Token = ""

			viper.Set(keyAPI, config.API)
			viper.Set(keyUsername, config.Username)
			viper.Set(keyPassword, config.Password)
			viper.Set(keyToken, "")

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			printSuccess(out, "Logged in to %s as %s\n", apiEndpoint, username)

			return nil
		},
	}
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove stored credentials",
		Long:  "Remove the username, password and token from the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.Username = ""
			config.Password = ""
			config.Token = ""

			viper.Set(keyUsername, "")
			viper.Set(keyPassword, "")
			viper.Set(keyToken, "")

			err := saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			printSuccess(cmd.OutOrStdout(), "Logged out\n")

			return nil
		},
	}
}

func prompt(reader *bufio.Reader, out io.Writer, label string) string {
	_, _ = fmt.Fprint(out, label)

	line, _ := reader.ReadString('\n')

	return strings.TrimSpace(line)
}

// readPassword reads without echo when input is a terminal and falls back to
// a plain line otherwise.
func readPassword(in io.Reader, reader *bufio.Reader, out io.Writer) (string, error) {
	file, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return prompt(reader, out, "Password: "), nil
	}

	_, _ = fmt.Fprint(out, "Password: ")

	bytePassword, err := term.ReadPassword(int(file.Fd()))
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	_, _ = fmt.Fprintln(out)

	return string(bytePassword), nil
}
