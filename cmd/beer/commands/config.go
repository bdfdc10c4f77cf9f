package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/beer-client/internal/constants"
	"github.com/mitchellh/go-homedir"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Configuration keys shared by the config file, flags and BEER_* variables.
const (
	keyAPI      = "api"
	keyUsername = "username"
	keyPassword = "password"
	keyToken    = "token"
	keyOutput   = "output"
	keyNoColor  = "no_color"
)

// Config represents the CLI configuration.
type Config struct {
	API      string `json:"api,omitempty"      yaml:"api,omitempty"`
	Username string `json:"username,omitempty" yaml:"username,omitempty"`
	Password string `json:"password,omitempty" yaml:"password,omitempty"`
	Token    string `json:"token,omitempty"    yaml:"token,omitempty"`
	Output   string `json:"output,omitempty"   yaml:"output,omitempty"`
	NoColor  bool   `json:"no_color"           yaml:"no_color"`
}

// configKeys lists the keys accepted by config set/unset.
func configKeys() []string {
	return []string{keyAPI, keyUsername, keyPassword, keyToken, keyOutput, keyNoColor}
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the beer CLI configuration stored in ~/.beer/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with secrets masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig().masked()

			switch outputFormat() {
			case constants.FormatJSON:
				return encodeJSON(cmd.OutOrStdout(), config)
			case constants.FormatYAML:
				return encodeYAML(cmd.OutOrStdout(), config)
			default:
				return displayConfigTable(cmd.OutOrStdout(), config)
			}
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: api, username, password, token, output, no_color",
		Args:  cobra.ExactArgs(2), //nolint:mnd // key and value
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			config := loadConfig()

			err := config.set(key, value)
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			shown := value
			if key == keyPassword || key == keyToken {
				shown = constants.MaskedSecret
			}

			printSuccess(cmd.OutOrStdout(), "Set %s = %s\n", key, shown)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			config := loadConfig()

			err := config.unset(key)
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			printSuccess(cmd.OutOrStdout(), "Unset %s\n", key)

			return nil
		},
	}
}

func loadConfig() *Config {
	return &Config{
		API:      viper.GetString(keyAPI),
		Username: viper.GetString(keyUsername),
		Password: viper.GetString(keyPassword),
		Token:    viper.GetString(keyToken),
		Output:   viper.GetString(keyOutput),
		NoColor:  viper.GetBool(keyNoColor),
	}
}

func (c *Config) set(key, value string) error {
	switch key {
	case keyAPI:
		c.API = value
	case keyUsername:
		c.Username = value
	case keyPassword:
		c.Password = value
	case keyToken:
		c.Token = value
	case keyOutput:
		if !validOutputFormat(value) {
			return fmt.Errorf("%w: %s (use table, json or yaml)", constants.ErrInvalidOutputValue, value)
		}

		c.Output = value
	case keyNoColor:
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", keyNoColor, err)
		}

		c.NoColor = parsed
	default:
		return fmt.Errorf("%w: %s (known keys: %s)", constants.ErrUnknownConfigKey, key, strings.Join(configKeys(), ", "))
	}

	viper.Set(key, value)

	return nil
}

func (c *Config) unset(key string) error {
	switch key {
	case keyAPI:
		c.API = ""
	case keyUsername:
		c.Username = ""
	case keyPassword:
		c.Password = ""
	case keyToken:
		c.Token = ""
	case keyOutput:
		c.Output = ""
	case keyNoColor:
		c.NoColor = false
	default:
		return fmt.Errorf("%w: %s (known keys: %s)", constants.ErrUnknownConfigKey, key, strings.Join(configKeys(), ", "))
	}

	viper.Set(key, "")

	return nil
}

// masked returns a copy safe to print.
func (c *Config) masked() *Config {
	copied := *c
	if copied.Password != "" {
		copied.Password = constants.MaskedSecret
	}

	if copied.Token != "" {
		copied.Token = constants.MaskedSecret
	}

	return &copied
}

// configFilePath returns the file in use, or ~/.beer/config.yml.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".beer", "config.yml"), nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displayConfigTable(w io.Writer, config *Config) error {
	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")

	rows := [][]string{
		{"API", valueOrNA(config.API)},
		{"Username", valueOrNA(config.Username)},
		{"Password", valueOrNA(config.Password)},
		{"Token", valueOrNA(config.Token)},
		{"Output", valueOrNA(config.Output)},
		{"No Color", strconv.FormatBool(config.NoColor)},
	}

	for _, row := range rows {
		_ = table.Append(row[0], row[1])
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func valueOrNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}
