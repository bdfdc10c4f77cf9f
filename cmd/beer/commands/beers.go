package commands

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/beer-client/internal/constants"
	"github.com/fivetwenty-io/beer-client/pkg/beer"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// NewBeersCommand creates the beers command group.
func NewBeersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "beers",
		Aliases: []string{"beer"},
		Short:   "Manage beers",
		Long:    "List, inspect, create, update, delete and export beers",
	}

	cmd.AddCommand(newBeersListCommand())
	cmd.AddCommand(newBeersGetCommand())
	cmd.AddCommand(newBeersCreateCommand())
	cmd.AddCommand(newBeersUpdateCommand())
	cmd.AddCommand(newBeersDeleteCommand())
	cmd.AddCommand(newBeersExportCommand())

	return cmd
}

func newBeersListCommand() *cobra.Command {
	var (
		name          string
		style         string
		showInventory bool
		pageNumber    int
		pageSize      int
		allPages      bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List beers",
		Long:  "List beers, optionally filtered by name and style",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := beer.NewListOptions()

			if cmd.Flags().Changed("name") {
				opts.WithName(name)
			}

			if cmd.Flags().Changed("style") {
				parsed, err := beer.ParseStyle(style)
				if err != nil {
					return err
				}

				opts.WithStyle(parsed)
			}

			if cmd.Flags().Changed("show-inventory") {
				opts.WithShowInventory(showInventory)
			}

			if cmd.Flags().Changed("page") {
				opts.WithPageNumber(pageNumber)
			}

			if cmd.Flags().Changed("page-size") {
				opts.WithPageSize(pageSize)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			if allPages {
				beers, err := beer.FetchAll(ctx, client, opts)
				if err != nil {
					return fmt.Errorf("failed to list beers: %w", err)
				}

				return renderBeerList(cmd.OutOrStdout(), beers)
			}

			page, err := client.List(ctx, opts)
			if err != nil {
				return fmt.Errorf("failed to list beers: %w", err)
			}

			return renderBeerPage(cmd.OutOrStdout(), page)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "filter by beer name")
	cmd.Flags().StringVar(&style, "style", "", "filter by beer style (e.g. IPA, PALE_ALE)")
	cmd.Flags().BoolVar(&showInventory, "show-inventory", false, "include quantity on hand")
	cmd.Flags().IntVar(&pageNumber, "page", 0, "page number to fetch")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "number of beers per page")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")

	return cmd
}

func newBeersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get BEER_ID",
		Short: "Get beer details",
		Long:  "Display detailed information about a specific beer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseBeerID(args[0])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			found, err := client.GetByID(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get beer: %w", err)
			}

			return renderBeer(cmd.OutOrStdout(), found)
		},
	}
}

func newBeersCreateCommand() *cobra.Command {
	var (
		name     string
		style    string
		upc      string
		price    string
		quantity int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a beer",
		Long:  "Create a new beer and display the stored record",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return constants.ErrNameRequired
			}

			if style == "" {
				return constants.ErrStyleRequired
			}

			parsedStyle, err := beer.ParseStyle(style)
			if err != nil {
				return err
			}

			newBeer := &beer.Beer{
				Name:  name,
				Style: parsedStyle,
				UPC:   upc,
			}

			if price != "" {
				newBeer.Price, err = parsePrice(price)
				if err != nil {
					return err
				}
			}

			if cmd.Flags().Changed("quantity") {
				newBeer.QuantityOnHand = &quantity
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			created, err := client.Create(context.Background(), newBeer)
			if err != nil {
				return fmt.Errorf("failed to create beer: %w", err)
			}

			printSuccess(cmd.ErrOrStderr(), "Created beer %s\n", created.ID)

			return renderBeer(cmd.OutOrStdout(), created)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "beer name (required)")
	cmd.Flags().StringVar(&style, "style", "", "beer style (required)")
	cmd.Flags().StringVar(&upc, "upc", "", "universal product code")
	cmd.Flags().StringVar(&price, "price", "", "price, e.g. 12.99")
	cmd.Flags().IntVar(&quantity, "quantity", 0, "quantity on hand")

	return cmd
}

func newBeersUpdateCommand() *cobra.Command {
	var (
		name     string
		style    string
		upc      string
		price    string
		quantity int
	)

	cmd := &cobra.Command{
		Use:   "update BEER_ID",
		Short: "Update a beer",
		Long:  "Update the given fields of a beer; unspecified fields keep their current values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseBeerID(args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if !flags.Changed("name") && !flags.Changed("style") && !flags.Changed("upc") &&
				!flags.Changed("price") && !flags.Changed("quantity") {
				return constants.ErrNothingToUpdate
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			current, err := client.GetByID(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get beer: %w", err)
			}

			if flags.Changed("name") {
				current.Name = name
			}

			if flags.Changed("style") {
				current.Style, err = beer.ParseStyle(style)
				if err != nil {
					return err
				}
			}

			if flags.Changed("upc") {
				current.UPC = upc
			}

			if flags.Changed("price") {
				current.Price, err = parsePrice(price)
				if err != nil {
					return err
				}
			}

			if flags.Changed("quantity") {
				current.QuantityOnHand = &quantity
			}

			updated, err := client.Update(ctx, current)
			if err != nil {
				return fmt.Errorf("failed to update beer: %w", err)
			}

			printSuccess(cmd.ErrOrStderr(), "Updated beer %s\n", updated.ID)

			return renderBeer(cmd.OutOrStdout(), updated)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new beer name")
	cmd.Flags().StringVar(&style, "style", "", "new beer style")
	cmd.Flags().StringVar(&upc, "upc", "", "new universal product code")
	cmd.Flags().StringVar(&price, "price", "", "new price")
	cmd.Flags().IntVar(&quantity, "quantity", 0, "new quantity on hand")

	return cmd
}

func newBeersDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete BEER_ID",
		Short: "Delete a beer",
		Long:  "Delete a beer by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseBeerID(args[0])
			if err != nil {
				return err
			}

			if !force {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Really delete beer '%s'? (y/N): ", id)

				response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				response = strings.ToLower(strings.TrimSpace(response))

				if response != "y" && response != constants.ConfirmationYes {
					printWarning(cmd.OutOrStdout(), "Cancelled\n")

					return nil
				}
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.Delete(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to delete beer: %w", err)
			}

			printSuccess(cmd.OutOrStdout(), "Successfully deleted beer '%s'\n", id)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}

func parseBeerID(value string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w %q: %w", constants.ErrInvalidBeerID, value, err)
	}

	return id, nil
}

func parsePrice(value string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w %q: %w", constants.ErrInvalidPrice, value, err)
	}

	if price.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w %q: must not be negative", constants.ErrInvalidPrice, value)
	}

	return price, nil
}
