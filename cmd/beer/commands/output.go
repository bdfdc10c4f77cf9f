package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/fivetwenty-io/beer-client/internal/constants"
	"github.com/fivetwenty-io/beer-client/pkg/beer"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// outputFormat returns the selected output format, table by default.
func outputFormat() string {
	output := viper.GetString(keyOutput)
	if output == "" {
		return constants.FormatTable
	}

	return output
}

func validOutputFormat(value string) bool {
	switch value {
	case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
		return true
	default:
		return false
	}
}

func encodeJSON(w io.Writer, value interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

	return encoder.Encode(value)
}

func encodeYAML(w io.Writer, value interface{}) error {
	encoder := yaml.NewEncoder(w)
	defer func() { _ = encoder.Close() }()

	return encoder.Encode(value)
}

// renderBeerPage prints one page of beers in the selected format.
func renderBeerPage(w io.Writer, page *beer.Page[beer.Beer]) error {
	switch outputFormat() {
	case constants.FormatJSON:
		return encodeJSON(w, page)
	case constants.FormatYAML:
		return encodeYAML(w, page)
	}

	err := renderBeerTable(w, page.Content)
	if err != nil {
		return err
	}

	if page.TotalPages() > 1 {
		_, _ = fmt.Fprintf(w, "\nShowing page %d of %d (%d beers). Use --all to fetch all pages.\n",
			page.Number, page.TotalPages(), page.TotalElements)
	}

	return nil
}

// renderBeerList prints beers collected from several pages.
func renderBeerList(w io.Writer, beers []beer.Beer) error {
	switch outputFormat() {
	case constants.FormatJSON:
		if beers == nil {
			beers = []beer.Beer{}
		}

		return encodeJSON(w, beers)
	case constants.FormatYAML:
		return encodeYAML(w, beers)
	default:
		return renderBeerTable(w, beers)
	}
}

func renderBeerTable(w io.Writer, beers []beer.Beer) error {
	if len(beers) == 0 {
		_, _ = fmt.Fprintln(w, "No beers found")

		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("ID", "Name", "Style", "UPC", "Quantity", "Price")

	for _, item := range beers {
		_ = table.Append(
			item.ID.String(),
			item.Name,
			item.Style.String(),
			item.UPC,
			formatQuantity(item.QuantityOnHand),
			item.Price.StringFixed(2), //nolint:mnd // cents
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderBeer prints a single beer in the selected format.
func renderBeer(w io.Writer, item *beer.Beer) error {
	switch outputFormat() {
	case constants.FormatJSON:
		return encodeJSON(w, item)
	case constants.FormatYAML:
		return encodeYAML(w, item)
	}

	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")

	_ = table.Append("ID", item.ID.String())
	_ = table.Append("Name", item.Name)
	_ = table.Append("Style", item.Style.String())
	_ = table.Append("UPC", item.UPC)
	_ = table.Append("Quantity", formatQuantity(item.QuantityOnHand))
	_ = table.Append("Price", item.Price.StringFixed(2)) //nolint:mnd // cents
	_ = table.Append("Version", formatVersion(item.Version))
	_ = table.Append("Created", formatTime(item.CreatedDate))
	_ = table.Append("Updated", formatTime(item.UpdateDate))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func formatQuantity(quantity *int) string {
	if quantity == nil {
		return constants.NotAvailable
	}

	return strconv.Itoa(*quantity)
}

func formatVersion(version *int) string {
	if version == nil {
		return constants.NotAvailable
	}

	return strconv.Itoa(*version)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return constants.NotAvailable
	}

	return t.Format(time.RFC3339)
}

func printSuccess(w io.Writer, format string, args ...interface{}) {
	_, _ = color.New(color.FgGreen).Fprintf(w, format, args...)
}

func printWarning(w io.Writer, format string, args ...interface{}) {
	_, _ = color.New(color.FgYellow).Fprintf(w, format, args...)
}
