package commands

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/fivetwenty-io/beer-client/internal/constants"
	"github.com/fivetwenty-io/beer-client/pkg/beer"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"golang.org/x/term"
)

var exportHeader = []string{
	"id", "beerName", "beerStyle", "upc", "quantityOnHand", "price", "createdDate", "updateDate",
}

func newBeersExportCommand() *cobra.Command {
	var (
		file     string
		name     string
		style    string
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export beers as CSV",
		Long:  "Walk every page of the beer list and write the beers as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := beer.NewListOptions().
				WithShowInventory(true).
				WithPageSize(pageSize)

			if name != "" {
				opts.WithName(name)
			}

			if style != "" {
				parsed, err := beer.ParseStyle(style)
				if err != nil {
					return err
				}

				opts.WithStyle(parsed)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if file != "" {
				handle, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, constants.ConfigFilePerm)
				if err != nil {
					return fmt.Errorf("failed to open %s: %w", file, err)
				}

				defer func() { _ = handle.Close() }()

				out = handle
			}

			count, err := exportBeers(context.Background(), client, opts, out, progressOutput(cmd.ErrOrStderr()))
			if err != nil {
				return fmt.Errorf("failed to export beers: %w", err)
			}

			if file != "" {
				printSuccess(cmd.ErrOrStderr(), "Exported %d beers to %s\n", count, file)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "write CSV to this file instead of stdout")
	cmd.Flags().StringVar(&name, "name", "", "filter by beer name")
	cmd.Flags().StringVar(&style, "style", "", "filter by beer style")
	cmd.Flags().IntVar(&pageSize, "page-size", constants.ExportPageSize, "number of beers fetched per request")

	return cmd
}

// progressOutput returns w when it is a terminal, otherwise nil which mutes
// the progress bar.
func progressOutput(w io.Writer) io.Writer {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return nil
	}

	return file
}

// exportBeers writes every beer matching opts to w as CSV and returns the
// number of rows written. Progress is drawn on progressOut when it is non-nil.
func exportBeers(ctx context.Context, lister beer.PageLister, opts *beer.ListOptions, w io.Writer, progressOut io.Writer) (int, error) {
	writer := csv.NewWriter(w)

	err := writer.Write(exportHeader)
	if err != nil {
		return 0, fmt.Errorf("writing header: %w", err)
	}

	progress := mpb.New(mpb.WithWidth(constants.ProgressBarWidth), mpb.WithOutput(progressOut))
	bar := progress.AddBar(0,
		mpb.PrependDecorators(
			decor.OnAbort(decor.OnComplete(decor.Name("exporting"), "exported"), "failed"),
			decor.CountersNoUnit(" %d / %d", decor.WCSyncSpace),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.Percentage(decor.WCSyncSpace), ""),
		),
	)

	iterator := beer.NewPageIterator(ctx, lister, opts)
	count := 0

	for iterator.HasNext() {
		item, err := iterator.Next()
		if err != nil {
			bar.Abort(false)
			progress.Wait()

			return count, err
		}

		if count == 0 {
			bar.SetTotal(iterator.Total(), false)
		}

		err = writer.Write(beerRecord(item))
		if err != nil {
			bar.Abort(false)
			progress.Wait()

			return count, fmt.Errorf("writing beer %s: %w", item.ID, err)
		}

		count++

		bar.Increment()
	}

	bar.SetTotal(-1, true)
	progress.Wait()

	writer.Flush()

	err = writer.Error()
	if err != nil {
		return count, fmt.Errorf("flushing csv: %w", err)
	}

	return count, nil
}

func beerRecord(item *beer.Beer) []string {
	quantity := ""
	if item.QuantityOnHand != nil {
		quantity = strconv.Itoa(*item.QuantityOnHand)
	}

	return []string{
		item.ID.String(),
		item.Name,
		item.Style.String(),
		item.UPC,
		quantity,
		item.Price.StringFixed(2),
		formatCSVTime(item.CreatedDate),
		formatCSVTime(item.UpdateDate),
	}
}

func formatCSVTime(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.UTC().Format(time.RFC3339)
}
