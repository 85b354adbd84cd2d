package cmd

import (
	"bytes"

	"github.com/achilleasa/minimal/rtc"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List available ray intersection backends.
func ListDevices(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Device", "Description"})
	for _, info := range rtc.Backends() {
		table.Append([]string{info.Name, info.Description})
	}
	table.Render()

	logger.Noticef("available devices\n%s", buf.String())
	return nil
}
