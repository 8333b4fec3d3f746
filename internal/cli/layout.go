// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/noldarim/bookends/internal/config"
	"github.com/noldarim/bookends/internal/content"
	"github.com/noldarim/bookends/internal/logger"
	"github.com/noldarim/bookends/internal/tui/screens/browser"
)

func layoutCommand(args []string, out io.Writer) error {
	opts := &commonOptions{}
	fs := flag.NewFlagSet("layout", flag.ContinueOnError)
	opts.register(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, entries, err := setup(opts)
	if err != nil {
		return err
	}
	defer logger.CloseGlobal()

	printLayout(out, cfg.List, entries)
	return nil
}

// printLayout writes one table row per position of the decorated list
func printLayout(out io.Writer, cfg config.ListConfig, entries []content.Entry) {
	list, source := browser.BuildList(cfg, entries)

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Position", "Region", "Index", "Tag", "Text"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetRowLine(false)

	count := list.ItemCount()
	for p := 0; p < count; p++ {
		kind, index, text := browser.Describe(list, source, p)
		table.Append([]string{
			strconv.Itoa(p),
			kind.String(),
			strconv.Itoa(index),
			fmt.Sprintf("%#x", int(list.ItemTag(p))),
			text,
		})
	}
	table.SetFooter([]string{"", "", "", "total", strconv.Itoa(count)})
	table.Render()
}
