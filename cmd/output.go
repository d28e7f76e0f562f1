package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/brogergvhs/teamx/internal/providers"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

var (
	labelStyle = color.New(color.FgHiBlue, color.Bold)
	dimStyle   = color.New(color.FgHiBlack)
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func writeTable(w io.Writer, headers []string, rows [][]string) error {
	table := tablewriter.NewTable(w)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Header.Alignment.Global = tw.AlignLeft
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	table.Header(headers)
	if err := table.Bulk(rows); err != nil {
		return err
	}

	return table.Render()
}

func writeMangasPage(w io.Writer, page *providers.MangasPage, asJSON bool) error {
	if asJSON {
		return writeJSON(w, page)
	}

	rows := make([][]string, 0, len(page.Entries))
	for i, e := range page.Entries {
		rows = append(rows, []string{strconv.Itoa(i + 1), e.Title, e.URL})
	}
	if err := writeTable(w, []string{"#", "Title", "URL"}, rows); err != nil {
		return err
	}

	if page.HasNextPage {
		_, _ = dimStyle.Fprintln(w, "more results on the next page")
	}

	return nil
}

func statusStyle(s providers.Status) *color.Color {
	switch s {
	case providers.StatusOngoing:
		return color.New(color.FgGreen)
	case providers.StatusCompleted:
		return color.New(color.FgCyan)
	case providers.StatusOnHiatus:
		return color.New(color.FgYellow)
	default:
		return dimStyle
	}
}

func writeDetails(w io.Writer, d providers.MangaDetails, asJSON bool) error {
	if asJSON {
		return writeJSON(w, d)
	}

	field := func(label, value string) {
		if value == "" {
			value = dimStyle.Sprint("-")
		}
		_, _ = fmt.Fprintf(w, "%s %s\n", labelStyle.Sprintf("%-12s", label+":"), value)
	}

	field("Title", d.Title)
	field("Artist", d.Artist)
	field("Author", d.Author)
	field("Status", statusStyle(d.Status).Sprint(d.Status))
	field("Genres", d.Genre())
	field("Thumbnail", d.ThumbnailURL)

	if d.Description != "" {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, d.Description)
	}

	return nil
}

func formatUpload(ms int64) string {
	if ms == 0 {
		return "-"
	}

	return time.UnixMilli(ms).Format("2006-01-02 15:04")
}

func writeChapters(w io.Writer, chapters []providers.Chapter, asJSON bool) error {
	if asJSON {
		return writeJSON(w, chapters)
	}

	rows := make([][]string, 0, len(chapters))
	for i, ch := range chapters {
		rows = append(rows, []string{strconv.Itoa(i + 1), ch.Name, formatUpload(ch.DateUpload), ch.URL})
	}

	return writeTable(w, []string{"#", "Name", "Uploaded", "URL"}, rows)
}

func writePages(w io.Writer, pages []providers.Page, asJSON bool) error {
	if asJSON {
		return writeJSON(w, pages)
	}

	rows := make([][]string, 0, len(pages))
	for _, p := range pages {
		rows = append(rows, []string{strconv.Itoa(p.Index), p.ImageURL})
	}

	return writeTable(w, []string{"Index", "Image"}, rows)
}

// pickerLabel is how an entry appears in the interactive search picker.
func pickerLabel(e providers.CatalogEntry) string {
	title := strings.TrimSpace(e.Title)
	if title == "" {
		title = e.URL
	}

	return title
}
