// internal/fetchapp/list.go
package fetchapp

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"msadata-core/dbcatalog"
)

// List prints the bucket inventory as an aligned table, marking archives
// that appear in the known-database catalog.
func (a *App) List(ctx context.Context) error {
	objs, err := a.S3.List(ctx, Bucket, Prefix+"/")
	if err != nil {
		return err
	}

	type row [4]string
	var rows []row
	for _, obj := range objs {
		filename := strings.TrimPrefix(obj.Key, Prefix+"/")
		if filename == "" { // the prefix itself
			continue
		}
		moleculeType, known := dbcatalog.Classify(filename)
		check := ""
		if known {
			check = "✓"
		}
		rows = append(rows, row{filename, dbcatalog.FormatSize(obj.Size), moleculeType, check})
	}

	if len(rows) == 0 {
		fmt.Fprintln(a.Stdout, "No objects found in bucket.")
		return nil
	}

	// Column widths in runes, not bytes: the check mark is multi-byte.
	headers := row{"Filename", "Size", "Type", "Known"}
	widths := [4]int{}
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, r := range rows {
		for i, cell := range r {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	line := func(r row) string {
		cells := make([]string, len(r))
		for i, cell := range r {
			cells[i] = cell + strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell))
		}
		return strings.Join(cells, "  ")
	}
	header := line(headers)
	fmt.Fprintln(a.Stdout, header)
	fmt.Fprintln(a.Stdout, strings.Repeat("-", utf8.RuneCountInString(header)))
	for _, r := range rows {
		fmt.Fprintln(a.Stdout, line(r))
	}
	return nil
}
