package configblock

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/arthur-debert/configblock/pkg/errors"
	"github.com/arthur-debert/configblock/pkg/formats"
	"github.com/arthur-debert/configblock/pkg/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	gotoml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var outputFormats = []string{"table", "yaml", "toml", "json"}

// labelMap flattens a table for the structured encoders
func labelMap(t formats.Table) map[string]string {
	labels := make(map[string]string, t.Len())
	for _, tag := range t.Tags() {
		label, _ := t.Label(tag)
		labels[tag] = label
	}
	return labels
}

// formatsDocument is the shape shared by every structured output, matching
// the [formats] table of the configuration file.
func formatsDocument(t formats.Table) map[string]map[string]string {
	return map[string]map[string]string{"formats": labelMap(t)}
}

// writeFormats prints the tag table in the requested output format
func writeFormats(w io.Writer, t formats.Table, output string) error {
	var (
		data []byte
		err  error
	)

	switch output {
	case "table":
		_, err = fmt.Fprintln(w, renderFormatTable(t))
		if err == nil {
			_, err = fmt.Fprint(w, style.GetStyle("Muted").Render(fmt.Sprintf(MsgFormatsCount, t.Len())))
		}
		return err
	case "yaml":
		data, err = yaml.Marshal(formatsDocument(t))
	case "toml":
		data, err = gotoml.Marshal(formatsDocument(t))
	case "json":
		data, err = json.MarshalIndent(formatsDocument(t), "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	default:
		return errors.Newf(errors.ErrInvalidInput, MsgErrOutputFormat, output).
			WithDetail("output", output)
	}
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode formats")
	}

	_, err = w.Write(data)
	return err
}

// renderFormatTable draws the tags as a bordered two column table
func renderFormatTable(t formats.Table) string {
	tags := t.Tags()
	rows := make([][]string, 0, len(tags))
	for _, tag := range tags {
		label, _ := t.Label(tag)
		rows = append(rows, []string{tag, label})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(style.GetStyle("Muted")).
		Headers("TAG", "LABEL").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return style.GetStyle("TableHeader")
			case col == 0:
				return style.GetStyle("Tag")
			default:
				return style.GetStyle("Label")
			}
		}).
		String()
}
