package status

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// FormatOutput formats status results according to output format
func FormatOutput(w io.Writer, response *Response, format string) error {
	switch format {
	case "json":
		return formatJSON(w, response)
	case "yaml":
		return formatYAML(w, response)
	case "table":
		return formatTable(w, response)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// formatTable formats results as a table
func formatTable(w io.Writer, response *Response) error {
	fmt.Fprintf(w, "State:                 %s\n", response.State)
	fmt.Fprintf(w, "Boot volume encrypted: %t\n", response.BootVolumeEncrypted)
	recovery := response.RecoveryPartition
	if recovery == "" {
		recovery = "(none)"
	}
	fmt.Fprintf(w, "Recovery partition:    %s\n", recovery)

	if len(response.Volumes) == 0 {
		fmt.Fprintln(w, "\nNo CoreStorage logical volumes found.")
		return nil
	}

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "VOLUME\tENCRYPTED\tSIZE\n")
	fmt.Fprintf(tw, "------\t---------\t----\n")
	for _, v := range response.Volumes {
		size := v.Size
		if size == "" {
			size = "-"
		}
		fmt.Fprintf(tw, "%s\t%t\t%s\n", v.ID, v.Encrypted, size)
	}
	return tw.Flush()
}

// formatJSON formats results as JSON
func formatJSON(w io.Writer, response *Response) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(response)
}

// formatYAML formats results as YAML
func formatYAML(w io.Writer, response *Response) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	encoder.SetIndent(2)
	return encoder.Encode(response)
}
