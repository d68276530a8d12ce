package volume

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// FormatOutput formats a volume response according to output format
func FormatOutput(w io.Writer, response *Response, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(response)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		encoder.SetIndent(2)
		return encoder.Encode(response)
	case "table":
		return formatTable(w, response)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func formatTable(w io.Writer, response *Response) error {
	switch response.Action {
	case ActionSize:
		_, err := fmt.Fprintf(w, "%s\t%s (%d bytes)\n", response.VolumeID, response.Size, response.SizeBytes)
		return err
	default:
		_, err := fmt.Fprintf(w, "%s: %s\n", response.VolumeID, response.Result)
		return err
	}
}
