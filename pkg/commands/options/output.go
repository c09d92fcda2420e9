package options

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
	YAML bool
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

func AddStructuredOutputArgs(cmd *cobra.Command, po *OutputOptions) {
	AddOutputArg(cmd, po)
	cmd.Flags().BoolVar(&po.YAML, "yaml", false,
		"Output as YAML.")
}

func (o *OutputOptions) Validate() error {
	if o.JSON && o.YAML {
		return errors.New("--json and --yaml are exclusive")
	}
	return nil
}

func (o *OutputOptions) HandleError(err error) error {
	if err == nil || !(o.JSON || o.YAML) {
		return err
	}
	out := map[string]string{
		"error": err.Error(),
	}
	var (
		b    []byte
		merr error
	)
	if o.YAML {
		b, merr = yaml.Marshal(out)
	} else {
		b, merr = json.Marshal(out)
	}
	if merr != nil {
		return merr
	}
	_, _ = fmt.Fprintln(color.Output, string(b))
	return nil
}
