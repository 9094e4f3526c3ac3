package sel

import (
	"encoding/json"
	"fmt"

	"github.com/dtnitsch/html-helpers/internal/common"
	"github.com/dtnitsch/html-helpers/pkg/selector"
	"github.com/urfave/cli/v2"
)

func SelectAction(c *cli.Context) error {
	input := common.StdinName
	if c.Args().Len() > 0 {
		input = c.Args().First()
	}

	data, err := common.ReadInput(input)
	if err != nil {
		return err
	}

	els, err := selector.Select(string(data), c.StringSlice("selector"))
	if err != nil {
		return err
	}

	filter, err := selector.ParseFilter(c.String("filter"))
	if err != nil {
		return fmt.Errorf("invalid --filter: %w", err)
	}
	els = filter.Apply(els)

	jsonData, err := json.MarshalIndent(els, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal elements: %w", err)
	}
	fmt.Println(string(jsonData))

	return nil
}
