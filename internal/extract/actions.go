package extract

import (
	"encoding/json"
	"fmt"

	"github.com/dtnitsch/html-helpers/internal/common"
	"github.com/dtnitsch/html-helpers/pkg/extractor"
	"github.com/urfave/cli/v2"
)

func ExtractAction(c *cli.Context) error {
	input := common.StdinName
	if c.Args().Len() > 0 {
		input = c.Args().First()
	}

	data, err := common.ReadInput(input)
	if err != nil {
		return err
	}

	article, err := extractor.Extract(c.String("url"), string(data))
	if err != nil {
		return err
	}

	if c.Bool("text") {
		fmt.Println(article.Text)
		return nil
	}

	jsonData, err := json.MarshalIndent(article, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal article: %w", err)
	}
	fmt.Println(string(jsonData))

	return nil
}
