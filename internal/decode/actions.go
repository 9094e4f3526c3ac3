package decode

import (
	"fmt"

	"github.com/dtnitsch/html-helpers/internal/common"
	"github.com/dtnitsch/html-helpers/pkg/slimmer"
	"github.com/urfave/cli/v2"
)

func DecodeAction(c *cli.Context) error {
	input := common.StdinName
	if c.Args().Len() > 0 {
		input = c.Args().First()
	}

	data, err := common.ReadInput(input)
	if err != nil {
		return err
	}

	if c.Bool("encode") {
		fmt.Println(slimmer.EncodeEntities(string(data)))
		return nil
	}

	fmt.Println(slimmer.DecodeEntities(string(data)))
	return nil
}
