package main

import (
	"github.com/huepick/huepick/cmd"
	"github.com/huepick/huepick/config"
	"github.com/huepick/huepick/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())
	cmd.Execute()
}
