package utils

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

var spewConfig *spew.ConfigState

func init() {
	spewConfig = spew.NewDefaultConfig()
	spewConfig.DisableCapacities = true
	spewConfig.DisablePointerAddresses = true
}

func Dump(a ...interface{}) {
	fmt.Println(spewConfig.Sdump(a...))
}
