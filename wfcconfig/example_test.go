package wfcconfig_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/wfc/wfcconfig"
)

// ExampleSave writes then reloads a preset to show the round trip.
func ExampleSave() {
	dir, err := os.MkdirTemp("", "wfcconfig-example")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "preset.yaml")
	preset := wfcconfig.Preset{PatternSize: 3, OutHeight: 16, OutWidth: 16, Symmetry: 8}

	if err := wfcconfig.Save(path, preset); err != nil {
		panic(err)
	}
	loaded, err := wfcconfig.Load(path)
	if err != nil {
		panic(err)
	}

	fmt.Println(loaded.PatternSize, loaded.OutHeight, loaded.OutWidth)
	// Output:
	// 3 16 16
}
