package config

import (
	_ "embed"
)

//go:embed defaults/candymaze.yaml
var defaultYAML []byte
