package main

import (
	"os"

	"gopkg.in/yaml.v2"

	"consoleholdem/internal/config"
)

func main() {
	if err := yaml.NewEncoder(os.Stdout).Encode(config.Default()); err != nil {
		panic(err)
	}
}
