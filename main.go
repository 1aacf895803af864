package main

import (
	"stockroom.io/infrastructure"
	"stockroom.io/infrastructure/env"
)

func init() {
	env.LoadEnv()
}

func main() {
	infrastructure.StartServer()
}
