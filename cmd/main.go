package main

import (
	cmd "github.com/Ivette-Garcia-32/experiencias-de-aprendizaje/cmd/experiencias"
)

func main() {
	cmd.Execute()
}
