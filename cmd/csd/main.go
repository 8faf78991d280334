package main

import "github.com/DOCTOR-ANR/NDN-microservices/internal/cli"

func main() {
	cli.Execute()
}
