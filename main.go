/*
Copyright © 2023 dimas maulana dimasmaulana0305@gmail.com
*/
package main

import (
	"os"

	"github.com/dimasma0305/teams-notifier/cmd"
	"github.com/dimasma0305/teams-notifier/internal/notifier/errors"
)

func main() {
	os.Exit(errors.ExitCode(cmd.Execute()))
}
