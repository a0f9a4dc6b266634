package main

import "github.com/frahmantamala/rbac-console/cmd"

func main() {
	cmd.Execute()
}
