/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/rce-oj/dataserver/cmd"

func main() {
	cmd.Execute()
}
