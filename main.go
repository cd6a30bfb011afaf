// Package main is the entry point of the tracktides CLI.
package main

import (
	"github.com/huangsam/tracktides/cmd"
	"github.com/huangsam/tracktides/internal/contract"
	"github.com/huangsam/tracktides/internal/iocache"
)

func main() {
	cmd.SetStoreManager(iocache.Manager)

	err := cmd.Execute()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Cannot stop profiling", stopErr)
	}
	iocache.CloseStores()
	if err != nil {
		contract.LogFatal("Cannot run tracktides", err)
	}
}
