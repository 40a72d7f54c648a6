// Package main is the entry point for the archsurvey CLI.
package main

import (
	"github.com/huangsam/archsurvey/cmd"
	"github.com/huangsam/archsurvey/internal/contract"
	"github.com/huangsam/archsurvey/internal/iocache"
)

func main() {
	cmd.SetStoreManager(iocache.Manager)
	defer iocache.CloseStores()
	defer func() {
		if err := cmd.StopProfiling(); err != nil {
			contract.LogWarn("Cannot stop profiling", err)
		}
	}()

	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
