// Package iocache is for persisting survey runs and chat transcripts.
package iocache

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/huangsam/archsurvey/internal/contract"
	"github.com/huangsam/archsurvey/schema"
)

// SurveyStoreManager owns the SurveyStore used by the CLI and MCP server.
type SurveyStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	survey       contract.SurveyStore
}

var _ contract.StoreManager = &SurveyStoreManager{} // Compile-time check

// NewSurveyStoreManager wraps an existing store. Used by tests and the MCP server.
func NewSurveyStoreManager(store contract.SurveyStore) *SurveyStoreManager {
	return &SurveyStoreManager{survey: store}
}

// GetSurveyStore returns the SurveyStore, or nil when storage is not initialized.
func (mgr *SurveyStoreManager) GetSurveyStore() contract.SurveyStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.survey
}

var tableNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// validateTableName checks that a table name is safe to interpolate into SQL.
func validateTableName(name string) error {
	if name == "" {
		return fmt.Errorf("table name cannot be empty")
	}
	if !tableNamePattern.MatchString(name) {
		return fmt.Errorf("invalid table name: %s (must match pattern ^[a-zA-Z_][a-zA-Z0-9_]*$)", name)
	}
	return nil
}

// quoteTableName returns the properly quoted table name for the given backend.
func quoteTableName(name string, backend schema.DatabaseBackend) string {
	if backend == schema.MySQLBackend {
		return "`" + name + "`"
	}
	return `"` + name + `"`
}
