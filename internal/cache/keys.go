package cache

import (
	"strconv"
	"strings"
)

const GlobalKeyPrefix = "learnhub"

// GenerateCacheKey builds "learnhub:<service>:<object>:<id>[:<params joined by _>]".
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return baseKey + ":" + strings.Join(paramsKey, "_")
	}
	return baseKey
}

// QuizByModuleKey is the key of the cached quiz tree of a module.
func QuizByModuleKey(moduleID int64) string {
	return GenerateCacheKey("quiz", "module", strconv.FormatInt(moduleID, 10))
}

// QuizVersionKey holds the invalidation counter of a module's quiz tree.
func QuizVersionKey(moduleID int64) string {
	return GenerateCacheKey("quiz", "version", strconv.FormatInt(moduleID, 10))
}
