package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// BotTranscriptKey returns the Redis list holding a chat session's transcript.
func (r *CacheKeyStruct) BotTranscriptKey(sessionID string) string {
	return fmt.Sprintf("bot:session:%s:transcript", sessionID)
}

// BotInFlightKey returns the busy flag for a chat session's pending relay call.
func (r *CacheKeyStruct) BotInFlightKey(sessionID string) string {
	return fmt.Sprintf("bot:session:%s:in_flight", sessionID)
}

// PublicSettingsKey returns the cached copy of the footer/contact settings.
func (r *CacheKeyStruct) PublicSettingsKey() string {
	return "site:settings:public"
}

var CacheKey = NewCacheKeyStruct()
